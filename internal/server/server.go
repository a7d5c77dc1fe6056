// Package server serves live SVG previews over HTTP.
//
// Routes:
//
//	GET /                index of SVG files under the root
//	GET /healthz         liveness probe
//	GET /media/{name}    bundled script and stylesheets
//	GET /preview/*       rendered preview page, ?state=<json> restores zoom
//	GET /ws              websocket pushing reload and warning messages
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/watch"
)

// ErrListen is returned when the server cannot bind its address.
var ErrListen = errors.New("cannot listen")

// Route prefixes used in rendered pages.
const (
	MediaPrefix = "/media/"
	LivePath    = "/ws"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr           string                   // Listen address
	Root           string                   // Directory previews are served from; empty = "."
	AllowedOrigins []string                 // CORS and websocket origins; empty = localhost
	Live           bool                     // Watch Root and push reloads
	Settings       svgpreview.SettingsStore // Nil = DefaultSettings
	AssetPath      string                   // Media override directory
	Log            io.Writer                // Access and error log; nil = discard
}

// Server is the preview HTTP server.
type Server struct {
	opts     Options
	root     string
	source   svgpreview.FileSource
	renderer *svgpreview.Renderer
	media    svgpreview.MediaLoader
	hub      *Hub
	watcher  *watch.Watcher
	logger   *log.Logger
	router   chi.Router
}

// New builds the server and its renderer. With Live set it also starts
// watching Root, so the caller must Close or Serve it.
func New(opts Options) (*Server, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	logOut := opts.Log
	if logOut == nil {
		logOut = io.Discard
	}

	s := &Server{
		opts:   opts,
		root:   absRoot,
		source: svgpreview.FileSource{Root: absRoot},
		logger: log.New(logOut, "", log.LstdFlags),
	}
	s.hub = NewHub(s.checkOrigin)

	settings := opts.Settings
	if settings == nil {
		settings = svgpreview.StaticSettings(svgpreview.DefaultSettings())
	}

	rendererOpts := []svgpreview.Option{
		svgpreview.WithDocumentSource(s.source),
		svgpreview.WithSettings(settings),
		svgpreview.WithAssetPrefix(MediaPrefix),
		svgpreview.WithAssetPath(opts.AssetPath),
	}
	if opts.Live {
		rendererOpts = append(rendererOpts, svgpreview.WithLiveReload(LivePath))
	}
	if s.renderer, err = svgpreview.NewRenderer(rendererOpts...); err != nil {
		return nil, err
	}
	if s.media, err = svgpreview.NewMediaLoader(opts.AssetPath); err != nil {
		return nil, err
	}

	if opts.Live {
		if s.watcher, err = watch.New(absRoot); err != nil {
			return nil, err
		}
		s.watcher.OnError = func(err error) {
			s.logger.Printf("watch: %v", err)
		}
	}

	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle(LivePath, s.hub)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Get("/", s.handleIndex)
		r.Get(MediaPrefix+"{name}", s.handleMedia)
		r.Get("/preview/*", s.handlePreview)
	})

	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the websocket hub, also usable as a Notifier.
func (s *Server) Hub() *Hub { return s.hub }

// Root returns the absolute directory previews are served from.
func (s *Server) Root() string { return s.root }

// ListenAndServe binds Options.Addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		s.Close()
		return fmt.Errorf("%w: %s: %v", ErrListen, s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. Returns nil on a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.Close()

	if s.watcher != nil {
		events, unsubscribe := s.watcher.Subscribe()
		defer unsubscribe()
		go func() { _ = s.watcher.Run(ctx) }()
		go s.forward(ctx, events)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stop()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close stops the watcher and disconnects live pages.
func (s *Server) Close() {
	s.hub.Close()
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

// forward turns file events into reload pushes. A change to anything but
// an SVG file (typically a stylesheet) reloads every page.
func (s *Server) forward(ctx context.Context, events <-chan watch.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.hub.Reload(reloadPath(ev.Path))
		}
	}
}

func reloadPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return path
	}
	return ReloadAll
}

// allowedOrigins returns the CORS origins, localhost by default.
func (s *Server) allowedOrigins() []string {
	if len(s.opts.AllowedOrigins) > 0 {
		return s.opts.AllowedOrigins
	}
	return []string{"http://localhost:*", "http://127.0.0.1:*"}
}

// checkOrigin accepts websocket connections from the same host or from a
// configured origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range s.opts.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
