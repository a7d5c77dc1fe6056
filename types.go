package svgpreview

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Settings controls what a rendered page contains.
// A SettingsStore returns a fresh value for every render.
type Settings struct {
	// ShowTransparencyGrid draws a background behind the image.
	ShowTransparencyGrid bool
	// TransparencyColor replaces the checkerboard with a CSS color.
	// The value is written verbatim.
	TransparencyColor string
	// AutoInsertNamespace adds xmlns="http://www.w3.org/2000/svg" when missing.
	AutoInsertNamespace bool
	// ShowZoomControls adds the zoom in / zoom out / reset button bar.
	ShowZoomControls bool
	// ShowSource appends a highlighted view of the SVG source.
	ShowSource bool
}

// DefaultSettings returns the settings used when no store is configured:
// checkerboard grid, namespace insertion and zoom controls on.
func DefaultSettings() Settings {
	return Settings{
		ShowTransparencyGrid: true,
		AutoInsertNamespace:  true,
		ShowZoomControls:     true,
	}
}

// Document is the text of a source document and its filesystem path.
// Stylesheet references are resolved against the directory of Path.
type Document struct {
	Text string
	Path string
}

// ViewState is the client-side zoom and scroll state round-tripped
// through the rendered page. Values must be JSON serializable.
type ViewState map[string]any

// ParseViewState decodes a JSON object. An empty or whitespace-only
// string yields a nil state.
func ParseViewState(s string) (ViewState, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var state ViewState
	if err := json.Unmarshal([]byte(s), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidViewState, err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidViewState)
	}
	return state, nil
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDocumentSource sets where Render loads documents from.
func WithDocumentSource(src DocumentSource) Option {
	return func(r *Renderer) {
		r.source = src
	}
}

// WithSettings sets the store read at the start of every render.
func WithSettings(store SettingsStore) Option {
	return func(r *Renderer) {
		r.settings = store
	}
}

// WithFilesystem sets how referenced stylesheets are read.
func WithFilesystem(fsys Filesystem) Option {
	return func(r *Renderer) {
		r.fs = fsys
	}
}

// WithAssetResolver sets how bundled media names become URIs.
// Takes precedence over WithAssetPrefix and WithAssetPath.
func WithAssetResolver(res AssetResolver) Option {
	return func(r *Renderer) {
		r.assets = res
	}
}

// WithAssetPrefix serves bundled media from URLs under prefix
// (e.g. "/media/") instead of inlining it.
func WithAssetPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.cfg.assetPrefix = prefix
		r.cfg.usePrefix = true
	}
}

// WithAssetPath overrides bundled media with files from dir.
// Missing files fall back to the embedded copies.
func WithAssetPath(dir string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = dir
	}
}

// WithLiveReload makes rendered pages open a websocket to url and reload
// when their document changes.
func WithLiveReload(url string) Option {
	return func(r *Renderer) {
		r.cfg.liveURL = url
	}
}

// rendererConfig holds option values resolved by NewRenderer.
type rendererConfig struct {
	assetPath   string
	assetPrefix string
	usePrefix   bool
	liveURL     string
}
