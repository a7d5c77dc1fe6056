package server

import (
	"errors"
	"html"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	svgpreview "github.com/alnah/go-svgpreview"
)

// maxIndexEntries bounds the index page for very large trees.
const maxIndexEntries = 1000

// handlePreview renders the SVG at the wildcard path under the root.
// 404 when missing, 422 when not SVG-like, 400 on malformed state.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")

	state, err := svgpreview.ParseViewState(r.URL.Query().Get("state"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := s.source.Open(r.Context(), id)
	if err != nil {
		s.writeRenderError(w, id, err)
		return
	}

	if !svgpreview.CheckSVG(doc, true, s.hub) {
		http.Error(w, svgpreview.NotSVGMessage, http.StatusUnprocessableEntity)
		return
	}

	page, err := s.renderer.RenderDocument(r.Context(), id, doc, state)
	if err != nil {
		s.writeRenderError(w, id, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(page))
}

// writeRenderError maps render errors to status codes.
func (s *Server) writeRenderError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, svgpreview.ErrNoDocument), errors.Is(err, svgpreview.ErrOutsideRoot):
		http.Error(w, "not found: "+id, http.StatusNotFound)
	case errors.Is(err, svgpreview.ErrInvalidViewState):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Printf("render %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleMedia serves a bundled media file.
func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	content, err := s.media.Load(name)
	if err != nil {
		switch {
		case errors.Is(err, svgpreview.ErrAssetNotFound):
			http.NotFound(w, r)
		case errors.Is(err, svgpreview.ErrInvalidAssetPath):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			s.logger.Printf("media %s: %v", name, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", svgpreview.MediaContentType(name))
	_, _ = w.Write([]byte(content))
}

// handleIndex lists the SVG files under the root.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	files, err := s.listSVG()
	if err != nil {
		s.logger.Printf("index: %v", err)
		http.Error(w, "cannot list files", http.StatusInternalServerError)
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>SVG Preview</title></head><body>\n<ul>\n")
	for _, rel := range files {
		u := url.URL{Path: "/preview/" + rel}
		b.WriteString(`<li><a href="`)
		b.WriteString(html.EscapeString(u.String()))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(rel))
		b.WriteString("</a></li>\n")
	}
	b.WriteString("</ul>\n</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// listSVG returns slash-separated paths of .svg files under the root,
// skipping hidden directories.
func (s *Server) listSVG() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		if len(files) >= maxIndexEntries {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
