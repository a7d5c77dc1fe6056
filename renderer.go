package svgpreview

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-svgpreview/internal/assets"
	"github.com/alnah/go-svgpreview/internal/pipeline"
)

// Renderer turns SVG documents into preview HTML pages.
// It holds only immutable collaborators, so concurrent renders are safe.
// Create with NewRenderer.
type Renderer struct {
	cfg      rendererConfig
	source   DocumentSource
	settings SettingsStore
	fs       Filesystem
	assets   AssetResolver
	roots    []string
}

// NewRenderer creates a Renderer. Without options it reads files from disk,
// uses DefaultSettings and inlines bundled media as data URIs.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		source:   FileSource{},
		settings: StaticSettings(DefaultSettings()),
		fs:       OSFilesystem{},
	}

	for _, opt := range opts {
		opt(r)
	}

	resolver, err := assets.NewResolver(r.cfg.assetPath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	r.roots = resolver.Roots()

	if r.assets == nil {
		if r.cfg.usePrefix {
			r.assets = adaptedResolver{inner: assets.PrefixResolver{Prefix: r.cfg.assetPrefix}}
		} else {
			r.assets = adaptedResolver{inner: assets.InlineResolver{Loader: resolver}}
		}
	}

	return r, nil
}

// Render loads the document named id and renders it with state.
// Stylesheet references resolve against the directory of the document path.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, id string, state ViewState) (page string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	doc, err := r.source.Open(ctx, id)
	if err != nil {
		return "", err
	}
	return r.RenderDocument(ctx, id, doc, state)
}

// RenderDocument renders a document already opened by the caller, for
// callers that gate on CheckSVG first. id is the name live-reload
// messages refer to.
func (r *Renderer) RenderDocument(ctx context.Context, id string, doc *Document, state ViewState) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: %s", ErrNoDocument, id)
	}
	return r.render(ctx, doc.Text, filepath.Dir(doc.Path), id, state)
}

// RenderSVG renders svg text already in hand. baseDir anchors relative
// stylesheet references.
func (r *Renderer) RenderSVG(ctx context.Context, svg, baseDir string, state ViewState) (string, error) {
	return r.render(ctx, svg, baseDir, "", state)
}

// ResourceRoots returns the local directories a rendered page may load
// media from. Empty when only embedded media is used.
func (r *Renderer) ResourceRoots() []string {
	if len(r.roots) == 0 {
		return nil
	}
	out := make([]string, len(r.roots))
	copy(out, r.roots)
	return out
}

// render runs the transformation. baseDir is call-local and never stored.
func (r *Renderer) render(ctx context.Context, svg, baseDir, id string, state ViewState) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	settings := r.settings.Settings()
	original := svg

	hrefs := pipeline.ExtractStylesheets(svg)

	if settings.AutoInsertNamespace {
		svg = pipeline.AddNamespace(svg)
	}

	svg, err := pipeline.InlineStylesheets(ctx, svg, hrefs, func(href string) (string, error) {
		path := pipeline.ResolveHref(baseDir, href)
		data, err := r.fs.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrStylesheetRead, href, err)
		}
		return string(data), nil
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrMissingSVGClose) {
			return "", fmt.Errorf("%w: %v", ErrMissingSVGClose, err)
		}
		return "", err
	}

	stateAttr, err := pipeline.SerializeState(state)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidViewState, err)
	}

	data := &pipeline.PageData{
		StateAttr:    stateAttr,
		ZoomControls: settings.ShowZoomControls,
		SVG:          svg,
	}

	if settings.ShowTransparencyGrid {
		if settings.TransparencyColor != "" {
			data.GridColor = settings.TransparencyColor
		} else if data.GridStyleURI, err = r.assets.URI(assets.BackgroundName); err != nil {
			return "", fmt.Errorf("resolving %s: %w", assets.BackgroundName, err)
		}
	}

	if data.ScriptURI, err = r.assets.URI(assets.ScriptName); err != nil {
		return "", fmt.Errorf("resolving %s: %w", assets.ScriptName, err)
	}
	if data.StyleURI, err = r.assets.URI(assets.StyleName); err != nil {
		return "", fmt.Errorf("resolving %s: %w", assets.StyleName, err)
	}

	if r.cfg.liveURL != "" {
		data.LiveURL = r.cfg.liveURL
		data.Path = id
	}

	if settings.ShowSource {
		if data.SourceHTML, data.SourceCSS, err = pipeline.HighlightSource(original); err != nil {
			return "", err
		}
	}

	return pipeline.BuildPage(data), nil
}
