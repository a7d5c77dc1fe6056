package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// previewFlags holds flags that override render settings.
type previewFlags struct {
	grid        bool
	noGrid      bool
	gridColor   string
	zoom        bool
	noZoom      bool
	noNamespace bool
	source      bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	preview   previewFlags
	output    string
	state     string
	assetPath string
	assetURL  string
	workers   int
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	quiet bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common    commonFlags
	preview   previewFlags
	addr      string
	assetPath string
	origins   []string
	noLive    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPreviewFlags adds render setting flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.grid, "grid", false, "show the transparency grid")
	fs.BoolVar(&f.noGrid, "no-grid", false, "hide the transparency grid")
	fs.StringVar(&f.gridColor, "grid-color", "", "solid background color instead of the checkerboard")
	fs.BoolVar(&f.zoom, "zoom", false, "show zoom controls")
	fs.BoolVar(&f.noZoom, "no-zoom", false, "hide zoom controls")
	fs.BoolVar(&f.noNamespace, "no-namespace", false, "do not insert the SVG namespace")
	fs.BoolVar(&f.source, "source", false, "show highlighted SVG source below the image")
}

// validate rejects contradictory or unsafe preview flags.
func (f *previewFlags) validate() error {
	if f.grid && f.noGrid {
		return fmt.Errorf("%w: --grid and --no-grid", ErrFlagConflict)
	}
	if f.zoom && f.noZoom {
		return fmt.Errorf("%w: --zoom and --no-zoom", ErrFlagConflict)
	}
	if f.gridColor != "" && f.noGrid {
		return fmt.Errorf("%w: --grid-color and --no-grid", ErrFlagConflict)
	}
	check := config.Config{Preview: config.PreviewConfig{TransparencyColor: f.gridColor}}
	if err := check.Validate(); err != nil {
		return fmt.Errorf("--grid-color: %w", err)
	}
	return nil
}

// apply overrides settings with the flags that were set.
func (f *previewFlags) apply(s *svgpreview.Settings) {
	if f.grid {
		s.ShowTransparencyGrid = true
	}
	if f.noGrid {
		s.ShowTransparencyGrid = false
	}
	if f.gridColor != "" {
		s.ShowTransparencyGrid = true
		s.TransparencyColor = f.gridColor
	}
	if f.zoom {
		s.ShowZoomControls = true
	}
	if f.noZoom {
		s.ShowZoomControls = false
	}
	if f.noNamespace {
		s.AutoInsertNamespace = false
	}
	if f.source {
		s.ShowSource = true
	}
}

// newFlagSet creates a FlagSet that reports parse errors to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseError wraps flag parse errors as usage errors, except for help.
func parseError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// buildRenderFlagSet registers the render flags into f.
func buildRenderFlagSet(w io.Writer, f *renderFlags) *flag.FlagSet {
	fs := newFlagSet("render", w, printRenderUsage)

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (default: stdout for one file)")
	fs.StringVar(&f.state, "state", "", "view state JSON restored by the page, e.g. '{\"scale\":2}'")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom media directory")
	fs.StringVar(&f.assetURL, "asset-url", "", "reference media under this URL instead of inlining it")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addPreviewFlags(fs, &f.preview)
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := buildRenderFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if err := f.preview.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// buildCheckFlagSet registers the check flags into f.
func buildCheckFlagSet(w io.Writer, f *checkFlags) *flag.FlagSet {
	fs := newFlagSet("check", w, printCheckUsage)
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only report files that are not SVG")
	return fs
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, w io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := buildCheckFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// buildServeFlagSet registers the serve flags into f.
func buildServeFlagSet(w io.Writer, f *serveFlags) *flag.FlagSet {
	fs := newFlagSet("serve", w, printServeUsage)

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default "+config.DefaultAddr+")")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom media directory")
	fs.StringSliceVar(&f.origins, "allow-origin", nil, "extra CORS origin (repeatable, \"*\" for any)")
	fs.BoolVar(&f.noLive, "no-live", false, "disable live reload")

	addCommonFlags(fs, &f.common)
	addPreviewFlags(fs, &f.preview)
	return fs
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := buildServeFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	if err := f.preview.validate(); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
