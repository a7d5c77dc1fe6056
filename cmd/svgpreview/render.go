package main

import (
	"context"
	"errors"
	"fmt"

	svgpreview "github.com/alnah/go-svgpreview"
)

// renderParams groups values shared by every file of a render run.
type renderParams struct {
	renderer *svgpreview.Renderer
	source   svgpreview.DocumentSource
	state    svgpreview.ViewState
	notifier svgpreview.Notifier
}

// runRender renders SVG files to HTML pages.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	if len(positional) == 0 {
		return fmt.Errorf("%w: render needs an SVG file or directory", ErrNoInput)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: render takes one input, got %d", ErrUsage, len(positional))
	}
	inputPath := positional[0]

	state, err := svgpreview.ParseViewState(flags.state)
	if err != nil {
		return fmt.Errorf("--state: %w", err)
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	settings := cfg.Preview.Settings()
	flags.preview.apply(&settings)

	assetPath := flags.assetPath
	if assetPath == "" {
		assetPath = cfg.Assets.BasePath
	}

	opts := []svgpreview.Option{
		svgpreview.WithSettings(svgpreview.StaticSettings(settings)),
		svgpreview.WithAssetPath(assetPath),
	}
	if flags.assetURL != "" {
		opts = append(opts, svgpreview.WithAssetPrefix(flags.assetURL))
	}
	renderer, err := svgpreview.NewRenderer(opts...)
	if err != nil {
		return withRenderHint(err)
	}

	files, err := discoverFiles(inputPath, flags.output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .svg files found in %s", ErrNoInput, inputPath)
	}

	params := &renderParams{
		renderer: renderer,
		source:   svgpreview.FileSource{},
		state:    state,
		notifier: &svgpreview.WriterNotifier{W: env.Stderr},
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d file(s) with %d worker(s)\n", len(files), resolveWorkers(workers, len(files)))
	}

	// One file without an output path goes to stdout.
	if len(files) == 1 && files[0].OutputPath == "" {
		page, err := renderPage(ctx, params, files[0].InputPath)
		if err != nil {
			return withRenderHint(err)
		}
		if _, err := fmt.Fprint(env.Stdout, page); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	results := renderBatch(ctx, params, files, workers)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)

	if len(results) == 1 && results[0].Err != nil {
		// Already printed; keep the specific error for the exit code.
		return silentError{withRenderHint(results[0].Err)}
	}
	if failed > 0 {
		return silentError{fmt.Errorf("%w: %d of %d", ErrRenderFailed, failed, len(results))}
	}
	return nil
}

// renderPage opens, validates and renders one document.
func renderPage(ctx context.Context, p *renderParams, path string) (string, error) {
	doc, err := p.source.Open(ctx, path)
	if err != nil {
		return "", err
	}
	if !svgpreview.CheckSVG(doc, true, p.notifier) {
		return "", fmt.Errorf("%w: %s", svgpreview.ErrNotSVG, path)
	}
	return p.renderer.RenderDocument(ctx, path, doc, p.state)
}

// silentError marks an error whose details were already printed.
// runMain still uses it for the exit code.
type silentError struct {
	err error
}

func (e silentError) Error() string { return e.err.Error() }

func (e silentError) Unwrap() error { return e.err }

// isSilent reports whether err was already reported to the user.
func isSilent(err error) bool {
	var s silentError
	return errors.As(err, &s)
}
