package main

import (
	"errors"
	"fmt"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
	"github.com/alnah/go-svgpreview/internal/fileutil"
	"github.com/alnah/go-svgpreview/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrFlagConflict       = errors.New("conflicting flags")
	ErrNoInput            = errors.New("no input specified")
	ErrWriteOutput        = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .svg extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrRenderFailed       = errors.New("some files failed to render")
)

// hintError appends an actionable hint to an error message while keeping
// the original error in the chain.
type hintError struct {
	err  error
	hint string
}

func (e *hintError) Error() string { return e.err.Error() + e.hint }

func (e *hintError) Unwrap() error { return e.err }

// withHint attaches hint to err. Empty hints leave err unchanged.
func withHint(err error, hint string) error {
	if err == nil || hint == "" {
		return err
	}
	return &hintError{err: err, hint: hint}
}

// withRenderHint attaches the hint matching a render error, if any.
func withRenderHint(err error) error {
	switch {
	case errors.Is(err, svgpreview.ErrStylesheetRead):
		return withHint(err, hints.ForStylesheetRead())
	case errors.Is(err, svgpreview.ErrNotSVG):
		return withHint(err, hints.ForNotSVG())
	case errors.Is(err, svgpreview.ErrMissingSVGClose):
		return withHint(err, hints.ForMissingSVGClose())
	case errors.Is(err, svgpreview.ErrInvalidAssetPath):
		return withHint(err, hints.ForAssetPath(svgpreview.MediaNames()))
	case errors.Is(err, ErrWriteOutput):
		return withHint(err, hints.ForOutputDirectory())
	default:
		return err
	}
}

// loadConfig loads the config named by the flag, or by SVGPREVIEW_CONFIG
// when the flag is empty, then applies environment overrides.
// Without either, defaults are used.
func loadConfig(flagName string, env *envConfig) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, configError(name, err)
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// configError wraps a config load error with a search-path hint.
func configError(name string, err error) error {
	err = fmt.Errorf("loading config: %w", err)
	if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
		return withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return err
}

// configName returns the config name in effect, flag first.
func configName(flagName string, env *envConfig) string {
	if flagName != "" {
		return flagName
	}
	return env.ConfigPath
}
