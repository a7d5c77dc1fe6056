package main

import (
	"errors"
	"os"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
	"github.com/alnah/go-svgpreview/internal/server"
)

// Exit codes for the svgpreview CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input that is not SVG
	ExitIO      = 3 // File not found, permission denied, cannot bind
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, svgpreview.ErrNoDocument) ||
		errors.Is(err, svgpreview.ErrDocumentRead) ||
		errors.Is(err, svgpreview.ErrOutsideRoot) ||
		errors.Is(err, svgpreview.ErrStylesheetRead) ||
		errors.Is(err, server.ErrListen) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrFlagConflict) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, svgpreview.ErrNotSVG) ||
		errors.Is(err, svgpreview.ErrMissingSVGClose) ||
		errors.Is(err, svgpreview.ErrInvalidViewState) ||
		errors.Is(err, svgpreview.ErrInvalidAssetPath) ||
		errors.Is(err, svgpreview.ErrAssetNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
