package main

// Notes:
// - exitCodeFor: we test each sentinel family, wrapping, and hint/silent
//   wrappers which must not hide the underlying error.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
	"github.com/alnah/go-svgpreview/internal/server"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown", errors.New("boom"), ExitGeneral},
		{"not exist", fmt.Errorf("stat: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"no document", svgpreview.ErrNoDocument, ExitIO},
		{"document read", svgpreview.ErrDocumentRead, ExitIO},
		{"outside root", svgpreview.ErrOutsideRoot, ExitIO},
		{"stylesheet read", svgpreview.ErrStylesheetRead, ExitIO},
		{"listen", server.ErrListen, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"flag conflict", ErrFlagConflict, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config field", config.ErrInvalidField, ExitUsage},
		{"not svg", svgpreview.ErrNotSVG, ExitUsage},
		{"missing close", svgpreview.ErrMissingSVGClose, ExitUsage},
		{"view state", svgpreview.ErrInvalidViewState, ExitUsage},
		{"asset path", svgpreview.ErrInvalidAssetPath, ExitUsage},
		{"render failed", ErrRenderFailed, ExitGeneral},
		{"hinted", withHint(svgpreview.ErrStylesheetRead, "\n  hint: x"), ExitIO},
		{"silent", silentError{svgpreview.ErrNotSVG}, ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
