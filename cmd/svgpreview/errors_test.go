package main

// Notes:
// - withHint/withRenderHint: we test message suffixes and that errors.Is
//   still sees the wrapped sentinel.
// - loadConfig: we test name precedence (flag over env) and not-found hints.

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	svgpreview "github.com/alnah/go-svgpreview"
	"github.com/alnah/go-svgpreview/internal/config"
)

// ---------------------------------------------------------------------------
// TestWithHint - Hint wrapping
// ---------------------------------------------------------------------------

func TestWithHint(t *testing.T) {
	t.Parallel()

	base := fmt.Errorf("render: %w", svgpreview.ErrNotSVG)

	if got := withHint(nil, "\n  hint: x"); got != nil {
		t.Errorf("withHint(nil) = %v, want nil", got)
	}
	if got := withHint(base, ""); got != base {
		t.Errorf("withHint(err, \"\") should return err unchanged")
	}

	hinted := withHint(base, "\n  hint: fix it")
	if !errors.Is(hinted, svgpreview.ErrNotSVG) {
		t.Error("hinted error should still match ErrNotSVG")
	}
	if !strings.HasSuffix(hinted.Error(), "\n  hint: fix it") {
		t.Errorf("Error() = %q, want hint suffix", hinted.Error())
	}
}

// ---------------------------------------------------------------------------
// TestWithRenderHint - Hint selection per error
// ---------------------------------------------------------------------------

func TestWithRenderHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"stylesheet", svgpreview.ErrStylesheetRead, true},
		{"not svg", svgpreview.ErrNotSVG, true},
		{"missing close", svgpreview.ErrMissingSVGClose, true},
		{"asset path", svgpreview.ErrInvalidAssetPath, true},
		{"write output", ErrWriteOutput, true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withRenderHint(tt.err)
			if has := strings.Contains(got.Error(), "hint:"); has != tt.wantHint {
				t.Errorf("withRenderHint(%v) = %q, hint present = %v, want %v", tt.err, got.Error(), has, tt.wantHint)
			}
			if !errors.Is(got, tt.err) {
				t.Error("hinted error should wrap the original")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Config name precedence
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := setupTestDir(t, map[string]string{
		"flag.yaml": "preview:\n  transparencyColor: red\n",
		"env.yaml":  "preview:\n  transparencyColor: blue\n",
	})

	t.Run("defaults without a name", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Server.Addr != config.DefaultAddr {
			t.Errorf("Addr = %q, want default", cfg.Server.Addr)
		}
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig(filepath.Join(dir, "flag.yaml"), &envConfig{ConfigPath: filepath.Join(dir, "env.yaml")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Preview.TransparencyColor != "red" {
			t.Errorf("TransparencyColor = %q, want red", cfg.Preview.TransparencyColor)
		}
	})

	t.Run("env used when flag empty", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{ConfigPath: filepath.Join(dir, "env.yaml")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Preview.TransparencyColor != "blue" {
			t.Errorf("TransparencyColor = %q, want blue", cfg.Preview.TransparencyColor)
		}
		if configName("", &envConfig{ConfigPath: "x"}) != "x" {
			t.Error("configName should fall back to env")
		}
	})

	t.Run("missing path has no search hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(dir, "missing.yaml"), &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if strings.Contains(err.Error(), "hint:") {
			t.Errorf("explicit path should not get a search hint: %q", err.Error())
		}
	})

	t.Run("missing name has hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig("no-such-config-name", &envConfig{})
		if !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error = %q, want --config hint", err.Error())
		}
	})
}
