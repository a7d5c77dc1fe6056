package main

// Notes:
// - loadEnvConfig: we test every variable and that bad worker counts are
//   ignored rather than reported.
// - warnUnknownEnvVars: we test typo detection and silence for known names.
// - applyEnvConfig: we test that env only fills what the config left unset.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-svgpreview/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"SVGPREVIEW_CONFIG":     "work",
		"SVGPREVIEW_ASSET_PATH": "/media",
		"SVGPREVIEW_ADDR":       ":9000",
		"SVGPREVIEW_WORKERS":    "3",
	}
	cfg := loadEnvConfig(func(k string) string { return vars[k] })

	if cfg.ConfigPath != "work" {
		t.Errorf("ConfigPath = %q, want work", cfg.ConfigPath)
	}
	if cfg.AssetPath != "/media" {
		t.Errorf("AssetPath = %q, want /media", cfg.AssetPath)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
}

func TestLoadEnvConfig_InvalidWorkers(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"abc", "-2", "0", "1.5"} {
		cfg := loadEnvConfig(func(k string) string {
			if k == "SVGPREVIEW_WORKERS" {
				return v
			}
			return ""
		})
		if cfg.Workers != 0 {
			t.Errorf("SVGPREVIEW_WORKERS=%q: Workers = %d, want 0", v, cfg.Workers)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		environ  []string
		wantWarn []string
	}{
		{
			name:    "known only",
			environ: []string{"SVGPREVIEW_CONFIG=x", "SVGPREVIEW_ADDR=:1", "HOME=/root"},
		},
		{
			name:     "typo",
			environ:  []string{"SVGPREVIEW_CONFG=x"},
			wantWarn: []string{"SVGPREVIEW_CONFG"},
		},
		{
			name:     "several",
			environ:  []string{"SVGPREVIEW_A=1", "SVGPREVIEW_WORKERS=2", "SVGPREVIEW_B="},
			wantWarn: []string{"SVGPREVIEW_A", "SVGPREVIEW_B"},
		},
		{
			name:    "other prefixes ignored",
			environ: []string{"SVGPREVIEWX=1", "MD_CONFIG=y"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			warnUnknownEnvVars(&buf, tt.environ)
			out := buf.String()

			if len(tt.wantWarn) == 0 && out != "" {
				t.Errorf("unexpected warnings: %q", out)
			}
			for _, name := range tt.wantWarn {
				if !strings.Contains(out, "unknown environment variable "+name+" ") {
					t.Errorf("output %q should warn about %s", out, name)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env fills unset config values
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{AssetPath: "/media", Addr: ":9000"}, cfg)

		if cfg.Assets.BasePath != "/media" {
			t.Errorf("BasePath = %q, want /media", cfg.Assets.BasePath)
		}
		if cfg.Server.Addr != ":9000" {
			t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
		}
	})

	t.Run("config wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.BasePath = "/from-config"
		cfg.Server.Addr = "0.0.0.0:7000"
		applyEnvConfig(&envConfig{AssetPath: "/media", Addr: ":9000"}, cfg)

		if cfg.Assets.BasePath != "/from-config" {
			t.Errorf("BasePath = %q, want /from-config", cfg.Assets.BasePath)
		}
		if cfg.Server.Addr != "0.0.0.0:7000" {
			t.Errorf("Addr = %q, want 0.0.0.0:7000", cfg.Server.Addr)
		}
	})

	t.Run("empty env leaves config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Server.Addr != config.DefaultAddr {
			t.Errorf("Addr = %q, want %q", cfg.Server.Addr, config.DefaultAddr)
		}
	})
}
