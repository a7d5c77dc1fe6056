package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-svgpreview/internal/config"
)

// envPrefix marks the environment variables read by svgpreview.
const envPrefix = "SVGPREVIEW_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SVGPREVIEW_CONFIG: config file name or path
	AssetPath  string // SVGPREVIEW_ASSET_PATH: media override directory
	Addr       string // SVGPREVIEW_ADDR: preview server address
	Workers    int    // SVGPREVIEW_WORKERS: parallel render workers
}

// knownEnvVars lists valid SVGPREVIEW_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVGPREVIEW_CONFIG":     true,
	"SVGPREVIEW_ASSET_PATH": true,
	"SVGPREVIEW_ADDR":       true,
	"SVGPREVIEW_WORKERS":    true,
	"SVGPREVIEW_CONTAINER":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("SVGPREVIEW_CONFIG"),
		AssetPath:  getenv("SVGPREVIEW_ASSET_PATH"),
		Addr:       getenv("SVGPREVIEW_ADDR"),
	}

	if workers := getenv("SVGPREVIEW_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SVGPREVIEW_* variables.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment values the config file left unset.
// Precedence: CLI flags > env vars > config file > defaults.
// The default address counts as unset.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Addr != "" && (cfg.Server.Addr == "" || cfg.Server.Addr == config.DefaultAddr) {
		cfg.Server.Addr = env.Addr
	}
}
