package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-svgpreview/internal/fileutil"
	"github.com/alnah/go-svgpreview/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxColorLength  = 100  // "rgba(255, 255, 255, 0.5)" or a color name
	MaxAddrLength   = 255  // host:port
	MaxURLLength    = 2048 // Browser limit
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxOriginsCount = 32
)

// DefaultAddr is the preview server listen address.
const DefaultAddr = "127.0.0.1:8080"

// configDirName is the directory under the user config dir searched by name.
const configDirName = "go-svgpreview"

// Config holds all configuration for rendering and serving previews.
type Config struct {
	Preview PreviewConfig `yaml:"preview"`
	Server  ServerConfig  `yaml:"server"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// PreviewConfig defines what a rendered page contains.
// Unset booleans take the defaults from DefaultConfig.
type PreviewConfig struct {
	ShowTransGrid             *bool  `yaml:"showTransGrid"`
	TransparencyColor         string `yaml:"transparencyColor"` // Empty = checkerboard
	EnableAutoInsertNamespace *bool  `yaml:"enableAutoInsertNamespace"`
	ShowZoomInOut             *bool  `yaml:"showZoomInOut"`
	ShowSource                bool   `yaml:"showSource"`
}

// ServerConfig defines preview server options.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`           // Empty = DefaultAddr
	Root           string   `yaml:"root"`           // Empty = current directory
	AllowedOrigins []string `yaml:"allowedOrigins"` // Empty = localhost only
	Live           *bool    `yaml:"live"`           // Live reload, default on
}

// AssetsConfig defines media loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded media
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("preview.transparencyColor", c.Preview.TransparencyColor, MaxColorLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Preview.TransparencyColor, "<>{};") {
		return fmt.Errorf("%w: preview.transparencyColor: %q is not a CSS color", ErrInvalidField, c.Preview.TransparencyColor)
	}

	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if err := validateFieldLength("server.root", c.Server.Root, MaxPathLength); err != nil {
		return err
	}
	if len(c.Server.AllowedOrigins) > MaxOriginsCount {
		return fmt.Errorf("%w: server.allowedOrigins: %d entries (max %d)", ErrInvalidField, len(c.Server.AllowedOrigins), MaxOriginsCount)
	}
	for i, origin := range c.Server.AllowedOrigins {
		field := fmt.Sprintf("server.allowedOrigins[%d]", i)
		if err := validateFieldLength(field, origin, MaxURLLength); err != nil {
			return err
		}
		if origin != "*" && !fileutil.IsURL(origin) {
			return fmt.Errorf("%w: %s: %q must be \"*\" or start with http:// or https://", ErrInvalidField, field, origin)
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// checkerboard grid, namespace insertion, zoom controls and live reload on.
func DefaultConfig() *Config {
	return &Config{
		Preview: PreviewConfig{
			ShowTransGrid:             boolPtr(true),
			EnableAutoInsertNamespace: boolPtr(true),
			ShowZoomInOut:             boolPtr(true),
		},
		Server: ServerConfig{
			Addr: DefaultAddr,
			Live: boolPtr(true),
		},
	}
}

// LiveEnabled reports whether live reload is on (default true).
func (s ServerConfig) LiveEnabled() bool {
	return s.Live == nil || *s.Live
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	configPath, err := ResolvePath(nameOrPath)
	if err != nil {
		return nil, err
	}
	return loadFile(configPath)
}

// ResolvePath returns the file LoadConfig would read for nameOrPath.
func ResolvePath(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", ErrEmptyConfigName
	}
	if fileutil.IsFilePath(nameOrPath) {
		return nameOrPath, nil
	}
	return resolveConfigPath(nameOrPath)
}

// loadFile reads, merges over defaults and validates one config file.
func loadFile(configPath string) (*Config, error) {
	var cfg Config
	if err := yamlutil.ReadStrict(configPath, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return withDefaults(&cfg), nil
}

// withDefaults fills unset fields from DefaultConfig.
func withDefaults(cfg *Config) *Config {
	def := DefaultConfig()
	if cfg.Preview.ShowTransGrid == nil {
		cfg.Preview.ShowTransGrid = def.Preview.ShowTransGrid
	}
	if cfg.Preview.EnableAutoInsertNamespace == nil {
		cfg.Preview.EnableAutoInsertNamespace = def.Preview.EnableAutoInsertNamespace
	}
	if cfg.Preview.ShowZoomInOut == nil {
		cfg.Preview.ShowZoomInOut = def.Preview.ShowZoomInOut
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.Live == nil {
		cfg.Server.Live = def.Server.Live
	}
	return cfg
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	candidates := SearchPaths(name)
	for _, path := range candidates {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}

// SearchPaths lists the files tried for a config name, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-svgpreview/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}

	return paths
}

func boolPtr(b bool) *bool {
	return &b
}
