// Package config loads jpfont settings from defaults, an optional YAML file
// and environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/kenjimiwa/jpfont/pkg/jpfont"
)

// Config controls how plotting fonts are resolved and applied.
type Config struct {
	// RCPath overrides the matplotlibrc location. Empty means auto-discover.
	RCPath string `env:"JPFONT_RC" yaml:"rc_path"`

	// FontSize is the point size applied alongside the resolved family.
	FontSize float64 `env:"JPFONT_SIZE" yaml:"font_size"`

	// Candidates replaces the built-in candidate list for the listed OS
	// identifiers (windows, macos, linux).
	Candidates map[string][]string `yaml:"candidates"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{FontSize: jpfont.DefaultFontSize}
}

// DefaultPath returns the user-level config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(dir, "jpfont", "config.yaml"), nil
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. A missing file is treated as "nothing configured".
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
