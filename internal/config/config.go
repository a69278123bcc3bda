// Package config resolves runtime settings from defaults, an optional YAML
// file and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration for atlas.
type Settings struct {
	APIBaseURL string `yaml:"api_base_url" env:"ATLAS_API_BASE_URL" validate:"required,url"`
	MapZoom    int    `yaml:"map_zoom" env:"ATLAS_MAP_ZOOM" validate:"min=1,max=21"`
	LogLevel   string `yaml:"log_level" env:"ATLAS_LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		APIBaseURL: "https://restcountries.com/v3.1",
		MapZoom:    5,
		LogLevel:   "info",
	}
}

// Load resolves settings from defaults, then the YAML file at path when it
// exists, then environment variables, and validates the result. A missing
// file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &s); err != nil {
				return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to read environment overrides: %w", err)
	}

	if err := validator.New().Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "atlas", "config.yaml"), nil
}
