// Package config loads and validates the planner's configuration. Values
// come from an optional YAML file with environment-variable overrides on
// top, so a device profile can live on disk while CI and one-off runs tweak
// individual settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the planner client.
type Config struct {
	// APIBaseURL is the root of the remote planner API. Required.
	APIBaseURL string `yaml:"api_base_url" env:"PLANNER_API_URL"`

	// AuthToken is the auth provider's cached access token, sent as a
	// bearer header and mined for the owner's identity claims.
	AuthToken string `yaml:"auth_token" env:"PLANNER_AUTH_TOKEN"`

	// OwnerName and OwnerEmail override the token claims when set.
	OwnerName  string `yaml:"owner_name" env:"PLANNER_OWNER_NAME"`
	OwnerEmail string `yaml:"owner_email" env:"PLANNER_OWNER_EMAIL"`

	// StorePath is the SQLite file holding the active-trip pointer.
	// Defaults to planner.db under the user config directory.
	StorePath string `yaml:"store_path" env:"PLANNER_STORE_PATH"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"PLANNER_LOG_LEVEL"`
}

// DefaultPath returns the conventional config file location
// (<user config dir>/planner/config.yaml).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "planner", "config.yaml")
}

// Load reads the YAML file at path (a missing file is fine; defaults and
// environment still apply), layers environment overrides on top, fills
// remaining defaults, and validates. Returns an error naming any required
// setting that is still unset.
func Load(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file; env and defaults take over.
	case err != nil:
		return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: environment: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath()
	}

	var missing []string
	if cfg.APIBaseURL == "" {
		missing = append(missing, "api_base_url (PLANNER_API_URL)")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("config.Load: required settings not set: %s", strings.Join(missing, ", "))
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}

// defaultStorePath places the session database next to the config file.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "planner.db"
	}
	return filepath.Join(dir, "planner", "planner.db")
}
