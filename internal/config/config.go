// Package config loads the tempo configuration file. Configuration is a
// small YAML file; missing file means defaults. There are no environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration.
type Config struct {
	// DatabasePath is where the SQLite file lives.
	DatabasePath string `yaml:"database_path"`

	// ExportPath is the default destination for CSV exports when the user
	// does not name one.
	ExportPath string `yaml:"export_path"`

	// LogPath enables structured service logging when non-empty.
	LogPath string `yaml:"log_path"`
}

// ErrNoDatabasePath is returned when the configuration resolves to an empty
// database path.
var ErrNoDatabasePath = errors.New("no database path configured")

// Default returns the built-in configuration: everything under ~/.tempo.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DatabasePath: filepath.Join(home, ".tempo", "tempo.db"),
		ExportPath:   filepath.Join(home, ".tempo", "export.csv"),
	}
}

// DefaultPath returns the standard config file location, ~/.tempo/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tempo", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks invariants on a loaded configuration.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return ErrNoDatabasePath
	}
	return nil
}
