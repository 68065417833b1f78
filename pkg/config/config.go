// Package config loads run configuration from an optional YAML file with
// environment variable overrides. Paths are plain configuration passed down
// to the emitters; nothing here holds state.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the directories and policy knobs for one run.
type Config struct {
	// DataDir holds the seven snapshot CSV files.
	DataDir string `yaml:"data_dir" env:"REFCHECK_DATA_DIR"`

	// OutputDir receives the report, profiling, and dictionary files.
	OutputDir string `yaml:"output_dir" env:"REFCHECK_OUTPUT_DIR"`

	// DefaultTimezone is used when a row carries no zone name.
	DefaultTimezone string `yaml:"default_timezone" env:"REFCHECK_DEFAULT_TZ"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:         "data",
		OutputDir:       "output",
		DefaultTimezone: "UTC",
	}
}

// Load builds a Config from defaults, then the YAML file at path (if path is
// non-empty), then environment overrides. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment overrides: %w", err)
	}
	return cfg, nil
}
