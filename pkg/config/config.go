// Package config loads and validates videogrid configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conclave-media/videogrid/pkg/errors"
)

// Default configuration values exported for documentation and validation
const (
	DefaultMaxRows     = 4
	DefaultMaxCols     = 2
	DefaultPlaceholder = "--"
	DefaultLogDir      = "logs"
	DefaultLogLevel    = "info"
	DefaultMetricsBind = "127.0.0.1:9815"
	DefaultFrameWidth  = 32
	DefaultFrameHeight = 18
)

// Config represents the complete videogrid configuration
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Demo    DemoConfig    `yaml:"demo"`
}

// GridConfig declares the grid capacity. The bounds are fixed for the
// lifetime of a grid; exceeding them at runtime is a fatal caller error.
type GridConfig struct {
	MaxRows     int    `yaml:"max_rows"`
	MaxCols     int    `yaml:"max_cols"`
	Placeholder string `yaml:"placeholder"`
}

// LoggingConfig controls the structured event log.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bind    string `yaml:"bind"`
}

// DemoConfig controls the synthetic participant feed in cmd/videogrid.
type DemoConfig struct {
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
}

// Default returns a config populated with default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			MaxRows:     DefaultMaxRows,
			MaxCols:     DefaultMaxCols,
			Placeholder: DefaultPlaceholder,
		},
		Logging: LoggingConfig{
			Dir:   DefaultLogDir,
			Level: DefaultLogLevel,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Bind:    DefaultMetricsBind,
		},
		Demo: DemoConfig{
			FrameWidth:  DefaultFrameWidth,
			FrameHeight: DefaultFrameHeight,
		},
	}
}

// Load reads a YAML config file, applying defaults for absent fields.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "reading config file").
			WithContext("path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigParse, "parsing config file").
			WithContext("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency. Validation always
// runs; there is no debug-only mode for capacity checks.
func (c *Config) Validate() error {
	if c.Grid.MaxRows < 1 || c.Grid.MaxCols < 1 {
		return errors.New(errors.ErrCodeConfigInvalid, "grid bounds must allow at least one tile").
			WithContext("max_rows", c.Grid.MaxRows).
			WithContext("max_cols", c.Grid.MaxCols)
	}
	if c.Grid.Placeholder == "" {
		c.Grid.Placeholder = DefaultPlaceholder
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown log level %q", c.Logging.Level))
	}

	if c.Metrics.Enabled && c.Metrics.Bind == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "metrics enabled without a bind address")
	}

	if c.Demo.FrameWidth < 1 {
		c.Demo.FrameWidth = DefaultFrameWidth
	}
	if c.Demo.FrameHeight < 1 {
		c.Demo.FrameHeight = DefaultFrameHeight
	}

	return nil
}
