// Package config holds the slidekit CLI configuration, loaded from an
// optional yaml file with environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all slidekit CLI settings.
type Config struct {
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`

	// Output controls how inspection results are rendered.
	Output OutputConfig `yaml:"output"`

	// Watch configures the file-watch command.
	Watch WatchConfig `yaml:"watch"`
}

// OutputConfig controls rendering of inspection results.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `yaml:"format"`
	// Color enables styled terminal output.
	Color bool `yaml:"color"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is how long to wait after the last write event before
	// re-inspecting, e.g. "250ms".
	Debounce string `yaml:"debounce"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "table", Color: true},
		Watch:  WatchConfig{Debounce: "250ms"},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: reading %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets SLIDEKIT_* variables override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SLIDEKIT_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v := os.Getenv("SLIDEKIT_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("SLIDEKIT_OUTPUT_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.Color = b
		}
	}
	if v := os.Getenv("SLIDEKIT_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("config: output format must be table or json, got %q", c.Output.Format)
	}
	if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
		return fmt.Errorf("config: invalid watch debounce: %w", err)
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce interval.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 250 * time.Millisecond
	}
	return d
}
