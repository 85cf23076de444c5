// Package config loads aoc24 settings from a YAML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc24/internal/input"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "aoc24.yaml"

// ErrInvalidConfig indicates a config value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ValidLevels and ValidFormats list the accepted logging settings.
var (
	ValidLevels  = []string{"debug", "info", "warn", "error"}
	ValidFormats = []string{"json", "console"}
)

// Config is the top-level aoc24 configuration.
type Config struct {
	Inputs  string        `yaml:"inputs"`
	Logging LoggingConfig `yaml:"logging"`
	Patrol  PatrolConfig  `yaml:"patrol"`
}

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PatrolConfig tunes the day 6 loop search. Zero workers means one per CPU.
type PatrolConfig struct {
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Inputs: input.DefaultDir,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies AOC24_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("AOC24_INPUTS"); dir != "" {
		c.Inputs = dir
	}
	if lvl := os.Getenv("AOC24_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if w := os.Getenv("AOC24_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("%w: AOC24_WORKERS=%q", ErrInvalidConfig, w)
		}
		c.Patrol.Workers = n
	}

	return nil
}

// Validate checks levels, formats and worker counts.
func (c *Config) Validate() error {
	if c.Inputs == "" {
		return fmt.Errorf("%w: empty inputs directory", ErrInvalidConfig)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q (valid: %v)", ErrInvalidConfig, c.Logging.Format, ValidFormats)
	}
	if c.Patrol.Workers < 0 {
		return fmt.Errorf("%w: patrol.workers %d", ErrInvalidConfig, c.Patrol.Workers)
	}

	return nil
}
