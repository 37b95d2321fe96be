// Package config loads the CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy names accepted for the multi-source query.
const (
	StrategyPerCandidate = "per-candidate"
	StrategyReverse      = "reverse"
	StrategyParallel     = "parallel"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config controls how the solver builds the graph and answers part 2.
type Config struct {
	// MaxStepUp is how many levels one step may climb.
	MaxStepUp int `yaml:"max_step_up"`
	// Strategy selects how the multi-source query is answered.
	Strategy string `yaml:"strategy"`
	// Workers bounds the goroutines of the parallel strategy; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// LowestElevation is the letter whose cells are candidate starts in part 2.
	LowestElevation string `yaml:"lowest_elevation"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxStepUp:       1,
		Strategy:        StrategyPerCandidate,
		Workers:         0,
		LowestElevation: "a",
		LogLevel:        "info",
	}
}

// Load reads path and overlays it on Default. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.MaxStepUp < 0 {
		return fmt.Errorf("%w: max_step_up %d is negative", ErrInvalid, c.MaxStepUp)
	}
	switch c.Strategy {
	case StrategyPerCandidate, StrategyReverse, StrategyParallel:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalid, c.Strategy)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalid, c.Workers)
	}
	if len(c.LowestElevation) != 1 || c.LowestElevation[0] < 'a' || c.LowestElevation[0] > 'z' {
		return fmt.Errorf("%w: lowest_elevation %q must be a single letter a-z", ErrInvalid, c.LowestElevation)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// LowestHeight converts LowestElevation to a numeric height.
func (c Config) LowestHeight() int {
	return int(c.LowestElevation[0] - 'a')
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: unknown log_level %q", ErrInvalid, s)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
