// Package config provides configuration loading for keypadchain.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full tool configuration.
type Config struct {
	Solver  SolverConfig  `koanf:"solver"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SolverConfig controls the chain solver.
type SolverConfig struct {
	// Depth is the number of robot-operated directional pads.
	Depth int `koanf:"depth"`
	// Workers is the batch parallelism; each worker owns its memo.
	Workers int `koanf:"workers"`
	// ExpandLimit caps the length of printed press strings.
	ExpandLimit int64 `koanf:"expand_limit"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsConfig controls the Prometheus text-file export.
type MetricsConfig struct {
	// Textfile is the output path; empty disables the export.
	Textfile  string `koanf:"textfile"`
	Namespace string `koanf:"namespace"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Depth:       2,
			Workers:     1,
			ExpandLimit: 1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Namespace: "keypadchain",
		},
	}
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if c.Solver.Depth < 0 {
		return fmt.Errorf("%w: solver.depth must be >= 0 (got %d)", ErrInvalidConfig, c.Solver.Depth)
	}
	if c.Solver.Workers < 1 {
		return fmt.Errorf("%w: solver.workers must be >= 1 (got %d)", ErrInvalidConfig, c.Solver.Workers)
	}
	if c.Solver.ExpandLimit <= 0 {
		return fmt.Errorf("%w: solver.expand_limit must be > 0 (got %d)", ErrInvalidConfig, c.Solver.ExpandLimit)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json (got %q)", ErrInvalidConfig, c.Log.Format)
	}
	if c.Metrics.Textfile != "" && c.Metrics.Namespace == "" {
		return fmt.Errorf("%w: metrics.namespace is required with metrics.textfile", ErrInvalidConfig)
	}
	return nil
}
