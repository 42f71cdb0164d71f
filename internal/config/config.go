// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Validation failures wrap ErrInvalidConfig, loader failures wrap ErrLoadConfig.
package config

import (
	"fmt"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogJSON switches log records to JSON.
	LogJSON bool `koanf:"log_json"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DefaultSigma is the luck strength used when a draw does not name one.
	DefaultSigma float64 `koanf:"default_sigma"`

	// MaxSigma caps the luck strength an operator may request.
	MaxSigma float64 `koanf:"max_sigma"`

	// RandomSeed makes draws reproducible when non-zero.
	RandomSeed uint64 `koanf:"random_seed"`

	// MaxRosterSize bounds the members accepted in one request.
	MaxRosterSize int `koanf:"max_roster_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		DefaultSigma:  2.0,
		MaxSigma:      10.0,
		RandomSeed:    0,
		MaxRosterSize: 1000,
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxSigma < 0:
		return fmt.Errorf("%w: max_sigma must be >= 0, got %v", ErrInvalidConfig, c.MaxSigma)
	case c.DefaultSigma < 0 || c.DefaultSigma > c.MaxSigma:
		return fmt.Errorf("%w: default_sigma must be within [0, %v], got %v", ErrInvalidConfig, c.MaxSigma, c.DefaultSigma)
	case c.MaxRosterSize <= 0:
		return fmt.Errorf("%w: max_roster_size must be > 0, got %d", ErrInvalidConfig, c.MaxRosterSize)
	}
	return nil
}
