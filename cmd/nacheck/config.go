// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Defaults of a run.
const (
	DefaultSeed    = 1
	DefaultSamples = 1000
)

var (
	// ErrInvalidConfig reports a configuration value outside its domain.
	ErrInvalidConfig = errors.New("nacheck: invalid config")

	// ErrUnknownProperty reports a property name that is not registered.
	ErrUnknownProperty = errors.New("nacheck: unknown property")
)

// Config drives one run of the property suite.
type Config struct {
	Seed       uint64   `yaml:"seed"`
	Samples    int      `yaml:"samples"`
	Epsilon    float64  `yaml:"epsilon"`
	Properties []string `yaml:"properties"` // empty selects every property
}

// DefaultConfig returns the configuration used when neither a file nor flags
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Seed:    DefaultSeed,
		Samples: DefaultSamples,
		Epsilon: scalar.DefaultApproxEpsilon,
	}
}

// LoadConfig reads a YAML file over the defaults: keys absent from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks every field; property names are resolved against the registry.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidConfig, c.Samples)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: epsilon must be finite and >= 0, got %v", ErrInvalidConfig, c.Epsilon)
	}
	_, err := selectProperties(registry, c.Properties)

	return err
}
