// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nacheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_OverDefaults(t *testing.T) {
	path := writeFile(t, "seed: 7\nproperties:\n  - matrix.double-inverse\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, DefaultSamples, cfg.Samples)
	require.Equal(t, DefaultConfig().Epsilon, cfg.Epsilon)
	require.Equal(t, []string{"matrix.double-inverse"}, cfg.Properties)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "samples: [1, 2\n"))
	require.ErrorContains(t, err, "failed to unmarshal config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero samples", func(c *Config) { c.Samples = 0 }, ErrInvalidConfig},
		{"negative eps", func(c *Config) { c.Epsilon = -1 }, ErrInvalidConfig},
		{"nan eps", func(c *Config) { c.Epsilon = math.NaN() }, ErrInvalidConfig},
		{"unknown property", func(c *Config) { c.Properties = []string{"no.such"} }, ErrUnknownProperty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
