// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllPropertiesHold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Samples = 200
	for _, seed := range []uint64{1, 42, 2024} {
		cfg.Seed = seed
		results, err := runSuite(context.Background(), registry, cfg, zerolog.Nop())
		require.NoError(t, err, "seed %d", seed)
		require.Len(t, results, len(registry))
	}
}

func TestRegistry_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range registry {
		require.False(t, seen[p.name], "duplicate property %q", p.name)
		require.NotEmpty(t, p.doc)
		seen[p.name] = true
	}
}

func TestSelectProperties(t *testing.T) {
	all, err := selectProperties(registry, nil)
	require.NoError(t, err)
	require.Len(t, all, len(registry))

	// registry order wins over argument order
	got, err := selectProperties(registry, []string{"stats.single-row", "norm.normalized-is-unit"})
	require.NoError(t, err)
	require.Equal(t, "norm.normalized-is-unit", got[0].name)
	require.Equal(t, "stats.single-row", got[1].name)

	_, err = selectProperties(registry, []string{"norm.normalized-is-unit", "bogus"})
	require.ErrorIs(t, err, ErrUnknownProperty)
}

func TestRunSuite_StopsAtFirstViolation(t *testing.T) {
	calls := 0
	props := []property{
		{"always", "holds", func(*rand.Rand, float64) error { return nil }},
		{"broken", "fails on the third sample", func(*rand.Rand, float64) error {
			calls++
			if calls == 3 {
				return errors.New("counterexample")
			}
			return nil
		}},
		{"never-reached", "", func(*rand.Rand, float64) error { panic("unreachable") }},
	}
	var logs bytes.Buffer
	cfg := DefaultConfig()
	cfg.Samples = 10

	results, err := runSuite(context.Background(), props, cfg, zerolog.New(&logs))
	require.ErrorIs(t, err, ErrPropertyViolated)
	require.ErrorContains(t, err, "broken at sample 2: counterexample")
	require.Equal(t, []Result{{Property: "always", Samples: 10}}, results)
	require.Contains(t, logs.String(), `"property":"broken"`)
	require.Contains(t, logs.String(), `"sample":2`)
}

func TestRunSuite_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runSuite(ctx, registry, DefaultConfig(), zerolog.Nop())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSampler_DependsOnNameAndSeed(t *testing.T) {
	a := sampler(1, "x").Uint64()
	require.Equal(t, a, sampler(1, "x").Uint64())
	require.NotEqual(t, a, sampler(1, "y").Uint64())
	require.NotEqual(t, a, sampler(2, "x").Uint64())
}
