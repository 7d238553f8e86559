// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// ErrPropertyViolated is returned by runSuite on the first counterexample.
var ErrPropertyViolated = errors.New("nacheck: property violated")

// Result summarises one property that held on every sample.
type Result struct {
	Property string
	Samples  int
}

// selectProperties resolves names against all, keeping registry order.
// An empty selection returns every property.
func selectProperties(all []property, names []string) ([]property, error) {
	if len(names) == 0 {
		return all, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := make([]property, 0, len(names))
	for _, p := range all {
		if want[p.name] {
			out = append(out, p)
			delete(want, p.name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, n)
		}
	}

	return out, nil
}

// sampler returns the generator of one property. It depends only on the seed
// and the property name, so a failure reproduces when the property runs alone.
func sampler(seed uint64, name string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))

	return rand.New(rand.NewPCG(seed, h.Sum64()))
}

// runSuite checks every property on cfg.Samples samples and stops at the
// first violation. Results lists the properties that held, in order.
func runSuite(ctx context.Context, props []property, cfg Config, log zerolog.Logger) ([]Result, error) {
	results := make([]Result, 0, len(props))
	for _, p := range props {
		rng := sampler(cfg.Seed, p.name)
		log.Debug().Str("property", p.name).Int("samples", cfg.Samples).Msg("checking")
		for i := 0; i < cfg.Samples; i++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if err := p.check(rng, cfg.Epsilon); err != nil {
				log.Error().Err(err).
					Str("property", p.name).
					Int("sample", i).
					Uint64("seed", cfg.Seed).
					Msg("property violated")

				return results, fmt.Errorf("%w: %s at sample %d: %v", ErrPropertyViolated, p.name, i, err)
			}
		}
		log.Info().Str("property", p.name).Int("samples", cfg.Samples).Msg("ok")
		results = append(results, Result{Property: p.name, Samples: cfg.Samples})
	}

	return results, nil
}
