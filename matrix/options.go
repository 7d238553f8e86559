// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of DMat.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - The policy is captured when a matrix is created and travels with it:
//     results of Mul/Transposed/Inverted/Cov inherit the policy of the receiver.
//   - eps is the relative singularity tolerance of inversion: a pivot p is
//     rejected when |p| <= eps·max|a_ij| (see Inverted).
//   - validateNaNInf only matters for floating-point element types.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the relative singularity tolerance. It equals the
	// tolerance of the fixed-size families so every matrix in the module gives
	// the same verdict on the same data.
	DefaultEpsilon = scalar.DefaultEpsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the relative singularity tolerance eps used by inversion.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps = 0 accepts every non-zero pivot (exact arithmetic policy).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Keep the default for double-precision data; raise it for float32 data
//     or noisy measurements, where 1e-9 is below the rounding floor.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set and NewDMatFromRows reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite values then propagate through every operation unchanged.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user setters over the documented defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(len(user)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
