// SPDX-License-Identifier: MIT

// Package scalar defines the element contract shared by every vector and
// matrix family of lvgeom.
//
// Purpose:
//   - Name the minimal numeric requirements of an element type in one place.
//   - Provide the neutral elements and the few scalar helpers (Abs, Sqrt, Cast)
//     that generic kernels need but Go operators do not offer.
//   - Hold the numeric policy constants (tolerances) as the single source of truth.
//
// Contract:
//   - Scalar: additive/multiplicative identity, + − * /, unary negation and ordering.
//     Signed integers and floats qualify; unsigned integers do not (negation is required
//     by inverse translations and cross products).
//   - Real: the "algebraic" extension of Scalar with a well-defined square root.
//     Norms, normalization, rotations and isometries require Real.
//
// AI-Hints:
//   - The Go zero value of any Scalar is its additive identity; Zero[N]() exists for readability.
//   - Integer scalars are accepted by Sqrt (the result is truncated) because every family carries
//     its Norm methods regardless of N. The na facade bounds Norm, Normalize and Normalized
//     by Real; integer Det, inversion and Normalize use exact kernels instead.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the element contract of every fixed and dynamic family.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Real is the algebraic extension of Scalar: element types with a square root.
type Real interface {
	constraints.Float
}

// Numeric policy.
const (
	// DefaultEpsilon is the relative singularity tolerance used by every inversion:
	// a pivot p is treated as zero when |p| <= DefaultEpsilon * max|a_ij|.
	DefaultEpsilon = 1e-9

	// DefaultNormEpsilon is the norm below (or at) which Normalize considers a vector
	// degenerate and leaves it unchanged. Only the exact zero vector is degenerate.
	DefaultNormEpsilon = 0.0

	// DefaultApproxEpsilon is the absolute tolerance used by ApproxEq helpers in tests
	// and in the contract checker when no explicit tolerance is given.
	DefaultApproxEpsilon = 1e-9
)

// Zero returns the additive identity of N.
func Zero[N Scalar]() N { return 0 }

// One returns the multiplicative identity of N.
func One[N Scalar]() N { return 1 }

// Abs returns |x|.
func Abs[N Scalar](x N) N {
	if x < 0 {
		return -x
	}

	return x
}

// Max returns the larger of a and b.
func Max[N Scalar](a, b N) N {
	if a > b {
		return a
	}

	return b
}

// IsFloat reports whether N is a floating-point type.
func IsFloat[N Scalar]() bool {
	var one N = 1

	return one/2 != 0
}

// Sqrt returns the square root of x computed in float64 precision.
// Negative inputs yield NaN for floats and 0 for integers.
func Sqrt[N Scalar](x N) N {
	if x < 0 && !IsFloat[N]() {
		return 0
	}

	return N(math.Sqrt(float64(x)))
}

// Cast converts x to the element type M (precision widening or narrowing).
func Cast[M, N Scalar](x N) M { return M(x) }

// Epsilon returns the machine epsilon of N (the gap between 1 and the next
// representable value). Integer types report 0.
func Epsilon[N Scalar]() N {
	if !IsFloat[N]() {
		return 0
	}
	// float32 keeps 23 mantissa bits; 1+2^-30 rounds back to 1 there.
	probe := 1 + math.Ldexp(1, -30)
	if float64(N(probe)) == 1 {
		return N(math.Ldexp(1, -23))
	}

	return N(math.Ldexp(1, -52))
}

// IsFinite reports whether x is neither NaN nor ±Inf. Integers are always finite.
func IsFinite[N Scalar](x N) bool {
	f := float64(x)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ApproxEq reports whether |a − b| <= eps.
func ApproxEq[N Scalar](a, b N, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) <= eps
}

// Tolerance converts a float64 tolerance into N. For integer N any tolerance
// below 1 collapses to 0, which makes integer checks exact.
func Tolerance[N Scalar](eps float64) N { return N(eps) }
