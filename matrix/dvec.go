// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvgeom/internal/exact"
	"github.com/katalvlaran/lvgeom/scalar"
)

// DVec is a runtime-sized vector. It is a plain slice, so it shares its
// backing array on assignment; use Clone for an independent copy.
//
// Add, Sub, Dot and SubDot require operands of equal length and panic
// otherwise, like an out-of-range slice index. Use ValidateVecLen first when
// lengths come from user input.
type DVec[N scalar.Scalar] []N

// NewDVec returns a zero vector of length n.
func NewDVec[N scalar.Scalar](n int) DVec[N] { return make(DVec[N], n) }

// Dim returns the number of components.
func (v DVec[N]) Dim() int { return len(v) }

// At returns component i; it panics when i is out of range.
func (v DVec[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v DVec[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v DVec[N]) All() iter.Seq2[int, N] { return slices.All(v) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v DVec[N]) AllMut() iter.Seq2[int, *N] {
	return func(yield func(int, *N) bool) {
		for i := range v {
			if !yield(i, &v[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of v.
func (v DVec[N]) Clone() DVec[N] {
	out := make(DVec[N], len(v))
	copy(out, v)

	return out
}

func mustSameLen[N scalar.Scalar](a, b DVec[N]) {
	if len(a) != len(b) {
		panic("matrix: DVec length mismatch")
	}
}

// Add returns v + o.
func (v DVec[N]) Add(o DVec[N]) DVec[N] {
	mustSameLen(v, o)
	out := make(DVec[N], len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out
}

// Sub returns v − o.
func (v DVec[N]) Sub(o DVec[N]) DVec[N] {
	mustSameLen(v, o)
	out := make(DVec[N], len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}

	return out
}

// Scale returns alpha·v.
func (v DVec[N]) Scale(alpha N) DVec[N] {
	out := make(DVec[N], len(v))
	for i := range v {
		out[i] = alpha * v[i]
	}

	return out
}

// Absolute returns the component-wise absolute value.
func (v DVec[N]) Absolute() DVec[N] {
	out := make(DVec[N], len(v))
	for i := range v {
		out[i] = scalar.Abs(v[i])
	}

	return out
}

// Dot returns the inner product of v and o.
func (v DVec[N]) Dot(o DVec[N]) N {
	mustSameLen(v, o)
	var sum N
	for i := range v {
		sum += v[i] * o[i]
	}

	return sum
}

// SubDot returns (v − b)·c without building v − b.
func (v DVec[N]) SubDot(b, c DVec[N]) N {
	mustSameLen(v, b)
	mustSameLen(v, c)
	var sum N
	for i := range v {
		sum += (v[i] - b[i]) * c[i]
	}

	return sum
}

// SqNorm returns v·v.
func (v DVec[N]) SqNorm() N { return v.Dot(v) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v DVec[N]) Norm() N { return scalar.Sqrt(v.SqNorm()) }

// Normalized returns a unit-length copy of v; a zero vector is returned as a
// zero copy.
func (v DVec[N]) Normalized() DVec[N] {
	out := v.Clone()
	out.Normalize()

	return out
}

// Normalize scales v to unit length in place and returns its previous norm.
// A zero vector is left unchanged and 0 is returned. Integer vectors are scaled
// only when the result is integral (a multiple of a basis vector); otherwise
// they too are left unchanged and 0 is returned.
func (v DVec[N]) Normalize() N {
	if !scalar.IsFloat[N]() {
		return exact.Normalize(v)
	}
	n := v.Norm()
	if float64(n) <= scalar.DefaultNormEpsilon {
		return n
	}
	for i := range v {
		v[i] /= n
	}

	return n
}

// Outer returns the len(v)×len(o) matrix v·oᵗ with the default numeric policy.
// Unlike the other binary operations it accepts any two lengths.
func (v DVec[N]) Outer(o DVec[N]) *DMat[N] {
	m := &DMat[N]{r: len(v), c: len(o), data: make([]N, len(v)*len(o)), opts: gatherOptions()}
	for i := range v {
		for j := range o {
			m.data[i*m.c+j] = v[i] * o[j]
		}
	}

	return m
}

// ApproxEq reports whether v and o have the same length and every pair of
// components differs by at most eps.
func (v DVec[N]) ApproxEq(o DVec[N], eps float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !scalar.ApproxEq(v[i], o[i], eps) {
			return false
		}
	}

	return true
}
