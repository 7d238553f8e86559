// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec6 is a 6-D vector.
type Vec6[N scalar.Scalar] [6]N

// NewVec6 builds a Vec6 from its components.
func NewVec6[N scalar.Scalar](x, y, z, w, a, b N) Vec6[N] {
	return Vec6[N]{x, y, z, w, a, b}
}

// Shape reports the static dimension marker.
func (v Vec6[N]) Shape() traits.D6 { return traits.D6{} }

// Dim returns the number of components.
func (v Vec6[N]) Dim() int { return 6 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec6[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec6[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec6[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec6[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec6[N]) WithComponent(i int, x N) Vec6[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec6[N]) Zero() Vec6[N] { return Vec6[N]{} }

// IsZero reports whether every component is zero.
func (v Vec6[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec6[N]) Add(o Vec6[N]) Vec6[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec6[N]) Sub(o Vec6[N]) Vec6[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec6[N]) Mul(o Vec6[N]) Vec6[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec6[N]) Scale(alpha N) Vec6[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec6[N]) Div(alpha N) Vec6[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec6[N]) Neg() Vec6[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec6[N]) AddScalar(x N) Vec6[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec6[N]) SubScalar(x N) Vec6[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec6[N]) Absolute() Vec6[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec6[N]) Dot(o Vec6[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec6[N]) SubDot(b, c Vec6[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec6[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec6[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec6[N]) Normalized() Vec6[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec6[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec6[N]) ApproxEq(o Vec6[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec6[N]) Translation() Vec6[N] { return v }

// InvTranslation returns −v.
func (v Vec6[N]) InvTranslation() Vec6[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec6[N]) TranslateBy(o Vec6[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec6[N]) Translated(o Vec6[N]) Vec6[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec6[N]) SetTranslation(o Vec6[N]) { *v = o }

// Translate returns p + v.
func (v Vec6[N]) Translate(p Vec6[N]) Vec6[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec6[N]) InvTranslate(p Vec6[N]) Vec6[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec6[N]) Rotate(p Vec6[N]) Vec6[N] { return p }

// InvRotate returns p unchanged.
func (v Vec6[N]) InvRotate(p Vec6[N]) Vec6[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec6[N]) Transform(p Vec6[N]) Vec6[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec6[N]) InvTransform(p Vec6[N]) Vec6[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec6[N]) Outer(o Vec6[N]) Mat6[N] {
	var m Mat6[N]
	kOuter(m[:], v[:], o[:], 6)

	return m
}

// CanonicalBasis calls f with e₀, e₁, e₂, e₃, e₄, e₅ in order until f returns false.
// The receiver is ignored.
func (v Vec6[N]) CanonicalBasis(f func(Vec6[N]) bool) {
	for i := 0; i < 6; i++ {
		var e Vec6[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
