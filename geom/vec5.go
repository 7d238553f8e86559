// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec5 is a 5-D vector.
type Vec5[N scalar.Scalar] [5]N

// NewVec5 builds a Vec5 from its components.
func NewVec5[N scalar.Scalar](x, y, z, w, a N) Vec5[N] {
	return Vec5[N]{x, y, z, w, a}
}

// Shape reports the static dimension marker.
func (v Vec5[N]) Shape() traits.D5 { return traits.D5{} }

// Dim returns the number of components.
func (v Vec5[N]) Dim() int { return 5 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec5[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec5[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec5[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec5[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec5[N]) WithComponent(i int, x N) Vec5[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec5[N]) Zero() Vec5[N] { return Vec5[N]{} }

// IsZero reports whether every component is zero.
func (v Vec5[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec5[N]) Add(o Vec5[N]) Vec5[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec5[N]) Sub(o Vec5[N]) Vec5[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec5[N]) Mul(o Vec5[N]) Vec5[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec5[N]) Scale(alpha N) Vec5[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec5[N]) Div(alpha N) Vec5[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec5[N]) Neg() Vec5[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec5[N]) AddScalar(x N) Vec5[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec5[N]) SubScalar(x N) Vec5[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec5[N]) Absolute() Vec5[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec5[N]) Dot(o Vec5[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec5[N]) SubDot(b, c Vec5[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec5[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec5[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec5[N]) Normalized() Vec5[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec5[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec5[N]) ApproxEq(o Vec5[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec5[N]) Translation() Vec5[N] { return v }

// InvTranslation returns −v.
func (v Vec5[N]) InvTranslation() Vec5[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec5[N]) TranslateBy(o Vec5[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec5[N]) Translated(o Vec5[N]) Vec5[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec5[N]) SetTranslation(o Vec5[N]) { *v = o }

// Translate returns p + v.
func (v Vec5[N]) Translate(p Vec5[N]) Vec5[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec5[N]) InvTranslate(p Vec5[N]) Vec5[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec5[N]) Rotate(p Vec5[N]) Vec5[N] { return p }

// InvRotate returns p unchanged.
func (v Vec5[N]) InvRotate(p Vec5[N]) Vec5[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec5[N]) Transform(p Vec5[N]) Vec5[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec5[N]) InvTransform(p Vec5[N]) Vec5[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec5[N]) Outer(o Vec5[N]) Mat5[N] {
	var m Mat5[N]
	kOuter(m[:], v[:], o[:], 5)

	return m
}

// ToHomogeneous returns the point v in homogeneous coordinates, with 1 appended.
func (v Vec5[N]) ToHomogeneous() Vec6[N] {
	var h Vec6[N]
	copy(h[:5], v[:])
	h[5] = 1

	return h
}

// FromHomogeneous projects h back to 5-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec5[N]) FromHomogeneous(h Vec6[N]) Vec5[N] {
	var r Vec5[N]
	kVecFromHomogeneous(r[:], h[:], 5)

	return r
}

// CanonicalBasis calls f with e₀, e₁, e₂, e₃, e₄ in order until f returns false.
// The receiver is ignored.
func (v Vec5[N]) CanonicalBasis(f func(Vec5[N]) bool) {
	for i := 0; i < 5; i++ {
		var e Vec5[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
