// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec1 is a 1-D vector.
type Vec1[N scalar.Scalar] [1]N

// NewVec1 builds a Vec1 from its components.
func NewVec1[N scalar.Scalar](x N) Vec1[N] {
	return Vec1[N]{x}
}

// Shape reports the static dimension marker.
func (v Vec1[N]) Shape() traits.D1 { return traits.D1{} }

// Dim returns the number of components.
func (v Vec1[N]) Dim() int { return 1 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec1[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec1[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec1[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec1[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec1[N]) WithComponent(i int, x N) Vec1[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec1[N]) Zero() Vec1[N] { return Vec1[N]{} }

// IsZero reports whether every component is zero.
func (v Vec1[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec1[N]) Add(o Vec1[N]) Vec1[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec1[N]) Sub(o Vec1[N]) Vec1[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec1[N]) Mul(o Vec1[N]) Vec1[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec1[N]) Scale(alpha N) Vec1[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec1[N]) Div(alpha N) Vec1[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec1[N]) Neg() Vec1[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec1[N]) AddScalar(x N) Vec1[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec1[N]) SubScalar(x N) Vec1[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec1[N]) Absolute() Vec1[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec1[N]) Dot(o Vec1[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec1[N]) SubDot(b, c Vec1[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec1[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec1[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec1[N]) Normalized() Vec1[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec1[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec1[N]) ApproxEq(o Vec1[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec1[N]) Translation() Vec1[N] { return v }

// InvTranslation returns −v.
func (v Vec1[N]) InvTranslation() Vec1[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec1[N]) TranslateBy(o Vec1[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec1[N]) Translated(o Vec1[N]) Vec1[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec1[N]) SetTranslation(o Vec1[N]) { *v = o }

// Translate returns p + v.
func (v Vec1[N]) Translate(p Vec1[N]) Vec1[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec1[N]) InvTranslate(p Vec1[N]) Vec1[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec1[N]) Rotate(p Vec1[N]) Vec1[N] { return p }

// InvRotate returns p unchanged.
func (v Vec1[N]) InvRotate(p Vec1[N]) Vec1[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec1[N]) Transform(p Vec1[N]) Vec1[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec1[N]) InvTransform(p Vec1[N]) Vec1[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec1[N]) Outer(o Vec1[N]) Mat1[N] {
	var m Mat1[N]
	kOuter(m[:], v[:], o[:], 1)

	return m
}

// ToHomogeneous returns the point v in homogeneous coordinates, with 1 appended.
func (v Vec1[N]) ToHomogeneous() Vec2[N] {
	var h Vec2[N]
	copy(h[:1], v[:])
	h[1] = 1

	return h
}

// FromHomogeneous projects h back to 1-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec1[N]) FromHomogeneous(h Vec2[N]) Vec1[N] {
	var r Vec1[N]
	kVecFromHomogeneous(r[:], h[:], 1)

	return r
}

// CanonicalBasis calls f with e₀. The receiver is ignored.
func (v Vec1[N]) CanonicalBasis(f func(Vec1[N]) bool) {
	for i := 0; i < 1; i++ {
		var e Vec1[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
