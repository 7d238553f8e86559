// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec2 is a 2-D vector.
type Vec2[N scalar.Scalar] [2]N

// NewVec2 builds a Vec2 from its components.
func NewVec2[N scalar.Scalar](x, y N) Vec2[N] {
	return Vec2[N]{x, y}
}

// Shape reports the static dimension marker.
func (v Vec2[N]) Shape() traits.D2 { return traits.D2{} }

// Dim returns the number of components.
func (v Vec2[N]) Dim() int { return 2 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec2[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec2[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec2[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec2[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec2[N]) WithComponent(i int, x N) Vec2[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec2[N]) Zero() Vec2[N] { return Vec2[N]{} }

// IsZero reports whether every component is zero.
func (v Vec2[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec2[N]) Add(o Vec2[N]) Vec2[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec2[N]) Sub(o Vec2[N]) Vec2[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec2[N]) Mul(o Vec2[N]) Vec2[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec2[N]) Scale(alpha N) Vec2[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec2[N]) Div(alpha N) Vec2[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec2[N]) Neg() Vec2[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec2[N]) AddScalar(x N) Vec2[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec2[N]) SubScalar(x N) Vec2[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec2[N]) Absolute() Vec2[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec2[N]) Dot(o Vec2[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec2[N]) SubDot(b, c Vec2[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec2[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec2[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec2[N]) Normalized() Vec2[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec2[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec2[N]) ApproxEq(o Vec2[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec2[N]) Translation() Vec2[N] { return v }

// InvTranslation returns −v.
func (v Vec2[N]) InvTranslation() Vec2[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec2[N]) TranslateBy(o Vec2[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec2[N]) Translated(o Vec2[N]) Vec2[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec2[N]) SetTranslation(o Vec2[N]) { *v = o }

// Translate returns p + v.
func (v Vec2[N]) Translate(p Vec2[N]) Vec2[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec2[N]) InvTranslate(p Vec2[N]) Vec2[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec2[N]) Rotate(p Vec2[N]) Vec2[N] { return p }

// InvRotate returns p unchanged.
func (v Vec2[N]) InvRotate(p Vec2[N]) Vec2[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec2[N]) Transform(p Vec2[N]) Vec2[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec2[N]) InvTransform(p Vec2[N]) Vec2[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec2[N]) Outer(o Vec2[N]) Mat2[N] {
	var m Mat2[N]
	kOuter(m[:], v[:], o[:], 2)

	return m
}

// ToHomogeneous returns the point v in homogeneous coordinates, with 1 appended.
func (v Vec2[N]) ToHomogeneous() Vec3[N] {
	var h Vec3[N]
	copy(h[:2], v[:])
	h[2] = 1

	return h
}

// FromHomogeneous projects h back to 2-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec2[N]) FromHomogeneous(h Vec3[N]) Vec2[N] {
	var r Vec2[N]
	kVecFromHomogeneous(r[:], h[:], 2)

	return r
}

// CanonicalBasis calls f with e₀, e₁ in order until f returns false.
// The receiver is ignored.
func (v Vec2[N]) CanonicalBasis(f func(Vec2[N]) bool) {
	for i := 0; i < 2; i++ {
		var e Vec2[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
