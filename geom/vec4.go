// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec4 is a 4-D vector.
type Vec4[N scalar.Scalar] [4]N

// NewVec4 builds a Vec4 from its components.
func NewVec4[N scalar.Scalar](x, y, z, w N) Vec4[N] {
	return Vec4[N]{x, y, z, w}
}

// Shape reports the static dimension marker.
func (v Vec4[N]) Shape() traits.D4 { return traits.D4{} }

// Dim returns the number of components.
func (v Vec4[N]) Dim() int { return 4 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec4[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec4[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec4[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec4[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec4[N]) WithComponent(i int, x N) Vec4[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec4[N]) Zero() Vec4[N] { return Vec4[N]{} }

// IsZero reports whether every component is zero.
func (v Vec4[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec4[N]) Add(o Vec4[N]) Vec4[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec4[N]) Sub(o Vec4[N]) Vec4[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec4[N]) Mul(o Vec4[N]) Vec4[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec4[N]) Scale(alpha N) Vec4[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec4[N]) Div(alpha N) Vec4[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec4[N]) Neg() Vec4[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec4[N]) AddScalar(x N) Vec4[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec4[N]) SubScalar(x N) Vec4[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec4[N]) Absolute() Vec4[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec4[N]) Dot(o Vec4[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec4[N]) SubDot(b, c Vec4[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec4[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec4[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec4[N]) Normalized() Vec4[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec4[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec4[N]) ApproxEq(o Vec4[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec4[N]) Translation() Vec4[N] { return v }

// InvTranslation returns −v.
func (v Vec4[N]) InvTranslation() Vec4[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec4[N]) TranslateBy(o Vec4[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec4[N]) Translated(o Vec4[N]) Vec4[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec4[N]) SetTranslation(o Vec4[N]) { *v = o }

// Translate returns p + v.
func (v Vec4[N]) Translate(p Vec4[N]) Vec4[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec4[N]) InvTranslate(p Vec4[N]) Vec4[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec4[N]) Rotate(p Vec4[N]) Vec4[N] { return p }

// InvRotate returns p unchanged.
func (v Vec4[N]) InvRotate(p Vec4[N]) Vec4[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec4[N]) Transform(p Vec4[N]) Vec4[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec4[N]) InvTransform(p Vec4[N]) Vec4[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec4[N]) Outer(o Vec4[N]) Mat4[N] {
	var m Mat4[N]
	kOuter(m[:], v[:], o[:], 4)

	return m
}

// ToHomogeneous returns the point v in homogeneous coordinates, with 1 appended.
func (v Vec4[N]) ToHomogeneous() Vec5[N] {
	var h Vec5[N]
	copy(h[:4], v[:])
	h[4] = 1

	return h
}

// FromHomogeneous projects h back to 4-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec4[N]) FromHomogeneous(h Vec5[N]) Vec4[N] {
	var r Vec4[N]
	kVecFromHomogeneous(r[:], h[:], 4)

	return r
}

// CanonicalBasis calls f with e₀, e₁, e₂, e₃ in order until f returns false.
// The receiver is ignored.
func (v Vec4[N]) CanonicalBasis(f func(Vec4[N]) bool) {
	for i := 0; i < 4; i++ {
		var e Vec4[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
