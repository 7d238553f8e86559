// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec3 is a 3-D vector: a displacement or a direction in space.
// It is a plain array, so == compares component-wise and assignment copies.
type Vec3[N scalar.Scalar] [3]N

// NewVec3 builds a Vec3 from its components.
func NewVec3[N scalar.Scalar](x, y, z N) Vec3[N] {
	return Vec3[N]{x, y, z}
}

// Shape reports the static dimension marker.
func (v Vec3[N]) Shape() traits.D3 { return traits.D3{} }

// Dim returns the number of components.
func (v Vec3[N]) Dim() int { return 3 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec3[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec3[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec3[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec3[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec3[N]) WithComponent(i int, x N) Vec3[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec3[N]) Zero() Vec3[N] { return Vec3[N]{} }

// IsZero reports whether every component is zero.
func (v Vec3[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec3[N]) Add(o Vec3[N]) Vec3[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec3[N]) Sub(o Vec3[N]) Vec3[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec3[N]) Mul(o Vec3[N]) Vec3[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec3[N]) Scale(alpha N) Vec3[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec3[N]) Div(alpha N) Vec3[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec3[N]) Neg() Vec3[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec3[N]) AddScalar(x N) Vec3[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec3[N]) SubScalar(x N) Vec3[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec3[N]) Absolute() Vec3[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec3[N]) Dot(o Vec3[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec3[N]) SubDot(b, c Vec3[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec3[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec3[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec3[N]) Normalized() Vec3[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec3[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec3[N]) ApproxEq(o Vec3[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec3[N]) Translation() Vec3[N] { return v }

// InvTranslation returns −v.
func (v Vec3[N]) InvTranslation() Vec3[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec3[N]) TranslateBy(o Vec3[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec3[N]) Translated(o Vec3[N]) Vec3[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec3[N]) SetTranslation(o Vec3[N]) { *v = o }

// Translate returns p + v.
func (v Vec3[N]) Translate(p Vec3[N]) Vec3[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec3[N]) InvTranslate(p Vec3[N]) Vec3[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec3[N]) Rotate(p Vec3[N]) Vec3[N] { return p }

// InvRotate returns p unchanged.
func (v Vec3[N]) InvRotate(p Vec3[N]) Vec3[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec3[N]) Transform(p Vec3[N]) Vec3[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec3[N]) InvTransform(p Vec3[N]) Vec3[N] { return v.InvTranslate(p) }

// Outer returns the outer product v·oᵗ.
func (v Vec3[N]) Outer(o Vec3[N]) Mat3[N] {
	var m Mat3[N]
	kOuter(m[:], v[:], o[:], 3)

	return m
}

// ToHomogeneous returns the point v in homogeneous coordinates: (x, y, z, 1).
func (v Vec3[N]) ToHomogeneous() Vec4[N] {
	var h Vec4[N]
	copy(h[:3], v[:])
	h[3] = 1

	return h
}

// FromHomogeneous projects h back to 3-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec3[N]) FromHomogeneous(h Vec4[N]) Vec3[N] {
	var r Vec3[N]
	kVecFromHomogeneous(r[:], h[:], 3)

	return r
}

// CanonicalBasis calls f with e₀, e₁, e₂ in order until f returns false.
// The receiver is ignored.
func (v Vec3[N]) CanonicalBasis(f func(Vec3[N]) bool) {
	for i := 0; i < 3; i++ {
		var e Vec3[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
