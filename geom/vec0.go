// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Vec0 is the empty vector. It exists so that generic code has a base case.
type Vec0[N scalar.Scalar] [0]N

// NewVec0 returns the only Vec0.
func NewVec0[N scalar.Scalar]() Vec0[N] { return Vec0[N]{} }

// Shape reports the static dimension marker.
func (v Vec0[N]) Shape() traits.D0 { return traits.D0{} }

// Dim returns the number of components.
func (v Vec0[N]) Dim() int { return 0 }

// At returns component i. It panics when i is out of range, like an array index.
func (v Vec0[N]) At(i int) N { return v[i] }

// Set assigns component i in place.
func (v *Vec0[N]) Set(i int, x N) { v[i] = x }

// All yields (i, v[i]) in index order.
func (v Vec0[N]) All() iter.Seq2[int, N] { return kAll(v[:]) }

// AllMut yields (i, &v[i]) in index order, so a loop can update v in place.
func (v *Vec0[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(v[:]) }

// WithComponent returns a copy of v with component i replaced by x.
func (v Vec0[N]) WithComponent(i int, x N) Vec0[N] {
	v[i] = x

	return v
}

// Zero returns the zero vector. The receiver is ignored.
func (v Vec0[N]) Zero() Vec0[N] { return Vec0[N]{} }

// IsZero reports whether every component is zero.
func (v Vec0[N]) IsZero() bool { return kIsZero(v[:]) }

// Add returns v + o.
func (v Vec0[N]) Add(o Vec0[N]) Vec0[N] {
	kAdd(v[:], v[:], o[:])

	return v
}

// Sub returns v − o.
func (v Vec0[N]) Sub(o Vec0[N]) Vec0[N] {
	kSub(v[:], v[:], o[:])

	return v
}

// Mul returns the component-wise product of v and o.
func (v Vec0[N]) Mul(o Vec0[N]) Vec0[N] {
	kMulElem(v[:], v[:], o[:])

	return v
}

// Scale returns alpha·v.
func (v Vec0[N]) Scale(alpha N) Vec0[N] {
	kScale(v[:], v[:], alpha)

	return v
}

// Div returns v/alpha.
func (v Vec0[N]) Div(alpha N) Vec0[N] {
	kDiv(v[:], v[:], alpha)

	return v
}

// Neg returns −v.
func (v Vec0[N]) Neg() Vec0[N] {
	kNeg(v[:], v[:])

	return v
}

// AddScalar adds x to every component.
func (v Vec0[N]) AddScalar(x N) Vec0[N] {
	kAddScalar(v[:], v[:], x)

	return v
}

// SubScalar subtracts x from every component.
func (v Vec0[N]) SubScalar(x N) Vec0[N] {
	kAddScalar(v[:], v[:], -x)

	return v
}

// Absolute returns the component-wise absolute value.
func (v Vec0[N]) Absolute() Vec0[N] {
	kAbs(v[:], v[:])

	return v
}

// Dot returns the inner product of v and o.
func (v Vec0[N]) Dot(o Vec0[N]) N { return kDot(v[:], o[:]) }

// SubDot returns (v − b)·c without building v − b.
func (v Vec0[N]) SubDot(b, c Vec0[N]) N { return kSubDot(v[:], b[:], c[:]) }

// SqNorm returns v·v.
func (v Vec0[N]) SqNorm() N { return kDot(v[:], v[:]) }

// Norm returns the Euclidean length of v, truncated for integer element types.
func (v Vec0[N]) Norm() N { return scalar.Sqrt(kDot(v[:], v[:])) }

// Normalized returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vec0[N]) Normalized() Vec0[N] {
	kNormalize(v[:])

	return v
}

// Normalize scales v to unit length in place and returns its previous norm.
// The zero vector is left unchanged and 0 is returned. Integer vectors are
// scaled only when the result is integral (a multiple of a basis vector);
// otherwise they too are left unchanged and 0 is returned.
func (v *Vec0[N]) Normalize() N { return kNormalize(v[:]) }

// ApproxEq reports whether every component of v is within eps of o.
func (v Vec0[N]) ApproxEq(o Vec0[N], eps float64) bool { return kApproxEq(v[:], o[:], eps) }

// Translation returns v: a vector is its own translation.
func (v Vec0[N]) Translation() Vec0[N] { return v }

// InvTranslation returns −v.
func (v Vec0[N]) InvTranslation() Vec0[N] { return v.Neg() }

// TranslateBy adds o to v in place.
func (v *Vec0[N]) TranslateBy(o Vec0[N]) { kAdd(v[:], v[:], o[:]) }

// Translated returns v + o.
func (v Vec0[N]) Translated(o Vec0[N]) Vec0[N] { return v.Add(o) }

// SetTranslation replaces v with o.
func (v *Vec0[N]) SetTranslation(o Vec0[N]) { *v = o }

// Translate returns p + v.
func (v Vec0[N]) Translate(p Vec0[N]) Vec0[N] { return p.Add(v) }

// InvTranslate returns p − v.
func (v Vec0[N]) InvTranslate(p Vec0[N]) Vec0[N] { return p.Sub(v) }

// Rotate returns p unchanged: a vector carries no rotation.
func (v Vec0[N]) Rotate(p Vec0[N]) Vec0[N] { return p }

// InvRotate returns p unchanged.
func (v Vec0[N]) InvRotate(p Vec0[N]) Vec0[N] { return p }

// Transform applies v as a pure translation: p + v.
func (v Vec0[N]) Transform(p Vec0[N]) Vec0[N] { return v.Translate(p) }

// InvTransform returns p − v.
func (v Vec0[N]) InvTransform(p Vec0[N]) Vec0[N] { return v.InvTranslate(p) }

// ToHomogeneous returns the point v in homogeneous coordinates, with 1 appended.
func (v Vec0[N]) ToHomogeneous() Vec1[N] {
	var h Vec1[N]
	copy(h[:0], v[:])
	h[0] = 1

	return h
}

// FromHomogeneous projects h back to 0-D, dividing by its last component
// when that component is non-zero. The receiver is ignored.
func (v Vec0[N]) FromHomogeneous(h Vec1[N]) Vec0[N] {
	var r Vec0[N]
	kVecFromHomogeneous(r[:], h[:], 0)

	return r
}

// CanonicalBasis never calls f: the 0-D space has no basis vectors.
func (v Vec0[N]) CanonicalBasis(f func(Vec0[N]) bool) {
	for i := 0; i < 0; i++ {
		var e Vec0[N]
		e[i] = 1
		if !f(e) {
			return
		}
	}
}
