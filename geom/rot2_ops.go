// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// NewRot2FromMat wraps m without checking it: m must be orthogonal with
// determinant +1.
func NewRot2FromMat[N scalar.Real](m Mat2[N]) Rot2[N] { return Rot2[N]{submat: m} }

// Shape reports the static dimension marker.
func (r Rot2[N]) Shape() traits.D2 { return traits.D2{} }

// Dim returns the dimension of the rotated space.
func (r Rot2[N]) Dim() int { return 2 }

// Submat returns the orthogonal matrix of r.
func (r Rot2[N]) Submat() Mat2[N] { return r.submat }

// Entry returns entry (i, j) of the rotation matrix.
func (r Rot2[N]) Entry(i, j int) N { return r.submat.Entry(i, j) }

// One returns the identity rotation. The receiver is ignored.
func (r Rot2[N]) One() Rot2[N] { return Rot2[N]{submat: Mat2[N]{}.One()} }

// RotateBy composes r with the rotation described by v: v is applied after r.
func (r *Rot2[N]) RotateBy(v Vec1[N]) {
	r.submat = rot2From(v).submat.Mul(r.submat)
}

// Rotated returns the value form of RotateBy.
func (r Rot2[N]) Rotated(v Vec1[N]) Rot2[N] {
	r.RotateBy(v)

	return r
}

// SetRotation replaces r with the rotation described by v.
func (r *Rot2[N]) SetRotation(v Vec1[N]) { *r = rot2From(v) }

// Rotate returns r·v.
func (r Rot2[N]) Rotate(v Vec2[N]) Vec2[N] { return r.submat.RMul(v) }

// InvRotate returns rᵗ·v, the inverse rotation of v.
func (r Rot2[N]) InvRotate(v Vec2[N]) Vec2[N] { return r.submat.LMul(v) }

// Transform is Rotate: a pure rotation has no translational part.
func (r Rot2[N]) Transform(v Vec2[N]) Vec2[N] { return r.Rotate(v) }

// InvTransform is InvRotate.
func (r Rot2[N]) InvTransform(v Vec2[N]) Vec2[N] { return r.InvRotate(v) }

// RMul returns r·v.
func (r Rot2[N]) RMul(v Vec2[N]) Vec2[N] { return r.submat.RMul(v) }

// LMul returns vᵗ·r.
func (r Rot2[N]) LMul(v Vec2[N]) Vec2[N] { return r.submat.LMul(v) }

// AbsoluteRotate returns |r|·v, the entry-wise absolute rotation of v.
func (r Rot2[N]) AbsoluteRotate(v Vec2[N]) Vec2[N] { return r.submat.Absolute().RMul(v) }

// Absolute returns the entry-wise absolute value of the rotation matrix.
func (r Rot2[N]) Absolute() Mat2[N] { return r.submat.Absolute() }

// ToRotMat returns the explicit rotation matrix.
func (r Rot2[N]) ToRotMat() Mat2[N] { return r.submat }

// Mul returns the composition r·o (o is applied first).
func (r Rot2[N]) Mul(o Rot2[N]) Rot2[N] { return Rot2[N]{submat: r.submat.Mul(o.submat)} }

// Transposed returns rᵗ, which is also r⁻¹.
func (r Rot2[N]) Transposed() Rot2[N] {
	r.submat.Transpose()

	return r
}

// Transpose transposes r in place.
func (r *Rot2[N]) Transpose() { r.submat.Transpose() }

// Inverted returns rᵗ. A rotation is never singular.
func (r Rot2[N]) Inverted() (Rot2[N], bool) { return r.Transposed(), true }

// Invert transposes r in place and reports true.
func (r *Rot2[N]) Invert() bool {
	r.submat.Transpose()

	return true
}

// ToHomogeneous returns r as a 3×3 linear map with last row (0, 0, 1).
func (r Rot2[N]) ToHomogeneous() Mat3[N] { return r.submat.ToHomogeneous() }

// ApproxEq reports whether r and o have entries within eps of each other.
func (r Rot2[N]) ApproxEq(o Rot2[N], eps float64) bool { return r.submat.ApproxEq(o.submat, eps) }
