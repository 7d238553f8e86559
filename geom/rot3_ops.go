// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// NewRot3FromMat wraps m without checking it: m must be orthogonal with
// determinant +1.
func NewRot3FromMat[N scalar.Real](m Mat3[N]) Rot3[N] { return Rot3[N]{submat: m} }

// Shape reports the static dimension marker.
func (r Rot3[N]) Shape() traits.D3 { return traits.D3{} }

// Dim returns the dimension of the rotated space.
func (r Rot3[N]) Dim() int { return 3 }

// Submat returns the orthogonal matrix of r.
func (r Rot3[N]) Submat() Mat3[N] { return r.submat }

// Entry returns entry (i, j) of the rotation matrix.
func (r Rot3[N]) Entry(i, j int) N { return r.submat.Entry(i, j) }

// One returns the identity rotation. The receiver is ignored.
func (r Rot3[N]) One() Rot3[N] { return Rot3[N]{submat: Mat3[N]{}.One()} }

// RotateBy composes r with the rotation described by v: v is applied after r.
func (r *Rot3[N]) RotateBy(v Vec3[N]) {
	r.submat = rot3From(v).submat.Mul(r.submat)
}

// Rotated returns the value form of RotateBy.
func (r Rot3[N]) Rotated(v Vec3[N]) Rot3[N] {
	r.RotateBy(v)

	return r
}

// SetRotation replaces r with the rotation described by v.
func (r *Rot3[N]) SetRotation(v Vec3[N]) { *r = rot3From(v) }

// Rotate returns r·v.
func (r Rot3[N]) Rotate(v Vec3[N]) Vec3[N] { return r.submat.RMul(v) }

// InvRotate returns rᵗ·v, the inverse rotation of v.
func (r Rot3[N]) InvRotate(v Vec3[N]) Vec3[N] { return r.submat.LMul(v) }

// Transform is Rotate: a pure rotation has no translational part.
func (r Rot3[N]) Transform(v Vec3[N]) Vec3[N] { return r.Rotate(v) }

// InvTransform is InvRotate.
func (r Rot3[N]) InvTransform(v Vec3[N]) Vec3[N] { return r.InvRotate(v) }

// RMul returns r·v.
func (r Rot3[N]) RMul(v Vec3[N]) Vec3[N] { return r.submat.RMul(v) }

// LMul returns vᵗ·r.
func (r Rot3[N]) LMul(v Vec3[N]) Vec3[N] { return r.submat.LMul(v) }

// AbsoluteRotate returns |r|·v, the entry-wise absolute rotation of v.
func (r Rot3[N]) AbsoluteRotate(v Vec3[N]) Vec3[N] { return r.submat.Absolute().RMul(v) }

// Absolute returns the entry-wise absolute value of the rotation matrix.
func (r Rot3[N]) Absolute() Mat3[N] { return r.submat.Absolute() }

// ToRotMat returns the explicit rotation matrix.
func (r Rot3[N]) ToRotMat() Mat3[N] { return r.submat }

// Mul returns the composition r·o (o is applied first).
func (r Rot3[N]) Mul(o Rot3[N]) Rot3[N] { return Rot3[N]{submat: r.submat.Mul(o.submat)} }

// Transposed returns rᵗ, which is also r⁻¹.
func (r Rot3[N]) Transposed() Rot3[N] {
	r.submat.Transpose()

	return r
}

// Transpose transposes r in place.
func (r *Rot3[N]) Transpose() { r.submat.Transpose() }

// Inverted returns rᵗ. A rotation is never singular.
func (r Rot3[N]) Inverted() (Rot3[N], bool) { return r.Transposed(), true }

// Invert transposes r in place and reports true.
func (r *Rot3[N]) Invert() bool {
	r.submat.Transpose()

	return true
}

// ToHomogeneous returns r as a 4×4 linear map with last row (0, 0, 0, 1).
func (r Rot3[N]) ToHomogeneous() Mat4[N] { return r.submat.ToHomogeneous() }

// ApproxEq reports whether r and o have entries within eps of each other.
func (r Rot3[N]) ApproxEq(o Rot3[N], eps float64) bool { return r.submat.ApproxEq(o.submat, eps) }
