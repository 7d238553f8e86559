// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// NewRot4FromMat wraps m without checking it: m must be orthogonal with
// determinant +1.
func NewRot4FromMat[N scalar.Real](m Mat4[N]) Rot4[N] { return Rot4[N]{submat: m} }

// Shape reports the static dimension marker.
func (r Rot4[N]) Shape() traits.D4 { return traits.D4{} }

// Dim returns the dimension of the rotated space.
func (r Rot4[N]) Dim() int { return 4 }

// Submat returns the orthogonal matrix of r.
func (r Rot4[N]) Submat() Mat4[N] { return r.submat }

// Entry returns entry (i, j) of the rotation matrix.
func (r Rot4[N]) Entry(i, j int) N { return r.submat.Entry(i, j) }

// One returns the identity rotation. The receiver is ignored.
func (r Rot4[N]) One() Rot4[N] { return Rot4[N]{submat: Mat4[N]{}.One()} }

// RotateBy composes r with the rotation described by v: v is applied after r.
func (r *Rot4[N]) RotateBy(v Rot4[N]) {
	r.submat = rot4From(v).submat.Mul(r.submat)
}

// Rotated returns the value form of RotateBy.
func (r Rot4[N]) Rotated(v Rot4[N]) Rot4[N] {
	r.RotateBy(v)

	return r
}

// SetRotation replaces r with the rotation described by v.
func (r *Rot4[N]) SetRotation(v Rot4[N]) { *r = rot4From(v) }

// Rotate returns r·v.
func (r Rot4[N]) Rotate(v Vec4[N]) Vec4[N] { return r.submat.RMul(v) }

// InvRotate returns rᵗ·v, the inverse rotation of v.
func (r Rot4[N]) InvRotate(v Vec4[N]) Vec4[N] { return r.submat.LMul(v) }

// Transform is Rotate: a pure rotation has no translational part.
func (r Rot4[N]) Transform(v Vec4[N]) Vec4[N] { return r.Rotate(v) }

// InvTransform is InvRotate.
func (r Rot4[N]) InvTransform(v Vec4[N]) Vec4[N] { return r.InvRotate(v) }

// RMul returns r·v.
func (r Rot4[N]) RMul(v Vec4[N]) Vec4[N] { return r.submat.RMul(v) }

// LMul returns vᵗ·r.
func (r Rot4[N]) LMul(v Vec4[N]) Vec4[N] { return r.submat.LMul(v) }

// AbsoluteRotate returns |r|·v, the entry-wise absolute rotation of v.
func (r Rot4[N]) AbsoluteRotate(v Vec4[N]) Vec4[N] { return r.submat.Absolute().RMul(v) }

// Absolute returns the entry-wise absolute value of the rotation matrix.
func (r Rot4[N]) Absolute() Mat4[N] { return r.submat.Absolute() }

// ToRotMat returns the explicit rotation matrix.
func (r Rot4[N]) ToRotMat() Mat4[N] { return r.submat }

// Mul returns the composition r·o (o is applied first).
func (r Rot4[N]) Mul(o Rot4[N]) Rot4[N] { return Rot4[N]{submat: r.submat.Mul(o.submat)} }

// Transposed returns rᵗ, which is also r⁻¹.
func (r Rot4[N]) Transposed() Rot4[N] {
	r.submat.Transpose()

	return r
}

// Transpose transposes r in place.
func (r *Rot4[N]) Transpose() { r.submat.Transpose() }

// Inverted returns rᵗ. A rotation is never singular.
func (r Rot4[N]) Inverted() (Rot4[N], bool) { return r.Transposed(), true }

// Invert transposes r in place and reports true.
func (r *Rot4[N]) Invert() bool {
	r.submat.Transpose()

	return true
}

// ToHomogeneous returns r as a 5×5 linear map with last row (0, 0, 0, 0, 1).
func (r Rot4[N]) ToHomogeneous() Mat5[N] { return r.submat.ToHomogeneous() }

// ApproxEq reports whether r and o have entries within eps of each other.
func (r Rot4[N]) ApproxEq(o Rot4[N], eps float64) bool { return r.submat.ApproxEq(o.submat, eps) }
