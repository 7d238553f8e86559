// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Iso3 is a rigid transform of 3-D space: a rotation followed by a translation.
//
// Applying it to a point p gives R·p + t; its inverse maps p to Rᵗ·(p − t).
// Rotation methods act on the whole object (rotation and translation turn
// about the origin); use RotateWrtCenter to turn it in place.
// The zero value is not an isometry; start from NewIso3 or One.
type Iso3[N scalar.Real] struct {
	rotation    Rot3[N]
	translation Vec3[N]
}

// NewIso3 builds the isometry that rotates by the scaled axis rotation, then
// translates by translation.
func NewIso3[N scalar.Real](translation Vec3[N], rotation Vec3[N]) Iso3[N] {
	return Iso3[N]{rotation: rot3From(rotation), translation: translation}
}

// NewIso3FromParts assembles an isometry from an explicit rotation and translation.
func NewIso3FromParts[N scalar.Real](rotation Rot3[N], translation Vec3[N]) Iso3[N] {
	return Iso3[N]{rotation: rotation, translation: translation}
}

// Shape reports the static dimension marker.
func (m Iso3[N]) Shape() traits.D3 { return traits.D3{} }

// Dim returns the dimension of the transformed space.
func (m Iso3[N]) Dim() int { return 3 }

// RotPart returns the rotational part.
func (m Iso3[N]) RotPart() Rot3[N] { return m.rotation }

// One returns the identity isometry. The receiver is ignored.
func (m Iso3[N]) One() Iso3[N] { return Iso3[N]{rotation: Rot3[N]{}.One()} }

// Translation returns the translational part t.
func (m Iso3[N]) Translation() Vec3[N] { return m.translation }

// InvTranslation returns −t.
func (m Iso3[N]) InvTranslation() Vec3[N] { return m.translation.Neg() }

// TranslateBy adds v to the translation in place.
func (m *Iso3[N]) TranslateBy(v Vec3[N]) { m.translation = m.translation.Add(v) }

// Translated returns the value form of TranslateBy.
func (m Iso3[N]) Translated(v Vec3[N]) Iso3[N] {
	m.TranslateBy(v)

	return m
}

// SetTranslation replaces the translation.
func (m *Iso3[N]) SetTranslation(v Vec3[N]) { m.translation = v }

// Translate returns p + t.
func (m Iso3[N]) Translate(p Vec3[N]) Vec3[N] { return p.Add(m.translation) }

// InvTranslate returns p − t.
func (m Iso3[N]) InvTranslate(p Vec3[N]) Vec3[N] { return p.Sub(m.translation) }

// Rotation returns the scaled axis of the rotational part.
func (m Iso3[N]) Rotation() Vec3[N] { return m.rotation.Rotation() }

// InvRotation returns the scaled axis of the inverse rotational part.
func (m Iso3[N]) InvRotation() Vec3[N] { return m.rotation.InvRotation() }

// RotateBy turns the whole isometry about the origin: both the rotation and
// the translation are rotated by the delta described by v.
func (m *Iso3[N]) RotateBy(v Vec3[N]) {
	delta := rot3From(v)
	m.rotation = delta.Mul(m.rotation)
	m.translation = delta.Rotate(m.translation)
}

// Rotated returns the value form of RotateBy.
func (m Iso3[N]) Rotated(v Vec3[N]) Iso3[N] {
	m.RotateBy(v)

	return m
}

// SetRotation replaces the rotational part; the translation is kept.
func (m *Iso3[N]) SetRotation(v Vec3[N]) { m.rotation = rot3From(v) }

// Rotate returns R·v.
func (m Iso3[N]) Rotate(v Vec3[N]) Vec3[N] { return m.rotation.Rotate(v) }

// InvRotate returns Rᵗ·v.
func (m Iso3[N]) InvRotate(v Vec3[N]) Vec3[N] { return m.rotation.InvRotate(v) }

// RotatedWrtPoint rotates m by amount around center: translate by −center,
// rotate, translate back by +center.
func (m Iso3[N]) RotatedWrtPoint(amount Vec3[N], center Vec3[N]) Iso3[N] {
	res := m.Translated(center.Neg())
	res.RotateBy(amount)
	res.TranslateBy(center)

	return res
}

// RotateWrtPoint is the in-place form of RotatedWrtPoint.
func (m *Iso3[N]) RotateWrtPoint(amount Vec3[N], center Vec3[N]) {
	*m = m.RotatedWrtPoint(amount, center)
}

// RotatedWrtCenter rotates m around its own translation, so its position
// does not change.
func (m Iso3[N]) RotatedWrtCenter(amount Vec3[N]) Iso3[N] {
	return m.RotatedWrtPoint(amount, m.translation)
}

// RotateWrtCenter is the in-place form of RotatedWrtCenter.
func (m *Iso3[N]) RotateWrtCenter(amount Vec3[N]) {
	*m = m.RotatedWrtCenter(amount)
}

// AbsoluteRotate returns |R|·v.
func (m Iso3[N]) AbsoluteRotate(v Vec3[N]) Vec3[N] { return m.rotation.AbsoluteRotate(v) }

// ToRotMat returns the rotation matrix R.
func (m Iso3[N]) ToRotMat() Mat3[N] { return m.rotation.ToRotMat() }

// Transformation returns m itself.
func (m Iso3[N]) Transformation() Iso3[N] { return m }

// InvTransformation returns m⁻¹.
func (m Iso3[N]) InvTransformation() Iso3[N] {
	inv, _ := m.Inverted()

	return inv
}

// TransformBy composes o after m in place: m ← o·m.
func (m *Iso3[N]) TransformBy(o Iso3[N]) { *m = o.Mul(*m) }

// Transformed returns o·m.
func (m Iso3[N]) Transformed(o Iso3[N]) Iso3[N] { return o.Mul(m) }

// SetTransformation replaces m with o.
func (m *Iso3[N]) SetTransformation(o Iso3[N]) { *m = o }

// Transform returns R·p + t.
func (m Iso3[N]) Transform(p Vec3[N]) Vec3[N] { return m.rotation.Rotate(p).Add(m.translation) }

// InvTransform returns Rᵗ·(p − t).
func (m Iso3[N]) InvTransform(p Vec3[N]) Vec3[N] { return m.rotation.InvRotate(p.Sub(m.translation)) }

// MulVec is Transform: m·p in homogeneous terms.
func (m Iso3[N]) MulVec(p Vec3[N]) Vec3[N] { return m.Transform(p) }

// Mul returns the composition m·o: o is applied first.
func (m Iso3[N]) Mul(o Iso3[N]) Iso3[N] {
	return Iso3[N]{
		rotation:    m.rotation.Mul(o.rotation),
		translation: m.rotation.Rotate(o.translation).Add(m.translation),
	}
}

// Inverted returns (Rᵗ, −Rᵗ·t). An isometry is never singular.
func (m Iso3[N]) Inverted() (Iso3[N], bool) {
	rt := m.rotation.Transposed()

	return Iso3[N]{rotation: rt, translation: rt.Rotate(m.translation).Neg()}, true
}

// Invert replaces m with its inverse and reports true.
func (m *Iso3[N]) Invert() bool {
	*m, _ = m.Inverted()

	return true
}

// ToHomogeneous returns the 4×4 matrix [R t; 0 1].
func (m Iso3[N]) ToHomogeneous() Mat4[N] {
	var h Mat4[N]
	kAffine(h[:], m.rotation.submat[:], m.translation[:], 3)

	return h
}

// FromHomogeneous splits a matrix [R t; 0 1] back into an isometry. The
// linear block must be a rotation; it is not checked. The receiver is ignored.
func (m Iso3[N]) FromHomogeneous(h Mat4[N]) Iso3[N] {
	var res Iso3[N]
	kSplitAffine(res.rotation.submat[:], res.translation[:], h[:], 3)

	return res
}

// ApproxEq reports whether both parts of m are within eps of those of o.
func (m Iso3[N]) ApproxEq(o Iso3[N], eps float64) bool {
	return m.rotation.ApproxEq(o.rotation, eps) && m.translation.ApproxEq(o.translation, eps)
}
