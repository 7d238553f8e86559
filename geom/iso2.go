// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Iso2 is a rigid transform of 2-D space: R·p + t.
// The zero value is not an isometry; start from NewIso2 or One.
type Iso2[N scalar.Real] struct {
	rotation    Rot2[N]
	translation Vec2[N]
}

// NewIso2 builds the isometry that rotates by the angle rotation, then
// translates by translation.
func NewIso2[N scalar.Real](translation Vec2[N], rotation Vec1[N]) Iso2[N] {
	return Iso2[N]{rotation: rot2From(rotation), translation: translation}
}

// NewIso2FromParts assembles an isometry from an explicit rotation and translation.
func NewIso2FromParts[N scalar.Real](rotation Rot2[N], translation Vec2[N]) Iso2[N] {
	return Iso2[N]{rotation: rotation, translation: translation}
}

// Shape reports the static dimension marker.
func (m Iso2[N]) Shape() traits.D2 { return traits.D2{} }

// Dim returns the dimension of the transformed space.
func (m Iso2[N]) Dim() int { return 2 }

// RotPart returns the rotational part.
func (m Iso2[N]) RotPart() Rot2[N] { return m.rotation }

// One returns the identity isometry. The receiver is ignored.
func (m Iso2[N]) One() Iso2[N] { return Iso2[N]{rotation: Rot2[N]{}.One()} }

// Translation returns the translational part t.
func (m Iso2[N]) Translation() Vec2[N] { return m.translation }

// InvTranslation returns −t.
func (m Iso2[N]) InvTranslation() Vec2[N] { return m.translation.Neg() }

// TranslateBy adds v to the translation in place.
func (m *Iso2[N]) TranslateBy(v Vec2[N]) { m.translation = m.translation.Add(v) }

// Translated returns the value form of TranslateBy.
func (m Iso2[N]) Translated(v Vec2[N]) Iso2[N] {
	m.TranslateBy(v)

	return m
}

// SetTranslation replaces the translation.
func (m *Iso2[N]) SetTranslation(v Vec2[N]) { m.translation = v }

// Translate returns p + t.
func (m Iso2[N]) Translate(p Vec2[N]) Vec2[N] { return p.Add(m.translation) }

// InvTranslate returns p − t.
func (m Iso2[N]) InvTranslate(p Vec2[N]) Vec2[N] { return p.Sub(m.translation) }

// Rotation returns the rotation angle, held in a 1-D vector.
func (m Iso2[N]) Rotation() Vec1[N] { return m.rotation.Rotation() }

// InvRotation returns the angle of the inverse rotation.
func (m Iso2[N]) InvRotation() Vec1[N] { return m.rotation.InvRotation() }

// RotateBy turns the whole isometry about the origin: both the rotation and
// the translation are rotated by the delta described by v.
func (m *Iso2[N]) RotateBy(v Vec1[N]) {
	delta := rot2From(v)
	m.rotation = delta.Mul(m.rotation)
	m.translation = delta.Rotate(m.translation)
}

// Rotated returns the value form of RotateBy.
func (m Iso2[N]) Rotated(v Vec1[N]) Iso2[N] {
	m.RotateBy(v)

	return m
}

// SetRotation replaces the rotational part; the translation is kept.
func (m *Iso2[N]) SetRotation(v Vec1[N]) { m.rotation = rot2From(v) }

// Rotate returns R·v.
func (m Iso2[N]) Rotate(v Vec2[N]) Vec2[N] { return m.rotation.Rotate(v) }

// InvRotate returns Rᵗ·v.
func (m Iso2[N]) InvRotate(v Vec2[N]) Vec2[N] { return m.rotation.InvRotate(v) }

// RotatedWrtPoint rotates m by amount around center: translate by −center,
// rotate, translate back by +center.
func (m Iso2[N]) RotatedWrtPoint(amount Vec1[N], center Vec2[N]) Iso2[N] {
	res := m.Translated(center.Neg())
	res.RotateBy(amount)
	res.TranslateBy(center)

	return res
}

// RotateWrtPoint is the in-place form of RotatedWrtPoint.
func (m *Iso2[N]) RotateWrtPoint(amount Vec1[N], center Vec2[N]) {
	*m = m.RotatedWrtPoint(amount, center)
}

// RotatedWrtCenter rotates m around its own translation, so its position
// does not change.
func (m Iso2[N]) RotatedWrtCenter(amount Vec1[N]) Iso2[N] {
	return m.RotatedWrtPoint(amount, m.translation)
}

// RotateWrtCenter is the in-place form of RotatedWrtCenter.
func (m *Iso2[N]) RotateWrtCenter(amount Vec1[N]) {
	*m = m.RotatedWrtCenter(amount)
}

// AbsoluteRotate returns |R|·v.
func (m Iso2[N]) AbsoluteRotate(v Vec2[N]) Vec2[N] { return m.rotation.AbsoluteRotate(v) }

// ToRotMat returns the rotation matrix R.
func (m Iso2[N]) ToRotMat() Mat2[N] { return m.rotation.ToRotMat() }

// Transformation returns m itself.
func (m Iso2[N]) Transformation() Iso2[N] { return m }

// InvTransformation returns m⁻¹.
func (m Iso2[N]) InvTransformation() Iso2[N] {
	inv, _ := m.Inverted()

	return inv
}

// TransformBy composes o after m in place: m ← o·m.
func (m *Iso2[N]) TransformBy(o Iso2[N]) { *m = o.Mul(*m) }

// Transformed returns o·m.
func (m Iso2[N]) Transformed(o Iso2[N]) Iso2[N] { return o.Mul(m) }

// SetTransformation replaces m with o.
func (m *Iso2[N]) SetTransformation(o Iso2[N]) { *m = o }

// Transform returns R·p + t.
func (m Iso2[N]) Transform(p Vec2[N]) Vec2[N] { return m.rotation.Rotate(p).Add(m.translation) }

// InvTransform returns Rᵗ·(p − t).
func (m Iso2[N]) InvTransform(p Vec2[N]) Vec2[N] { return m.rotation.InvRotate(p.Sub(m.translation)) }

// MulVec is Transform: m·p in homogeneous terms.
func (m Iso2[N]) MulVec(p Vec2[N]) Vec2[N] { return m.Transform(p) }

// Mul returns the composition m·o: o is applied first.
func (m Iso2[N]) Mul(o Iso2[N]) Iso2[N] {
	return Iso2[N]{
		rotation:    m.rotation.Mul(o.rotation),
		translation: m.rotation.Rotate(o.translation).Add(m.translation),
	}
}

// Inverted returns (Rᵗ, −Rᵗ·t). An isometry is never singular.
func (m Iso2[N]) Inverted() (Iso2[N], bool) {
	rt := m.rotation.Transposed()

	return Iso2[N]{rotation: rt, translation: rt.Rotate(m.translation).Neg()}, true
}

// Invert replaces m with its inverse and reports true.
func (m *Iso2[N]) Invert() bool {
	*m, _ = m.Inverted()

	return true
}

// ToHomogeneous returns the 3×3 matrix [R t; 0 1].
func (m Iso2[N]) ToHomogeneous() Mat3[N] {
	var h Mat3[N]
	kAffine(h[:], m.rotation.submat[:], m.translation[:], 2)

	return h
}

// FromHomogeneous splits a matrix [R t; 0 1] back into an isometry. The
// linear block must be a rotation; it is not checked. The receiver is ignored.
func (m Iso2[N]) FromHomogeneous(h Mat3[N]) Iso2[N] {
	var res Iso2[N]
	kSplitAffine(res.rotation.submat[:], res.translation[:], h[:], 2)

	return res
}

// ApproxEq reports whether both parts of m are within eps of those of o.
func (m Iso2[N]) ApproxEq(o Iso2[N], eps float64) bool {
	return m.rotation.ApproxEq(o.rotation, eps) && m.translation.ApproxEq(o.translation, eps)
}
