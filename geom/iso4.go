// SPDX-License-Identifier: MIT

package geom

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Iso4 is a rigid transform of 4-D space: R·p + t.
// The zero value is not an isometry; start from NewIso4 or One.
type Iso4[N scalar.Real] struct {
	rotation    Rot4[N]
	translation Vec4[N]
}

// NewIso4 builds the isometry that rotates by the rotation rotation, then
// translates by translation.
func NewIso4[N scalar.Real](translation Vec4[N], rotation Rot4[N]) Iso4[N] {
	return Iso4[N]{rotation: rot4From(rotation), translation: translation}
}

// NewIso4FromParts assembles an isometry from an explicit rotation and translation.
func NewIso4FromParts[N scalar.Real](rotation Rot4[N], translation Vec4[N]) Iso4[N] {
	return Iso4[N]{rotation: rotation, translation: translation}
}

// Shape reports the static dimension marker.
func (m Iso4[N]) Shape() traits.D4 { return traits.D4{} }

// Dim returns the dimension of the transformed space.
func (m Iso4[N]) Dim() int { return 4 }

// RotPart returns the rotational part.
func (m Iso4[N]) RotPart() Rot4[N] { return m.rotation }

// One returns the identity isometry. The receiver is ignored.
func (m Iso4[N]) One() Iso4[N] { return Iso4[N]{rotation: Rot4[N]{}.One()} }

// Translation returns the translational part t.
func (m Iso4[N]) Translation() Vec4[N] { return m.translation }

// InvTranslation returns −t.
func (m Iso4[N]) InvTranslation() Vec4[N] { return m.translation.Neg() }

// TranslateBy adds v to the translation in place.
func (m *Iso4[N]) TranslateBy(v Vec4[N]) { m.translation = m.translation.Add(v) }

// Translated returns the value form of TranslateBy.
func (m Iso4[N]) Translated(v Vec4[N]) Iso4[N] {
	m.TranslateBy(v)

	return m
}

// SetTranslation replaces the translation.
func (m *Iso4[N]) SetTranslation(v Vec4[N]) { m.translation = v }

// Translate returns p + t.
func (m Iso4[N]) Translate(p Vec4[N]) Vec4[N] { return p.Add(m.translation) }

// InvTranslate returns p − t.
func (m Iso4[N]) InvTranslate(p Vec4[N]) Vec4[N] { return p.Sub(m.translation) }

// Rotation returns the rotational part.
func (m Iso4[N]) Rotation() Rot4[N] { return m.rotation.Rotation() }

// InvRotation returns the inverse of the rotational part.
func (m Iso4[N]) InvRotation() Rot4[N] { return m.rotation.InvRotation() }

// RotateBy turns the whole isometry about the origin: both the rotation and
// the translation are rotated by the delta described by v.
func (m *Iso4[N]) RotateBy(v Rot4[N]) {
	delta := rot4From(v)
	m.rotation = delta.Mul(m.rotation)
	m.translation = delta.Rotate(m.translation)
}

// Rotated returns the value form of RotateBy.
func (m Iso4[N]) Rotated(v Rot4[N]) Iso4[N] {
	m.RotateBy(v)

	return m
}

// SetRotation replaces the rotational part; the translation is kept.
func (m *Iso4[N]) SetRotation(v Rot4[N]) { m.rotation = rot4From(v) }

// Rotate returns R·v.
func (m Iso4[N]) Rotate(v Vec4[N]) Vec4[N] { return m.rotation.Rotate(v) }

// InvRotate returns Rᵗ·v.
func (m Iso4[N]) InvRotate(v Vec4[N]) Vec4[N] { return m.rotation.InvRotate(v) }

// RotatedWrtPoint rotates m by amount around center: translate by −center,
// rotate, translate back by +center.
func (m Iso4[N]) RotatedWrtPoint(amount Rot4[N], center Vec4[N]) Iso4[N] {
	res := m.Translated(center.Neg())
	res.RotateBy(amount)
	res.TranslateBy(center)

	return res
}

// RotateWrtPoint is the in-place form of RotatedWrtPoint.
func (m *Iso4[N]) RotateWrtPoint(amount Rot4[N], center Vec4[N]) {
	*m = m.RotatedWrtPoint(amount, center)
}

// RotatedWrtCenter rotates m around its own translation, so its position
// does not change.
func (m Iso4[N]) RotatedWrtCenter(amount Rot4[N]) Iso4[N] {
	return m.RotatedWrtPoint(amount, m.translation)
}

// RotateWrtCenter is the in-place form of RotatedWrtCenter.
func (m *Iso4[N]) RotateWrtCenter(amount Rot4[N]) {
	*m = m.RotatedWrtCenter(amount)
}

// AbsoluteRotate returns |R|·v.
func (m Iso4[N]) AbsoluteRotate(v Vec4[N]) Vec4[N] { return m.rotation.AbsoluteRotate(v) }

// ToRotMat returns the rotation matrix R.
func (m Iso4[N]) ToRotMat() Mat4[N] { return m.rotation.ToRotMat() }

// Transformation returns m itself.
func (m Iso4[N]) Transformation() Iso4[N] { return m }

// InvTransformation returns m⁻¹.
func (m Iso4[N]) InvTransformation() Iso4[N] {
	inv, _ := m.Inverted()

	return inv
}

// TransformBy composes o after m in place: m ← o·m.
func (m *Iso4[N]) TransformBy(o Iso4[N]) { *m = o.Mul(*m) }

// Transformed returns o·m.
func (m Iso4[N]) Transformed(o Iso4[N]) Iso4[N] { return o.Mul(m) }

// SetTransformation replaces m with o.
func (m *Iso4[N]) SetTransformation(o Iso4[N]) { *m = o }

// Transform returns R·p + t.
func (m Iso4[N]) Transform(p Vec4[N]) Vec4[N] { return m.rotation.Rotate(p).Add(m.translation) }

// InvTransform returns Rᵗ·(p − t).
func (m Iso4[N]) InvTransform(p Vec4[N]) Vec4[N] { return m.rotation.InvRotate(p.Sub(m.translation)) }

// MulVec is Transform: m·p in homogeneous terms.
func (m Iso4[N]) MulVec(p Vec4[N]) Vec4[N] { return m.Transform(p) }

// Mul returns the composition m·o: o is applied first.
func (m Iso4[N]) Mul(o Iso4[N]) Iso4[N] {
	return Iso4[N]{
		rotation:    m.rotation.Mul(o.rotation),
		translation: m.rotation.Rotate(o.translation).Add(m.translation),
	}
}

// Inverted returns (Rᵗ, −Rᵗ·t). An isometry is never singular.
func (m Iso4[N]) Inverted() (Iso4[N], bool) {
	rt := m.rotation.Transposed()

	return Iso4[N]{rotation: rt, translation: rt.Rotate(m.translation).Neg()}, true
}

// Invert replaces m with its inverse and reports true.
func (m *Iso4[N]) Invert() bool {
	*m, _ = m.Inverted()

	return true
}

// ToHomogeneous returns the 5×5 matrix [R t; 0 1].
func (m Iso4[N]) ToHomogeneous() Mat5[N] {
	var h Mat5[N]
	kAffine(h[:], m.rotation.submat[:], m.translation[:], 4)

	return h
}

// FromHomogeneous splits a matrix [R t; 0 1] back into an isometry. The
// linear block must be a rotation; it is not checked. The receiver is ignored.
func (m Iso4[N]) FromHomogeneous(h Mat5[N]) Iso4[N] {
	var res Iso4[N]
	kSplitAffine(res.rotation.submat[:], res.translation[:], h[:], 4)

	return res
}

// ApproxEq reports whether both parts of m are within eps of those of o.
func (m Iso4[N]) ApproxEq(o Iso4[N], eps float64) bool {
	return m.rotation.ApproxEq(o.rotation, eps) && m.translation.ApproxEq(o.translation, eps)
}
