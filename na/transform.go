// SPDX-License-Identifier: MIT

package na

import "github.com/katalvlaran/lvgeom/traits"

// The Translation, Rotation and Transformation families contain in-place
// operations, so their functions take a pointer to the object, even the
// read-only ones: na.Translation(&iso). Translate, Rotate and Transform apply
// an object to a point and take the object by value.

// ---------- Translation ----------

// Translation returns the translational part of p.
func Translation[P traits.Translation[V, T], V, T any](p P) V { return p.Translation() }

// InvTranslation returns the translation that undoes Translation(p).
func InvTranslation[P traits.Translation[V, T], V, T any](p P) V { return p.InvTranslation() }

// TranslateBy adds v to the translation of p in place.
func TranslateBy[P traits.Translation[V, T], V, T any](p P, v V) { p.TranslateBy(v) }

// Translated returns a copy of *p translated by v.
func Translated[P traits.Translation[V, T], V, T any](p P, v V) T { return p.Translated(v) }

// SetTranslation replaces the translation of p.
func SetTranslation[P traits.Translation[V, T], V, T any](p P, v V) { p.SetTranslation(v) }

// Translate applies the translation of t to the point v.
func Translate[T traits.Translate[V], V any](t T, v V) V { return t.Translate(v) }

// InvTranslate applies the inverse translation of t to the point v.
func InvTranslate[T traits.Translate[V], V any](t T, v V) V { return t.InvTranslate(v) }

// ---------- Rotation ----------

// Rotation returns the rotational parameter of p: an angle for 2-D objects,
// a scaled axis for 3-D ones, the rotation itself for 4-D ones.
func Rotation[P traits.Rotation[V, T], V, T any](p P) V { return p.Rotation() }

// InvRotation returns the parameter of the inverse rotation.
func InvRotation[P traits.Rotation[V, T], V, T any](p P) V { return p.InvRotation() }

// RotateBy composes the rotation derived from v after the rotation of p.
func RotateBy[P traits.Rotation[V, T], V, T any](p P, v V) { p.RotateBy(v) }

// Rotated is the value-returning form of RotateBy.
func Rotated[P traits.Rotation[V, T], V, T any](p P, v V) T { return p.Rotated(v) }

// SetRotation replaces the rotation of p.
func SetRotation[P traits.Rotation[V, T], V, T any](p P, v V) { p.SetRotation(v) }

// Rotate applies the rotation of r to v.
func Rotate[R traits.Rotate[V], V any](r R, v V) V { return r.Rotate(v) }

// InvRotate applies the inverse rotation of r to v.
func InvRotate[R traits.Rotate[V], V any](r R, v V) V { return r.InvRotate(v) }

// RotatedWrtPoint returns a copy of *p rotated by amount around center.
func RotatedWrtPoint[P traits.RotationWithTranslation[LV, AV, T], LV, AV, T any](p P, amount AV, center LV) T {
	return p.RotatedWrtPoint(amount, center)
}

// RotateWrtPoint rotates p by amount around center in place.
func RotateWrtPoint[P traits.RotationWithTranslation[LV, AV, T], LV, AV, T any](p P, amount AV, center LV) {
	p.RotateWrtPoint(amount, center)
}

// RotatedWrtCenter returns a copy of *p turned in place around its own translation.
func RotatedWrtCenter[P traits.RotationWithTranslation[LV, AV, T], LV, AV, T any](p P, amount AV) T {
	return p.RotatedWrtCenter(amount)
}

// RotateWrtCenter turns p around its own translation.
func RotateWrtCenter[P traits.RotationWithTranslation[LV, AV, T], LV, AV, T any](p P, amount AV) {
	p.RotateWrtCenter(amount)
}

// ToRotMat returns the explicit rotation matrix of r.
func ToRotMat[R traits.RotationMatrix[M], M any](r R) M { return r.ToRotMat() }

// AbsoluteRotate rotates v by the entry-wise absolute rotation matrix of r.
func AbsoluteRotate[R traits.AbsoluteRotate[V], V any](r R, v V) V { return r.AbsoluteRotate(v) }

// ---------- Transformation ----------

// Transformation returns the whole rigid transform of p.
func Transformation[P traits.Transformation[V, T], V, T any](p P) V { return p.Transformation() }

// InvTransformation returns the inverse of Transformation(p).
func InvTransformation[P traits.Transformation[V, T], V, T any](p P) V {
	return p.InvTransformation()
}

// TransformBy composes v after the transform of p.
func TransformBy[P traits.Transformation[V, T], V, T any](p P, v V) { p.TransformBy(v) }

// Transformed is the value-returning form of TransformBy.
func Transformed[P traits.Transformation[V, T], V, T any](p P, v V) T { return p.Transformed(v) }

// SetTransformation replaces the transform of p.
func SetTransformation[P traits.Transformation[V, T], V, T any](p P, v V) { p.SetTransformation(v) }

// Transform maps the point v through t: rotation first, then translation.
func Transform[T traits.Transform[V], V any](t T, v V) V { return t.Transform(v) }

// InvTransform maps v through the inverse of t.
func InvTransform[T traits.Transform[V], V any](t T, v V) V { return t.InvTransform(v) }
