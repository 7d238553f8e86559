// SPDX-License-Identifier: MIT

package traits

// Translation is implemented by objects that carry a translational component V.
//
// Contract:
//   - Translation() + InvTranslation() == zero.
//   - TranslateBy ADDS v to the current translation; SetTranslation REPLACES it.
//   - Translated(v) is the value-returning form of TranslateBy.
type Translation[V, T any] interface {
	Translation() V
	InvTranslation() V
	TranslateBy(v V)
	Translated(v V) T
	SetTranslation(v V)
}

// Translate applies the translation of an object to an arbitrary point
// without touching the object itself.
type Translate[V any] interface {
	Translate(v V) V
	InvTranslate(v V) V
}

// Rotation is implemented by objects that carry a rotational component,
// parameterised by V (an angle, an axis-angle vector or a rotation itself).
//
// Contract:
//   - RotateBy COMPOSES: the rotation derived from v is applied after the current one.
//   - SetRotation REPLACES the rotation outright.
//   - For orthogonal representations InvRotation() is the transposed rotation.
type Rotation[V, T any] interface {
	Rotation() V
	InvRotation() V
	RotateBy(v V)
	Rotated(v V) T
	SetRotation(v V)
}

// Rotate applies the rotation of an object to a vector.
type Rotate[V any] interface {
	Rotate(v V) V
	InvRotate(v V) V
}

// RotationWithTranslation is a rotation around an arbitrary pivot.
//
// Contract:
//   - RotatedWrtPoint(a, c) == Translated(−c), then Rotated(a), then Translated(+c).
//   - RotatedWrtCenter(a) == RotatedWrtPoint(a, Translation()): the object turns in place.
type RotationWithTranslation[LV, AV, T any] interface {
	RotatedWrtPoint(amount AV, center LV) T
	RotateWrtPoint(amount AV, center LV)
	RotatedWrtCenter(amount AV) T
	RotateWrtCenter(amount AV)
}

// RotationMatrix converts a rotation representation into its explicit
// orthogonal matrix M.
type RotationMatrix[M any] interface {
	ToRotMat() M
}

// AbsoluteRotate rotates v with the element-wise absolute value of the rotation
// matrix. Applied to the half extents of an axis-aligned box it yields half
// extents that still bound the rotated box.
type AbsoluteRotate[V any] interface {
	AbsoluteRotate(v V) V
}

// Transformation is the Translation/Rotation pattern generalised to a whole
// rigid transform V.
//
// Contract:
//   - TransformBy(v) composes: v is applied after the current transform.
//   - SetTransformation replaces.
type Transformation[V, T any] interface {
	Transformation() V
	InvTransformation() V
	TransformBy(v V)
	Transformed(v V) T
	SetTransformation(v V)
}

// Transform applies an object's transform to a point: rotation first, then
// translation. InvTransform undoes it.
type Transform[V any] interface {
	Transform(v V) V
	InvTransform(v V) V
}
