// SPDX-License-Identifier: MIT

package geom

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Conversions to and from golang.org/x/image/math/f32. Both sides are
// row-major, so matrices convert entry by entry.

// F32 converts v to an f32.Vec2.
func (v Vec2[N]) F32() f32.Vec2 { return f32.Vec2{float32(v[0]), float32(v[1])} }

// F32 converts v to an f32.Vec3.
func (v Vec3[N]) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// F32 converts v to an f32.Vec4.
func (v Vec4[N]) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// F32 converts m to an f32.Mat3.
func (m Mat3[N]) F32() f32.Mat3 {
	var r f32.Mat3
	for i, x := range m {
		r[i] = float32(x)
	}

	return r
}

// F32 converts m to an f32.Mat4.
func (m Mat4[N]) F32() f32.Mat4 {
	var r f32.Mat4
	for i, x := range m {
		r[i] = float32(x)
	}

	return r
}

// Vec2FromF32 converts an f32.Vec2.
func Vec2FromF32[N scalar.Scalar](v f32.Vec2) Vec2[N] { return Vec2[N]{N(v[0]), N(v[1])} }

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32[N scalar.Scalar](v f32.Vec3) Vec3[N] {
	return Vec3[N]{N(v[0]), N(v[1]), N(v[2])}
}

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32[N scalar.Scalar](v f32.Vec4) Vec4[N] {
	return Vec4[N]{N(v[0]), N(v[1]), N(v[2]), N(v[3])}
}

// Mat3FromF32 converts an f32.Mat3.
func Mat3FromF32[N scalar.Scalar](m f32.Mat3) Mat3[N] {
	var r Mat3[N]
	for i, x := range m {
		r[i] = N(x)
	}

	return r
}

// Mat4FromF32 converts an f32.Mat4.
func Mat4FromF32[N scalar.Scalar](m f32.Mat4) Mat4[N] {
	var r Mat4[N]
	for i, x := range m {
		r[i] = N(x)
	}

	return r
}
