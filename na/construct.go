// SPDX-License-Identifier: MIT

package na

import (
	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Zero returns the additive identity of T.
func Zero[T traits.Zero[T]]() T {
	var t T

	return t.Zero()
}

// One returns the multiplicative identity of T: the identity matrix, rotation or isometry.
func One[T traits.One[T]]() T {
	var t T

	return t.One()
}

// Dim returns the static dimension of T without a value at hand.
func Dim[T traits.Shaped[D], D traits.Dimension]() int {
	var d D

	return d.Len()
}

// Vec1 builds a 1-D vector.
func Vec1[N scalar.Scalar](x N) geom.Vec1[N] { return geom.NewVec1(x) }

// Vec2 builds a 2-D vector.
func Vec2[N scalar.Scalar](x, y N) geom.Vec2[N] { return geom.NewVec2(x, y) }

// Vec3 builds a 3-D vector.
func Vec3[N scalar.Scalar](x, y, z N) geom.Vec3[N] { return geom.NewVec3(x, y, z) }

// Vec4 builds a 4-D vector.
func Vec4[N scalar.Scalar](x, y, z, w N) geom.Vec4[N] { return geom.NewVec4(x, y, z, w) }

// Vec5 builds a 5-D vector.
func Vec5[N scalar.Scalar](x, y, z, w, a N) geom.Vec5[N] { return geom.NewVec5(x, y, z, w, a) }

// Vec6 builds a 6-D vector.
func Vec6[N scalar.Scalar](x, y, z, w, a, b N) geom.Vec6[N] { return geom.NewVec6(x, y, z, w, a, b) }

// Mat1 builds a 1×1 matrix from its entries in row-major order.
func Mat1[N scalar.Scalar](
	m11 N,
) geom.Mat1[N] {
	return geom.NewMat1(
		m11,
	)
}

// Mat2 builds a 2×2 matrix from its entries in row-major order.
func Mat2[N scalar.Scalar](
	m11, m12,
	m21, m22 N,
) geom.Mat2[N] {
	return geom.NewMat2(
		m11, m12,
		m21, m22,
	)
}

// Mat3 builds a 3×3 matrix from its entries in row-major order.
func Mat3[N scalar.Scalar](
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 N,
) geom.Mat3[N] {
	return geom.NewMat3(
		m11, m12, m13,
		m21, m22, m23,
		m31, m32, m33,
	)
}

// Mat4 builds a 4×4 matrix from its entries in row-major order.
func Mat4[N scalar.Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 N,
) geom.Mat4[N] {
	return geom.NewMat4(
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	)
}

// Mat5 builds a 5×5 matrix from its entries in row-major order.
func Mat5[N scalar.Scalar](
	m11, m12, m13, m14, m15,
	m21, m22, m23, m24, m25,
	m31, m32, m33, m34, m35,
	m41, m42, m43, m44, m45,
	m51, m52, m53, m54, m55 N,
) geom.Mat5[N] {
	return geom.NewMat5(
		m11, m12, m13, m14, m15,
		m21, m22, m23, m24, m25,
		m31, m32, m33, m34, m35,
		m41, m42, m43, m44, m45,
		m51, m52, m53, m54, m55,
	)
}

// Mat6 builds a 6×6 matrix from its entries in row-major order.
func Mat6[N scalar.Scalar](
	m11, m12, m13, m14, m15, m16,
	m21, m22, m23, m24, m25, m26,
	m31, m32, m33, m34, m35, m36,
	m41, m42, m43, m44, m45, m46,
	m51, m52, m53, m54, m55, m56,
	m61, m62, m63, m64, m65, m66 N,
) geom.Mat6[N] {
	return geom.NewMat6(
		m11, m12, m13, m14, m15, m16,
		m21, m22, m23, m24, m25, m26,
		m31, m32, m33, m34, m35, m36,
		m41, m42, m43, m44, m45, m46,
		m51, m52, m53, m54, m55, m56,
		m61, m62, m63, m64, m65, m66,
	)
}
