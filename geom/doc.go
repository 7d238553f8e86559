// SPDX-License-Identifier: MIT

// Package geom provides the fixed-dimension geometric types of lvgeom.
//
// The package provides:
//
//   - Vec0..Vec6: small vectors stored as plain arrays, compared with ==.
//   - Mat1..Mat6: square matrices stored row-major, inverted by Gauss–Jordan
//     elimination with partial pivoting.
//   - Rot2, Rot3, Rot4: rotations kept as orthogonal matrices. Rot2 is
//     parameterised by an angle (Vec1), Rot3 by a scaled axis (Vec3) and Rot4
//     by another Rot4.
//   - Iso2, Iso3, Iso4: rigid transforms (rotation followed by translation).
//
// Every type is a value: operations return new values, and the few in-place
// methods (Normalize, Invert, TranslateBy, ...) are defined on the pointer.
// The capability each type offers is described by the interfaces of package
// traits; the generic free functions of package na dispatch on them.
//
// Singularity: a matrix is reported singular when some pivot satisfies
// |pivot| <= eps·max|aᵢⱼ| with eps = scalar.DefaultEpsilon. For integer
// element types the tolerance is zero and the test is exact.
//
// Vec2/Vec3/Vec4 and Mat3/Mat4 convert to and from the float32 types of
// golang.org/x/image/math/f32 for hand-off to rendering code.
package geom
