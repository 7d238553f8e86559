// SPDX-License-Identifier: MIT

// Package na is the free-function facade of lvgeom.
//
// Every function forwards to one capability method of its argument, and its
// type constraint names exactly the trait it needs, so na.Transform accepts a
// vector, a rotation or an isometry alike and rejects at compile time anything
// that cannot transform a point.
//
// Calling conventions:
//   - Traits that contain an in-place operation are implemented by pointers, so
//     every function of those families takes a pointer: na.Translation(&iso),
//     na.Norm(&v), na.Inverted(&m). *matrix.DMat is already a pointer and is
//     passed as is.
//   - Pure families (Dot, Cross, Transform, Rotate, Outer, ...) take values.
//   - Functions without an argument to infer from name the result type:
//     na.One[geom.Iso3[float64]](), na.FromHomogeneous[geom.Vec3[float64]](h),
//     na.CastVec[geom.Vec3[float32]](v).
//
// Example:
//
//	iso := na.One[geom.Iso3[float64]]()
//	na.TranslateBy(&iso, na.Vec3(1.0, 1.0, 1.0))
//	p := na.Transform(iso, na.Vec3(0.0, 0.0, 0.0)) // (1, 1, 1)
package na
