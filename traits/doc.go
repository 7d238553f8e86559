// SPDX-License-Identifier: MIT

// Package traits declares the capability interfaces of lvgeom.
//
// Each interface names exactly one family of geometric operations. A concrete
// type implements only the families that are mathematically valid for it:
// a vector has Dot and Norm but no Rotation, a rotation composes but carries no
// translation, an isometry does both. Generic code (see package na) states the
// minimal set it needs as type constraints, so every call is resolved at compile
// time; nothing here is meant to be used as a dynamic interface value.
//
// Conventions:
//   - The trailing type parameter T is the implementing value type ("Self"):
//     value-returning operations such as Translated or Normalized return T.
//   - Interfaces that contain an in-place operation (TranslateBy, Normalize,
//     Invert, Transpose, ...) are satisfied by the pointer type, e.g. *geom.Iso3[float64].
//     Purely functional interfaces (Dot, Rotate, Cross, ...) are satisfied by the value type.
//   - Every in-place operation has a value-returning twin that leaves the receiver untouched.
//   - "Static" operations (FromHomogeneous, CanonicalBasis, One, Zero, SampleSphere) are
//     methods whose receiver is ignored; callers invoke them on the zero value of T.
package traits
