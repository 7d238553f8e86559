// SPDX-License-Identifier: MIT

// Package matrix provides runtime-sized dense matrices (DMat) and vectors (DVec)
// for the cases the fixed-size families of package geom cannot cover: shapes
// known only at run time, rectangular data sets, or sides larger than six.
//
// The package provides:
//
//   - DMat: a row-major r×c buffer with bounds-checked accessors (At/Set/Row/Col
//     return errors, never panic), Add/Sub/Mul/MulVec, Transposed/Transpose,
//     Inverted/Invert/Inverse, Det, Absolute, Mean and Cov.
//   - DVec: a plain slice type with Dot, SubDot, Norm, Normalize and Outer.
//   - Conversions: CastDMat/CastDVec between element types, FromFixed/ToFixed
//     between DMat and the fixed-size square matrices.
//
// Every DMat carries a numeric policy set at construction (WithEpsilon,
// WithValidateNaNInf / WithNoValidateNaNInf). Results inherit the policy of the
// receiver. Inversion uses the same relative singularity rule as package geom:
// a pivot p is rejected when |p| <= eps·max|a_ij|, so a matrix judged singular
// in one family is judged singular in the other.
//
// DMat satisfies the traits interfaces through its pointer: *DMat[N] is a
// traits.Inv[*DMat[N]], traits.Transpose[*DMat[N]], traits.Mean[DVec[N]] and
// traits.Cov[*DMat[N]], so the generic facade in package na accepts it.
//
// Errors are the sentinels in errors.go; match them with errors.Is.
package matrix
