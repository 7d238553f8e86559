// SPDX-License-Identifier: MIT

// Package lvgeom is a capability-based linear algebra and rigid geometry
// library for small fixed dimensions.
//
// What is lvgeom?
//
//	Fixed-size vectors, matrices, rotations and isometries (1 to 6 dimensions)
//	whose operations are grouped into fine-grained capability interfaces. A type
//	implements only what is mathematically valid for it, and generic code asks
//	for exactly the capabilities it needs; every call is resolved at compile time.
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/      — element contract (signed integers and floats), tolerances
//	traits/      — capability interfaces and dimension markers D0..D6
//	geom/        — Vec0..Vec6, Mat1..Mat6, Rot2..Rot4, Iso2..Iso4
//	matrix/      — runtime-sized DMat/DVec, statistics, sentinel errors, options
//	na/          — free-function facade over the traits
//	cmd/nacheck/ — CLI that checks the algebraic contracts over random samples
//
// Quick start:
//
//	iso := na.One[geom.Iso3[float64]]()
//	na.TranslateBy(&iso, na.Vec3(1.0, 1.0, 1.0))
//	p := na.Transform(iso, na.Vec3(0.0, 0.0, 0.0)) // (1, 1, 1)
//
// Numeric policy: a matrix is singular when a Gauss–Jordan pivot falls to
// 1e-9 times its largest entry or below (scalar.DefaultEpsilon); Invert leaves
// a singular matrix unchanged. Normalizing the zero vector leaves it zero.
package lvgeom
