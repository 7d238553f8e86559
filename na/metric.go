// SPDX-License-Identifier: MIT

package na

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Dot returns the inner product of a and b.
func Dot[V traits.Dot[N, V], N any](a, b V) N { return a.Dot(b) }

// SubDot returns Dot(a − b, c).
func SubDot[V traits.Dot[N, V], N any](a, b, c V) N { return a.SubDot(b, c) }

// Norm returns the Euclidean norm of *v. The element type must be Real.
func Norm[P traits.Norm[N, T], N scalar.Real, T any](v P) N { return v.Norm() }

// SqNorm returns the squared norm of *v.
func SqNorm[P traits.Norm[N, T], N, T any](v P) N { return v.SqNorm() }

// Normalized returns a unit-length copy of *v; the zero vector is returned unchanged.
func Normalized[P traits.Norm[N, T], N scalar.Real, T any](v P) T { return v.Normalized() }

// Normalize scales v to unit length and returns its previous norm.
// A zero vector is left unchanged and 0 is returned.
func Normalize[P traits.Norm[N, T], N scalar.Real, T any](v P) N { return v.Normalize() }

// Cross returns the cross product a × b. For 2-D vectors the result is the
// scalar z component held in a 1-D vector.
func Cross[V traits.Cross[V, R], R any](a, b V) R { return a.Cross(b) }

// CrossMatrix returns the matrix M with M·w == Cross(v, w).
func CrossMatrix[V traits.CrossMatrix[M], M any](v V) M { return v.CrossMatrix() }
