// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Rot2 is a planar rotation stored as an orthogonal 2×2 matrix.
// The zero value is not a rotation; start from NewRot2 or One.
type Rot2[N scalar.Real] struct {
	submat Mat2[N]
}

// NewRot2 returns the counter-clockwise rotation by angle radians.
func NewRot2[N scalar.Real](angle N) Rot2[N] {
	s, c := math.Sincos(float64(angle))

	return Rot2[N]{submat: Mat2[N]{
		N(c), N(-s),
		N(s), N(c),
	}}
}

func rot2From[N scalar.Real](angle Vec1[N]) Rot2[N] { return NewRot2(angle[0]) }

// Rotation returns the rotation angle in (−π, π], as a Vec1.
func (r Rot2[N]) Rotation() Vec1[N] {
	return Vec1[N]{N(math.Atan2(float64(r.submat[2]), float64(r.submat[0])))}
}

// InvRotation returns the opposite angle.
func (r Rot2[N]) InvRotation() Vec1[N] { return r.Rotation().Neg() }
