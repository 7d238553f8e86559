// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Rot4 is a 4-D rotation stored as an orthogonal 4×4 matrix.
//
// A 4-D rotation has six degrees of freedom and no axis, so Rot4 is its own
// Rotation parameter: RotateBy(d) composes d after r and SetRotation(d)
// replaces r with d. The zero value is not a rotation; start from
// NewRot4FromPlanes or One.
type Rot4[N scalar.Real] struct {
	submat Mat4[N]
}

// Rotation planes, in the order NewRot4FromPlanes applies them.
const (
	PlaneXY = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
)

// planeAxes maps a plane index to the pair of axes it turns.
var planeAxes = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// NewRot4FromPlanes composes the six simple rotations by angles[PlaneXY],
// angles[PlaneXZ], …, angles[PlaneZW], applied in that order. A positive angle
// in plane (i, j) turns axis i towards axis j.
func NewRot4FromPlanes[N scalar.Real](angles Vec6[N]) Rot4[N] {
	r := Rot4[N]{}.One()
	for p, ax := range planeAxes {
		if angles[p] == 0 {
			continue
		}
		s, c := math.Sincos(float64(angles[p]))
		var g Mat4[N]
		kIdentity(g[:], 4)
		i, j := ax[0], ax[1]
		g[i*4+i], g[i*4+j] = N(c), N(-s)
		g[j*4+i], g[j*4+j] = N(s), N(c)
		r.submat = g.Mul(r.submat)
	}

	return r
}

func rot4From[N scalar.Real](d Rot4[N]) Rot4[N] { return d }

// Rotation returns r itself.
func (r Rot4[N]) Rotation() Rot4[N] { return r }

// InvRotation returns rᵗ.
func (r Rot4[N]) InvRotation() Rot4[N] { return r.Transposed() }
