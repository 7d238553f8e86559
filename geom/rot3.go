// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"github.com/katalvlaran/lvgeom/scalar"
)

// Rot3 is a 3-D rotation stored as an orthogonal 3×3 matrix.
//
// Its Rotation parameterisation is the scaled axis (axis-angle) vector: the
// direction is the rotation axis and the length the angle in radians.
// The zero value is not a rotation; start from NewRot3 or One.
type Rot3[N scalar.Real] struct {
	submat Mat3[N]
}

// NewRot3 builds the rotation of |axisAngle| radians around axisAngle
// (Rodrigues' formula). The zero vector gives the identity.
func NewRot3[N scalar.Real](axisAngle Vec3[N]) Rot3[N] {
	theta := float64(axisAngle.Norm())
	if theta == 0 {
		return Rot3[N]{}.One()
	}
	x := float64(axisAngle[0]) / theta
	y := float64(axisAngle[1]) / theta
	z := float64(axisAngle[2]) / theta
	s, c := math.Sincos(theta)
	t := 1 - c

	return Rot3[N]{submat: Mat3[N]{
		N(t*x*x + c), N(t*x*y - s*z), N(t*x*z + s*y),
		N(t*x*y + s*z), N(t*y*y + c), N(t*y*z - s*x),
		N(t*x*z - s*y), N(t*y*z + s*x), N(t*z*z + c),
	}}
}

// NewRot3FromEuler builds Rz(yaw)·Ry(pitch)·Rx(roll): roll is applied first.
func NewRot3FromEuler[N scalar.Real](roll, pitch, yaw N) Rot3[N] {
	rx := NewRot3(Vec3[N]{roll, 0, 0})
	ry := NewRot3(Vec3[N]{0, pitch, 0})
	rz := NewRot3(Vec3[N]{0, 0, yaw})

	return rz.Mul(ry).Mul(rx)
}

// NewRot3LookAtZ builds the rotation whose local z axis points along dir and
// whose local y axis lies in the plane of dir and up. dir and up must not be
// collinear.
func NewRot3LookAtZ[N scalar.Real](dir, up Vec3[N]) Rot3[N] {
	zaxis := dir.Normalized()
	xaxis := up.Cross(zaxis).Normalized()
	yaxis := zaxis.Cross(xaxis)

	var m Mat3[N]
	m.SetCol(0, xaxis)
	m.SetCol(1, yaxis)
	m.SetCol(2, zaxis)

	return Rot3[N]{submat: m}
}

func rot3From[N scalar.Real](axisAngle Vec3[N]) Rot3[N] { return NewRot3(axisAngle) }

// Rotation returns the scaled axis of r, with an angle in [0, π].
func (r Rot3[N]) Rotation() Vec3[N] {
	m := r.submat
	cos := (float64(m[0]+m[4]+m[8]) - 1) / 2
	cos = math.Max(-1, math.Min(1, cos))
	theta := math.Acos(cos)
	if theta < 1e-12 {
		return Vec3[N]{}
	}

	if math.Pi-theta < 1e-6 {
		// Near π the antisymmetric part vanishes; recover the axis from the
		// symmetric part R = 2aaᵗ − I using its largest diagonal entry.
		k := 0
		for i := 1; i < 3; i++ {
			if m[i*3+i] > m[k*3+k] {
				k = i
			}
		}
		var axis Vec3[N]
		ak := math.Sqrt(math.Max(0, (float64(m[k*3+k])+1)/2))
		for i := 0; i < 3; i++ {
			if i == k {
				axis[i] = N(ak)
				continue
			}
			axis[i] = N((float64(m[k*3+i]) + float64(m[i*3+k])) / (4 * ak))
		}

		return axis.Normalized().Scale(N(theta))
	}

	f := theta / (2 * math.Sin(theta))

	return Vec3[N]{
		N(float64(m[7]-m[5]) * f),
		N(float64(m[2]-m[6]) * f),
		N(float64(m[3]-m[1]) * f),
	}
}

// InvRotation returns the scaled axis of r⁻¹.
func (r Rot3[N]) InvRotation() Vec3[N] { return r.Rotation().Neg() }

// Orthonormalized returns r with its columns re-orthonormalised by
// Gram–Schmidt. Mutations never do this implicitly; call it after long
// compositions when rounding drift matters.
func (r Rot3[N]) Orthonormalized() Rot3[N] {
	x := r.submat.Col(0).Normalized()
	y := r.submat.Col(1)
	y = y.Sub(x.Scale(x.Dot(y))).Normalized()
	z := x.Cross(y)

	var m Mat3[N]
	m.SetCol(0, x)
	m.SetCol(1, y)
	m.SetCol(2, z)

	return Rot3[N]{submat: m}
}
