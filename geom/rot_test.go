// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

func TestRot2QuarterTurn(t *testing.T) {
	t.Parallel()

	r := geom.NewRot2(math.Pi / 2)
	require.True(t, r.Rotate(geom.NewVec2(1.0, 0.0)).ApproxEq(geom.Vec2[float64]{0, 1}, tol))
	require.True(t, r.InvRotate(geom.NewVec2(0.0, 1.0)).ApproxEq(geom.Vec2[float64]{1, 0}, tol))
	require.InDelta(t, math.Pi/2, r.Rotation()[0], tol)
	require.InDelta(t, -math.Pi/2, r.InvRotation()[0], tol)

	r.RotateBy(geom.Vec1[float64]{math.Pi / 2})
	require.InDelta(t, math.Pi, math.Abs(r.Rotation()[0]), tol)

	r.SetRotation(geom.Vec1[float64]{0.25})
	require.InDelta(t, 0.25, r.Rotation()[0], tol)
}

func TestRot3QuarterTurn(t *testing.T) {
	t.Parallel()

	r := geom.NewRot3(geom.NewVec3(0.0, 0.0, math.Pi/2))
	require.True(t, r.Rotate(geom.NewVec3(1.0, 0.0, 0.0)).ApproxEq(geom.Vec3[float64]{0, 1, 0}, tol))
	require.True(t, r.Transform(geom.NewVec3(0.0, 1.0, 0.0)).ApproxEq(geom.Vec3[float64]{-1, 0, 0}, tol))

	// RotateBy applies the new rotation after the current one
	r.RotateBy(geom.NewVec3(math.Pi/2, 0.0, 0.0))
	require.True(t, r.Rotate(geom.NewVec3(1.0, 0.0, 0.0)).ApproxEq(geom.Vec3[float64]{0, 0, 1}, tol))
}

func TestRot3RotationRoundTrip(t *testing.T) {
	t.Parallel()

	axis := geom.NewVec3(1.0, 2.0, 3.0).Normalized()
	cases := []struct {
		name string
		aa   geom.Vec3[float64]
		eps  float64
	}{
		{"identity", geom.Vec3[float64]{}, tol},
		{"small", axis.Scale(1e-3), tol},
		{"generic", axis.Scale(1.2), tol},
		{"near pi", axis.Scale(math.Pi - 1e-7), 1e-6},
		{"pi around x", geom.NewVec3(math.Pi, 0.0, 0.0), 1e-6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := geom.NewRot3(tc.aa)
			back := geom.NewRot3(r.Rotation())
			require.True(t, back.ApproxEq(r, tc.eps), "rotation %v -> %v", tc.aa, r.Rotation())
			require.InDelta(t, tc.aa.Norm(), r.Rotation().Norm(), tc.eps)
		})
	}
}

func TestRot3Inverse(t *testing.T) {
	t.Parallel()

	r := geom.NewRot3FromEuler(0.1, -0.4, 1.3)
	inv, ok := r.Inverted()
	require.True(t, ok)
	require.True(t, r.Mul(inv).ApproxEq(geom.Rot3[float64]{}.One(), tol))
	require.Equal(t, r.Transposed(), inv)
	require.InDelta(t, 1.0, r.Submat().Det(), tol)

	v := geom.NewVec3(0.3, -2.0, 5.0)
	require.True(t, r.InvRotate(r.Rotate(v)).ApproxEq(v, tol))
	require.True(t, geom.NewRot3(r.InvRotation()).ApproxEq(inv, 1e-9))

	c := r
	require.True(t, c.Invert())
	require.Equal(t, inv, c)
}

func TestRot3Constructors(t *testing.T) {
	t.Parallel()

	yaw := geom.NewRot3FromEuler(0.0, 0.0, math.Pi/2)
	require.True(t, yaw.ApproxEq(geom.NewRot3(geom.NewVec3(0.0, 0.0, math.Pi/2)), tol))

	look := geom.NewRot3LookAtZ(geom.NewVec3(0.0, 0.0, 2.0), geom.NewVec3(0.0, 1.0, 0.0))
	require.True(t, look.ApproxEq(geom.Rot3[float64]{}.One(), tol))

	look = geom.NewRot3LookAtZ(geom.NewVec3(1.0, 1.0, 0.0), geom.NewVec3(0.0, 0.0, 1.0))
	require.True(t, look.Rotate(geom.NewVec3(0.0, 0.0, 1.0)).ApproxEq(geom.NewVec3(1.0, 1.0, 0.0).Normalized(), tol))
	require.InDelta(t, 1.0, look.Submat().Det(), tol)

	drifted := geom.NewRot3FromMat(yaw.Submat().Scale(1.001))
	require.True(t, drifted.Orthonormalized().ApproxEq(yaw, 1e-9))
}

func TestRot4Planes(t *testing.T) {
	t.Parallel()

	var angles geom.Vec6[float64]
	angles[geom.PlaneXY] = math.Pi / 2
	r := geom.NewRot4FromPlanes(angles)
	require.True(t, r.Rotate(geom.NewVec4(1.0, 0.0, 0.0, 0.0)).ApproxEq(geom.Vec4[float64]{0, 1, 0, 0}, tol))

	angles = geom.Vec6[float64]{}
	angles[geom.PlaneZW] = math.Pi / 2
	r = geom.NewRot4FromPlanes(angles)
	require.True(t, r.Rotate(geom.NewVec4(0.0, 0.0, 1.0, 0.0)).ApproxEq(geom.Vec4[float64]{0, 0, 0, 1}, tol))

	full := geom.NewRot4FromPlanes(geom.NewVec6(0.1, 0.2, 0.3, 0.4, 0.5, 0.6))
	require.InDelta(t, 1.0, full.Submat().Det(), tol)
	require.True(t, full.Mul(full.InvRotation()).ApproxEq(geom.Rot4[float64]{}.One(), tol))
	require.Equal(t, full, full.Rotation())

	// a Rot4 is its own rotation parameter
	c := geom.Rot4[float64]{}.One()
	c.RotateBy(full)
	require.True(t, c.ApproxEq(full, tol))
	c.SetRotation(r)
	require.Equal(t, r, c)
}

func TestAbsoluteRotate(t *testing.T) {
	t.Parallel()

	r := geom.NewRot2(math.Pi / 4)
	got := r.AbsoluteRotate(geom.NewVec2(1.0, 1.0))
	require.InDelta(t, math.Sqrt2, got[0], tol)
	require.InDelta(t, math.Sqrt2, got[1], tol)
}

func TestRotHomogeneous(t *testing.T) {
	t.Parallel()

	r := geom.NewRot3(geom.NewVec3(0.3, 0.2, 0.1))
	h := r.ToHomogeneous()
	require.Equal(t, 1.0, h.Entry(3, 3))
	require.Equal(t, r.ToRotMat(), geom.Mat3[float64]{}.FromHomogeneous(h))
}
