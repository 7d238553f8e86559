// SPDX-License-Identifier: MIT

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

func TestMatIdentityAndMul(t *testing.T) {
	t.Parallel()

	m := geom.NewMat3(
		1.0, 2.0, 3.0,
		0.0, 1.0, 4.0,
		5.0, 6.0, 0.0,
	)
	one := geom.Mat3[float64]{}.One()
	require.Equal(t, m, m.Mul(one))
	require.Equal(t, m, one.Mul(m))
	require.Equal(t, 2.0, m.Entry(0, 1))

	v := geom.NewVec3(1.0, 1.0, 1.0)
	require.Equal(t, geom.Vec3[float64]{6, 5, 11}, m.RMul(v))
	require.Equal(t, geom.Vec3[float64]{6, 9, 7}, m.LMul(v))
	require.Equal(t, m.Transposed().RMul(v), m.LMul(v))
}

func TestMatInverse(t *testing.T) {
	t.Parallel()

	m := geom.NewMat3(
		1.0, 2.0, 3.0,
		0.0, 1.0, 4.0,
		5.0, 6.0, 0.0,
	)
	inv, ok := m.Inverted()
	require.True(t, ok)
	want := geom.NewMat3(
		-24.0, 18.0, 5.0,
		20.0, -15.0, -4.0,
		-5.0, 4.0, 1.0,
	)
	require.True(t, inv.ApproxEq(want, tol), "got %v", inv)
	require.True(t, m.Mul(inv).ApproxEq(geom.Mat3[float64]{}.One(), tol))

	require.True(t, m.Invert())
	require.Equal(t, inv, m)
}

func TestInvertSingular(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    geom.Mat3[float64]
	}{
		{"zero", geom.Mat3[float64]{}},
		{"dependent rows", geom.NewMat3(1.0, 2.0, 3.0, 2.0, 4.0, 6.0, 1.0, 1.0, 1.0)},
		{"rank one", geom.NewVec3(1.0, 2.0, 3.0).Outer(geom.NewVec3(4.0, 5.0, 6.0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := tc.m.Inverted()
			require.False(t, ok)

			m := tc.m
			require.False(t, m.Invert())
			require.Equal(t, tc.m, m, "a failed Invert must leave the matrix unchanged")
		})
	}
}

func TestInvertTolerance(t *testing.T) {
	t.Parallel()

	nearly := geom.NewMat2(1.0, 1.0, 1.0, 1.0+1e-12)
	_, ok := nearly.Inverted()
	require.False(t, ok, "pivot below the relative tolerance")

	// relative: scaling the whole matrix does not change the verdict
	tiny := geom.NewMat2(1e-20, 0.0, 0.0, 2e-20)
	inv, ok := tiny.Inverted()
	require.True(t, ok)
	require.InDelta(t, 1e20, inv[0], 1e6)
}

func TestInvertIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    geom.Mat2[int]
		ok   bool
		want geom.Mat2[int]
	}{
		{"identity", geom.Mat2[int]{}.One(), true, geom.Mat2[int]{}.One()},
		{"shear", geom.NewMat2(1, 1, 0, 1), true, geom.NewMat2(1, -1, 0, 1)},
		{"unimodular needs a non-unit pivot", geom.NewMat2(2, 1, 1, 1), true, geom.NewMat2(1, -1, -1, 2)},
		{"swap", geom.NewMat2(0, 1, 1, 0), true, geom.NewMat2(0, 1, 1, 0)},
		{"scaled identity", geom.NewMat2(2, 0, 0, 2), false, geom.Mat2[int]{}},
		{"det -2", geom.NewMat2(1, 2, 3, 4), false, geom.Mat2[int]{}},
		{"singular", geom.NewMat2(1, 2, 2, 4), false, geom.Mat2[int]{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv, ok := tc.m.Inverted()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, inv)

			c := tc.m
			require.Equal(t, tc.ok, c.Invert())
			if tc.ok {
				require.Equal(t, tc.want, c)
				require.Equal(t, geom.Mat2[int]{}.One(), tc.m.Mul(inv))
			} else {
				require.Equal(t, tc.m, c, "receiver must be unchanged on failure")
			}
		})
	}
}

func TestInvertIntegers3(t *testing.T) {
	t.Parallel()

	m := geom.NewMat3(
		2, 3, 1,
		1, 2, 1,
		0, 0, 1,
	)
	require.Equal(t, 1, m.Det())
	inv, ok := m.Inverted()
	require.True(t, ok)
	require.Equal(t, geom.Mat3[int]{}.One(), m.Mul(inv))

	d := geom.NewMat3(2, 0, 0, 0, 1, 0, 0, 0, 1)
	_, ok = d.Inverted()
	require.False(t, ok)
}

func TestDetIntegersExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"1 2 3 4", geom.NewMat2(1, 2, 3, 4).Det(), -2},
		{"2 1 1 2", geom.NewMat2(2, 1, 1, 2).Det(), 3},
		{"swap", geom.NewMat2(0, 1, 1, 0).Det(), -1},
		{"3x3", geom.NewMat3(1, 2, 3, 0, 1, 4, 5, 6, 0).Det(), 1},
		{"3x3 zero leading pivot", geom.NewMat3(0, 2, 1, 3, 1, 0, 1, 1, 1).Det(), -4},
		{"3x3 singular", geom.NewMat3(1, 2, 3, 2, 4, 6, 1, 0, 1).Det(), 0},
		{"4x4 diagonal", geom.NewMat4(2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 5, 0, 0, 0, 0, 7).Det(), 210},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestTransposeInvolution(t *testing.T) {
	t.Parallel()

	m := geom.NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	require.Equal(t, m, m.Transposed().Transposed())
	require.Equal(t, 5, m.Transposed().Entry(0, 1))

	c := m
	c.Transpose()
	require.Equal(t, m.Transposed(), c)
}

func TestDet(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 1.0, geom.NewMat3(1.0, 2.0, 3.0, 0.0, 1.0, 4.0, 5.0, 6.0, 0.0).Det(), tol)
	require.InDelta(t, -2.0, geom.NewMat2(1.0, 2.0, 3.0, 4.0).Det(), tol)
	require.Equal(t, 0.0, geom.Mat5[float64]{}.Det())
	require.Equal(t, 1.0, geom.Mat6[float64]{}.One().Det())
}

func TestRowsAndCols(t *testing.T) {
	t.Parallel()

	m := geom.NewMat2(1, 2, 3, 4)
	require.Equal(t, geom.Vec2[int]{3, 4}, m.Row(1))
	require.Equal(t, geom.Vec2[int]{2, 4}, m.Col(1))

	m.SetRow(0, geom.NewVec2(7, 8))
	require.Equal(t, geom.NewMat2(7, 8, 3, 4), m)
	m.SetCol(0, geom.NewVec2(0, 0))
	require.Equal(t, geom.NewMat2(0, 8, 0, 4), m)
	require.Equal(t, geom.NewMat2(0, 9, 0, 4), m.WithEntry(0, 1, 9))
	require.Equal(t, geom.NewMat2(0, 8, 0, 4), m)
}

func TestMeanAndCov(t *testing.T) {
	t.Parallel()

	obs := geom.NewMat2(
		1.0, 2.0,
		3.0, 4.0,
	)
	require.Equal(t, geom.Vec2[float64]{2, 3}, obs.Mean())
	require.Equal(t, geom.NewMat2(2.0, 2.0, 2.0, 2.0), obs.Cov())

	obs3 := geom.NewMat3(
		1.0, 0.0, 2.0,
		3.0, 0.0, 2.0,
		5.0, 0.0, 2.0,
	)
	require.Equal(t, geom.Vec3[float64]{3, 0, 2}, obs3.Mean())
	cov := obs3.Cov()
	require.InDelta(t, 4.0, cov.Entry(0, 0), tol)
	require.Equal(t, cov, cov.Transposed())
	require.Equal(t, 0.0, cov.Entry(1, 1))
	require.Equal(t, 0.0, cov.Entry(2, 2))

	// fewer than two observations
	require.Equal(t, geom.Mat1[float64]{}, geom.NewMat1(5.0).Cov())
}

func TestMatHomogeneous(t *testing.T) {
	t.Parallel()

	m := geom.NewMat2(1, 2, 3, 4)
	h := m.ToHomogeneous()
	require.Equal(t, geom.NewMat3(1, 2, 0, 3, 4, 0, 0, 0, 1), h)
	require.Equal(t, m, geom.Mat2[int]{}.FromHomogeneous(h))
}

func TestMatArithmetic(t *testing.T) {
	t.Parallel()

	a := geom.NewMat2(1, -2, 3, 4)
	b := geom.NewMat2(1, 1, 1, 1)
	require.Equal(t, geom.NewMat2(2, -1, 4, 5), a.Add(b))
	require.Equal(t, geom.NewMat2(0, -3, 2, 3), a.Sub(b))
	require.Equal(t, geom.NewMat2(2, -4, 6, 8), a.Scale(2))
	require.Equal(t, geom.NewMat2(1, 2, 3, 4), a.Absolute())
	require.True(t, geom.Mat2[int]{}.IsZero())
	require.Equal(t, geom.Mat2[int]{}, a.Zero())
}
