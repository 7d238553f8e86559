// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/matrix"
)

func TestCastDMat(t *testing.T) {
	m := mustDMat(t, [][]float64{{1.9, -1.9}, {2, 0.5}}, matrix.WithEpsilon(1e-6))

	i, err := matrix.CastDMat[int](m)
	require.NoError(t, err)
	require.Equal(t, []int{1, -1, 2, 0}, i.Raw())
	require.Equal(t, 1e-6, i.Epsilon())

	f, err := matrix.CastDMat[float32](m)
	require.NoError(t, err)
	require.InDelta(t, 1.9, f.Raw()[0], 1e-6)

	_, err = matrix.CastDMat[float32, float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// float64 values beyond the float32 range overflow to Inf
	big := mustDMat(t, [][]float64{{1e300}})
	_, err = matrix.CastDMat[float32](big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCastDVec(t *testing.T) {
	require.Equal(t, matrix.DVec[int64]{3, -2}, matrix.CastDVec[int64](matrix.DVec[float64]{3.7, -2.2}))
}

func TestFixedRoundTrip(t *testing.T) {
	src := geom.Mat3[float64]{1, 2, 3, 0, 1, 4, 5, 6, 0}

	d := matrix.FromFixed(src)
	require.Equal(t, 3, d.Rows())
	require.Equal(t, src[:], d.Raw())

	// both families agree on the inverse
	dInv, ok := d.Inverted()
	require.True(t, ok)
	fInv, ok := src.Inverted()
	require.True(t, ok)

	back, err := matrix.ToFixed[geom.Mat3[float64]](dInv)
	require.NoError(t, err)
	require.True(t, back.ApproxEq(fInv, tol))

	_, err = matrix.ToFixed[geom.Mat2[float64]](d)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
