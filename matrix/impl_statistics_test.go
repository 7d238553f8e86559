// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
)

func TestMeanCov(t *testing.T) {
	obs := mustDMat(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	require.True(t, obs.Mean().ApproxEq(matrix.DVec[float64]{3, 4}, tol))
	requireClose(t, mustDMat(t, [][]float64{{4, 4}, {4, 4}}), obs.Cov())

	// the receiver is not centred in place
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, obs.Raw())
}

func TestCov_Independent(t *testing.T) {
	obs := mustDMat(t, [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}})
	requireClose(t, mustDMat(t, [][]float64{{2.0 / 3, 0}, {0, 2.0 / 3}}), obs.Cov())
}

func TestMeanCov_Degenerate(t *testing.T) {
	one := mustDMat(t, [][]float64{{7, 8, 9}})
	require.Equal(t, matrix.DVec[float64]{7, 8, 9}, one.Mean())
	cov := one.Cov()
	require.Equal(t, 3, cov.Rows())
	require.Equal(t, make([]float64, 9), cov.Raw())

	empty, err := matrix.NewDMat[float64](0, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.DVec[float64]{0, 0, 0}, empty.Mean())
	require.Equal(t, make([]float64, 9), empty.Cov().Raw())
}
