// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
)

// tol is the comparison tolerance of every numeric assertion in this package.
const tol = 1e-9

// mustDMat builds a float64 matrix from rows or fails the test.
func mustDMat(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.DMat[float64] {
	t.Helper()
	m, err := matrix.NewDMatFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// requireClose asserts element-wise equality of two matrices within tol.
func requireClose(t *testing.T, want, got *matrix.DMat[float64]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(t, want.Raw(), got.Raw(), tol, "want\n%sgot\n%s", want, got)
}
