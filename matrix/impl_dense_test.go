// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
)

func TestNewDMat_Shapes(t *testing.T) {
	m, err := matrix.NewDMat[float64](2, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, make([]float64, 6), m.Raw())

	empty, err := matrix.NewDMat[int](0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())

	_, err = matrix.NewDMat[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDMatFromRows(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2}, {3, 4}})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = matrix.NewDMatFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDMatFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	lax, err := matrix.NewDMatFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(lax.Raw()[0], 1))
}

func TestNewDMatIdentity(t *testing.T) {
	id, err := matrix.NewDMatIdentity[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Raw())

	_, err = matrix.NewDMatIdentity[float64](-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAccessors_OutOfRange(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tests := []struct {
		name string
		call func() error
	}{
		{"At/row", func() error { _, err := m.At(2, 0); return err }},
		{"At/col", func() error { _, err := m.At(0, -1); return err }},
		{"Set", func() error { return m.Set(0, 3, 1) }},
		{"Row", func() error { _, err := m.Row(5); return err }},
		{"SetRow", func() error { return m.SetRow(-1, matrix.DVec[float64]{1, 2, 3}) }},
		{"Col", func() error { _, err := m.Col(3); return err }},
		{"SetCol", func() error { return m.SetCol(3, matrix.DVec[float64]{1, 2}) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), matrix.ErrOutOfRange)
		})
	}
	// failed writes leave the matrix untouched
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())
}

func TestSet_NaNPolicy(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2}})
	err := m.Set(0, 1, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.EqualError(t, err, "DMat.Set(0,1): matrix: NaN or Inf encountered")
	require.Equal(t, []float64{1, 2}, m.Raw())

	require.ErrorIs(t, m.SetRow(0, matrix.DVec[float64]{0, math.Inf(-1)}), matrix.ErrNaNInf)
	require.ErrorIs(t, m.SetCol(0, matrix.DVec[float64]{math.NaN()}), matrix.ErrNaNInf)
	require.Equal(t, []float64{1, 2}, m.Raw())

	err = m.Apply(func(_, j int, v float64) float64 { return v / float64(j) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRowsAndCols(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, matrix.DVec[float64]{4, 5, 6}, row)
	row[0] = 100 // a copy
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, matrix.DVec[float64]{3, 6}, col)

	require.NoError(t, m.SetRow(0, matrix.DVec[float64]{7, 8, 9}))
	require.NoError(t, m.SetCol(1, matrix.DVec[float64]{0, 0}))
	require.Equal(t, []float64{7, 0, 9, 4, 0, 6}, m.Raw())

	require.ErrorIs(t, m.SetRow(0, matrix.DVec[float64]{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(0, matrix.DVec[float64]{1, 2, 3}), matrix.ErrDimensionMismatch)
}

func TestCloneEqualString(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()
	require.True(t, m.Equal(cp))

	require.NoError(t, cp.Set(0, 0, 1+1e-12))
	require.False(t, m.Equal(cp))
	require.True(t, m.ApproxEqual(cp, tol))
	require.False(t, m.ApproxEqual(mustDMat(t, [][]float64{{1, 2}}), tol))

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDoAndApply(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2}, {3, 4}})

	var visited []float64
	m.Do(func(_, _ int, v float64) bool {
		visited = append(visited, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, visited)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+j+1) }))
	require.Equal(t, []float64{1, 4, 6, 12}, m.Raw())
}
