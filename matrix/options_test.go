// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/scalar"
)

func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot()
	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	// the dynamic and fixed families share one tolerance
	require.Equal(t, scalar.DefaultEpsilon, matrix.DefaultEpsilon)
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(0))
	require.Equal(t, 0.0, o.Eps)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestPolicy_IsInherited(t *testing.T) {
	m := mustDMat(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(0.5), matrix.WithNoValidateNaNInf())

	tr := m.Transposed()
	require.Equal(t, 0.5, tr.Epsilon())
	require.NoError(t, tr.Set(0, 0, math.NaN()))

	p, err := m.Mul(m)
	require.NoError(t, err)
	require.Equal(t, 0.5, p.Epsilon())
	require.Equal(t, 0.5, m.Cov().Epsilon())
	require.Equal(t, 0.5, m.Clone().Epsilon())
}
