// SPDX-License-Identifier: MIT
// Package matrix: conversions between element types and between the runtime-sized
// and the fixed-size families.
//
// Purpose:
//   - CastDMat / CastDVec convert element types entry by entry (Go conversion rules:
//     float→int truncates toward zero).
//   - FromFixed / ToFixed move data between *DMat and any square matrix type that
//     exposes Entry / WithEntry (geom.Mat1..Mat6, geom.Rot*), checking the side
//     length at run time.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// CastDMat converts every entry of m to M. The numeric policy is kept; with
// validation on, a NaN or Inf produced by the conversion is reported as ErrNaNInf.
func CastDMat[M, N scalar.Scalar](m *DMat[N]) (*DMat[M], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCast, err)
	}
	out := &DMat[M]{r: m.r, c: m.c, data: make([]M, len(m.data)), opts: m.opts}
	for i, v := range m.data {
		x := scalar.Cast[M](v)
		if out.opts.validateNaNInf && !scalar.IsFinite(x) {
			return nil, matrixErrorf(opCast, denseErrorf(ctxSet, i/m.c, i%m.c, ErrNaNInf))
		}
		out.data[i] = x
	}

	return out, nil
}

// CastDVec converts every component of v to M.
func CastDVec[M, N scalar.Scalar](v DVec[N]) DVec[M] {
	out := make(DVec[M], len(v))
	for i, x := range v {
		out[i] = scalar.Cast[M](x)
	}

	return out
}

// FromFixed copies a fixed-size square matrix into a new n×n DMat.
func FromFixed[S traits.MatSource[N, D], N scalar.Scalar, D traits.Dimension](src S, opts ...Option) *DMat[N] {
	n := src.Shape().Len()
	m := &DMat[N]{r: n, c: n, data: make([]N, n*n), opts: gatherOptions(opts...)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.data[i*n+j] = src.Entry(i, j)
		}
	}

	return m
}

// ToFixed copies m into the fixed-size square matrix type Res.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m is not D×D.
func ToFixed[Res traits.MatBuilder[N, D, Res], N scalar.Scalar, D traits.Dimension](m *DMat[N]) (Res, error) {
	var res Res
	if err := ValidateNotNil(m); err != nil {
		return res, matrixErrorf("ToFixed", err)
	}
	n := res.Shape().Len()
	if m.r != n || m.c != n {
		return res, matrixErrorf("ToFixed", ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res = res.WithEntry(i, j, m.data[i*n+j])
		}
	}

	return res, nil
}
