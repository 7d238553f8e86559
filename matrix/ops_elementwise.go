// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (statistics, comparison).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over the row-major buffer.
//   - No hidden allocations beyond the output DMat; O(r*c) time and space.

package matrix

import (
	"github.com/katalvlaran/lvgeom/scalar"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
//
// AI-Hint: Use for column-centering before covariance.
func ewBroadcastSubCols[N scalar.Scalar](X *DMat[N], colMeans DVec[N]) (*DMat[N], error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	r, c := X.r, X.c
	if len(colMeans) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	out := X.like(r, c)
	for i := 0; i < r; i++ {
		base := i * c // cache the base offset for row i
		for j := 0; j < c; j++ {
			out.data[base+j] = X.data[base+j] - colMeans[j]
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func ewAllClose[N scalar.Scalar](a, b *DMat[N], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var diff, absb float64
	for idx := range a.data {
		diff = float64(scalar.Abs(a.data[idx] - b.data[idx]))
		absb = float64(scalar.Abs(b.data[idx]))
		if diff > atol+rtol*absb {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
