// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels of DMat.
//
// Purpose:
//   - Element-wise Add/Sub/Scale/Absolute, matrix product Mul and MulVec,
//     Transpose, Gauss–Jordan inversion with partial pivoting, determinant.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→k→j for products).
//   - Single result allocation per call; inversion adds two n×n scratch buffers.
//
// Notes:
//   - All shape failures return sentinels wrapped via matrixErrorf("<Op>: ...").
//   - Inverted/Invert follow the boolean convention of the fixed-size families;
//     Inverse exposes the same kernel with an error surface.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/internal/exact"
	"github.com/katalvlaran/lvgeom/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opInverse  = "Inverse"
	opDet      = "Det"
	opFromRows = "NewDMatFromRows"
	opCast     = "CastDMat"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = m + sign*o for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh DMat is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, o). Allocate result like(m).
//   - Stage 2: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[N scalar.Scalar](m, o *DMat[N], sign N, opTag string) (*DMat[N], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := m.like(m.r, m.c)
	for i := range res.data {
		res.data[i] = m.data[i] + sign*o.data[i]
	}

	return res, nil
}

// Add returns m + o.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *DMat[N]) Add(o *DMat[N]) (*DMat[N], error) { return addSub(m, o, 1, opAdd) }

// Sub returns m − o.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *DMat[N]) Sub(o *DMat[N]) (*DMat[N], error) { return addSub(m, o, -1, opSub) }

// Scale returns alpha·m; a nil m yields nil.
// Complexity: O(r*c).
func (m *DMat[N]) Scale(alpha N) *DMat[N] {
	if m == nil {
		return nil
	}
	res := m.like(m.r, m.c)
	for i, v := range m.data {
		res.data[i] = alpha * v
	}

	return res
}

// Absolute returns the entry-wise absolute value of m; the shape is unchanged.
// A nil m yields nil.
func (m *DMat[N]) Absolute() *DMat[N] {
	if m == nil {
		return nil
	}
	res := m.like(m.r, m.c)
	for i, v := range m.data {
		res.data[i] = scalar.Abs(v)
	}

	return res
}

// Mul returns the matrix product m·o.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, o) (m.Cols == o.Rows).
//   - Stage 2: row-major i→k→j accumulation into the result buffer.
//
// Behavior highlights:
//   - Skips zero m[i,k] entries (sparse-friendly, deterministic).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *DMat[N]) Mul(o *DMat[N]) (*DMat[N], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := m.r, m.c, o.c
	res := m.like(aRows, bCols)

	var i, j, k, rowA, rowB, rowR int
	var av N
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * o.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MulVec returns m·v.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(v) != Cols()).
// Complexity: O(r*c).
func (m *DMat[N]) MulVec(v DVec[N]) (DVec[N], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make(DVec[N], m.r)
	var i, j, base int
	var sum N
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Transposed returns a new c×r matrix holding mᵀ; m is not mutated.
// A nil m yields nil.
// Complexity: O(r*c).
func (m *DMat[N]) Transposed() *DMat[N] {
	if m == nil {
		return nil
	}
	res := m.like(m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// Transpose transposes m in place; the shape swaps (r×c becomes c×r).
// Square matrices are transposed by swaps; rectangular ones go through one
// temporary buffer. A nil m is a no-op.
func (m *DMat[N]) Transpose() {
	if m == nil {
		return
	}
	if m.r == m.c {
		n := m.r
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}
		return
	}
	t := m.Transposed()
	m.r, m.c, m.data = t.r, t.c, t.data
}

// gaussJordan writes A⁻¹ into dst (len n*n) and reports success.
// Implementation:
//   - Stage 1: copy a into scratch; start inv from I_n.
//   - Stage 2: for each column pick the largest |pivot|; reject it when
//     |pivot| <= eps·max|a_ij| (relative tolerance); swap, scale, eliminate.
//   - Stage 3: only on success copy the result into dst.
//
// Behavior highlights:
//   - dst is untouched when the matrix is singular; dst may alias a.
//   - 0×0 succeeds trivially; an all-zero n×n matrix is singular.
//   - Integer matrices go through exact.Inverse: they invert only when
//     unimodular (det = ±1), the one case with an integral inverse.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) scratch.
func gaussJordan[N scalar.Scalar](dst, a []N, n int, eps float64) bool {
	if n == 0 {
		return true
	}
	if !scalar.IsFloat[N]() {
		return exact.Inverse(dst, a, n)
	}
	work := make([]N, n*n)
	inv := make([]N, n*n)
	copy(work, a)

	var scale N
	for _, v := range work {
		scale = scalar.Max(scale, scalar.Abs(v))
	}
	if scale == 0 {
		return false
	}
	tol := scalar.Tolerance[N](eps) * scale

	var col, row, piv, j int
	var best, p, f N
	for col = 0; col < n; col++ {
		inv[col*n+col] = 1
	}
	for col = 0; col < n; col++ {
		// Partial pivoting: largest |work[row,col]| for row >= col.
		piv, best = col, scalar.Abs(work[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := scalar.Abs(work[row*n+col]); v > best {
				piv, best = row, v
			}
		}
		if best <= tol {
			return false
		}
		if piv != col {
			for j = 0; j < n; j++ {
				work[col*n+j], work[piv*n+j] = work[piv*n+j], work[col*n+j]
				inv[col*n+j], inv[piv*n+j] = inv[piv*n+j], inv[col*n+j]
			}
		}
		p = work[col*n+col]
		for j = 0; j < n; j++ {
			work[col*n+j] /= p
			inv[col*n+j] /= p
		}
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = work[row*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				work[row*n+j] -= f * work[col*n+j]
				inv[row*n+j] -= f * inv[col*n+j]
			}
		}
	}
	copy(dst, inv)

	return true
}

// Inverted returns m⁻¹ and true, or (nil, false) when m is not square or is
// singular within its policy's relative tolerance (see WithEpsilon).
// A nil m yields (nil, false).
func (m *DMat[N]) Inverted() (*DMat[N], bool) {
	if m == nil || m.r != m.c {
		return nil, false
	}
	res := m.like(m.r, m.c)
	if !gaussJordan(res.data, m.data, m.r, m.opts.eps) {
		return nil, false
	}

	return res, true
}

// Invert replaces m with m⁻¹ and reports success. On failure m is unchanged;
// a nil m reports false.
func (m *DMat[N]) Invert() bool {
	if m == nil || m.r != m.c {
		return false
	}

	return gaussJordan(m.data, m.data, m.r, m.opts.eps)
}

// Inverse is Inverted with an error surface, for callers that propagate errors.
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "Inverse").
func (m *DMat[N]) Inverse() (*DMat[N], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, ok := m.Inverted()
	if !ok {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, nil
}

// Det returns the determinant of a square matrix by Gaussian elimination with
// partial pivoting, or by fraction-free elimination for integer element types.
// The 0×0 determinant is 1.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) time, O(n^2) scratch.
func (m *DMat[N]) Det() (N, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.r
	if !scalar.IsFloat[N]() {
		return exact.Det(m.data, n), nil
	}
	a := make([]N, n*n)
	copy(a, m.data)

	var det N = 1
	var col, row, piv, j int
	var best, f N
	for col = 0; col < n; col++ {
		piv, best = col, scalar.Abs(a[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := scalar.Abs(a[row*n+col]); v > best {
				piv, best = row, v
			}
		}
		if best == 0 {
			return 0, nil
		}
		if piv != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[piv*n+j] = a[piv*n+j], a[col*n+j]
			}
			det = -det
		}
		det *= a[col*n+col]
		for row = col + 1; row < n; row++ {
			f = a[row*n+col] / a[col*n+col]
			for j = col; j < n; j++ {
				a[row*n+j] -= f * a[col*n+j]
			}
		}
	}

	return det, nil
}
