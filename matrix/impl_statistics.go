// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics over observations stored as rows: Mean and the
//     sample covariance Cov, as deterministic compositions over the canonical
//     kernels (Transposed/Mul/Scale) and the ew* micro-kernels.
//
// Exposed API:
//   - (*DMat).Mean() -> column means (len = Cols)
//   - (*DMat).Cov()  -> sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Fewer than two observations give the c×c zero matrix instead of an error,
//     matching the fixed-size families.

package matrix

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: handle zero-size as a strict no-op.
//   - Stage 2: compute column means in a deterministic pass.
//   - Stage 3: apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *DMat: centered copy (r×c) for r>0 && c>0; otherwise X itself (no-op).
//   - DVec: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func (m *DMat[N]) centerColumns() (*DMat[N], DVec[N]) {
	r, c := m.r, m.c
	means := make(DVec[N], c) // always return correct length for callers
	if r == 0 || c == 0 {
		return m, means
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += m.data[base+j] // accumulate sum for column j
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= N(r)
	}

	// Shapes match by construction; the error path is unreachable.
	Xc, _ := ewBroadcastSubCols(m, means)

	return Xc, means
}

// Mean returns the column means of the observations (rows) of m.
// With no rows the result is the zero vector of length Cols(); a nil m yields nil.
func (m *DMat[N]) Mean() DVec[N] {
	if m == nil {
		return nil
	}
	_, means := m.centerColumns()

	return means
}

// Cov returns the sample covariance matrix of the columns of m.
// Implementation:
//   - Stage 1: fewer than two rows → c×c zero matrix.
//   - Stage 2: center columns (shared with Mean).
//   - Stage 3: Cov = (Xcᵀ Xc)/(r-1) via Transposed, Mul and Scale.
//
// Behavior highlights:
//   - Symmetric output; the diagonal holds per-column sample variances.
//   - For integer element types the division truncates.
//   - A nil m yields nil.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(c^2).
func (m *DMat[N]) Cov() *DMat[N] {
	if m == nil {
		return nil
	}
	r, c := m.r, m.c
	if r < 2 {
		return m.like(c, c)
	}
	Xc, _ := m.centerColumns()

	// Xcᵀ is c×r and Xc is r×c, so the product is always compatible.
	G, _ := Xc.Transposed().Mul(Xc)
	for i := range G.data {
		G.data[i] /= N(r - 1)
	}

	return G
}
