// SPDX-License-Identifier: MIT

// Package matrix - DMat storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry a numeric policy (singularity eps, optional NaN/Inf rejection) with every matrix.
//
// AI-Hints:
//   - Hot kernels (impl_linear_algebra.go) operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable it.
//
// Complexity quicksheet:
//   - NewDMat: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgeom/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxSetCol = "SetCol" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform DMat context and callsite indices.
// The message reads "DMat.<method>(row,col): <sentinel>"; the sentinel is
// preserved via %w for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("DMat.%s(%d,%d): %w", method, row, col, err)
}

// DMat is a runtime-sized row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the numeric policy captured at construction (see options.go).
//
// A DMat is used through its pointer, like any mutable container; methods that
// return a new matrix propagate the receiver's policy.
type DMat[N scalar.Scalar] struct {
	r, c int     // row and column counts (>=0)
	data []N     // contiguous row-major storage (len == r*c)
	opts Options // numeric policy
}

// NewDMat creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and an optional numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options over defaults.
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Empty shapes (0×c, r×0) are legal: statistics of an empty sample are well defined.
//   - Invalid option values panic inside the WithX constructors (programmer error).
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDMat[N scalar.Scalar](rows, cols int, opts ...Option) (*DMat[N], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &DMat[N]{
		r:    rows,
		c:    cols,
		data: make([]N, rows*cols), // make() zero-fills deterministically
		opts: gatherOptions(opts...),
	}, nil
}

// NewDMatFromRows copies a slice of equally long rows into a new matrix.
// Implementation:
//   - Stage 1: derive the shape from rows (len(rows) × len(rows[0])).
//   - Stage 2: reject ragged input (ErrDimensionMismatch).
//   - Stage 3: copy each row through the policy check (ErrNaNInf).
//
// Errors:
//   - ErrDimensionMismatch (ragged rows), ErrNaNInf (non-finite value under policy).
func NewDMatFromRows[N scalar.Scalar](rows [][]N, opts ...Option) (*DMat[N], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDMat[N](r, c, opts...)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// NewDMatIdentity returns the n×n identity matrix.
func NewDMatIdentity[N scalar.Scalar](n int, opts ...Option) (*DMat[N], error) {
	m, err := NewDMat[N](n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// like allocates an r×c zero matrix that inherits m's numeric policy.
func (m *DMat[N]) like(rows, cols int) *DMat[N] {
	return &DMat[N]{r: rows, c: cols, data: make([]N, rows*cols), opts: m.opts}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *DMat[N]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *DMat[N]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *DMat[N]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Epsilon returns the singularity tolerance of m's numeric policy.
func (m *DMat[N]) Epsilon() float64 {
	if m == nil {
		return scalar.DefaultEpsilon
	}

	return m.opts.eps
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates.
func (m *DMat[N]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *DMat[N]) At(row, col int) (N, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *DMat[N]) Set(row, col int, v N) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.validateNaNInf && !scalar.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *DMat[N]) Row(i int) (DVec[N], error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make(DVec[N], m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with v; len(v) must equal Cols().
func (m *DMat[N]) SetRow(i int, v DVec[N]) error {
	if m == nil {
		return denseErrorf(ctxSetRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	for j, x := range v {
		if m.opts.validateNaNInf && !scalar.IsFinite(x) {
			return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// Col returns a copy of column j.
func (m *DMat[N]) Col(j int) (DVec[N], error) {
	if m == nil {
		return nil, denseErrorf(ctxCol, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make(DVec[N], m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v; len(v) must equal Rows().
func (m *DMat[N]) SetCol(j int, v DVec[N]) error {
	if m == nil {
		return denseErrorf(ctxSetCol, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(v) != m.r {
		return denseErrorf(ctxSetCol, 0, j, ErrDimensionMismatch)
	}
	for i, x := range v {
		if m.opts.validateNaNInf && !scalar.IsFinite(x) {
			return denseErrorf(ctxSetCol, i, j, ErrNaNInf)
		}
	}
	for i, x := range v {
		m.data[i*m.c+j] = x
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy); nil clones to nil.
// Complexity: O(r*c).
func (m *DMat[N]) Clone() *DMat[N] {
	if m == nil {
		return nil
	}
	cp := make([]N, len(m.data))
	copy(cp, m.data)

	return &DMat[N]{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// Equal reports whether m and o have the same shape and identical entries.
// The numeric policy is not compared. Two nil matrices are equal.
func (m *DMat[N]) Equal(o *DMat[N]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether m and o have the same shape and every pair of
// entries differs by at most eps. Shapes that differ are never equal.
func (m *DMat[N]) ApproxEqual(o *DMat[N], eps float64) bool {
	ok, err := ewAllClose(m, o, 0, eps)

	return err == nil && ok
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *DMat[N]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false.
// A nil m has no elements.
// Complexity: O(r*c), no allocations.
func (m *DMat[N]) Do(f func(i, j int, v N) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
func (m *DMat[N]) Apply(f func(i, j int, v N) N) error {
	if m == nil {
		return denseErrorf(ctxApply, 0, 0, ErrNilMatrix)
	}
	var i, j, base int
	var nv N
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.validateNaNInf && !scalar.IsFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
