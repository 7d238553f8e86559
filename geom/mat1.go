// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat1 is a 1×1 matrix stored row-major: entry (i, j) is m[1*i+j].
type Mat1[N scalar.Scalar] [1]N

// NewMat1 builds a Mat1 from its entries given row by row.
func NewMat1[N scalar.Scalar](
	m11 N,
) Mat1[N] {
	return Mat1[N]{
		m11,
	}
}

// Shape reports the static side marker.
func (m Mat1[N]) Shape() traits.D1 { return traits.D1{} }

// Dim returns the side length.
func (m Mat1[N]) Dim() int { return 1 }

// Entry returns m(i, j).
func (m Mat1[N]) Entry(i, j int) N { return m[i*1+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat1[N]) SetEntry(i, j int, x N) { m[i*1+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 1*i+j.
func (m Mat1[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat1[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat1[N]) WithEntry(i, j int, x N) Mat1[N] {
	m[i*1+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat1[N]) Zero() Mat1[N] { return Mat1[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat1[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat1[N]) One() Mat1[N] {
	var id Mat1[N]
	kIdentity(id[:], 1)

	return id
}

// Add returns m + o.
func (m Mat1[N]) Add(o Mat1[N]) Mat1[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat1[N]) Sub(o Mat1[N]) Mat1[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat1[N]) Scale(alpha N) Mat1[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat1[N]) Mul(o Mat1[N]) Mat1[N] {
	var r Mat1[N]
	kMatMul(r[:], m[:], o[:], 1)

	return r
}

// RMul returns m·v.
func (m Mat1[N]) RMul(v Vec1[N]) Vec1[N] {
	var r Vec1[N]
	kMatVec(r[:], m[:], v[:], 1)

	return r
}

// LMul returns vᵗ·m.
func (m Mat1[N]) LMul(v Vec1[N]) Vec1[N] {
	var r Vec1[N]
	kVecMat(r[:], v[:], m[:], 1)

	return r
}

// Transposed returns mᵗ.
func (m Mat1[N]) Transposed() Mat1[N] {
	kTranspose(m[:], 1)

	return m
}

// Transpose transposes m in place.
func (m *Mat1[N]) Transpose() { kTranspose(m[:], 1) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat1[N]) Inverted() (inv Mat1[N], ok bool) {
	ok = kInvert(inv[:], m[:], 1, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat1[N]) Invert() bool { return kInvert(m[:], m[:], 1, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat1[N]) Det() N { return kDet(m[:], 1) }

// Absolute returns the entry-wise absolute value.
func (m Mat1[N]) Absolute() Mat1[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat1[N]) Row(i int) Vec1[N] {
	var r Vec1[N]
	kRow(r[:], m[:], 1, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat1[N]) SetRow(i int, v Vec1[N]) { kSetRow(m[:], v[:], 1, i) }

// Col returns column j.
func (m Mat1[N]) Col(j int) Vec1[N] {
	var r Vec1[N]
	kCol(r[:], m[:], 1, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat1[N]) SetCol(j int, v Vec1[N]) { kSetCol(m[:], v[:], 1, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat1[N]) Mean() Vec1[N] {
	var r Vec1[N]
	kMean(r[:], m[:], 1)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat1[N]) Cov() Mat1[N] {
	var r Mat1[N]
	kCov(r[:], m[:], 1)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat1[N]) ApproxEq(o Mat1[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }

// ToHomogeneous embeds m as the linear block of a 2×2 matrix whose last row
// and column are those of the identity.
func (m Mat1[N]) ToHomogeneous() Mat2[N] {
	var h Mat2[N]
	kToHomogeneous(h[:], m[:], 1)

	return h
}

// FromHomogeneous returns the upper-left 1×1 block of h. The receiver is ignored.
func (m Mat1[N]) FromHomogeneous(h Mat2[N]) Mat1[N] {
	var r Mat1[N]
	kFromHomogeneous(r[:], h[:], 1)

	return r
}
