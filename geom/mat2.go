// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat2 is a 2×2 matrix stored row-major: entry (i, j) is m[2*i+j].
type Mat2[N scalar.Scalar] [4]N

// NewMat2 builds a Mat2 from its entries given row by row.
func NewMat2[N scalar.Scalar](
	m11, m12,
	m21, m22 N,
) Mat2[N] {
	return Mat2[N]{
		m11, m12,
		m21, m22,
	}
}

// Shape reports the static side marker.
func (m Mat2[N]) Shape() traits.D2 { return traits.D2{} }

// Dim returns the side length.
func (m Mat2[N]) Dim() int { return 2 }

// Entry returns m(i, j).
func (m Mat2[N]) Entry(i, j int) N { return m[i*2+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat2[N]) SetEntry(i, j int, x N) { m[i*2+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 2*i+j.
func (m Mat2[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat2[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat2[N]) WithEntry(i, j int, x N) Mat2[N] {
	m[i*2+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat2[N]) Zero() Mat2[N] { return Mat2[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat2[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat2[N]) One() Mat2[N] {
	var id Mat2[N]
	kIdentity(id[:], 2)

	return id
}

// Add returns m + o.
func (m Mat2[N]) Add(o Mat2[N]) Mat2[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat2[N]) Sub(o Mat2[N]) Mat2[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat2[N]) Scale(alpha N) Mat2[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat2[N]) Mul(o Mat2[N]) Mat2[N] {
	var r Mat2[N]
	kMatMul(r[:], m[:], o[:], 2)

	return r
}

// RMul returns m·v.
func (m Mat2[N]) RMul(v Vec2[N]) Vec2[N] {
	var r Vec2[N]
	kMatVec(r[:], m[:], v[:], 2)

	return r
}

// LMul returns vᵗ·m.
func (m Mat2[N]) LMul(v Vec2[N]) Vec2[N] {
	var r Vec2[N]
	kVecMat(r[:], v[:], m[:], 2)

	return r
}

// Transposed returns mᵗ.
func (m Mat2[N]) Transposed() Mat2[N] {
	kTranspose(m[:], 2)

	return m
}

// Transpose transposes m in place.
func (m *Mat2[N]) Transpose() { kTranspose(m[:], 2) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat2[N]) Inverted() (inv Mat2[N], ok bool) {
	ok = kInvert(inv[:], m[:], 2, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat2[N]) Invert() bool { return kInvert(m[:], m[:], 2, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat2[N]) Det() N { return kDet(m[:], 2) }

// Absolute returns the entry-wise absolute value.
func (m Mat2[N]) Absolute() Mat2[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat2[N]) Row(i int) Vec2[N] {
	var r Vec2[N]
	kRow(r[:], m[:], 2, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat2[N]) SetRow(i int, v Vec2[N]) { kSetRow(m[:], v[:], 2, i) }

// Col returns column j.
func (m Mat2[N]) Col(j int) Vec2[N] {
	var r Vec2[N]
	kCol(r[:], m[:], 2, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat2[N]) SetCol(j int, v Vec2[N]) { kSetCol(m[:], v[:], 2, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat2[N]) Mean() Vec2[N] {
	var r Vec2[N]
	kMean(r[:], m[:], 2)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat2[N]) Cov() Mat2[N] {
	var r Mat2[N]
	kCov(r[:], m[:], 2)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat2[N]) ApproxEq(o Mat2[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }

// ToHomogeneous embeds m as the linear block of a 3×3 matrix whose last row
// and column are those of the identity.
func (m Mat2[N]) ToHomogeneous() Mat3[N] {
	var h Mat3[N]
	kToHomogeneous(h[:], m[:], 2)

	return h
}

// FromHomogeneous returns the upper-left 2×2 block of h. The receiver is ignored.
func (m Mat2[N]) FromHomogeneous(h Mat3[N]) Mat2[N] {
	var r Mat2[N]
	kFromHomogeneous(r[:], h[:], 2)

	return r
}
