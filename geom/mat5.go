// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat5 is a 5×5 matrix stored row-major: entry (i, j) is m[5*i+j].
type Mat5[N scalar.Scalar] [25]N

// NewMat5 builds a Mat5 from its entries given row by row.
func NewMat5[N scalar.Scalar](
	m11, m12, m13, m14, m15,
	m21, m22, m23, m24, m25,
	m31, m32, m33, m34, m35,
	m41, m42, m43, m44, m45,
	m51, m52, m53, m54, m55 N,
) Mat5[N] {
	return Mat5[N]{
		m11, m12, m13, m14, m15,
		m21, m22, m23, m24, m25,
		m31, m32, m33, m34, m35,
		m41, m42, m43, m44, m45,
		m51, m52, m53, m54, m55,
	}
}

// Shape reports the static side marker.
func (m Mat5[N]) Shape() traits.D5 { return traits.D5{} }

// Dim returns the side length.
func (m Mat5[N]) Dim() int { return 5 }

// Entry returns m(i, j).
func (m Mat5[N]) Entry(i, j int) N { return m[i*5+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat5[N]) SetEntry(i, j int, x N) { m[i*5+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 5*i+j.
func (m Mat5[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat5[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat5[N]) WithEntry(i, j int, x N) Mat5[N] {
	m[i*5+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat5[N]) Zero() Mat5[N] { return Mat5[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat5[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat5[N]) One() Mat5[N] {
	var id Mat5[N]
	kIdentity(id[:], 5)

	return id
}

// Add returns m + o.
func (m Mat5[N]) Add(o Mat5[N]) Mat5[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat5[N]) Sub(o Mat5[N]) Mat5[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat5[N]) Scale(alpha N) Mat5[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat5[N]) Mul(o Mat5[N]) Mat5[N] {
	var r Mat5[N]
	kMatMul(r[:], m[:], o[:], 5)

	return r
}

// RMul returns m·v.
func (m Mat5[N]) RMul(v Vec5[N]) Vec5[N] {
	var r Vec5[N]
	kMatVec(r[:], m[:], v[:], 5)

	return r
}

// LMul returns vᵗ·m.
func (m Mat5[N]) LMul(v Vec5[N]) Vec5[N] {
	var r Vec5[N]
	kVecMat(r[:], v[:], m[:], 5)

	return r
}

// Transposed returns mᵗ.
func (m Mat5[N]) Transposed() Mat5[N] {
	kTranspose(m[:], 5)

	return m
}

// Transpose transposes m in place.
func (m *Mat5[N]) Transpose() { kTranspose(m[:], 5) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat5[N]) Inverted() (inv Mat5[N], ok bool) {
	ok = kInvert(inv[:], m[:], 5, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat5[N]) Invert() bool { return kInvert(m[:], m[:], 5, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat5[N]) Det() N { return kDet(m[:], 5) }

// Absolute returns the entry-wise absolute value.
func (m Mat5[N]) Absolute() Mat5[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat5[N]) Row(i int) Vec5[N] {
	var r Vec5[N]
	kRow(r[:], m[:], 5, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat5[N]) SetRow(i int, v Vec5[N]) { kSetRow(m[:], v[:], 5, i) }

// Col returns column j.
func (m Mat5[N]) Col(j int) Vec5[N] {
	var r Vec5[N]
	kCol(r[:], m[:], 5, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat5[N]) SetCol(j int, v Vec5[N]) { kSetCol(m[:], v[:], 5, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat5[N]) Mean() Vec5[N] {
	var r Vec5[N]
	kMean(r[:], m[:], 5)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat5[N]) Cov() Mat5[N] {
	var r Mat5[N]
	kCov(r[:], m[:], 5)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat5[N]) ApproxEq(o Mat5[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }

// ToHomogeneous embeds m as the linear block of a 6×6 matrix whose last row
// and column are those of the identity.
func (m Mat5[N]) ToHomogeneous() Mat6[N] {
	var h Mat6[N]
	kToHomogeneous(h[:], m[:], 5)

	return h
}

// FromHomogeneous returns the upper-left 5×5 block of h. The receiver is ignored.
func (m Mat5[N]) FromHomogeneous(h Mat6[N]) Mat5[N] {
	var r Mat5[N]
	kFromHomogeneous(r[:], h[:], 5)

	return r
}
