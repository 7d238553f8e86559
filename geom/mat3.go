// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat3 is a 3×3 matrix stored row-major: entry (i, j) is m[3*i+j].
// It is a plain array, so == compares entry-wise and assignment copies.
type Mat3[N scalar.Scalar] [9]N

// NewMat3 builds a Mat3 from its entries given row by row.
func NewMat3[N scalar.Scalar](
	m11, m12, m13,
	m21, m22, m23,
	m31, m32, m33 N,
) Mat3[N] {
	return Mat3[N]{
		m11, m12, m13,
		m21, m22, m23,
		m31, m32, m33,
	}
}

// Shape reports the static side marker.
func (m Mat3[N]) Shape() traits.D3 { return traits.D3{} }

// Dim returns the side length.
func (m Mat3[N]) Dim() int { return 3 }

// Entry returns m(i, j).
func (m Mat3[N]) Entry(i, j int) N { return m[i*3+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat3[N]) SetEntry(i, j int, x N) { m[i*3+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 3*i+j.
func (m Mat3[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat3[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat3[N]) WithEntry(i, j int, x N) Mat3[N] {
	m[i*3+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat3[N]) Zero() Mat3[N] { return Mat3[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat3[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat3[N]) One() Mat3[N] {
	var id Mat3[N]
	kIdentity(id[:], 3)

	return id
}

// Add returns m + o.
func (m Mat3[N]) Add(o Mat3[N]) Mat3[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat3[N]) Sub(o Mat3[N]) Mat3[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat3[N]) Scale(alpha N) Mat3[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat3[N]) Mul(o Mat3[N]) Mat3[N] {
	var r Mat3[N]
	kMatMul(r[:], m[:], o[:], 3)

	return r
}

// RMul returns m·v.
func (m Mat3[N]) RMul(v Vec3[N]) Vec3[N] {
	var r Vec3[N]
	kMatVec(r[:], m[:], v[:], 3)

	return r
}

// LMul returns vᵗ·m.
func (m Mat3[N]) LMul(v Vec3[N]) Vec3[N] {
	var r Vec3[N]
	kVecMat(r[:], v[:], m[:], 3)

	return r
}

// Transposed returns mᵗ.
func (m Mat3[N]) Transposed() Mat3[N] {
	kTranspose(m[:], 3)

	return m
}

// Transpose transposes m in place.
func (m *Mat3[N]) Transpose() { kTranspose(m[:], 3) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat3[N]) Inverted() (inv Mat3[N], ok bool) {
	ok = kInvert(inv[:], m[:], 3, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat3[N]) Invert() bool { return kInvert(m[:], m[:], 3, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat3[N]) Det() N { return kDet(m[:], 3) }

// Absolute returns the entry-wise absolute value.
func (m Mat3[N]) Absolute() Mat3[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat3[N]) Row(i int) Vec3[N] {
	var r Vec3[N]
	kRow(r[:], m[:], 3, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat3[N]) SetRow(i int, v Vec3[N]) { kSetRow(m[:], v[:], 3, i) }

// Col returns column j.
func (m Mat3[N]) Col(j int) Vec3[N] {
	var r Vec3[N]
	kCol(r[:], m[:], 3, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat3[N]) SetCol(j int, v Vec3[N]) { kSetCol(m[:], v[:], 3, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat3[N]) Mean() Vec3[N] {
	var r Vec3[N]
	kMean(r[:], m[:], 3)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat3[N]) Cov() Mat3[N] {
	var r Mat3[N]
	kCov(r[:], m[:], 3)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat3[N]) ApproxEq(o Mat3[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }

// ToHomogeneous embeds m as the linear block of a 4×4 matrix whose last row
// and column are (0, 0, 0, 1).
func (m Mat3[N]) ToHomogeneous() Mat4[N] {
	var h Mat4[N]
	kToHomogeneous(h[:], m[:], 3)

	return h
}

// FromHomogeneous returns the upper-left 3×3 block of h. The receiver is ignored.
func (m Mat3[N]) FromHomogeneous(h Mat4[N]) Mat3[N] {
	var r Mat3[N]
	kFromHomogeneous(r[:], h[:], 3)

	return r
}
