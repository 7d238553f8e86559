// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat4 is a 4×4 matrix stored row-major: entry (i, j) is m[4*i+j].
type Mat4[N scalar.Scalar] [16]N

// NewMat4 builds a Mat4 from its entries given row by row.
func NewMat4[N scalar.Scalar](
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 N,
) Mat4[N] {
	return Mat4[N]{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// Shape reports the static side marker.
func (m Mat4[N]) Shape() traits.D4 { return traits.D4{} }

// Dim returns the side length.
func (m Mat4[N]) Dim() int { return 4 }

// Entry returns m(i, j).
func (m Mat4[N]) Entry(i, j int) N { return m[i*4+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat4[N]) SetEntry(i, j int, x N) { m[i*4+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 4*i+j.
func (m Mat4[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat4[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat4[N]) WithEntry(i, j int, x N) Mat4[N] {
	m[i*4+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat4[N]) Zero() Mat4[N] { return Mat4[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat4[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat4[N]) One() Mat4[N] {
	var id Mat4[N]
	kIdentity(id[:], 4)

	return id
}

// Add returns m + o.
func (m Mat4[N]) Add(o Mat4[N]) Mat4[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat4[N]) Sub(o Mat4[N]) Mat4[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat4[N]) Scale(alpha N) Mat4[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat4[N]) Mul(o Mat4[N]) Mat4[N] {
	var r Mat4[N]
	kMatMul(r[:], m[:], o[:], 4)

	return r
}

// RMul returns m·v.
func (m Mat4[N]) RMul(v Vec4[N]) Vec4[N] {
	var r Vec4[N]
	kMatVec(r[:], m[:], v[:], 4)

	return r
}

// LMul returns vᵗ·m.
func (m Mat4[N]) LMul(v Vec4[N]) Vec4[N] {
	var r Vec4[N]
	kVecMat(r[:], v[:], m[:], 4)

	return r
}

// Transposed returns mᵗ.
func (m Mat4[N]) Transposed() Mat4[N] {
	kTranspose(m[:], 4)

	return m
}

// Transpose transposes m in place.
func (m *Mat4[N]) Transpose() { kTranspose(m[:], 4) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat4[N]) Inverted() (inv Mat4[N], ok bool) {
	ok = kInvert(inv[:], m[:], 4, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat4[N]) Invert() bool { return kInvert(m[:], m[:], 4, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat4[N]) Det() N { return kDet(m[:], 4) }

// Absolute returns the entry-wise absolute value.
func (m Mat4[N]) Absolute() Mat4[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat4[N]) Row(i int) Vec4[N] {
	var r Vec4[N]
	kRow(r[:], m[:], 4, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat4[N]) SetRow(i int, v Vec4[N]) { kSetRow(m[:], v[:], 4, i) }

// Col returns column j.
func (m Mat4[N]) Col(j int) Vec4[N] {
	var r Vec4[N]
	kCol(r[:], m[:], 4, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat4[N]) SetCol(j int, v Vec4[N]) { kSetCol(m[:], v[:], 4, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat4[N]) Mean() Vec4[N] {
	var r Vec4[N]
	kMean(r[:], m[:], 4)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat4[N]) Cov() Mat4[N] {
	var r Mat4[N]
	kCov(r[:], m[:], 4)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat4[N]) ApproxEq(o Mat4[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }

// ToHomogeneous embeds m as the linear block of a 5×5 matrix whose last row
// and column are those of the identity.
func (m Mat4[N]) ToHomogeneous() Mat5[N] {
	var h Mat5[N]
	kToHomogeneous(h[:], m[:], 4)

	return h
}

// FromHomogeneous returns the upper-left 4×4 block of h. The receiver is ignored.
func (m Mat4[N]) FromHomogeneous(h Mat5[N]) Mat4[N] {
	var r Mat4[N]
	kFromHomogeneous(r[:], h[:], 4)

	return r
}
