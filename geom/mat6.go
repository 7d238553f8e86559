// SPDX-License-Identifier: MIT

package geom

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// Mat6 is a 6×6 matrix stored row-major: entry (i, j) is m[6*i+j].
type Mat6[N scalar.Scalar] [36]N

// NewMat6 builds a Mat6 from its entries given row by row.
func NewMat6[N scalar.Scalar](
	m11, m12, m13, m14, m15, m16,
	m21, m22, m23, m24, m25, m26,
	m31, m32, m33, m34, m35, m36,
	m41, m42, m43, m44, m45, m46,
	m51, m52, m53, m54, m55, m56,
	m61, m62, m63, m64, m65, m66 N,
) Mat6[N] {
	return Mat6[N]{
		m11, m12, m13, m14, m15, m16,
		m21, m22, m23, m24, m25, m26,
		m31, m32, m33, m34, m35, m36,
		m41, m42, m43, m44, m45, m46,
		m51, m52, m53, m54, m55, m56,
		m61, m62, m63, m64, m65, m66,
	}
}

// Shape reports the static side marker.
func (m Mat6[N]) Shape() traits.D6 { return traits.D6{} }

// Dim returns the side length.
func (m Mat6[N]) Dim() int { return 6 }

// Entry returns m(i, j).
func (m Mat6[N]) Entry(i, j int) N { return m[i*6+j] }

// SetEntry assigns m(i, j) in place.
func (m *Mat6[N]) SetEntry(i, j int, x N) { m[i*6+j] = x }

// All yields the entries in row-major order: entry (i, j) comes with index 6*i+j.
func (m Mat6[N]) All() iter.Seq2[int, N] { return kAll(m[:]) }

// AllMut yields pointers to the entries in row-major order.
func (m *Mat6[N]) AllMut() iter.Seq2[int, *N] { return kAllMut(m[:]) }

// WithEntry returns a copy of m with entry (i, j) replaced by x.
func (m Mat6[N]) WithEntry(i, j int, x N) Mat6[N] {
	m[i*6+j] = x

	return m
}

// Zero returns the zero matrix. The receiver is ignored.
func (m Mat6[N]) Zero() Mat6[N] { return Mat6[N]{} }

// IsZero reports whether every entry is zero.
func (m Mat6[N]) IsZero() bool { return kIsZero(m[:]) }

// One returns the identity matrix. The receiver is ignored.
func (m Mat6[N]) One() Mat6[N] {
	var id Mat6[N]
	kIdentity(id[:], 6)

	return id
}

// Add returns m + o.
func (m Mat6[N]) Add(o Mat6[N]) Mat6[N] {
	kAdd(m[:], m[:], o[:])

	return m
}

// Sub returns m − o.
func (m Mat6[N]) Sub(o Mat6[N]) Mat6[N] {
	kSub(m[:], m[:], o[:])

	return m
}

// Scale returns alpha·m.
func (m Mat6[N]) Scale(alpha N) Mat6[N] {
	kScale(m[:], m[:], alpha)

	return m
}

// Mul returns the matrix product m·o.
func (m Mat6[N]) Mul(o Mat6[N]) Mat6[N] {
	var r Mat6[N]
	kMatMul(r[:], m[:], o[:], 6)

	return r
}

// RMul returns m·v.
func (m Mat6[N]) RMul(v Vec6[N]) Vec6[N] {
	var r Vec6[N]
	kMatVec(r[:], m[:], v[:], 6)

	return r
}

// LMul returns vᵗ·m.
func (m Mat6[N]) LMul(v Vec6[N]) Vec6[N] {
	var r Vec6[N]
	kVecMat(r[:], v[:], m[:], 6)

	return r
}

// Transposed returns mᵗ.
func (m Mat6[N]) Transposed() Mat6[N] {
	kTranspose(m[:], 6)

	return m
}

// Transpose transposes m in place.
func (m *Mat6[N]) Transpose() { kTranspose(m[:], 6) }

// Inverted returns m⁻¹, or ok == false when m is singular within the relative
// tolerance scalar.DefaultEpsilon. Integer matrices invert only when det = ±1.
func (m Mat6[N]) Inverted() (inv Mat6[N], ok bool) {
	ok = kInvert(inv[:], m[:], 6, scalar.DefaultEpsilon)

	return inv, ok
}

// Invert inverts m in place and reports success; a singular m is left unchanged.
func (m *Mat6[N]) Invert() bool { return kInvert(m[:], m[:], 6, scalar.DefaultEpsilon) }

// Det returns the determinant of m, exact for integer element types.
func (m Mat6[N]) Det() N { return kDet(m[:], 6) }

// Absolute returns the entry-wise absolute value.
func (m Mat6[N]) Absolute() Mat6[N] {
	kAbs(m[:], m[:])

	return m
}

// Row returns row i.
func (m Mat6[N]) Row(i int) Vec6[N] {
	var r Vec6[N]
	kRow(r[:], m[:], 6, i)

	return r
}

// SetRow replaces row i in place.
func (m *Mat6[N]) SetRow(i int, v Vec6[N]) { kSetRow(m[:], v[:], 6, i) }

// Col returns column j.
func (m Mat6[N]) Col(j int) Vec6[N] {
	var r Vec6[N]
	kCol(r[:], m[:], 6, j)

	return r
}

// SetCol replaces column j in place.
func (m *Mat6[N]) SetCol(j int, v Vec6[N]) { kSetCol(m[:], v[:], 6, j) }

// Mean returns the average of the rows of m, each row being one observation.
func (m Mat6[N]) Mean() Vec6[N] {
	var r Vec6[N]
	kMean(r[:], m[:], 6)

	return r
}

// Cov returns the sample covariance of the rows of m.
func (m Mat6[N]) Cov() Mat6[N] {
	var r Mat6[N]
	kCov(r[:], m[:], 6)

	return r
}

// ApproxEq reports whether every entry of m is within eps of o.
func (m Mat6[N]) ApproxEq(o Mat6[N], eps float64) bool { return kApproxEq(m[:], o[:], eps) }
