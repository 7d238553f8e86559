// SPDX-License-Identifier: MIT

// Package exact holds the integer-exact kernels used in place of the
// floating-point ones when the element type is a signed integer.
//
// Purpose:
//   - Det: fraction-free (Bareiss) elimination; every division is exact.
//   - Inverse: adjugate over the determinant, defined only for unimodular
//     matrices (det = ±1), the integer matrices whose inverse is integral.
//   - Normalize: integral unit vectors are exactly ±e_i.
//
// Notes:
//   - Intermediate Bareiss values are minors of the input, so they stay in
//     range whenever the products of two entries fit the element type.
//   - Matrices are row-major: entry (i, j) of an n×n matrix lives at i*n + j.
package exact

import "github.com/katalvlaran/lvgeom/scalar"

// Det returns det(a) for the n×n matrix a. a is not modified.
// The 0×0 determinant is 1.
// Complexity: O(n^3) time, O(n^2) scratch.
func Det[N scalar.Scalar](a []N, n int) N {
	if n == 0 {
		return 1
	}
	m := make([]N, n*n)
	copy(m, a[:n*n])

	var sign, prev N = 1, 1
	var k, i, j, p int
	for k = 0; k < n-1; k++ {
		if m[k*n+k] == 0 {
			for p = k + 1; p < n && m[p*n+k] == 0; p++ {
			}
			if p == n {
				return 0
			}
			for j = 0; j < n; j++ {
				m[k*n+j], m[p*n+j] = m[p*n+j], m[k*n+j]
			}
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				m[i*n+j] = (m[i*n+j]*m[k*n+k] - m[i*n+k]*m[k*n+j]) / prev
			}
		}
		prev = m[k*n+k]
	}

	return sign * m[n*n-1]
}

// Inverse writes a⁻¹ into dst and reports true when a is unimodular.
// Any other matrix has no integral inverse: Inverse returns false and leaves
// dst untouched, so dst may alias a.
// Complexity: O(n^5) time (one minor per cofactor), O(n^2) scratch.
func Inverse[N scalar.Scalar](dst, a []N, n int) bool {
	d := Det(a, n)
	if d != 1 && d != -1 {
		return false
	}
	out := make([]N, n*n)
	minor := make([]N, 0, (n-1)*(n-1))
	var i, j, r, c int
	var cof N
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// (a⁻¹)_ij = C_ji / det, with C_ji the cofactor of entry (j, i).
			minor = minor[:0]
			for r = 0; r < n; r++ {
				if r == j {
					continue
				}
				for c = 0; c < n; c++ {
					if c != i {
						minor = append(minor, a[r*n+c])
					}
				}
			}
			cof = Det(minor, n-1)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			out[i*n+j] = cof * d // d = ±1, so ·d equals /d
		}
	}
	copy(dst[:n*n], out)

	return true
}

// Normalize scales v in place to an integral unit vector and returns its
// previous norm. Only multiples of a basis vector qualify; any other vector,
// and the zero vector, is left unchanged and 0 is returned.
func Normalize[N scalar.Scalar](v []N) N {
	at := -1
	for i, x := range v {
		if x == 0 {
			continue
		}
		if at >= 0 {
			return 0
		}
		at = i
	}
	if at < 0 {
		return 0
	}
	n := scalar.Abs(v[at])
	v[at] /= n

	return n
}
