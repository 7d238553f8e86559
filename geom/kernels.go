// SPDX-License-Identifier: MIT
// Package: geom
//
// Purpose:
//   - Provide the private slice micro-kernels (k*) behind every fixed-size family.
//     Vec0..Vec6, Mat1..Mat6, Rot2..Rot4 and Iso2..Iso4 all slice their backing
//     arrays and delegate here, so each loop exists exactly once.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1, or i→j→k for products).
//   - Row-major layout: entry (i, j) of an n×n matrix lives at i*n + j.
//   - No allocations: scratch space is a fixed-size array on the stack (maxSide²).
//
// AI-Hints:
//   - Callers pass freshly sliced receivers (v[:]); kernels never retain slices.
//   - dst may alias an input only where noted.

package geom

import (
	"iter"
	"math"

	"github.com/katalvlaran/lvgeom/internal/exact"
	"github.com/katalvlaran/lvgeom/scalar"
)

// maxSide is the largest fixed matrix side supported by the scratch buffers.
const maxSide = 6

// kDot returns Σ a_i·b_i.
func kDot[N scalar.Scalar](a, b []N) N {
	var sum N
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// kSubDot returns Σ (a_i − b_i)·c_i.
func kSubDot[N scalar.Scalar](a, b, c []N) N {
	var sum N
	for i := range a {
		sum += (a[i] - b[i]) * c[i]
	}

	return sum
}

// kAdd writes a + b into dst (dst may alias a or b).
func kAdd[N scalar.Scalar](dst, a, b []N) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// kSub writes a − b into dst (dst may alias a or b).
func kSub[N scalar.Scalar](dst, a, b []N) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// kMulElem writes the component-wise product into dst.
func kMulElem[N scalar.Scalar](dst, a, b []N) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// kScale writes alpha·a into dst (dst may alias a).
func kScale[N scalar.Scalar](dst, a []N, alpha N) {
	for i := range dst {
		dst[i] = a[i] * alpha
	}
}

// kDiv writes a/alpha into dst (dst may alias a).
func kDiv[N scalar.Scalar](dst, a []N, alpha N) {
	for i := range dst {
		dst[i] = a[i] / alpha
	}
}

// kAddScalar writes a + x into dst (dst may alias a).
func kAddScalar[N scalar.Scalar](dst, a []N, x N) {
	for i := range dst {
		dst[i] = a[i] + x
	}
}

// kNeg writes −a into dst (dst may alias a).
func kNeg[N scalar.Scalar](dst, a []N) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// kAbs writes |a| into dst (dst may alias a).
func kAbs[N scalar.Scalar](dst, a []N) {
	for i := range dst {
		dst[i] = scalar.Abs(a[i])
	}
}

// kIsZero reports whether every component is zero.
func kIsZero[N scalar.Scalar](a []N) bool {
	for _, x := range a {
		if x != 0 {
			return false
		}
	}

	return true
}

// kApproxEq reports whether |a_i − b_i| <= eps for every i.
func kApproxEq[N scalar.Scalar](a, b []N, eps float64) bool {
	for i := range a {
		if !scalar.ApproxEq(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// kAll yields (i, s[i]) in index order until yield returns false.
func kAll[N scalar.Scalar](s []N) iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		for i, x := range s {
			if !yield(i, x) {
				return
			}
		}
	}
}

// kAllMut yields (i, &s[i]) in index order until yield returns false.
func kAllMut[N scalar.Scalar](s []N) iter.Seq2[int, *N] {
	return func(yield func(int, *N) bool) {
		for i := range s {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// kMaxAbs returns max |a_i| (0 for an empty slice).
func kMaxAbs[N scalar.Scalar](a []N) N {
	var m N
	for _, x := range a {
		m = scalar.Max(m, scalar.Abs(x))
	}

	return m
}

// kNormalize scales v in place to unit length and returns the previous norm.
// A vector whose norm is <= DefaultNormEpsilon is left unchanged.
// Integer vectors follow exact.Normalize: only multiples of a basis vector
// are scaled, anything else is left unchanged and 0 is returned.
func kNormalize[N scalar.Scalar](v []N) N {
	if !scalar.IsFloat[N]() {
		return exact.Normalize(v)
	}
	n := scalar.Sqrt(kDot(v, v))
	if float64(n) <= scalar.DefaultNormEpsilon {
		return n
	}
	kDiv(v, v, n)

	return n
}

// ---------- square matrices (row-major, side n) ----------

// kIdentity writes I_n into dst.
func kIdentity[N scalar.Scalar](dst []N, n int) {
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] = 1
	}
}

// kMatMul writes a·b into dst. dst must not alias a or b.
// Complexity: O(n^3), fixed i→j→k order.
func kMatMul[N scalar.Scalar](dst, a, b []N, n int) {
	var i, j, k int
	var sum N
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			dst[i*n+j] = sum
		}
	}
}

// kMatVec writes m·v into dst. dst must not alias v.
func kMatVec[N scalar.Scalar](dst, m, v []N, n int) {
	var sum N
	for i := 0; i < n; i++ {
		sum = 0
		for k := 0; k < n; k++ {
			sum += m[i*n+k] * v[k]
		}
		dst[i] = sum
	}
}

// kVecMat writes vᵗ·m into dst. dst must not alias v.
func kVecMat[N scalar.Scalar](dst, v, m []N, n int) {
	var sum N
	for j := 0; j < n; j++ {
		sum = 0
		for k := 0; k < n; k++ {
			sum += v[k] * m[k*n+j]
		}
		dst[j] = sum
	}
}

// kTransMatVec writes mᵗ·v into dst without materialising mᵗ.
func kTransMatVec[N scalar.Scalar](dst, m, v []N, n int) {
	kVecMat(dst, v, m, n)
}

// kTranspose transposes the n×n matrix m in place.
func kTranspose[N scalar.Scalar](m []N, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			m[i*n+j], m[j*n+i] = m[j*n+i], m[i*n+j]
		}
	}
}

// kRow copies row i into dst.
func kRow[N scalar.Scalar](dst, m []N, n, i int) {
	copy(dst, m[i*n:i*n+n])
}

// kSetRow copies src into row i.
func kSetRow[N scalar.Scalar](m, src []N, n, i int) {
	copy(m[i*n:i*n+n], src)
}

// kCol copies column j into dst.
func kCol[N scalar.Scalar](dst, m []N, n, j int) {
	for i := 0; i < n; i++ {
		dst[i] = m[i*n+j]
	}
}

// kSetCol copies src into column j.
func kSetCol[N scalar.Scalar](m, src []N, n, j int) {
	for i := 0; i < n; i++ {
		m[i*n+j] = src[i]
	}
}

// kOuter writes a·bᵗ (n×n) into dst.
func kOuter[N scalar.Scalar](dst, a, b []N, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = a[i] * b[j]
		}
	}
}

// kInvert writes the inverse of the n×n matrix m into dst using Gauss–Jordan
// elimination with partial pivoting.
// Implementation:
//   - Stage 1: copy m into a stack scratch buffer; start dst from I_n (in scratch).
//   - Stage 2: for each column pick the largest |pivot|; reject it when
//     |pivot| <= eps·max|m_ij| (relative tolerance); swap, scale, eliminate.
//   - Stage 3: only on success copy the result into dst.
//
// Behavior highlights:
//   - dst is untouched when the matrix is singular, so dst may alias m and the
//     receiver of Invert keeps its value on failure.
//   - Integer matrices go through exact.Inverse and invert only when
//     unimodular (det = ±1).
//
// Complexity: O(n^3) time, O(1) heap.
func kInvert[N scalar.Scalar](dst, m []N, n int, eps float64) bool {
	if !scalar.IsFloat[N]() {
		return exact.Inverse(dst, m, n)
	}
	var a, inv [maxSide * maxSide]N
	copy(a[:], m[:n*n])
	kIdentity(inv[:n*n], n)

	scale := kMaxAbs(m[:n*n])
	if scale == 0 {
		return false
	}
	tol := scalar.Tolerance[N](eps) * scale

	var col, row, piv, j int
	var best, p, f N
	for col = 0; col < n; col++ {
		// Partial pivoting: largest |a[row,col]| for row >= col.
		piv, best = col, scalar.Abs(a[col*n+col])
		for row = col + 1; row < n; row++ {
			if v := scalar.Abs(a[row*n+col]); v > best {
				piv, best = row, v
			}
		}
		if best <= tol {
			return false
		}
		if piv != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[piv*n+j] = a[piv*n+j], a[col*n+j]
				inv[col*n+j], inv[piv*n+j] = inv[piv*n+j], inv[col*n+j]
			}
		}
		// Normalise the pivot row.
		p = a[col*n+col]
		for j = 0; j < n; j++ {
			a[col*n+j] /= p
			inv[col*n+j] /= p
		}
		// Eliminate the column from every other row.
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = a[row*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[row*n+j] -= f * a[col*n+j]
				inv[row*n+j] -= f * inv[col*n+j]
			}
		}
	}
	copy(dst[:n*n], inv[:n*n])

	return true
}

// kDet returns det(m) by Gaussian elimination with partial pivoting, or by
// fraction-free elimination for integer element types.
func kDet[N scalar.Scalar](m []N, n int) N {
	if !scalar.IsFloat[N]() {
		return exact.Det(m, n)
	}
	if n == 0 {
		return 1
	}
	var a [maxSide * maxSide]N
	copy(a[:], m[:n*n])

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
			return 0
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

	return det
}

// kMean writes the average of the n rows of the n×n matrix m into dst.
func kMean[N scalar.Scalar](dst, m []N, n int) {
	for j := 0; j < n; j++ {
		var sum N
		for i := 0; i < n; i++ {
			sum += m[i*n+j]
		}
		dst[j] = sum / N(n)
	}
}

// kCov writes the sample covariance of the n rows of m into dst:
// Cov = (Xcᵗ·Xc)/(n−1), with Xc the column-centred observations.
// Fewer than two rows produce the zero matrix.
func kCov[N scalar.Scalar](dst, m []N, n int) {
	for i := range dst[:n*n] {
		dst[i] = 0
	}
	if n < 2 {
		return
	}
	var mean [maxSide]N
	kMean(mean[:n], m, n)

	var i, j, k int
	var sum N
	for j = 0; j < n; j++ {
		for k = j; k < n; k++ {
			sum = 0
			for i = 0; i < n; i++ {
				sum += (m[i*n+j] - mean[j]) * (m[i*n+k] - mean[k])
			}
			sum /= N(n - 1)
			dst[j*n+k] = sum
			dst[k*n+j] = sum
		}
	}
}

// kToHomogeneous embeds the n×n matrix m into the (n+1)×(n+1) dst with a unit
// bottom-right entry and zeros elsewhere in the last row and column.
func kToHomogeneous[N scalar.Scalar](dst, m []N, n int) {
	h := n + 1
	kIdentity(dst[:h*h], h)
	for i := 0; i < n; i++ {
		copy(dst[i*h:i*h+n], m[i*n:i*n+n])
	}
}

// kFromHomogeneous copies the upper-left n×n block of the (n+1)×(n+1) h into dst.
func kFromHomogeneous[N scalar.Scalar](dst, h []N, n int) {
	s := n + 1
	for i := 0; i < n; i++ {
		copy(dst[i*n:i*n+n], h[i*s:i*s+n])
	}
}

// kAffine writes the homogeneous matrix [R t; 0 1] of side n+1 into dst.
func kAffine[N scalar.Scalar](dst, r, t []N, n int) {
	kToHomogeneous(dst, r, n)
	h := n + 1
	for i := 0; i < n; i++ {
		dst[i*h+n] = t[i]
	}
}

// kSplitAffine extracts R (n×n) and t (n) from a homogeneous matrix of side n+1.
func kSplitAffine[N scalar.Scalar](r, t, h []N, n int) {
	kFromHomogeneous(r, h, n)
	s := n + 1
	for i := 0; i < n; i++ {
		t[i] = h[i*s+n]
	}
}

// kVecFromHomogeneous writes the first n components of h into dst, divided by
// the last component when it is non-zero.
func kVecFromHomogeneous[N scalar.Scalar](dst, h []N, n int) {
	w := h[n]
	if w == 0 {
		copy(dst[:n], h[:n])
		return
	}
	kDiv(dst[:n], h[:n], w)
}

// kGramSchmidt orthonormalises the canonical basis against the unit vector u
// (dimension n) and calls f with each accepted direction, in index order,
// until n−1 vectors were produced or f asks to stop.
func kGramSchmidt[N scalar.Scalar](u []N, n int, f func(b []N) bool) {
	var basis [maxSide][maxSide]N
	copy(basis[0][:n], u)
	accepted := 1

	var cand [maxSide]N
	for e := 0; e < n && accepted < n; e++ {
		for i := 0; i < n; i++ {
			cand[i] = 0
		}
		cand[e] = 1
		for b := 0; b < accepted; b++ {
			proj := kDot(cand[:n], basis[b][:n])
			for i := 0; i < n; i++ {
				cand[i] -= proj * basis[b][i]
			}
		}
		if float64(scalar.Sqrt(kDot(cand[:n], cand[:n]))) <= 1e-6 {
			continue
		}
		kNormalize(cand[:n])
		copy(basis[accepted][:n], cand[:n])
		accepted++
		if !f(basis[accepted-1][:n]) {
			return
		}
	}
}

// kFibonacciSphere returns the i-th of count points of the Fibonacci lattice on
// the unit sphere.
func kFibonacciSphere(i, count int) (x, y, z float64) {
	golden := math.Pi * (3 - math.Sqrt(5))
	y = 1 - 2*(float64(i)+0.5)/float64(count)
	r := math.Sqrt(1 - y*y)
	theta := golden * float64(i)

	return r * math.Cos(theta), y, r * math.Sin(theta)
}
