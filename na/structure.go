// SPDX-License-Identifier: MIT

package na

import "github.com/katalvlaran/lvgeom/traits"

// Absolute returns the entry-wise absolute value of x.
func Absolute[T traits.Absolute[R], R any](x T) R { return x.Absolute() }

// Inverted returns the inverse of *m and true, or the zero value and false
// when m is singular. It works for the fixed families (na.Inverted(&m)) and for
// *matrix.DMat alike.
func Inverted[P traits.Inv[T], T any](m P) (T, bool) { return m.Inverted() }

// Invert inverts m in place; m is left unchanged when it is singular.
func Invert[P traits.Inv[T], T any](m P) bool { return m.Invert() }

// Transposed returns the transpose of *m.
func Transposed[P traits.Transpose[T], T any](m P) T { return m.Transposed() }

// Transpose transposes m in place.
func Transpose[P traits.Transpose[T], T any](m P) { m.Transpose() }

// Outer returns the outer product a·bᵗ.
func Outer[V traits.Outer[V, M], M any](a, b V) M { return a.Outer(b) }

// Mean returns the component-wise average of the rows of m.
func Mean[T traits.Mean[V], V any](m T) V { return m.Mean() }

// Cov returns the sample covariance of the rows of m.
func Cov[T traits.Cov[M], M any](m T) M { return m.Cov() }

// Row returns row i of *m.
func Row[P traits.Row[V], V any](m P, i int) V { return m.Row(i) }

// Col returns column i of *m.
func Col[P traits.Col[V], V any](m P, i int) V { return m.Col(i) }

// RMul returns m·v.
func RMul[M traits.RMul[V], V any](m M, v V) V { return m.RMul(v) }

// LMul returns vᵗ·m.
func LMul[M traits.LMul[V], V any](m M, v V) V { return m.LMul(v) }
