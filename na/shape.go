// SPDX-License-Identifier: MIT

package na

import (
	"iter"

	"github.com/katalvlaran/lvgeom/scalar"
	"github.com/katalvlaran/lvgeom/traits"
)

// ToHomogeneous lifts x into the representation of one dimension more.
func ToHomogeneous[T traits.ToHomogeneous[H], H any](x T) H { return x.ToHomogeneous() }

// FromHomogeneous lowers h back to Res; Res must be named explicitly:
//
//	p := na.FromHomogeneous[geom.Vec3[float64]](h)
func FromHomogeneous[Res traits.FromHomogeneous[H, Res], H any](h H) Res {
	var r Res

	return r.FromHomogeneous(h)
}

// CastVec converts v component-wise into Res. Both vectors must share the
// dimension marker D, so a mismatch does not compile:
//
//	f := na.CastVec[geom.Vec3[float32]](v) // v is a geom.Vec3[float64]
func CastVec[Res traits.VecBuilder[M, D, Res], V traits.VecSource[N, D], M, N scalar.Scalar, D traits.Dimension](v V) Res {
	var r Res
	for i := 0; i < v.Dim(); i++ {
		r = r.WithComponent(i, scalar.Cast[M](v.At(i)))
	}

	return r
}

// CastMat converts m entry-wise into Res; both sides must share D.
func CastMat[Res traits.MatBuilder[M, D, Res], S traits.MatSource[N, D], M, N scalar.Scalar, D traits.Dimension](m S) Res {
	var r Res
	n := m.Shape().Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			r = r.WithEntry(i, j, scalar.Cast[M](m.Entry(i, j)))
		}
	}

	return r
}

// CanonicalBasis calls f with e₀, e₁, … of T until f returns false.
func CanonicalBasis[T traits.Basis[T]](f func(T) bool) {
	var t T
	t.CanonicalBasis(f)
}

// OrthonormalSubspaceBasis calls f with an orthonormal basis of the subspace
// orthogonal to v until f returns false.
func OrthonormalSubspaceBasis[T traits.Basis[T]](v T, f func(T) bool) {
	v.OrthonormalSubspaceBasis(f)
}

// SampleSphere calls f with the fixed set of unit vectors of T spread over
// the unit sphere until f returns false.
func SampleSphere[T traits.UniformSphereSample[T]](f func(T) bool) {
	var t T
	t.SampleSphere(f)
}

// All yields the components of x in index order (row-major for matrices).
func All[T traits.Iterable[N], N any](x T) iter.Seq2[int, N] { return x.All() }

// AllMut yields pointers to the components of *x in index order.
func AllMut[P traits.IterableMut[N], N any](x P) iter.Seq2[int, *N] { return x.AllMut() }
