// SPDX-License-Identifier: MIT

package traits

import "iter"

// Dimension is implemented by the dimension markers D0..D6. A marker carries
// no data; it lets constraints require two types to share a dimension at
// compile time (see VecBuilder and VecSource).
type Dimension interface {
	Len() int
}

// Dimension markers.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
)

func (D0) Len() int { return 0 }
func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }

// Shaped reports the static dimension marker of a fixed-size type.
// For square matrices the marker is the side length.
type Shaped[D Dimension] interface {
	Shape() D
}

// Indexable is read access to vector components.
type Indexable[N any] interface {
	Dim() int
	At(i int) N
}

// IndexableMut adds in-place component writes; implemented by pointers.
type IndexableMut[N any] interface {
	Indexable[N]
	Set(i int, x N)
}

// Iterable yields the components in index order (row-major for matrices).
type Iterable[N any] interface {
	All() iter.Seq2[int, N]
}

// IterableMut yields pointers to the components so that a range loop can
// update them in place; implemented by pointers.
type IterableMut[N any] interface {
	Iterable[N]
	AllMut() iter.Seq2[int, *N]
}

// VecSource is a readable vector of static dimension D.
type VecSource[N any, D Dimension] interface {
	Shaped[D]
	Indexable[N]
}

// VecBuilder is a vector of static dimension D that can be assembled component
// by component without pointers.
type VecBuilder[N any, D Dimension, T any] interface {
	Shaped[D]
	WithComponent(i int, x N) T
}

// MatSource is a readable square matrix of static side D.
type MatSource[N any, D Dimension] interface {
	Shaped[D]
	Entry(i, j int) N
}

// MatBuilder is a square matrix of static side D that can be assembled entry by
// entry without pointers.
type MatBuilder[N any, D Dimension, T any] interface {
	Shaped[D]
	WithEntry(i, j int, x N) T
}

// Row gives access to matrix rows.
type Row[V any] interface {
	Row(i int) V
	SetRow(i int, v V)
}

// Col gives access to matrix columns.
type Col[V any] interface {
	Col(i int) V
	SetCol(i int, v V)
}

// ToHomogeneous lifts an affine object into the linear representation H of
// one dimension more. For matrices the last row of H is (0, …, 0, 1).
type ToHomogeneous[H any] interface {
	ToHomogeneous() H
}

// FromHomogeneous lowers H (exactly one dimension larger) back to T.
// The receiver is ignored.
//
// Contract: FromHomogeneous(x.ToHomogeneous()) == x for affine-representable x.
type FromHomogeneous[H, T any] interface {
	FromHomogeneous(h H) T
}

// Basis enumerates bases through a stop-able callback: f returns false to stop.
//
// Contract:
//   - CanonicalBasis calls f with e₀, e₁, … in index order; the receiver is ignored.
//   - OrthonormalSubspaceBasis calls f with an orthonormal basis of the subspace
//     orthogonal to the receiver.
//   - Calls are strictly sequential; stopping early leaves a valid prefix.
type Basis[T any] interface {
	CanonicalBasis(f func(T) bool)
	OrthonormalSubspaceBasis(f func(T) bool)
}

// UniformSphereSample enumerates a fixed, deterministic set of unit vectors
// spread uniformly over the unit sphere. The receiver is ignored.
type UniformSphereSample[T any] interface {
	SampleSphere(f func(T) bool)
}
