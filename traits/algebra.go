// SPDX-License-Identifier: MIT

package traits

// Dot is a symmetric bilinear inner product.
// SubDot(b, c) computes Dot(a − b, c) without materialising a − b.
type Dot[N, V any] interface {
	Dot(b V) N
	SubDot(b, c V) N
}

// Norm is the Euclidean norm induced by Dot.
//
// Contract:
//   - Norm() == sqrt(SqNorm()), SqNorm() == Dot(self, self).
//   - Normalize scales the receiver to unit length in place and returns the previous norm.
//   - A zero vector is left unchanged by Normalize (which returns 0), and Normalized
//     returns it as is; neither produces NaN.
type Norm[N, T any] interface {
	Norm() N
	SqNorm() N
	Normalized() T
	Normalize() N
}

// Cross is the cross product; R is the result type (a vector, or a 1-D vector
// holding the scalar z component for planar vectors). Anti-commutative.
type Cross[V, R any] interface {
	Cross(b V) R
}

// CrossMatrix returns the skew-symmetric matrix M with M·w == Cross(self, w).
type CrossMatrix[M any] interface {
	CrossMatrix() M
}

// Outer returns the outer product a·bᵗ.
type Outer[V, M any] interface {
	Outer(b V) M
}

// Absolute returns the element-wise absolute value, shape unchanged.
type Absolute[R any] interface {
	Absolute() R
}

// Inv is matrix inversion.
//
// Contract:
//   - Inverted returns ok == false exactly when the matrix is singular within the
//     package's relative tolerance (see scalar.DefaultEpsilon).
//   - Invert returns the same verdict and leaves the receiver unchanged on failure.
type Inv[T any] interface {
	Inverted() (T, bool)
	Invert() bool
}

// Transpose is an involution: Transposed(Transposed(m)) == m.
type Transpose[T any] interface {
	Transposed() T
	Transpose()
}

// Mean returns the component-wise average of the observations (rows).
type Mean[V any] interface {
	Mean() V
}

// Cov returns the sample covariance matrix of the observations (rows).
// Fewer than two observations yield the zero matrix.
type Cov[M any] interface {
	Cov() M
}

// RMul is the right multiplication by a vector: M·v.
type RMul[V any] interface {
	RMul(v V) V
}

// LMul is the left multiplication by a vector: vᵗ·M.
type LMul[V any] interface {
	LMul(v V) V
}

// ScalarAdd adds a scalar to every component.
type ScalarAdd[N, T any] interface {
	AddScalar(x N) T
}

// ScalarSub subtracts a scalar from every component.
type ScalarSub[N, T any] interface {
	SubScalar(x N) T
}

// Zero builds the additive identity. The receiver is ignored.
type Zero[T any] interface {
	Zero() T
	IsZero() bool
}

// One builds the multiplicative identity (identity matrix, rotation or
// isometry). The receiver is ignored.
type One[T any] interface {
	One() T
}
