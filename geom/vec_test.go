// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/traits"
)

const tol = 1e-9

func TestVecArithmetic(t *testing.T) {
	t.Parallel()

	a := geom.NewVec3(1.0, 2.0, 3.0)
	b := geom.NewVec3(4.0, -5.0, 6.0)

	require.Equal(t, geom.Vec3[float64]{5, -3, 9}, a.Add(b))
	require.Equal(t, geom.Vec3[float64]{-3, 7, -3}, a.Sub(b))
	require.Equal(t, geom.Vec3[float64]{4, -10, 18}, a.Mul(b))
	require.Equal(t, geom.Vec3[float64]{2, 4, 6}, a.Scale(2))
	require.Equal(t, geom.Vec3[float64]{0.5, 1, 1.5}, a.Div(2))
	require.Equal(t, geom.Vec3[float64]{-1, -2, -3}, a.Neg())
	require.Equal(t, geom.Vec3[float64]{2, 3, 4}, a.AddScalar(1))
	require.Equal(t, geom.Vec3[float64]{0, 1, 2}, a.SubScalar(1))
	require.Equal(t, geom.Vec3[float64]{4, 5, 6}, b.Absolute())
	require.Equal(t, 12.0, a.Dot(b))
	require.Equal(t, a.Sub(b).Dot(a), a.SubDot(b, a))
	require.Equal(t, 14.0, a.SqNorm())

	// receivers are values: nothing above touched a
	require.Equal(t, geom.Vec3[float64]{1, 2, 3}, a)
}

func TestVecIndexing(t *testing.T) {
	t.Parallel()

	v := geom.NewVec4(1, 2, 3, 4)
	require.Equal(t, 4, v.Dim())
	require.Equal(t, 3, v.At(2))

	w := v.WithComponent(0, 9)
	require.Equal(t, geom.Vec4[int]{9, 2, 3, 4}, w)
	require.Equal(t, 1, v.At(0))

	v.Set(3, -1)
	require.Equal(t, geom.Vec4[int]{1, 2, 3, -1}, v)
	require.Panics(t, func() { v.At(4) })
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v := geom.NewVec2(3.0, 4.0)
	n := v.Normalize()
	require.Equal(t, 5.0, n)
	require.InDelta(t, 0.6, v[0], tol)
	require.InDelta(t, 0.8, v[1], tol)
	require.InDelta(t, 1.0, v.Norm(), tol)
}

func TestNormalizeZeroVector(t *testing.T) {
	t.Parallel()

	var v geom.Vec3[float64]
	require.Equal(t, 0.0, v.Normalize())
	require.Equal(t, geom.Vec3[float64]{}, v)
	require.Equal(t, geom.Vec3[float64]{}, v.Normalized())
	for i := 0; i < 3; i++ {
		require.False(t, math.IsNaN(v[i]))
	}
}

func TestNormalizeIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    geom.Vec3[int]
		norm int
		want geom.Vec3[int]
	}{
		{"no integral unit vector", geom.NewVec3(1, 1, 0), 0, geom.NewVec3(1, 1, 0)},
		{"pythagorean", geom.NewVec3(3, 4, 0), 0, geom.NewVec3(3, 4, 0)},
		{"axis", geom.NewVec3(0, -7, 0), 7, geom.NewVec3(0, -1, 0)},
		{"unit", geom.NewVec3(0, 0, 1), 1, geom.NewVec3(0, 0, 1)},
		{"zero", geom.Vec3[int]{}, 0, geom.Vec3[int]{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.v.Normalized())

			v := tc.v
			require.Equal(t, tc.norm, v.Normalize())
			require.Equal(t, tc.want, v)
		})
	}
}

func TestIteration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    traits.IterableMut[int]
		want []int
	}{
		{"vec0", &geom.Vec0[int]{}, nil},
		{"vec1", &geom.Vec1[int]{4}, []int{4}},
		{"vec4", &geom.Vec4[int]{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{"vec6", &geom.Vec6[int]{6, 5, 4, 3, 2, 1}, []int{6, 5, 4, 3, 2, 1}},
		{"mat2 row-major", &geom.Mat2[int]{1, 2, 3, 4}, []int{1, 2, 3, 4}},
		{"mat3", &geom.Mat3[int]{1, 0, 0, 0, 1, 0, 0, 0, 1}, []int{1, 0, 0, 0, 1, 0, 0, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []int
			for i, x := range tc.v.All() {
				require.Equal(t, len(got), i)
				got = append(got, x)
			}
			require.Equal(t, tc.want, got)

			for _, p := range tc.v.AllMut() {
				*p *= 10
			}
			got = got[:0]
			for _, x := range tc.v.All() {
				got = append(got, x)
			}
			for i := range got {
				require.Equal(t, tc.want[i]*10, got[i])
			}
		})
	}
}

func TestIterationStopsEarly(t *testing.T) {
	t.Parallel()

	v := geom.NewVec5(1.0, 2.0, 3.0, 4.0, 5.0)
	var seen []int
	for i := range v.All() {
		if i == 2 {
			break
		}
		seen = append(seen, i)
	}
	require.Equal(t, []int{0, 1}, seen)

	for i, p := range v.AllMut() {
		if i == 1 {
			break
		}
		*p = 0
	}
	require.Equal(t, geom.NewVec5(0.0, 2.0, 3.0, 4.0, 5.0), v)
}

func TestCrossAnticommutative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b geom.Vec3[float64]
	}{
		{"axes", geom.Vec3[float64]{1, 0, 0}, geom.Vec3[float64]{0, 1, 0}},
		{"generic", geom.Vec3[float64]{1, 2, 3}, geom.Vec3[float64]{-4, 0.5, 2}},
		{"parallel", geom.Vec3[float64]{1, 1, 1}, geom.Vec3[float64]{2, 2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab := tc.a.Cross(tc.b)
			require.Equal(t, ab.Neg(), tc.b.Cross(tc.a))
			require.InDelta(t, 0, ab.Dot(tc.a), tol)
			require.InDelta(t, 0, ab.Dot(tc.b), tol)
			require.True(t, ab.ApproxEq(tc.a.CrossMatrix().RMul(tc.b), tol))
		})
	}

	require.Equal(t, geom.Vec3[float64]{0, 0, 1}, geom.Vec3[float64]{1, 0, 0}.Cross(geom.Vec3[float64]{0, 1, 0}))
}

func TestCrossPlanar(t *testing.T) {
	t.Parallel()

	a := geom.NewVec2(1, 2)
	b := geom.NewVec2(3, 4)
	require.Equal(t, geom.Vec1[int]{-2}, a.Cross(b))
	require.Equal(t, geom.Vec1[int]{2}, b.Cross(a))
	require.Equal(t, a.Cross(b)[0], a.CrossMatrix().Dot(b))
}

func TestVecIsItsOwnTranslation(t *testing.T) {
	t.Parallel()

	v := geom.NewVec3(1.0, 1.0, 1.0)
	p := geom.NewVec3(2.0, 0.0, -1.0)

	require.Equal(t, v, v.Translation())
	require.Equal(t, v.Neg(), v.InvTranslation())
	require.Equal(t, geom.Vec3[float64]{3, 1, 0}, v.Translate(p))
	require.Equal(t, p, v.InvTranslate(v.Translate(p)))
	require.Equal(t, v.Translate(p), v.Transform(p))
	require.Equal(t, p, v.Rotate(p))

	w := v
	w.TranslateBy(p)
	require.Equal(t, v.Translated(p), w)
	w.SetTranslation(p)
	require.Equal(t, p, w)
}

func TestVecHomogeneous(t *testing.T) {
	t.Parallel()

	v := geom.NewVec3(1.0, -2.0, 3.0)
	h := v.ToHomogeneous()
	require.Equal(t, geom.Vec4[float64]{1, -2, 3, 1}, h)
	require.Equal(t, v, geom.Vec3[float64]{}.FromHomogeneous(h))

	// w ≠ 1 is divided out
	require.Equal(t, geom.Vec3[float64]{1, 2, 3}, geom.Vec3[float64]{}.FromHomogeneous(geom.Vec4[float64]{2, 4, 6, 2}))
	// w == 0 is a direction and is kept as is
	require.Equal(t, geom.Vec3[float64]{2, 4, 6}, geom.Vec3[float64]{}.FromHomogeneous(geom.Vec4[float64]{2, 4, 6, 0}))
}

func TestOuter(t *testing.T) {
	t.Parallel()

	a := geom.NewVec2(1, 2)
	b := geom.NewVec2(3, 4)
	require.Equal(t, geom.NewMat2(3, 4, 6, 8), a.Outer(b))
}

func TestVecDimensions(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, geom.Vec0[float64]{}.Dim())
	require.True(t, geom.Vec0[float64]{}.IsZero())
	require.Equal(t, 5, geom.NewVec5(1, 2, 3, 4, 5).Dim())
	require.Equal(t, 91, geom.NewVec6(1, 2, 3, 4, 5, 6).SqNorm())
}
