// SPDX-License-Identifier: MIT

package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvgeom/geom"
)

func TestF32Interop(t *testing.T) {
	t.Parallel()

	require.Equal(t, f32.Vec2{1, 2}, geom.NewVec2(1.0, 2.0).F32())
	require.Equal(t, f32.Vec3{1, 2, 3}, geom.NewVec3(1, 2, 3).F32())
	require.Equal(t, f32.Vec4{1, 2, 3, 4}, geom.NewVec4(1.0, 2.0, 3.0, 4.0).F32())

	require.Equal(t, geom.Vec3[float64]{0.5, 1, 2}, geom.Vec3FromF32[float64](f32.Vec3{0.5, 1, 2}))

	m := geom.NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)
	fm := m.F32()
	require.Equal(t, float32(2), fm[1], "row-major on both sides")
	require.Equal(t, m, geom.Mat3FromF32[float64](fm))

	id := geom.Mat4[float32]{}.One()
	require.Equal(t, id, geom.Mat4FromF32[float32](id.F32()))
	require.Equal(t, geom.Vec2[int]{1, 2}, geom.Vec2FromF32[int](f32.Vec2{1, 2}))
	require.Equal(t, geom.Vec4[float32]{1, 2, 3, 4}, geom.Vec4FromF32[float32](f32.Vec4{1, 2, 3, 4}))
}
