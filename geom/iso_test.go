// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/geom"
)

func TestIsoPureTranslation(t *testing.T) {
	t.Parallel()

	iso := geom.NewIso3(geom.NewVec3(1.0, 1.0, 1.0), geom.Vec3[float64]{})
	origin := geom.Vec3[float64]{}

	require.Equal(t, geom.Vec3[float64]{1, 1, 1}, iso.Transform(origin))
	require.Equal(t, origin, iso.InvTransform(iso.Transform(origin)))
	require.Equal(t, geom.Vec3[float64]{1, 1, 1}, iso.Translation())
	require.Equal(t, geom.Vec3[float64]{-1, -1, -1}, iso.InvTranslation())
	require.Equal(t, geom.Vec3[float64]{}, iso.Rotation())
}

func TestIsoTransform(t *testing.T) {
	t.Parallel()

	iso := geom.NewIso3(geom.NewVec3(1.0, 0.0, 0.0), geom.NewVec3(0.0, 0.0, math.Pi/2))
	p := geom.NewVec3(1.0, 0.0, 0.0)

	got := iso.Transform(p)
	require.True(t, got.ApproxEq(geom.Vec3[float64]{1, 1, 0}, tol), "got %v", got)
	require.True(t, iso.InvTransform(got).ApproxEq(p, tol))
	require.True(t, iso.Rotate(p).ApproxEq(geom.Vec3[float64]{0, 1, 0}, tol))
	require.Equal(t, p.Add(iso.Translation()), iso.Translate(p))
}

func TestIsoRotateByTurnsTranslation(t *testing.T) {
	t.Parallel()

	iso := geom.NewIso2(geom.NewVec2(1.0, 0.0), geom.Vec1[float64]{})
	turned := iso.Rotated(geom.Vec1[float64]{math.Pi / 2})
	require.True(t, turned.Translation().ApproxEq(geom.Vec2[float64]{0, 1}, tol))
	require.InDelta(t, math.Pi/2, turned.Rotation()[0], tol)

	// SetRotation replaces the rotation and keeps the translation
	turned.SetRotation(geom.Vec1[float64]{0})
	require.InDelta(t, 0, turned.Rotation()[0], tol)
	require.True(t, turned.Translation().ApproxEq(geom.Vec2[float64]{0, 1}, tol))
}

func TestIsoRotatedWrtPoint(t *testing.T) {
	t.Parallel()

	m := geom.NewIso3(geom.NewVec3(1.0, 2.0, 3.0), geom.NewVec3(0.1, 0.2, 0.3))
	amount := geom.NewVec3(0.0, 0.0, math.Pi/2)
	center := geom.NewVec3(1.0, 0.0, 0.0)
	turn := geom.NewRot3(amount)

	got := m.RotatedWrtPoint(amount, center)
	for _, p := range []geom.Vec3[float64]{{0, 0, 0}, {1, -1, 2}, {5, 5, 5}} {
		// every image turns around center by amount
		want := turn.Rotate(m.Transform(p).Sub(center)).Add(center)
		require.True(t, got.Transform(p).ApproxEq(want, tol), "p=%v", p)
	}

	inPlace := m
	inPlace.RotateWrtPoint(amount, center)
	require.True(t, inPlace.ApproxEq(got, tol))

	// around its own center the position does not move
	spun := m.RotatedWrtCenter(amount)
	require.True(t, spun.Translation().ApproxEq(m.Translation(), tol))
	require.True(t, spun.RotPart().ApproxEq(turn.Mul(m.RotPart()), tol))

	m.RotateWrtCenter(amount)
	require.True(t, m.ApproxEq(spun, tol))
}

func TestIsoComposition(t *testing.T) {
	t.Parallel()

	a := geom.NewIso3(geom.NewVec3(1.0, 2.0, 3.0), geom.NewVec3(0.1, 0.2, 0.3))
	b := geom.NewIso3(geom.NewVec3(-4.0, 0.5, 0.0), geom.NewVec3(-0.7, 0.0, 1.1))
	p := geom.NewVec3(0.3, 0.6, -0.9)

	require.True(t, a.Mul(b).Transform(p).ApproxEq(a.Transform(b.Transform(p)), tol))

	c := b
	c.TransformBy(a)
	require.True(t, c.ApproxEq(a.Mul(b), tol))
	require.True(t, b.Transformed(a).ApproxEq(c, tol))

	inv, ok := a.Inverted()
	require.True(t, ok)
	require.True(t, a.Mul(inv).ApproxEq(geom.Iso3[float64]{}.One(), tol))
	require.True(t, inv.ApproxEq(a.InvTransformation(), tol))
	require.True(t, inv.Transform(p).ApproxEq(a.InvTransform(p), tol))

	d := a
	require.True(t, d.Invert())
	require.True(t, d.ApproxEq(inv, tol))

	d.SetTransformation(b)
	require.Equal(t, b, d)
	require.Equal(t, b, b.Transformation())
}

func TestIsoTranslationOps(t *testing.T) {
	t.Parallel()

	m := geom.NewIso3(geom.NewVec3(1.0, 0.0, 0.0), geom.NewVec3(0.0, 0.0, 1.0))
	m.TranslateBy(geom.NewVec3(0.0, 2.0, 0.0))
	require.Equal(t, geom.Vec3[float64]{1, 2, 0}, m.Translation())
	require.Equal(t, geom.Vec3[float64]{1, 2, 3}, m.Translated(geom.NewVec3(0.0, 0.0, 3.0)).Translation())

	m.SetTranslation(geom.Vec3[float64]{})
	require.True(t, m.Transform(geom.NewVec3(1.0, 0.0, 0.0)).ApproxEq(m.Rotate(geom.NewVec3(1.0, 0.0, 0.0)), tol))
}

func TestIsoHomogeneous(t *testing.T) {
	t.Parallel()

	m := geom.NewIso3(geom.NewVec3(1.0, 2.0, 3.0), geom.NewVec3(0.4, -0.2, 0.9))
	h := m.ToHomogeneous()
	require.Equal(t, 1.0, h.Entry(3, 3))
	require.Equal(t, 3.0, h.Entry(2, 3))
	require.Equal(t, m, geom.Iso3[float64]{}.FromHomogeneous(h))

	p := geom.NewVec3(-1.0, 0.5, 2.0)
	hp := h.RMul(p.ToHomogeneous())
	require.True(t, geom.Vec3[float64]{}.FromHomogeneous(hp).ApproxEq(m.Transform(p), tol))
}

func TestIso4(t *testing.T) {
	t.Parallel()

	var angles geom.Vec6[float64]
	angles[geom.PlaneXW] = math.Pi / 2
	m := geom.NewIso4(geom.NewVec4(0.0, 0.0, 0.0, 1.0), geom.NewRot4FromPlanes(angles))

	got := m.Transform(geom.NewVec4(1.0, 0.0, 0.0, 0.0))
	require.True(t, got.ApproxEq(geom.Vec4[float64]{0, 0, 0, 2}, tol), "got %v", got)
	require.True(t, m.InvTransform(got).ApproxEq(geom.Vec4[float64]{1, 0, 0, 0}, tol))
	require.True(t, geom.Iso4[float64]{}.FromHomogeneous(m.ToHomogeneous()).ApproxEq(m, 0))
}

func TestIsoAbsoluteRotate(t *testing.T) {
	t.Parallel()

	m := geom.NewIso2(geom.NewVec2(10.0, 10.0), geom.Vec1[float64]{math.Pi / 2})
	half := m.AbsoluteRotate(geom.NewVec2(2.0, 1.0))
	require.True(t, half.ApproxEq(geom.Vec2[float64]{1, 2}, tol))
	require.True(t, m.ToRotMat().ApproxEq(geom.NewRot2(math.Pi/2).ToRotMat(), 0))
}

func TestIsoMulVec(t *testing.T) {
	iso := geom.NewIso2(geom.NewVec2(1.0, 2.0), geom.NewVec1(math.Pi/2))
	p := geom.NewVec2(1.0, 0.0)
	require.Equal(t, iso.Transform(p), iso.MulVec(p))
	require.True(t, iso.MulVec(p).ApproxEq(geom.NewVec2(1.0, 3.0), 1e-12))
}
