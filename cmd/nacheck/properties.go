// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvgeom/geom"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/na"
)

// property is one algebraic contract checked on a single random sample.
// check returns a non-nil error describing the counterexample.
type property struct {
	name  string
	doc   string
	check func(r *rand.Rand, eps float64) error
}

// registry lists every property in the order they run.
var registry = []property{
	{"norm.normalized-is-unit", "norm(normalized(v)) == 1 for non-zero v", checkNormalizedIsUnit},
	{"rotation.inverse-is-transpose", "inverted(R) == transposed(R) and rotate(R, inv_rotate(R, v)) == v", checkInverseIsTranspose},
	{"translation.inverse-sums-zero", "translation(m) + inv_translation(m) == 0", checkInverseTranslation},
	{"rotation.wrt-point-composition", "rotated_wrt_point == translated(-c), rotated(a), translated(c)", checkWrtPoint},
	{"homogeneous.round-trip", "from_homogeneous(to_homogeneous(x)) == x", checkHomogeneous},
	{"matrix.double-inverse", "inverted(inverted(M)) == M for invertible M", checkDoubleInverse},
	{"matrix.transpose-involution", "transposed(transposed(M)) == M exactly", checkTransposeInvolution},
	{"vector.cross-dot-identities", "cross anti-commutes, cross(a, a) == 0, dot commutes, sqnorm == dot(v, v)", checkCrossDot},
	{"stats.single-row", "one observation: mean == row, cov == 0", checkSingleRow},
	{"scenario.unit-translation", "translation (1,1,1) gives inv_translation (-1,-1,-1)", checkUnitTranslation},
	{"scenario.quarter-turn", "a quarter turn maps one basis vector onto the next", checkQuarterTurn},
	{"scenario.singular-invert", "invert fails on a singular matrix and leaves it unchanged", checkSingularInvert},
}

// ---------- samplers ----------

func unit(r *rand.Rand) float64 { return 2*r.Float64() - 1 }

func randVec2(r *rand.Rand) geom.Vec2[float64] { return na.Vec2(unit(r), unit(r)) }

func randVec3(r *rand.Rand) geom.Vec3[float64] { return na.Vec3(unit(r), unit(r), unit(r)) }

func randVec6(r *rand.Rand) geom.Vec6[float64] {
	return na.Vec6(unit(r), unit(r), unit(r), unit(r), unit(r), unit(r))
}

// randAxisAngle returns a scaled axis with an angle below π.
func randAxisAngle(r *rand.Rand) geom.Vec3[float64] {
	return randVec3(r).Scale(math.Pi / math.Sqrt(3))
}

func randIso2(r *rand.Rand) geom.Iso2[float64] {
	return geom.NewIso2(randVec2(r).Scale(10), na.Vec1(math.Pi*unit(r)))
}

func randIso3(r *rand.Rand) geom.Iso3[float64] {
	return geom.NewIso3(randVec3(r).Scale(10), randAxisAngle(r))
}

// randDominant fills an n×n row-major buffer with a strictly diagonally
// dominant matrix, which is always well conditioned.
func randDominant(r *rand.Rand, dst []float64, n int) {
	for i := range dst {
		dst[i] = unit(r)
	}
	for i := 0; i < n; i++ {
		dst[i*n+i] += float64(n) + 1
	}
}

func randDMat(r *rand.Rand, rows, cols int) *matrix.DMat[float64] {
	m, _ := matrix.NewDMat[float64](rows, cols)
	_ = m.Apply(func(_, _ int, _ float64) float64 { return unit(r) })

	return m
}

// ---------- checks ----------

func checkNormalizedIsUnit(r *rand.Rand, eps float64) error {
	v := randVec6(r)
	if !v.IsZero() {
		n := na.Normalized(&v)
		if got := na.Norm(&n); math.Abs(got-1) > eps {
			return fmt.Errorf("Vec6 %v: norm of normalized = %v", v, got)
		}
	}

	d := make(matrix.DVec[float64], 1+r.IntN(9))
	for i := range d {
		d[i] = unit(r)
	}
	if na.Norm(d) > 0 {
		if got := na.Norm(na.Normalized(d)); math.Abs(got-1) > eps {
			return fmt.Errorf("DVec %v: norm of normalized = %v", d, got)
		}
	}

	return nil
}

func checkInverseIsTranspose(r *rand.Rand, eps float64) error {
	rot := geom.NewRot3(randAxisAngle(r))
	inv, ok := na.Inverted(&rot)
	if !ok {
		return fmt.Errorf("Rot3 %v: inversion failed", rot.Submat())
	}
	if tr := na.Transposed(&rot); !inv.ApproxEq(tr, eps) {
		return fmt.Errorf("Rot3: inverted %v != transposed %v", inv.Submat(), tr.Submat())
	}
	v := randVec3(r)
	if back := na.Rotate(rot, na.InvRotate(rot, v)); !back.ApproxEq(v, eps) {
		return fmt.Errorf("Rot3: rotate(inv_rotate(%v)) = %v", v, back)
	}

	planes := randVec6(r).Scale(math.Pi)
	rot4 := geom.NewRot4FromPlanes(planes)
	if inv4, tr4 := na.InvRotation(&rot4), na.Transposed(&rot4); !inv4.ApproxEq(tr4, eps) {
		return fmt.Errorf("Rot4 %v: inv_rotation != transposed", planes)
	}

	return nil
}

func checkInverseTranslation(r *rand.Rand, _ float64) error {
	iso := randIso3(r)
	if sum := na.Translation(&iso).Add(na.InvTranslation(&iso)); !sum.IsZero() {
		return fmt.Errorf("Iso3: translation + inv_translation = %v", sum)
	}
	iso2 := randIso2(r)
	if sum := na.Translation(&iso2).Add(na.InvTranslation(&iso2)); !sum.IsZero() {
		return fmt.Errorf("Iso2: translation + inv_translation = %v", sum)
	}

	return nil
}

func checkWrtPoint(r *rand.Rand, eps float64) error {
	iso := randIso3(r)
	amount, center := randAxisAngle(r), randVec3(r).Scale(5)

	got := na.RotatedWrtPoint(&iso, amount, center)
	step := na.Translated(&iso, center.Neg())
	step = na.Rotated(&step, amount)
	want := na.Translated(&step, center)
	if !got.ApproxEq(want, eps) {
		return fmt.Errorf("Iso3 rotated around %v by %v: %v != %v", center, amount, got, want)
	}

	if c, p := na.RotatedWrtCenter(&iso, amount), na.RotatedWrtPoint(&iso, amount, iso.Translation()); !c.ApproxEq(p, eps) {
		return fmt.Errorf("Iso3: rotated_wrt_center != rotated_wrt_point(translation)")
	}

	return nil
}

func checkHomogeneous(r *rand.Rand, eps float64) error {
	v := randVec3(r)
	if back := na.FromHomogeneous[geom.Vec3[float64]](na.ToHomogeneous(v)); back != v {
		return fmt.Errorf("Vec3 %v: round trip gave %v", v, back)
	}

	var m geom.Mat3[float64]
	for i := range m {
		m[i] = unit(r)
	}
	if back := na.FromHomogeneous[geom.Mat3[float64]](na.ToHomogeneous(m)); back != m {
		return fmt.Errorf("Mat3 %v: round trip gave %v", m, back)
	}

	iso := randIso3(r)
	if back := na.FromHomogeneous[geom.Iso3[float64]](na.ToHomogeneous(iso)); !back.ApproxEq(iso, eps) {
		return fmt.Errorf("Iso3: round trip gave %v, want %v", back, iso)
	}

	return nil
}

func checkDoubleInverse(r *rand.Rand, eps float64) error {
	var m geom.Mat4[float64]
	randDominant(r, m[:], 4)
	inv, ok := na.Inverted(&m)
	if !ok {
		return fmt.Errorf("Mat4 %v: judged singular", m)
	}
	back, ok := na.Inverted(&inv)
	if !ok || !back.ApproxEq(m, eps) {
		return fmt.Errorf("Mat4 %v: double inverse gave %v", m, back)
	}

	const n = 5
	d, _ := matrix.NewDMat[float64](n, n)
	vals := make([]float64, n*n)
	randDominant(r, vals, n)
	_ = d.Apply(func(i, j int, _ float64) float64 { return vals[i*n+j] })
	dInv, ok := na.Inverted(d)
	if !ok {
		return fmt.Errorf("DMat\n%sjudged singular", d)
	}
	dBack, ok := na.Inverted(dInv)
	if !ok || !dBack.ApproxEqual(d, eps) {
		return fmt.Errorf("DMat\n%sdouble inverse drifted", d)
	}

	return nil
}

func checkTransposeInvolution(r *rand.Rand, _ float64) error {
	var m geom.Mat5[float64]
	for i := range m {
		m[i] = unit(r)
	}
	t := na.Transposed(&m)
	if back := na.Transposed(&t); back != m {
		return fmt.Errorf("Mat5 %v: transposed twice gave %v", m, back)
	}

	d := randDMat(r, 1+r.IntN(7), 1+r.IntN(7))
	back := d.Clone()
	na.Transpose(back)
	na.Transpose(back)
	if !back.Equal(d) {
		return fmt.Errorf("DMat\n%stransposed twice gave\n%s", d, back)
	}

	return nil
}

func checkCrossDot(r *rand.Rand, eps float64) error {
	a, b := randVec3(r), randVec3(r)
	if ab, ba := na.Cross(a, b), na.Cross(b, a); !ab.ApproxEq(ba.Neg(), eps) {
		return fmt.Errorf("cross(%v, %v) = %v, cross(b, a) = %v", a, b, ab, ba)
	}
	if aa := na.Cross(a, a); na.Norm(&aa) > eps {
		return fmt.Errorf("cross(%v, itself) = %v", a, aa)
	}
	if na.Dot(a, b) != na.Dot(b, a) {
		return fmt.Errorf("dot(%v, %v) is not symmetric", a, b)
	}
	if sq, dd := na.SqNorm(&a), na.Dot(a, a); math.Abs(sq-dd) > eps {
		return fmt.Errorf("sqnorm(%v) = %v, dot(v, v) = %v", a, sq, dd)
	}

	p, q := randVec2(r), randVec2(r)
	if pq, qp := na.Cross(p, q), na.Cross(q, p); math.Abs(pq[0]+qp[0]) > eps {
		return fmt.Errorf("cross(%v, %v) = %v, cross(q, p) = %v", p, q, pq, qp)
	}

	return nil
}

func checkSingleRow(r *rand.Rand, _ float64) error {
	c := 1 + r.IntN(8)
	d := randDMat(r, 1, c)
	row, _ := d.Row(0)

	mean := na.Mean(d)
	for j := range row {
		if mean[j] != row[j] {
			return fmt.Errorf("mean %v != row %v", mean, row)
		}
	}
	zero, _ := matrix.NewDMat[float64](c, c)
	if cov := na.Cov(d); !cov.Equal(zero) {
		return fmt.Errorf("cov of one observation:\n%s", cov)
	}

	return nil
}

func checkUnitTranslation(_ *rand.Rand, _ float64) error {
	iso := na.One[geom.Iso3[float64]]()
	na.TranslateBy(&iso, na.Vec3(1.0, 1.0, 1.0))
	if got := na.Translation(&iso); got != na.Vec3(1.0, 1.0, 1.0) {
		return fmt.Errorf("translation = %v", got)
	}
	if got := na.InvTranslation(&iso); got != na.Vec3(-1.0, -1.0, -1.0) {
		return fmt.Errorf("inv_translation = %v", got)
	}

	return nil
}

func checkQuarterTurn(r *rand.Rand, eps float64) error {
	var axis, v, want geom.Vec3[float64]
	k := r.IntN(3)
	axis[k] = math.Pi / 2
	v[(k+1)%3] = 1
	want[(k+2)%3] = 1

	rot := geom.NewRot3(axis)
	got := na.Rotate(rot, v)
	if !got.ApproxEq(want, eps) {
		return fmt.Errorf("quarter turn about %v maps %v to %v, want %v", axis, v, got, want)
	}
	if back := na.InvRotate(rot, got); !back.ApproxEq(v, eps) {
		return fmt.Errorf("inv_rotate undid the quarter turn to %v", back)
	}

	return nil
}

func checkSingularInvert(r *rand.Rand, _ float64) error {
	var m geom.Mat3[float64]
	a, b := unit(r), unit(r)
	for j := 0; j < 3; j++ {
		m[j], m[3+j] = unit(r), unit(r)
		m[6+j] = a*m[j] + b*m[3+j]
	}
	before := m
	if _, ok := na.Inverted(&m); ok {
		return fmt.Errorf("Mat3 %v: rank-deficient matrix inverted", m)
	}
	if na.Invert(&m) || m != before {
		return fmt.Errorf("Mat3 %v: failed Invert changed the matrix to %v", before, m)
	}

	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	d, _ := matrix.NewDMatFromRows([][]float64{r0[:], r1[:], r2[:]})
	dBefore := d.Clone()
	if na.Invert(d) || !d.Equal(dBefore) {
		return fmt.Errorf("DMat\n%sfailed Invert changed the matrix", dBefore)
	}

	return nil
}
