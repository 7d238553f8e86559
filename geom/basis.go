// SPDX-License-Identifier: MIT

package geom

// Orthonormal subspace bases.
//
// Every OrthonormalSubspaceBasis calls f with unit vectors orthogonal to the
// receiver and to each other, one at a time, and stops as soon as f returns
// false. The receiver need not be normalised. For the zero vector the
// orthogonal subspace is the whole space and the canonical basis is produced.

func (v Vec0[N]) OrthonormalSubspaceBasis(func(Vec0[N]) bool) {}

// OrthonormalSubspaceBasis produces nothing: the complement of a line in 1-D is {0}.
func (v Vec1[N]) OrthonormalSubspaceBasis(f func(Vec1[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
	}
}

// OrthonormalSubspaceBasis produces the unit perpendicular (−y, x)/|v|.
func (v Vec2[N]) OrthonormalSubspaceBasis(f func(Vec2[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
		return
	}
	f(Vec2[N]{-v[1], v[0]}.Normalized())
}

// OrthonormalSubspaceBasis produces two unit vectors a × u and a spanning the
// plane orthogonal to u = v/|v|. a is built from the two largest components
// of u so that it never degenerates.
func (v Vec3[N]) OrthonormalSubspaceBasis(f func(Vec3[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
		return
	}
	u := v.Normalized()

	var a Vec3[N]
	if float64(u[0]*u[0]) > float64(u[1]*u[1]) {
		a = Vec3[N]{u[2], 0, -u[0]}.Normalized()
	} else {
		a = Vec3[N]{0, -u[2], u[1]}.Normalized()
	}
	if !f(a.Cross(u)) {
		return
	}
	f(a)
}

// OrthonormalSubspaceBasis runs Gram–Schmidt over the canonical basis against v.
func (v Vec4[N]) OrthonormalSubspaceBasis(f func(Vec4[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
		return
	}
	u := v.Normalized()
	kGramSchmidt(u[:], 4, func(b []N) bool {
		var e Vec4[N]
		copy(e[:], b)

		return f(e)
	})
}

// OrthonormalSubspaceBasis runs Gram–Schmidt over the canonical basis against v.
func (v Vec5[N]) OrthonormalSubspaceBasis(f func(Vec5[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
		return
	}
	u := v.Normalized()
	kGramSchmidt(u[:], 5, func(b []N) bool {
		var e Vec5[N]
		copy(e[:], b)

		return f(e)
	})
}

// OrthonormalSubspaceBasis runs Gram–Schmidt over the canonical basis against v.
func (v Vec6[N]) OrthonormalSubspaceBasis(f func(Vec6[N]) bool) {
	if v.IsZero() {
		v.CanonicalBasis(f)
		return
	}
	u := v.Normalized()
	kGramSchmidt(u[:], 6, func(b []N) bool {
		var e Vec6[N]
		copy(e[:], b)

		return f(e)
	})
}
