// SPDX-License-Identifier: MIT

package geom

// Cross returns the planar cross product v × o. Only the z component of the
// 3-D product is non-zero, so it is returned as a Vec1.
func (v Vec2[N]) Cross(o Vec2[N]) Vec1[N] {
	return Vec1[N]{v[0]*o[1] - v[1]*o[0]}
}

// CrossMatrix returns the row (−y, x): its dot product with w equals v × w.
func (v Vec2[N]) CrossMatrix() Vec2[N] {
	return Vec2[N]{-v[1], v[0]}
}

// Cross returns v × o. It is anti-commutative and v × v == 0.
func (v Vec3[N]) Cross(o Vec3[N]) Vec3[N] {
	return Vec3[N]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// CrossMatrix returns the skew-symmetric matrix [v]× with [v]×·w == v × w.
func (v Vec3[N]) CrossMatrix() Mat3[N] {
	return Mat3[N]{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	}
}
