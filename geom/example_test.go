// SPDX-License-Identifier: MIT

package geom_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/geom"
)

// ExampleIso3 places a point with a rigid transform and maps it back.
func ExampleIso3() {
	iso := geom.NewIso3(geom.NewVec3(1.0, 0.0, 0.0), geom.NewVec3(0.0, 0.0, math.Pi/2))
	p := iso.Transform(geom.NewVec3(1.0, 0.0, 0.0))
	fmt.Printf("%.3f %.3f %.3f\n", p[0], p[1], p[2])

	q := iso.InvTransform(p)
	fmt.Printf("%.3f %.3f %.3f\n", q[0], q[1], q[2])
	// Output:
	// 1.000 1.000 0.000
	// 1.000 0.000 0.000
}

// ExampleMat3_Invert shows that a singular matrix is left untouched.
func ExampleMat3_Invert() {
	m := geom.NewMat3(1.0, 2.0, 3.0, 2.0, 4.0, 6.0, 0.0, 0.0, 1.0)
	ok := m.Invert()
	fmt.Println(ok, m.Row(1))
	// Output:
	// false [2 4 6]
}

// ExampleVec3_Normalize returns the previous length.
func ExampleVec3_Normalize() {
	v := geom.NewVec3(0.0, 3.0, 4.0)
	n := v.Normalize()
	fmt.Println(n, v)
	// Output:
	// 5 [0 0.6 0.8]
}
