// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
)

// ExampleDMat_Inverse shows the error-returning inversion surface.
func ExampleDMat_Inverse() {
	m, _ := matrix.NewDMatFromRows([][]float64{{2, 0}, {0, 4}})
	inv, err := m.Inverse()
	fmt.Print(inv)
	fmt.Println(err)

	s, _ := matrix.NewDMatFromRows([][]float64{{1, 2}, {2, 4}})
	_, err = s.Inverse()
	fmt.Println(errors.Is(err, matrix.ErrSingular), err)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
	// <nil>
	// true Inverse: matrix: singular matrix
}

// ExampleDMat_Cov computes the sample covariance of three 2-D observations.
func ExampleDMat_Cov() {
	obs, _ := matrix.NewDMatFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	fmt.Println(obs.Mean())
	fmt.Print(obs.Cov())
	// Output:
	// [3 4]
	// [4, 4]
	// [4, 4]
}
