// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lasfield/matrix"
)

// ExampleCholesky factors a 2×2 covariance and samples x = L·u.
func ExampleCholesky() {
	cov, _ := matrix.NewDenseFrom(2, 2, []float64{4, 2, 2, 3})
	L, err := matrix.Cholesky(cov)
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := matrix.MatVec(L, []float64{1, -1})
	fmt.Printf("L00=%.0f L10=%.0f x=[%.4f %.4f]\n", mustAt(L, 0, 0), mustAt(L, 1, 0), x[0], x[1])

	// Output:
	// L00=2 L10=1 x=[2.0000 -0.4142]
}

// ExampleCholeskyPartial shows the degraded factor of a singular covariance.
func ExampleCholeskyPartial() {
	cov, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1, 1, 1})
	L, pivot, err := matrix.CholeskyPartial(cov)
	fmt.Println(pivot, errors.Is(err, matrix.ErrNotPositiveDefinite))
	fmt.Print(L)

	// Output:
	// 1 true
	// [1, 0]
	// [0, 0]
}

// ExampleSolve computes A = R⁻¹S for a small system.
func ExampleSolve() {
	r, _ := matrix.NewDenseFrom(2, 2, []float64{2, 0, 0, 4})
	s, _ := matrix.NewDenseFrom(2, 1, []float64{1, 1})
	a, _ := matrix.Solve(r, s)
	fmt.Println(a.Values())

	// Output:
	// [0.5 0.25]
}

func mustAt(m matrix.Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}
