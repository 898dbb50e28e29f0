// SPDX-License-Identifier: MIT
// Package matrix_test - linear algebra kernels against hand-computed values and gonum.
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lasfield/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tolAlgebra = 1e-12

var approx = cmpopts.EquateApprox(0, tolAlgebra)

// TestAddSub_FastAndFallback compares the *Dense path with the interface path.
func TestAddSub_FastAndFallback(t *testing.T) {
	a := MustDense(t, 4, 5)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 11)
	RandomFill(t, b, 12)

	sumFast, err := matrix.Add(a, b)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hidden{a}, hidden{b})
	require.NoError(t, err)
	require.Equal(t, sumFast.Values(), sumSlow.Values())

	diff, err := matrix.Sub(sumFast, b)
	require.NoError(t, err)
	if d := cmp.Diff(a.Values(), diff.Values(), approx); d != "" {
		t.Fatalf("(a+b)-b != a (-want +got):\n%s", d)
	}

	_, err = matrix.Add(a, MustDense(t, 5, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Known2x3x2 checks a hand-computed product.
func TestMul_Known2x3x2(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{58, 64, 139, 154}, c.Values())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_MatchesGonum compares a random product with mat.Dense.Mul.
func TestMul_MatchesGonum(t *testing.T) {
	a := MustDense(t, 6, 4)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	got, err := matrix.Mul(hidden{a}, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(6, 4, a.Values()), mat.NewDense(4, 5, b.Values()))
	if d := cmp.Diff(want.RawMatrix().Data, got.Values(), approx); d != "" {
		t.Fatalf("Mul mismatch (-gonum +ours):\n%s", d)
	}
}

// TestTranspose_Involution verifies (Aᵀ)ᵀ = A and that the input is untouched.
func TestTranspose_Involution(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Values())

	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	require.Equal(t, a.Values(), att.Values())
}

// TestScale covers the product and the finite-alpha guard.
func TestScale(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, -2, 0.5})
	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 4, -1}, s.Values())

	_, err = matrix.Scale(a, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestMatVec checks y = A·x and the length guard.
func TestMatVec(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	y, err := matrix.MatVec(hidden{a}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLU_Known3x3 verifies the Doolittle factors of a textbook matrix.
func TestLU_Known3x3(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{
		4, 3, 0,
		6, 3, 0,
		0, 2, 5,
	})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1.5, 1, 0, 0, -4.0 / 3.0, 1}, L.Values())

	lu, err := matrix.Mul(L, U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(lu, a, 0, tolAlgebra)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLU_Singular reports ErrSingular on a zero pivot.
func TestLU_Singular(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4})
	_, _, err := matrix.LU(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(a, MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_MatchesGonum solves an SPD system with several right-hand sides.
func TestSolve_MatchesGonum(t *testing.T) {
	const n, nrhs = 9, 4
	a := RandomSPD(t, n, 3)
	b := MustDense(t, n, nrhs)
	RandomFill(t, b, 4)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Solve(mat.NewDense(n, n, a.Values()), mat.NewDense(n, nrhs, b.Values())))
	if d := cmp.Diff(want.RawMatrix().Data, x.Values(), cmpopts.EquateApprox(1e-10, 1e-12)); d != "" {
		t.Fatalf("Solve mismatch (-gonum +ours):\n%s", d)
	}

	_, err = matrix.Solve(a, MustDense(t, n+1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSymmetrizeAndAllClose covers the facade helpers.
func TestSymmetrizeAndAllClose(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 4, 3})
	s, err := matrix.Symmetrize(a)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 3, 3}, s.Values())

	ok, err := matrix.AllClose(a, s, 0, 0.5)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, s, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, id.Values()[0]+id.Values()[4]+id.Values()[8])
}
