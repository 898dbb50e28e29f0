// SPDX-License-Identifier: MIT

// Package matrix_test holds shared fixtures for the matrix tests.
//
// Purpose:
//   - Keep allocation/fill boilerplate out of the assertions.
//   - Provide a Matrix implementation that is NOT *Dense, so the generic
//     (interface) path of every kernel is exercised next to the *Dense fast path.
package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lasfield/matrix"
)

// hidden wraps a *Dense behind the Matrix interface to defeat type assertions.
type hidden struct{ d *matrix.Dense }

func (h hidden) Rows() int                     { return h.d.Rows() }
func (h hidden) Cols() int                     { return h.d.Cols() }
func (h hidden) At(i, j int) (float64, error)  { return h.d.At(i, j) }
func (h hidden) Set(i, j int, v float64) error { return h.d.Set(i, j, v) }
func (h hidden) Clone() matrix.Matrix          { return hidden{d: h.d.Clone().(*matrix.Dense)} }

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Errors:
//   - Fatal test failure on a length mismatch or non-finite value.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill FILLS a Matrix with deterministic U(-1,1) values by seed.
func RandomFill(t testing.TB, m matrix.Matrix, seed uint64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandomSPD returns A = G·Gᵀ + n·I for a seeded random G, which is symmetric positive definite.
func RandomSPD(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	g := MustDense(t, n, n)
	RandomFill(t, g, seed)
	gt, err := matrix.Transpose(g)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	a, err := matrix.Mul(g, gt)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	for i := 0; i < n; i++ {
		if err = a.Set(i, i, MustAt(t, a, i, i)+float64(n)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	return a
}
