// SPDX-License-Identifier: MIT

package las

import (
	"errors"

	"github.com/katalvlaran/lasfield/matrix"
)

// drawnChildren selects children 0..2 in the neighborhood matrices.
var drawnChildren = []int{0, 1, 2}

// Coefficients are the per-topology subdivision coefficients of one stage.
//
// Children 0..2 of a parent are
//
//	z = Aᵀ·p + C·u,   u ~ N(0, I₃)
//
// with p the parent values in Offsets order, and child 3 = 4·p_center − z0 − z1 − z2.
type Coefficients struct {
	Topology Topology
	Offsets  []Offset // parent offsets, rows of A

	a      []float64                    // len(Offsets)×3, row-major
	c      [numDrawn * numDrawn]float64 // lower-triangular, row-major
	center int                          // row of offset (0,0)
	pivot  int                          // failed Cholesky pivot, −1 when C is exact
}

// SolveStage derives the coefficients of topo from a neighborhood.
//
// Implementation:
//   - Stage 1: restrict R and S to the parents of topo (Induced).
//   - Stage 2: A = R⁻¹·S[:, 0:3] by LU solve.
//   - Stage 3: BB = B[0:3, 0:3] − Sᵀ·A, symmetrized.
//   - Stage 4: C = chol(BB); on failure keep the partial factor.
//
// Returns:
//   - *Coefficients, nil on success.
//   - *Coefficients, *SingularWarning when BB is not positive definite; the
//     coefficients remain usable with reduced innovation variance.
//   - nil, error for any other failure (wraps ErrSingularNeighborhood when R is singular).
func SolveStage(nb *Neighborhood, stage int, topo Topology, opts ...matrix.Option) (*Coefficients, error) {
	idx := topo.parentIndices()
	r, err := nb.R.Induced(idx, idx)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	s, err := nb.S.Induced(idx, drawnChildren)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	a, err := matrix.Solve(r, s)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, lasErrorf("SolveStage", errors.Join(ErrSingularNeighborhood, err))
		}
		return nil, lasErrorf("SolveStage", err)
	}

	st, err := matrix.Transpose(s)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	sta, err := matrix.Mul(st, a)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	b3, err := nb.B.Induced(drawnChildren, drawnChildren)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	bb, err := matrix.Sub(b3, sta)
	if err != nil {
		return nil, lasErrorf("SolveStage", err)
	}
	if bb, err = matrix.Symmetrize(bb); err != nil {
		return nil, lasErrorf("SolveStage", err)
	}

	L, pivot, cerr := matrix.CholeskyPartial(bb, opts...)
	if cerr != nil && !errors.Is(cerr, matrix.ErrNotPositiveDefinite) {
		return nil, lasErrorf("SolveStage", cerr)
	}

	k := &Coefficients{
		Topology: topo,
		Offsets:  topo.Offsets(),
		a:        a.Values(),
		pivot:    pivot,
	}
	copy(k.c[:], L.Values())
	for row, p := range idx {
		if p == centerIndex {
			k.center = row
		}
	}
	if cerr != nil {
		return k, &SingularWarning{Stage: stage, Topology: topo, Pivot: pivot, Err: cerr}
	}

	return k, nil
}

// Degraded reports whether C is a partial factor.
func (k *Coefficients) Degraded() bool { return k.pivot >= 0 }

// Pivot returns the failed pivot index, or −1.
func (k *Coefficients) Pivot() int { return k.pivot }

// A returns a copy of the len(Offsets)×3 estimation matrix.
func (k *Coefficients) A() *matrix.Dense {
	m, _ := matrix.NewDenseFrom(len(k.Offsets), numDrawn, k.a)
	return m
}

// C returns a copy of the 3×3 lower-triangular conditional factor.
func (k *Coefficients) C() *matrix.Dense {
	m, _ := matrix.NewDenseFrom(numDrawn, numDrawn, k.c[:])
	return m
}

// Children writes the four children of a parent into out (index ci·2 + cj).
// parents holds the parent values in Offsets order; u holds three standard normals.
func (k *Coefficients) Children(parents, u []float64, out *[numChildren]float64) {
	np := len(k.Offsets)
	var z float64
	for c := 0; c < numDrawn; c++ {
		z = 0
		for p := 0; p < np; p++ {
			z += k.a[p*numDrawn+c] * parents[p]
		}
		for q := 0; q <= c; q++ {
			z += k.c[c*numDrawn+q] * u[q]
		}
		out[c] = z
	}
	out[3] = 4*parents[k.center] - out[0] - out[1] - out[2]
}

// ResidualCov returns the 4×4 conditional covariance of all children given the
// parents: T·C·Cᵀ·Tᵀ with T = [I₃; −1 −1 −1]. It has rank at most 3.
func (k *Coefficients) ResidualCov() *matrix.Dense {
	// rows of T·C
	var tc [numChildren][numDrawn]float64
	for c := 0; c < numDrawn; c++ {
		for q := 0; q < numDrawn; q++ {
			tc[c][q] = k.c[c*numDrawn+q]
			tc[3][q] -= k.c[c*numDrawn+q]
		}
	}
	out := make([]float64, numChildren*numChildren)
	for c := 0; c < numChildren; c++ {
		for d := 0; d < numChildren; d++ {
			var s float64
			for q := 0; q < numDrawn; q++ {
				s += tc[c][q] * tc[d][q]
			}
			out[c*numChildren+d] = s
		}
	}
	m, _ := matrix.NewDenseFrom(numChildren, numChildren, out)

	return m
}
