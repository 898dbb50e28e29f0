// SPDX-License-Identifier: MIT

package las

import (
	"fmt"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/matrix"
)

// Neighborhood numbering.
//
// Parents of the cell being subdivided sit at offsets (di, dj) ∈ {−1,0,1}²,
// row index (di+1)·3 + (dj+1); the cell itself is index 4. Its children
// (ci, cj) ∈ {0,1}² have index ci·2 + cj and cover the quarter
// [ci·t1/2, (ci+1)·t1/2] × [cj·t2/2, (cj+1)·t2/2] of the cell. Child 3 is the
// one recovered from the upward-average identity.
const (
	numParents  = 9
	numChildren = 4
	numDrawn    = 3
	centerIndex = 4
)

// parentIndex maps an offset in {−1,0,1}² to its row in R and S.
func parentIndex(di, dj int) int { return (di+1)*3 + (dj + 1) }

// Neighborhood holds the fixed-topology covariances for one subdivision step:
// R (9×9) among the 3×3 parents, B (4×4) among the children of the center
// parent, and S (9×4) between parents and children.
type Neighborhood struct {
	R, B, S *matrix.Dense
}

// BuildNeighborhood evaluates R, B and S for parent cells of size t1×t2.
//
// Errors: ErrInvalidConfig for a nil covariance or non-positive sizes;
// matrix.ErrNaNInf when the covariance returns a non-finite value.
//
// Complexity: 45 + 10 + 36 covariance evaluations.
func BuildNeighborhood(cov covfn.LocalAverager, t1, t2 float64) (*Neighborhood, error) {
	if cov == nil || !(t1 > 0) || !(t2 > 0) {
		return nil, lasErrorf("BuildNeighborhood", ErrInvalidConfig)
	}

	var parents [numParents]covfn.Rect
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			parents[parentIndex(di, dj)] = covfn.Cell(float64(di), float64(dj), t1, t2)
		}
	}
	var children [numChildren]covfn.Rect
	for ci := 0; ci < 2; ci++ {
		for cj := 0; cj < 2; cj++ {
			children[ci*2+cj] = covfn.Cell(float64(ci), float64(cj), t1/2, t2/2)
		}
	}

	r := symmetricCov(cov, parents[:])
	b := symmetricCov(cov, children[:])
	s := make([]float64, numParents*numChildren)
	for p := range parents {
		for c := range children {
			s[p*numChildren+c] = cov.Cov(parents[p], children[c])
		}
	}

	var nb Neighborhood
	var err error
	if nb.R, err = matrix.NewDenseFrom(numParents, numParents, r); err != nil {
		return nil, lasErrorf("BuildNeighborhood: R", err)
	}
	if nb.B, err = matrix.NewDenseFrom(numChildren, numChildren, b); err != nil {
		return nil, lasErrorf("BuildNeighborhood: B", err)
	}
	if nb.S, err = matrix.NewDenseFrom(numParents, numChildren, s); err != nil {
		return nil, lasErrorf("BuildNeighborhood: S", err)
	}

	return &nb, nil
}

// symmetricCov fills the lower triangle of Cov(cells[p], cells[q]) and mirrors it.
func symmetricCov(cov covfn.LocalAverager, cells []covfn.Rect) []float64 {
	n := len(cells)
	out := make([]float64, n*n)
	for p := 0; p < n; p++ {
		for q := 0; q <= p; q++ {
			v := cov.Cov(cells[p], cells[q])
			out[p*n+q] = v
			out[q*n+p] = v
		}
	}

	return out
}

// BuildBase returns the (k1·k2)×(k1·k2) covariance Q among all base cells of
// size t1×t2, cell (i, j) at index i·k2 + j.
//
// Stationarity makes Q depend only on the index offset, so each of the
// (2k1−1)(2k2−1) offsets is evaluated once (half of them, by symmetry).
func BuildBase(cov covfn.LocalAverager, k1, k2 int, t1, t2 float64) (*matrix.Dense, error) {
	if cov == nil || k1 < 1 || k2 < 1 || !(t1 > 0) || !(t2 > 0) {
		return nil, lasErrorf("BuildBase", ErrInvalidConfig)
	}

	w := 2*k2 - 1
	byOffset := make([]float64, (2*k1-1)*w)
	origin := covfn.Cell(0, 0, t1, t2)
	key := func(di, dj int) int { return (di+k1-1)*w + (dj + k2 - 1) }
	for di := 0; di < k1; di++ {
		for dj := -(k2 - 1); dj < k2; dj++ {
			if di == 0 && dj < 0 {
				continue
			}
			v := cov.Cov(origin, covfn.Cell(float64(di), float64(dj), t1, t2))
			byOffset[key(di, dj)] = v
			byOffset[key(-di, -dj)] = v
		}
	}

	n := k1 * k2
	q := make([]float64, n*n)
	for a := 0; a < n; a++ {
		ia, ja := a/k2, a%k2
		for b := 0; b < n; b++ {
			q[a*n+b] = byOffset[key(ia-b/k2, ja-b%k2)]
		}
	}
	Q, err := matrix.NewDenseFrom(n, n, q)
	if err != nil {
		return nil, fmt.Errorf("BuildBase(%d,%d): %w", k1, k2, err)
	}

	return Q, nil
}
