// SPDX-License-Identifier: MIT

package las_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
	"github.com/katalvlaran/lasfield/matrix"
)

// parentRows returns the neighborhood rows of topo's parents.
func parentRows(topo las.Topology) []int {
	offs := topo.Offsets()
	idx := make([]int, len(offs))
	for k, o := range offs {
		idx[k] = las.ParentIndex_TestOnly(o.DI, o.DJ)
	}

	return idx
}

// TestSolveStage_NormalEquations checks R·A = S and that the conditional
// covariance is B − Sᵀ·A for every topology.
func TestSolveStage_NormalEquations(t *testing.T) {
	t.Parallel()

	nb, err := las.BuildNeighborhood(markov(t, 1), 0.5, 0.5)
	require.NoError(t, err)
	drawn := []int{0, 1, 2}
	b3, err := nb.B.Induced(drawn, drawn)
	require.NoError(t, err)

	for _, x := range allSpans {
		for _, y := range allSpans {
			topo := las.Topology{X: x, Y: y}
			k, err := las.SolveStage(nb, 1, topo)
			require.NoError(t, err, "%v", topo)
			require.False(t, k.Degraded())
			require.Equal(t, -1, k.Pivot())
			require.Equal(t, topo, k.Topology)

			idx := parentRows(topo)
			r, err := nb.R.Induced(idx, idx)
			require.NoError(t, err)
			s, err := nb.S.Induced(idx, drawn)
			require.NoError(t, err)

			ra, err := matrix.Mul(r, k.A())
			require.NoError(t, err)
			ok, err := matrix.AllClose(ra, s, 1e-9, 1e-12)
			require.NoError(t, err)
			require.True(t, ok, "%v: R·A != S", topo)

			st, err := matrix.Transpose(s)
			require.NoError(t, err)
			sta, err := matrix.Mul(st, k.A())
			require.NoError(t, err)
			bb, err := matrix.Sub(b3, sta)
			require.NoError(t, err)

			rc := k.ResidualCov()
			top, err := rc.Induced(drawn, drawn)
			require.NoError(t, err)
			ok, err = matrix.AllClose(top, bb, 1e-9, 1e-10)
			require.NoError(t, err)
			require.True(t, ok, "%v: C·Cᵀ != BB", topo)

			// The children always average to the parent: no residual on the sum.
			for c := 0; c < 4; c++ {
				var sum float64
				for d := 0; d < 4; d++ {
					sum += at(t, rc, c, d)
				}
				require.InDelta(t, 0, sum, 1e-12, "%v: row %d", topo, c)
			}
		}
	}
}

// TestSolveStage_SingleParent: with only the parent itself, A is a scalar regression.
func TestSolveStage_SingleParent(t *testing.T) {
	t.Parallel()

	nb, err := las.BuildNeighborhood(markov(t, 2), 1, 1)
	require.NoError(t, err)
	k, err := las.SolveStage(nb, 1, las.Topology{X: las.Only, Y: las.Only})
	require.NoError(t, err)

	a := k.A()
	require.Equal(t, 1, a.Rows())
	for c := 0; c < 3; c++ {
		require.InDelta(t, at(t, nb.S, 4, c)/at(t, nb.R, 4, 4), at(t, a, 0, c), 1e-14)
	}
}

func TestCoefficients_ChildrenAverageToParent(t *testing.T) {
	t.Parallel()

	nb, err := las.BuildNeighborhood(markov(t, 1), 0.5, 0.5)
	require.NoError(t, err)
	k, err := las.SolveStage(nb, 1, las.Topology{X: las.Full, Y: las.Low})
	require.NoError(t, err)

	parents := randomVec(len(k.Offsets), 3)
	var center float64
	for r, o := range k.Offsets {
		if o == (las.Offset{}) {
			center = parents[r]
		}
	}
	var out [4]float64
	k.Children(parents, []float64{0.3, -1.2, 2.1}, &out)
	require.InDelta(t, center, (out[0]+out[1]+out[2]+out[3])/4, 1e-14)
}

// TestSolveStage_Degraded builds a neighborhood where child 1 is fully
// determined by the center parent, so the conditional factor fails at pivot 1.
func TestSolveStage_Degraded(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewIdentity(9)
	require.NoError(t, err)
	b, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	s, err := matrix.NewZeros(9, 4)
	require.NoError(t, err)
	require.NoError(t, s.Set(4, 1, 1))
	nb := &las.Neighborhood{R: r, B: b, S: s}

	k, err := las.SolveStage(nb, 2, las.Topology{})
	require.Error(t, err)
	require.NotNil(t, k)
	require.ErrorIs(t, err, las.ErrSingularConditional)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	var w *las.SingularWarning
	require.True(t, errors.As(err, &w))
	require.Equal(t, 2, w.Stage)
	require.False(t, w.Base)
	require.Equal(t, 1, w.Pivot)
	require.Contains(t, w.Error(), "stage 2 (full,full): pivot 1")

	require.True(t, k.Degraded())
	require.Equal(t, 1, k.Pivot())
	c := k.C()
	require.Equal(t, 1.0, at(t, c, 0, 0))
	for i := 1; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Zero(t, at(t, c, i, j), "C[%d][%d]", i, j)
		}
	}

	// Child 0 keeps its noise; children 1 and 2 collapse onto their mean.
	var out [4]float64
	parents := make([]float64, 9)
	k.Children(parents, []float64{2, 5, 7}, &out)
	require.Equal(t, [4]float64{2, 0, 0, -2}, out)
}

func TestSolveStage_SingularNeighborhood(t *testing.T) {
	t.Parallel()

	r, err := matrix.NewZeros(9, 9)
	require.NoError(t, err)
	b, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	s, err := matrix.NewZeros(9, 4)
	require.NoError(t, err)

	k, err := las.SolveStage(&las.Neighborhood{R: r, B: b, S: s}, 1, las.Topology{})
	require.Nil(t, k)
	require.ErrorIs(t, err, las.ErrSingularNeighborhood)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotErrorIs(t, err, las.ErrSingularConditional)
}

// symmetry maps a neighborhood onto itself: parent offsets, child indices and topologies.
type symmetry struct {
	name   string
	parent func(o las.Offset) las.Offset
	child  func(c int) int
	topo   func(t las.Topology) las.Topology
}

func reverse(s las.Span) las.Span {
	switch s {
	case las.Low:
		return las.High
	case las.High:
		return las.Low
	default:
		return s
	}
}

var symmetries = []symmetry{
	{
		name:   "rotate",
		parent: func(o las.Offset) las.Offset { return las.Offset{DI: o.DJ, DJ: -o.DI} },
		child:  func(c int) int { return (c%2)*2 + (1 - c/2) },
		topo:   func(t las.Topology) las.Topology { return las.Topology{X: t.Y, Y: reverse(t.X)} },
	},
	{
		name:   "reflect-x",
		parent: func(o las.Offset) las.Offset { return las.Offset{DI: -o.DI, DJ: o.DJ} },
		child:  func(c int) int { return (1-c/2)*2 + c%2 },
		topo:   func(t las.Topology) las.Topology { return las.Topology{X: reverse(t.X), Y: t.Y} },
	},
}

// TestCoefficients_IsotropicSymmetry: for an isotropic model on square cells,
// rotating or mirroring a neighborhood permutes the conditional means and
// covariances of the children accordingly.
func TestCoefficients_IsotropicSymmetry(t *testing.T) {
	t.Parallel()

	model, err := covfn.NewModel(covfn.Markov, 1, 1, 1)
	require.NoError(t, err)
	nb, err := las.BuildNeighborhood(model, 0.5, 0.5)
	require.NoError(t, err)
	values := randomVec(9, 11)
	const tol = 1e-7

	for _, sym := range symmetries {
		for _, x := range allSpans {
			for _, y := range allSpans {
				topo := las.Topology{X: x, Y: y}
				mapped := sym.topo(topo)
				k, err := las.SolveStage(nb, 1, topo)
				require.NoError(t, err)
				km, err := las.SolveStage(nb, 1, mapped)
				require.NoError(t, err)

				// Parent at offset o carries values[o]; after the map it sits at parent(o).
				byOffset := make(map[las.Offset]float64, 9)
				p := make([]float64, len(k.Offsets))
				for r, o := range k.Offsets {
					p[r] = values[las.ParentIndex_TestOnly(o.DI, o.DJ)]
					byOffset[sym.parent(o)] = p[r]
				}
				pm := make([]float64, len(km.Offsets))
				for r, o := range km.Offsets {
					v, ok := byOffset[o]
					require.True(t, ok, "%s %v: offset %v not mapped", sym.name, topo, o)
					pm[r] = v
				}

				var out, outM [4]float64
				zero := make([]float64, 3)
				k.Children(p, zero, &out)
				km.Children(pm, zero, &outM)
				rc, rcm := k.ResidualCov(), km.ResidualCov()
				for c := 0; c < 4; c++ {
					require.InDelta(t, out[c], outM[sym.child(c)], tol, "%s %v→%v: mean of child %d", sym.name, topo, mapped, c)
					for d := 0; d < 4; d++ {
						require.InDelta(t, at(t, rc, c, d), at(t, rcm, sym.child(c), sym.child(d)), tol,
							"%s %v→%v: cov[%d][%d]", sym.name, topo, mapped, c, d)
					}
				}
			}
		}
	}
}
