// SPDX-License-Identifier: MIT

package las_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
)

// TestEnsemble_Statistics compares 1000 realizations of a 64x64 field with the
// model: zero mean, the local-average variance of one cell, and the
// covariance of two horizontally adjacent cells sharing a parent.
//
// Pairs straddling a parent boundary are conditionally independent given the
// parents and carry less correlation; they are not checked here.
func TestEnsemble_Statistics(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test skipped in -short mode")
	}
	t.Parallel()

	const (
		n      = 1000
		size   = 64
		length = 10.0
	)
	model := markov(t, 1)
	e := mustEngine(t, model, size, size, length, length, 0)

	d := length / size
	cell := covfn.Cell(0, 0, d, d)
	wantVar := model.Cov(cell, cell)
	wantLag := model.Cov(cell, covfn.Cell(1, 0, d, d)) / wantVar

	means := make([]float64, n)
	vars := make([]float64, n)
	lags := make([]float64, n)
	err := e.Ensemble(context.Background(), n, 31337, func(r int, f *las.Field) error {
		means[r] = stat.Mean(f.Data, nil)
		var ss, lag float64
		pairs := 0
		for i := 0; i < f.NX; i++ {
			for j := 0; j < f.NY; j++ {
				v := f.At(i, j)
				ss += v * v
				if i%2 == 0 {
					lag += v * f.At(i+1, j)
					pairs++
				}
			}
		}
		vars[r] = ss / float64(len(f.Data))
		lags[r] = lag / float64(pairs)
		return nil
	})
	require.NoError(t, err)

	mean, meanVar := stat.MeanVariance(means, nil)
	pooled := stat.Mean(vars, nil)
	lag := stat.Mean(lags, nil) / pooled

	require.Less(t, math.Abs(mean), 0.05, "ensemble mean")
	require.Positive(t, meanVar)
	require.InEpsilon(t, wantVar, pooled, 0.03, "pooled variance")
	require.InDelta(t, wantLag, lag, 0.03, "lag-1 correlation within a parent")
}
