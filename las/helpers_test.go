// SPDX-License-Identifier: MIT

package las_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
	"github.com/katalvlaran/lasfield/matrix"
)

// allSpans lists every Span value.
var allSpans = []las.Span{las.Full, las.Low, las.High, las.Only}

// markov returns an isotropic Markov model with unit variance.
func markov(t testing.TB, theta float64) *covfn.Model {
	t.Helper()
	m, err := covfn.NewModel(covfn.Markov, theta, theta, 1)
	require.NoError(t, err)

	return m
}

// mustEngine builds an engine on an lx×ly domain or fails the test.
func mustEngine(t testing.TB, cov covfn.LocalAverager, nx, ny int, lx, ly float64, mxk int, opts ...las.Option) *las.Engine {
	t.Helper()
	e, err := las.New(las.Config{NX: nx, NY: ny, XLength: lx, YLength: ly, MaxBaseCells: mxk}, cov, opts...)
	require.NoError(t, err)

	return e
}

// at reads m[i,j] or fails the test.
func at(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomVec returns n uniform values in [-1, 1) from a fixed PCG stream.
func randomVec(n int, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*r.Float64() - 1
	}

	return out
}
