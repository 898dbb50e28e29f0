// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
)

// Accumulator pools statistics over realizations. Add is safe for concurrent
// use, so it can be called straight from las.Engine.Ensemble.
type Accumulator struct {
	maxLag int

	mu    sync.Mutex
	means []float64   // per-realization field mean
	vars  []float64   // per-realization raw second moment
	lagX  [][]float64 // per-realization lag covariances 1..maxLag
	lagY  [][]float64
}

// NewAccumulator tracks lag covariances up to maxLag cells along each axis.
func NewAccumulator(maxLag int) *Accumulator {
	return &Accumulator{maxLag: max(maxLag, 0)}
}

// Add records one realization. Lags that do not fit the field are skipped.
func (a *Accumulator) Add(f *las.Field) {
	mean := stat.Mean(f.Data, nil)
	second := floats.Dot(f.Data, f.Data) / float64(len(f.Data))
	lx := lagRow(f, AxisX, a.maxLag)
	ly := lagRow(f, AxisY, a.maxLag)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.means = append(a.means, mean)
	a.vars = append(a.vars, second)
	a.lagX = append(a.lagX, lx)
	a.lagY = append(a.lagY, ly)
}

func lagRow(f *las.Field, axis Axis, maxLag int) []float64 {
	row := make([]float64, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		c, err := LagCovariance(f, axis, lag)
		if err != nil {
			break
		}
		row = append(row, c)
	}

	return row
}

// Summary is the pooled view of an ensemble.
type Summary struct {
	Realizations int
	Mean         float64 // mean of all cells of all realizations
	MeanStdErr   float64 // standard error of Mean across realizations
	Variance     float64 // pooled second moment about zero
	CorrX, CorrY []float64
}

// Summary pools the recorded realizations. Lag correlations are pooled lag
// covariances divided by the pooled variance.
func (a *Accumulator) Summary() (Summary, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.means)
	if n == 0 {
		return Summary{}, ErrEmpty
	}
	s := Summary{Realizations: n}
	var sd float64
	s.Mean, sd = stat.MeanStdDev(a.means, nil)
	if n > 1 {
		s.MeanStdErr = stat.StdErr(sd, float64(n))
	}
	s.Variance = stat.Mean(a.vars, nil)
	s.CorrX = pooledCorr(a.lagX, s.Variance)
	s.CorrY = pooledCorr(a.lagY, s.Variance)

	return s, nil
}

// pooledCorr averages the lag rows column-wise over the lags every row has.
func pooledCorr(rows [][]float64, variance float64) []float64 {
	width := math.MaxInt
	for _, r := range rows {
		width = min(width, len(r))
	}
	if width == 0 || width == math.MaxInt {
		return nil
	}
	out := make([]float64, width)
	for _, r := range rows {
		floats.Add(out, r[:width])
	}
	floats.Scale(1/(float64(len(rows))*variance), out)

	return out
}

// Expected is what a Summary converges to under a covariance model on cells of
// size dx×dy: the cell variance and the lag correlations between whole cells.
type Expected struct {
	Variance     float64
	CorrX, CorrY []float64
}

// ExpectedFor evaluates the model for lags 1..maxLag.
func ExpectedFor(cov covfn.LocalAverager, dx, dy float64, maxLag int) (Expected, error) {
	if cov == nil || !(dx > 0) || !(dy > 0) || maxLag < 0 {
		return Expected{}, fmt.Errorf("ExpectedFor(%g,%g,%d): %w", dx, dy, maxLag, ErrInvalidLag)
	}
	origin := covfn.Cell(0, 0, dx, dy)
	e := Expected{
		Variance: cov.Cov(origin, origin),
		CorrX:    make([]float64, maxLag),
		CorrY:    make([]float64, maxLag),
	}
	for lag := 1; lag <= maxLag; lag++ {
		e.CorrX[lag-1] = cov.Cov(origin, covfn.Cell(float64(lag), 0, dx, dy)) / e.Variance
		e.CorrY[lag-1] = cov.Cov(origin, covfn.Cell(0, float64(lag), dx, dy)) / e.Variance
	}

	return e, nil
}
