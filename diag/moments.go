// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lasfield/las"
)

// Moments are the sample moments of one field's cells.
type Moments struct {
	Mean, Variance       float64
	Skewness, ExKurtosis float64
	Min, Max             float64
}

// FieldMoments computes the moments of every cell value in data.
func FieldMoments(data []float64) Moments {
	var m Moments
	if len(data) == 0 {
		return m
	}
	m.Mean, m.Variance = stat.MeanVariance(data, nil)
	m.Skewness = stat.Skew(data, nil)
	m.ExKurtosis = stat.ExKurtosis(data, nil)
	m.Min, m.Max = data[0], data[0]
	for _, v := range data[1:] {
		m.Min = min(m.Min, v)
		m.Max = max(m.Max, v)
	}

	return m
}

// Axis selects the lag direction.
type Axis uint8

const (
	AxisX Axis = iota // along i
	AxisY             // along j
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}

	return "y"
}

// LagCorrelation returns the Pearson correlation of all cell pairs lag cells
// apart along axis. Lag 0 is 1.
func LagCorrelation(f *las.Field, axis Axis, lag int) (float64, error) {
	if lag == 0 && len(f.Data) > 0 {
		return 1, nil
	}
	x, y, err := lagPairs(f, axis, lag)
	if err != nil {
		return 0, err
	}

	return stat.Correlation(x, y, nil), nil
}

// LagCovariance returns the mean product of cell pairs lag cells apart, about
// a known zero mean. Lag 0 is the raw second moment.
func LagCovariance(f *las.Field, axis Axis, lag int) (float64, error) {
	if lag == 0 {
		return stat.Moment(2, f.Data, nil) + sq(stat.Mean(f.Data, nil)), nil
	}
	x, y, err := lagPairs(f, axis, lag)
	if err != nil {
		return 0, err
	}
	var s float64
	for k := range x {
		s += x[k] * y[k]
	}

	return s / float64(len(x)), nil
}

func sq(v float64) float64 { return v * v }

// lagPairs gathers the (first, second) values of every pair.
func lagPairs(f *las.Field, axis Axis, lag int) (x, y []float64, err error) {
	n := f.NX
	if axis == AxisY {
		n = f.NY
	}
	if lag < 1 || lag >= n {
		return nil, nil, fmt.Errorf("lag %d along %v of %dx%d: %w", lag, axis, f.NX, f.NY, ErrInvalidLag)
	}
	ni, nj := f.NX, f.NY
	di, dj := lag, 0
	if axis == AxisY {
		di, dj = 0, lag
	}
	ni -= di
	nj -= dj
	x = make([]float64, 0, ni*nj)
	y = make([]float64, 0, ni*nj)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			x = append(x, f.At(i, j))
			y = append(y, f.At(i+di, j+dj))
		}
	}

	return x, y, nil
}
