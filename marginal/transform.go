// SPDX-License-Identifier: MIT

package marginal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lasfield/las"
)

// Transform writes d.Apply(src[k]) into dst and returns dst. A nil dst is
// allocated; dst may alias src.
//
// Errors: ErrLengthMismatch when dst is non-nil and len(dst) != len(src).
func Transform(dst, src []float64, d Distribution) ([]float64, error) {
	if dst == nil {
		dst = make([]float64, len(src))
	}
	if len(dst) != len(src) {
		return nil, fmt.Errorf("Transform: dst %d, src %d: %w", len(dst), len(src), ErrLengthMismatch)
	}
	for k, g := range src {
		dst[k] = d.Apply(g)
	}

	return dst, nil
}

// TransformField returns a copy of f with d applied to every cell.
func TransformField(f *las.Field, d Distribution) *las.Field {
	g := f.Clone()
	for k, v := range g.Data {
		g.Data[k] = d.Apply(v)
	}

	return g
}

// Standardize divides every cell by stddev in place, so a field with
// per-cell standard deviation stddev becomes a standard one.
func Standardize(f *las.Field, stddev float64) error {
	if !finite(stddev) || !(stddev > 0) {
		return fmt.Errorf("Standardize(%g): %w", stddev, ErrInvalidParameter)
	}
	floats.Scale(1/stddev, f.Data)

	return nil
}

// Mix writes ρ·g1 + √(1−ρ²)·g2 into dst and returns it. A nil dst is
// allocated; dst may alias g1 or g2.
//
// Errors: ErrInvalidParameter for |ρ| > 1 or non-finite ρ; ErrLengthMismatch
// for slices of different lengths.
func Mix(dst, g1, g2 []float64, rho float64) ([]float64, error) {
	if !finite(rho) || math.Abs(rho) > 1 {
		return nil, fmt.Errorf("Mix(ρ=%g): %w", rho, ErrInvalidParameter)
	}
	if dst == nil {
		dst = make([]float64, len(g1))
	}
	if !floats.EqualLengths(dst, g1, g2) {
		return nil, fmt.Errorf("Mix: lengths %d, %d, %d: %w", len(dst), len(g1), len(g2), ErrLengthMismatch)
	}
	c := math.Sqrt(1 - rho*rho)
	for k := range dst {
		dst[k] = rho*g1[k] + c*g2[k]
	}

	return dst, nil
}

// gaussMoments returns the mean and standard deviation of f(G), G ~ N(0,1),
// by n-point Gauss–Hermite quadrature.
func gaussMoments(f func(float64) float64, n int) (mean, stddev float64) {
	// ∫ e^{-x²} h(x) dx with x = g/√2 gives √π·E[h(G)].
	expect := func(h func(float64) float64) float64 {
		return quad.Fixed(func(x float64) float64 { return h(math.Sqrt2 * x) },
			math.Inf(-1), math.Inf(1), n, quad.Hermite{}, 0) / math.SqrtPi
	}
	mean = expect(f)
	variance := expect(func(g float64) float64 {
		d := f(g) - mean
		return d * d
	})

	return mean, math.Sqrt(variance)
}
