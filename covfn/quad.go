// SPDX-License-Identifier: MIT

package covfn

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/integrate/quad"
)

// gradeLevels is how many geometric panels are inserted next to a zero lag,
// where the Markov cone makes the integrand non-smooth.
const gradeLevels = 4

// covQuad integrates ρ against the lag weights of both axes:
//
//	Cov(A,B) = σ²/(|A||B|) · ∫∫ Wx(τx)·Wy(τy)·ρ(τx,τy) dτy dτx
//
// where W(τ) is the overlap length of a and b shifted by τ. W is piecewise
// linear, so each axis is split at its breakpoints and integrated panel by
// panel with fixed Gauss–Legendre rules.
func (m *Model) covQuad(a, b Rect) float64 {
	bx := lagBreaks(a.X, b.X)
	by := lagBreaks(a.Y, b.Y)
	n := m.quadPoints

	outer := func(tx float64) float64 {
		wx := overlap(a.X, b.X, tx)
		if wx <= 0 {
			return 0
		}
		inner := func(ty float64) float64 {
			return overlap(a.Y, b.Y, ty) * m.Correlation(tx, ty)
		}

		return wx * panels(inner, by, n)
	}

	return m.variance * panels(outer, bx, n) / (a.Area() * b.Area())
}

// panels sums fixed-order Legendre integrals of f over consecutive breakpoints.
func panels(f func(float64) float64, breaks []float64, n int) float64 {
	var sum float64
	for k := 0; k+1 < len(breaks); k++ {
		sum += quad.Fixed(f, breaks[k], breaks[k+1], n, quad.Legendre{}, 0)
	}

	return sum
}

// overlap returns |a ∩ (b + τ)|, the lag weight of x − y = τ for x ∈ a, y ∈ b.
func overlap(a, b Interval, tau float64) float64 {
	return math.Max(0, math.Min(a.Hi, b.Hi+tau)-math.Max(a.Lo, b.Lo+tau))
}

// lagBreaks returns the sorted kinks of the lag weight, plus zero (graded
// geometrically on both sides) when it lies inside the support.
func lagBreaks(a, b Interval) []float64 {
	lo, hi := a.Lo-b.Hi, a.Hi-b.Lo
	pts := []float64{lo, a.Lo - b.Lo, a.Hi - b.Hi, hi}
	if lo < 0 && 0 < hi {
		pts = append(pts, 0)
		h := math.Min(-lo, hi)
		for _, p := range pts[:4] {
			if p != 0 && math.Abs(p) < h {
				h = math.Abs(p)
			}
		}
		for k := 1; k <= gradeLevels; k++ {
			h /= 4
			pts = append(pts, -h, h)
		}
	}
	slices.Sort(pts)

	return slices.Compact(pts)
}
