// SPDX-License-Identifier: MIT

package covfn

import (
	"fmt"
	"math"
)

// DefaultQuadPoints is the Gauss–Legendre order used on each quadrature panel.
const DefaultQuadPoints = 16

const panicQuadPointsInvalid = "covfn: WithQuadPoints: n must be ≥ 1"

// Option configures a Model.
type Option func(*Model)

// WithQuadPoints sets the Gauss–Legendre order per panel for non-separable kinds.
// Panics when n < 1.
func WithQuadPoints(n int) Option {
	if n < 1 {
		panic(panicQuadPointsInvalid)
	}

	return func(m *Model) { m.quadPoints = n }
}

// Model is a stationary covariance model: a correlation Kind with scales
// (θx, θy) and a point variance σ². A Model is immutable and safe for
// concurrent use.
type Model struct {
	kind           Kind
	thetaX, thetaY float64
	variance       float64
	quadPoints     int
	gx, gy         func(float64) float64 // axis g functions for separable kinds
}

// NewModel validates the parameters and returns a ready Model.
//
// Errors:
//   - ErrInvalidModel when a scale or the variance is not positive and finite.
//   - ErrUnknownKind for an out-of-range kind.
func NewModel(kind Kind, thetaX, thetaY, variance float64, opts ...Option) (*Model, error) {
	if kind < Markov || kind > Gaussian {
		return nil, fmt.Errorf("NewModel: %v: %w", kind, ErrUnknownKind)
	}
	for _, v := range [...]float64{thetaX, thetaY, variance} {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewModel(θx=%g, θy=%g, σ²=%g): %w", thetaX, thetaY, variance, ErrInvalidModel)
		}
	}
	m := &Model{
		kind:       kind,
		thetaX:     thetaX,
		thetaY:     thetaY,
		variance:   variance,
		quadPoints: DefaultQuadPoints,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.gx = axisG(kind, thetaX)
	m.gy = axisG(kind, thetaY)

	return m, nil
}

// Kind returns the correlation function selector.
func (m *Model) Kind() Kind { return m.kind }

// ThetaX returns the correlation length along x.
func (m *Model) ThetaX() float64 { return m.thetaX }

// ThetaY returns the correlation length along y.
func (m *Model) ThetaY() float64 { return m.thetaY }

// Variance returns the point variance σ².
func (m *Model) Variance() float64 { return m.variance }

// Isotropic reports θx == θy.
func (m *Model) Isotropic() bool { return m.thetaX == m.thetaY }

// Correlation returns the point correlation ρ(τx, τy).
func (m *Model) Correlation(tx, ty float64) float64 {
	ax, ay := tx/m.thetaX, ty/m.thetaY
	switch m.kind {
	case Markov:
		return math.Exp(-2 * math.Hypot(ax, ay))
	case MarkovSeparable:
		return math.Exp(-2 * (math.Abs(ax) + math.Abs(ay)))
	default:
		return math.Exp(-math.Pi * (ax*ax + ay*ay))
	}
}

// Cov returns the covariance between the averages over a and b.
// Both rectangles must have positive side lengths.
func (m *Model) Cov(a, b Rect) float64 {
	if m.kind.Separable() {
		ix := pairIntegral(m.gx, a.X, b.X) / (a.X.Len() * b.X.Len())
		iy := pairIntegral(m.gy, a.Y, b.Y) / (a.Y.Len() * b.Y.Len())

		return m.variance * ix * iy
	}

	return m.covQuad(a, b)
}

// String renders the model parameters.
func (m *Model) String() string {
	return fmt.Sprintf("%s(θx=%g, θy=%g, σ²=%g)", m.kind, m.thetaX, m.thetaY, m.variance)
}
