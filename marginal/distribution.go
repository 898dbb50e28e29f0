// SPDX-License-Identifier: MIT

package marginal

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Kind selects a marginal distribution.
type Kind uint8

const (
	KindNormal Kind = iota
	KindLognormal
	KindBounded
)

var kindNames = [...]string{KindNormal: "normal", KindLognormal: "lognormal", KindBounded: "bounded"}

// String returns the selector name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a selector name, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownDistribution)
}

// Distribution maps a standard normal value onto the target marginal.
type Distribution interface {
	Kind() Kind
	Apply(g float64) float64
	// Mean and StdDev of the transformed variable, for validation.
	Mean() float64
	StdDev() float64
}

// Params carries the parameters of every kind; each constructor reads its own.
type Params struct {
	Mean, StdDev    float64 // normal, lognormal
	Lower, Upper    float64 // bounded support
	Location, Scale float64 // bounded: m and s
}

// New builds the distribution of kind k from p.
func New(k Kind, p Params) (Distribution, error) {
	switch k {
	case KindNormal:
		return Normal(p.Mean, p.StdDev)
	case KindLognormal:
		return Lognormal(p.Mean, p.StdDev)
	case KindBounded:
		return Bounded(p.Lower, p.Upper, p.Location, p.Scale)
	default:
		return nil, fmt.Errorf("New(%v): %w", k, ErrUnknownDistribution)
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// normal is μ + σ·g.
type normal struct{ d distuv.Normal }

// Normal returns the N(mean, stddev²) marginal. stddev must be ≥ 0.
func Normal(mean, stddev float64) (Distribution, error) {
	if !finite(mean, stddev) || stddev < 0 {
		return nil, fmt.Errorf("Normal(%g,%g): %w", mean, stddev, ErrInvalidParameter)
	}

	return normal{d: distuv.Normal{Mu: mean, Sigma: stddev}}, nil
}

func (n normal) Kind() Kind              { return KindNormal }
func (n normal) Apply(g float64) float64 { return n.d.Mu + n.d.Sigma*g }
func (n normal) Mean() float64           { return n.d.Mu }
func (n normal) StdDev() float64         { return n.d.Sigma }

// lognormal is exp(μ_ln + σ_ln·g).
type lognormal struct{ d distuv.LogNormal }

// Lognormal returns the lognormal marginal with arithmetic mean and standard
// deviation: σ_ln² = ln(1 + (stddev/mean)²), μ_ln = ln(mean) − σ_ln²/2.
// mean must be > 0 and stddev ≥ 0.
func Lognormal(mean, stddev float64) (Distribution, error) {
	if !finite(mean, stddev) || mean <= 0 || stddev < 0 {
		return nil, fmt.Errorf("Lognormal(%g,%g): %w", mean, stddev, ErrInvalidParameter)
	}
	cv := stddev / mean
	v := math.Log1p(cv * cv)

	return lognormal{d: distuv.LogNormal{Mu: math.Log(mean) - v/2, Sigma: math.Sqrt(v)}}, nil
}

func (l lognormal) Kind() Kind              { return KindLognormal }
func (l lognormal) Apply(g float64) float64 { return math.Exp(l.d.Mu + l.d.Sigma*g) }
func (l lognormal) Mean() float64           { return l.d.Mean() }
func (l lognormal) StdDev() float64         { return l.d.StdDev() }

// LogParams returns μ_ln and σ_ln.
func LogParams(d Distribution) (mu, sigma float64, ok bool) {
	l, ok := d.(lognormal)
	if !ok {
		return 0, 0, false
	}

	return l.d.Mu, l.d.Sigma, true
}

// bounded is a + (b−a)/2·(1 + tanh((m + s·g)/(2π))).
type bounded struct {
	lower, upper float64
	loc, scale   float64
	mean, sd     float64
}

// boundedNodes is the Gauss–Hermite order used for the moments of a bounded marginal.
const boundedNodes = 64

// Bounded returns the tanh-bounded marginal on (lower, upper) with location m
// and scale s. It requires lower < upper and s ≥ 0.
func Bounded(lower, upper, m, s float64) (Distribution, error) {
	if !finite(lower, upper, m, s) || !(lower < upper) || s < 0 {
		return nil, fmt.Errorf("Bounded(%g,%g,%g,%g): %w", lower, upper, m, s, ErrInvalidParameter)
	}
	b := bounded{lower: lower, upper: upper, loc: m, scale: s}
	b.mean, b.sd = gaussMoments(b.Apply, boundedNodes)

	return b, nil
}

func (b bounded) Kind() Kind { return KindBounded }

func (b bounded) Apply(g float64) float64 {
	return b.lower + (b.upper-b.lower)/2*(1+math.Tanh((b.loc+b.scale*g)/(2*math.Pi)))
}

func (b bounded) Mean() float64   { return b.mean }
func (b bounded) StdDev() float64 { return b.sd }
