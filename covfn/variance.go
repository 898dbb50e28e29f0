// SPDX-License-Identifier: MIT

package covfn

import "math"

// seriesCutoff is the argument below which g is summed as a power series;
// the closed forms lose digits to cancellation as the argument goes to zero.
const seriesCutoff = 1.0

// VarianceFunction returns γ(T), the variance of a 1-D local average over a
// length T relative to the point variance, for the axis correlation of kind
// with scale theta. γ(0) = 1 and γ decreases monotonically to 0.
//
// Markov and MarkovSeparable share the axis correlation exp(−2|τ|/θ):
//
//	γ(T) = θ²/(2T²) · (2|T|/θ + exp(−2|T|/θ) − 1)
//
// Gaussian uses exp(−π τ²/θ²):
//
//	γ(T) = θ²/(πT²) · (√π·u·erf(u) + exp(−u²) − 1),  u = √π|T|/θ
func VarianceFunction(kind Kind, theta, T float64) float64 {
	T = math.Abs(T)
	if T == 0 {
		return 1
	}

	return axisG(kind, theta)(T) / (T * T)
}

// axisG returns g(τ) = τ²γ(τ) = 2∫₀^|τ| (|τ|−s)ρ(s) ds for the axis correlation of kind.
func axisG(kind Kind, theta float64) func(float64) float64 {
	if kind == Gaussian {
		return func(tau float64) float64 { return gaussG(theta, tau) }
	}

	return func(tau float64) float64 { return markovG(theta, tau) }
}

// markovG is θ²/2 · h(2|τ|/θ) with h(x) = x + e^{−x} − 1.
func markovG(theta, tau float64) float64 {
	x := 2 * math.Abs(tau) / theta
	if x >= seriesCutoff {
		return 0.5 * theta * theta * (x + math.Expm1(-x))
	}
	// h(x) = Σ_{n≥2} (−x)^n / n!
	term := 0.5 * x * x
	sum := term
	for n := 2; math.Abs(term) > 1e-17*sum; n++ {
		term *= -x / float64(n+1)
		sum += term
	}

	return 0.5 * theta * theta * sum
}

// gaussG is θ²/π · q(u) with q(u) = √π·u·erf(u) + e^{−u²} − 1.
func gaussG(theta, tau float64) float64 {
	u := math.SqrtPi * math.Abs(tau) / theta
	if u >= seriesCutoff {
		return theta * theta / math.Pi * (math.SqrtPi*u*math.Erf(u) + math.Expm1(-u*u))
	}
	// q(u) = Σ_{n≥0} (−1)^n u^{2n+2} / (n!·(2n+1)·(n+1))
	u2 := u * u
	p := u2 // (−1)^n u^{2n+2} / n!
	sum := p
	term := p
	for n := 1; math.Abs(term) > 1e-17*sum; n++ {
		p *= -u2 / float64(n)
		term = p / float64((2*n+1)*(n+1))
		sum += term
	}

	return theta * theta / math.Pi * sum
}

// pairIntegral returns ∫_a ∫_b ρ(x−y) dy dx for the axis correlation behind g.
func pairIntegral(g func(float64) float64, a, b Interval) float64 {
	return 0.5 * (g(a.Hi-b.Lo) + g(a.Lo-b.Hi) - g(a.Hi-b.Hi) - g(a.Lo-b.Lo))
}
