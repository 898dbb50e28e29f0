// SPDX-License-Identifier: MIT

// Package covfn computes covariances between local averages of a stationary
// 2-D Gaussian process over axis-aligned rectangles.
//
// 🚀 What is a local-average covariance?
//
//	For cells A and B the covariance of the cell averages is
//
//	  Cov(A,B) = σ² / (|A|·|B|) · ∫_A ∫_B ρ(x−x', y−y') dx dy dx' dy'
//
//	where ρ is the point correlation function. Local Average Subdivision needs
//	this quantity for every parent/child cell pair it conditions on.
//
// ✨ Models:
//   - Markov: ρ = exp(−2·√((τx/θx)² + (τy/θy)²)), anisotropic and non-separable;
//     evaluated by piecewise Gauss–Legendre quadrature (gonum integrate/quad).
//   - MarkovSeparable: ρ = exp(−2|τx|/θx − 2|τy|/θy); closed form.
//   - Gaussian: ρ = exp(−π·(τx²/θx² + τy²/θy²)); closed form.
//
// Separable models factor into two 1-D integrals, each expressed through the
// variance function γ(T) (see VarianceFunction):
//
//	∫_a ∫_b ρ(x−y) dy dx = ½[g(a1−b0) + g(a0−b1) − g(a1−b1) − g(a0−b0)],  g(τ) = τ²γ(τ).
//
// ⚙️ Usage:
//
//	m, err := covfn.NewModel(covfn.Markov, 2.0, 2.0, 1.0)
//	c := m.Cov(covfn.Cell(0, 0, 0.5, 0.5), covfn.Cell(1, 0, 0.5, 0.5))
//
// Any function of two rectangles can stand in for a Model through Func.
package covfn
