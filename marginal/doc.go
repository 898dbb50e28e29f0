// SPDX-License-Identifier: MIT

// Package marginal maps standard-Gaussian fields onto target marginal
// distributions and mixes field pairs to a prescribed cross-correlation.
//
// Every las realization has zero mean and the model's variance per cell.
// Divide by the cell standard deviation first when a unit-variance input is
// required (see Standardize), then apply one of:
//
//	Normal(μ, σ)          μ + σ·g
//	Lognormal(μ, σ)       exp(μ_ln + σ_ln·g), μ and σ arithmetic
//	Bounded(a, b, m, s)   a + (b−a)/2·(1 + tanh((m + s·g)/(2π)))
//
// Mix(dst, g1, g2, ρ) returns ρ·g1 + √(1−ρ²)·g2, which has correlation ρ
// with g1 when g1 and g2 are independent standard fields.
package marginal
