// SPDX-License-Identifier: MIT

// Package config loads a generation run: grid, covariance model, marginal
// transform, run controls and logging.
//
// Resolution order: Default(), then the YAML file, then LAS_* environment
// variables, then struct validation. Every layer only overrides what it sets.
//
//	grid:
//	  nx: 64
//	  ny: 64
//	  x_length: 10
//	  y_length: 10
//	model:
//	  kind: markov
//	  theta_x: 1
//	  theta_y: 1
//	run:
//	  seed: 42
//	  realizations: 100
package config
