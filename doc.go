// SPDX-License-Identifier: MIT

// Package lasfield generates realizations of 2-D stationary Gaussian random
// fields by Local Average Subdivision (LAS): a coarse base lattice of cell
// averages is drawn exactly, then each cell is split into 2×2 children whose
// values are conditioned on the 3×3 parent neighbourhood, stage after stage,
// until the target resolution is reached. Children always average back to
// their parent, so every stage is a consistent coarser view of the final field.
//
// Packages:
//
//	matrix/   — dense matrices, Cholesky (full and partial), triangular solves
//	covfn/    — covariance models and local-average covariances by quadrature
//	grid/     — decomposition n = k·2^m and nearest compatible sizes
//	las/      — the engine: coefficient tables, base factor, sampling, ensembles
//	marginal/ — pointwise transforms to normal, lognormal and bounded marginals
//	diag/     — field moments, lag statistics, ensemble accumulation
//	config/   — YAML + LAS_* environment configuration and zap logger setup
//	cmd/lasgen — command line front end (grid, generate, stats)
//
// Quick start:
//
//	model, _ := covfn.NewModel(covfn.Markov, 1, 1, 1)
//	e, _ := las.New(las.Config{NX: 64, NY: 64, XLength: 10, YLength: 10}, model)
//	f := e.Sample(las.NewRand(42)) // 64×64 cells of 0.15625
//
// See examples/ for complete programs.
package lasfield
