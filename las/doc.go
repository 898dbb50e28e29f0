// SPDX-License-Identifier: MIT

// Package las generates realizations of stationary 2-D Gaussian random fields
// by Local Average Subdivision.
//
// 🚀 How it works
//
//	Stage 0 samples a coarse k1×k2 lattice of cell averages directly from the
//	Cholesky factor of its covariance. Every following stage splits each cell
//	into 2×2 children: three children are the best linear estimate from the
//	(up to 3×3) neighboring parents plus correlated noise, and the fourth makes
//	the children average exactly to their parent. After m stages the lattice is
//	(k1·2^m)×(k2·2^m).
//
// ✨ Key pieces:
//   - BuildNeighborhood / BuildBase: covariance matrices from a covfn.LocalAverager.
//   - Topology, SolveStage, Table: estimation matrix A and conditional factor C
//     for every neighborhood shape (interior, side, corner, one-cell strip) at
//     every stage, computed once.
//   - Engine: Sample, SampleContext, SampleStages and a concurrent Ensemble.
//
// ⚙️ Usage:
//
//	model, _ := covfn.NewModel(covfn.Markov, 1.0, 1.0, 1.0)
//	eng, err := las.New(las.Config{NX: 64, NY: 64, XLength: 10, YLength: 10}, model,
//	    las.WithLogger(logger))
//	field := eng.Sample(las.NewRand(42))
//	v := field.At(3, 7) // Data[3*field.NY+7]
//
// Reproducibility: a seed fixes the realization bit for bit. Normals are
// consumed in a fixed order (base cells by index, then per stage: corners,
// sides, interior), independent of WithStageWorkers.
//
// Degraded factorizations: when a covariance fails its Cholesky factorization
// the engine keeps the partial factor, logs a warning and records a
// SingularWarning (see Engine.Warnings); errors.Is(w, ErrSingularConditional)
// holds for each.
package las
