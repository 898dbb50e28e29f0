// SPDX-License-Identifier: MIT

// Package grid decomposes a target lattice into a coarse base lattice plus a
// common power-of-two refinement depth.
//
// 🚀 What does it solve?
//
//	Local Average Subdivision simulates the coarse k1×k2 base lattice directly
//	(a dense Cholesky of size k1·k2) and then doubles the resolution m times.
//	The final lattice is therefore (k1·2^m)×(k2·2^m), and k1·k2 must stay under
//	a resource bound so the base factorization remains affordable.
//
// ✨ Key features:
//   - Factorize: exact decomposition n = k·2^m by repeated halving (minimal m).
//   - Normalize: nearest feasible supersize when the request is not expressible.
//   - Spec.StageDims: lattice dimensions at every stage 0..m.
//
// ⚙️ Usage:
//
//	spec, err := grid.Factorize(16, 16, grid.DefaultMaxDepth, 16)
//	// spec.K1 == 4, spec.K2 == 4, spec.M == 2
//
//	nx, ny, err := grid.Normalize(100, 60, grid.DefaultMaxDepth, 256)
//	// nx ≥ 100, ny ≥ 60, and Factorize(nx, ny, ...) succeeds
//
// Both functions agree on feasibility: any size returned by Normalize is
// accepted by Factorize under the same bounds.
package grid
