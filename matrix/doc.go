// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by the field generator:
// a row-major Dense type with safe accessors, products, LU-based solves and
// Cholesky factorization.
//
// What & Why:
//
//	Local Average Subdivision spends all of its setup time on small dense
//	problems: assembling covariance matrices, solving R·A = S for estimation
//	coefficients, and factoring conditional covariances. This package keeps
//	those kernels deterministic (fixed loop orders, no pivot reordering) so a
//	fixed random seed always reproduces the same field bit for bit.
//
// Contents:
//
//	impl_dense.go          — Dense storage, At/Set, Induced (index-template submatrix), Values
//	impl_linear_algebra.go — Add, Sub, Mul, Transpose, Scale, MatVec, LU, Solve
//	impl_cholesky.go       — Cholesky, CholeskyPartial (tolerant policy)
//	validators.go          — shared shape / nil / symmetry guards
//	options.go             — numeric policy (eps, NaN/Inf validation)
//	errors.go              — sentinel errors (match with errors.Is)
//
// Quick example:
//
//	q, _ := matrix.NewDenseFrom(2, 2, []float64{4, 2, 2, 3})
//	L, err := matrix.Cholesky(q)      // L·Lᵀ == q
//	x, _ := matrix.MatVec(L, noise)   // correlated sample with covariance q
//
// Complexity:
//
//	Mul O(r·n·c), Solve O(n³ + k·n²), Cholesky O(n³/3).
package matrix
