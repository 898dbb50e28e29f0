// SPDX-License-Identifier: MIT
// Package matrix - Cholesky factorization of symmetric positive definite matrices.
//
// Purpose:
//   - Factor A = L·Lᵀ with L lower triangular (Cholesky–Banachiewicz, row by row).
//   - Offer a strict variant (Cholesky) and a tolerant variant (CholeskyPartial)
//     that keeps the rows factored before a failed pivot and zeroes the rest.
//
// Numeric policy:
//   - Only the lower triangle of A is read; symmetry is the caller's contract.
//   - A pivot d_j = A[j,j] − Σ L[j,k]² fails when d_j ≤ eps·max|diag(A)|
//     (eps from WithEpsilon, DefaultEpsilon otherwise).

package matrix

import (
	"fmt"
	"math"
)

// Cholesky returns the lower-triangular factor L with A = L·Lᵀ.
// Implementation:
//   - Stage 1: validate non-nil square input; resolve eps.
//   - Stage 2: for j=0..n-1 compute the pivot, then column j below the diagonal.
//
// Returns:
//   - *Dense: L (n×n, zeros above the diagonal).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (input guard), ErrNotPositiveDefinite (wrapped with the pivot index).
//
// Determinism:
//   - Fixed j→i→k order; bit-identical output for identical input.
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
//
// AI-Hints:
//   - For sampling correlated normals, x = L·u with u ~ N(0, I) has covariance A.
//   - Use CholeskyPartial when a failure must degrade rather than abort.
func Cholesky(m Matrix, opts ...Option) (*Dense, error) {
	L, _, err := CholeskyPartial(m, opts...)
	if err != nil {
		return nil, err
	}

	return L, nil
}

// CholeskyPartial factors A = L·Lᵀ and, on failure, returns the best available factor.
// MAIN DESCRIPTION:
//   - Same recurrence as Cholesky. When pivot j fails, rows j..n-1 of L are left
//     zero (the failed diagonal and everything below it) and the index j is reported.
//
// Returns:
//   - *Dense: L (always non-nil once validation passed).
//   - int   : failed pivot index, or -1 on success.
//   - error : nil on success; ErrNotPositiveDefinite (wrapped) on a failed pivot;
//     validation sentinels otherwise (with L == nil).
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
//
// Notes:
//   - L·Lᵀ then reproduces the leading j×j block of A exactly and is zero elsewhere
//     in rows/cols ≥ j, i.e. positive semi-definite by construction.
func CholeskyPartial(m Matrix, opts ...Option) (*Dense, int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, -1, matrixErrorf(opCholesky, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, -1, matrixErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k := range a.data {
			if isNonFinite(a.data[k]) {
				return nil, -1, matrixErrorf(opCholesky, ErrNaNInf)
			}
		}
	}

	n := a.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, -1, matrixErrorf(opCholesky, err)
	}
	L.validateNaNInf = o.validateNaNInf
	tol := o.eps * maxAbsDiag(a)

	var (
		i, j, k     int
		sum, d, ljj float64
	)
	for j = 0; j < n; j++ {
		sum = ZeroSum
		for k = 0; k < j; k++ {
			sum += L.data[j*n+k] * L.data[j*n+k]
		}
		d = a.data[j*n+j] - sum
		if d <= tol || isNonFinite(d) {
			// Rows j..n-1 only hold sub-diagonal entries of earlier columns; clear them.
			for i = j; i < n; i++ {
				for k = 0; k < n; k++ {
					L.data[i*n+k] = 0
				}
			}

			return L, j, matrixErrorf(opCholesky, fmt.Errorf("pivot %d (%g): %w", j, d, ErrNotPositiveDefinite))
		}
		ljj = math.Sqrt(d)
		L.data[j*n+j] = ljj

		for i = j + 1; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = (a.data[i*n+j] - sum) / ljj
		}
	}

	return L, -1, nil
}
