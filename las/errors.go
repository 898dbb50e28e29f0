// SPDX-License-Identifier: MIT

package las

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a non-positive size or extent, or a nil covariance.
	ErrInvalidConfig = errors.New("las: invalid engine configuration")
	// ErrSingularConditional indicates a covariance matrix that failed its Cholesky
	// factorization; the engine continues with the partial factor.
	ErrSingularConditional = errors.New("las: covariance not positive definite")
	// ErrSingularNeighborhood indicates a parent covariance R that cannot be solved against.
	ErrSingularNeighborhood = errors.New("las: singular neighborhood covariance")
)

// SingularWarning records one factorization that fell back to a partial factor.
// Stage 0 denotes the base lattice; Stage s ≥ 1 the coefficients producing stage s.
// Rows Pivot..n-1 of the factor are zero, so the affected children carry less
// variance than the model prescribes.
type SingularWarning struct {
	Stage    int
	Base     bool     // true for the base-lattice covariance Q
	Topology Topology // meaningful when !Base
	Pivot    int
	Err      error // the wrapped matrix.ErrNotPositiveDefinite
}

// Error implements error.
func (w *SingularWarning) Error() string {
	if w.Base {
		return fmt.Sprintf("las: stage 0 base covariance: pivot %d: %v", w.Pivot, w.Err)
	}

	return fmt.Sprintf("las: stage %d %v: pivot %d: %v", w.Stage, w.Topology, w.Pivot, w.Err)
}

// Unwrap exposes ErrSingularConditional and the factorization error to errors.Is.
func (w *SingularWarning) Unwrap() []error { return []error{ErrSingularConditional, w.Err} }

// lasErrorf wraps err with an operation tag.
func lasErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
