// SPDX-License-Identifier: MIT

package marginal

import "errors"

var (
	// ErrUnknownDistribution indicates a distribution name that ParseKind does not recognize.
	ErrUnknownDistribution = errors.New("marginal: unknown distribution")
	// ErrInvalidParameter indicates a non-finite or out-of-range distribution parameter.
	ErrInvalidParameter = errors.New("marginal: invalid parameter")
	// ErrLengthMismatch indicates slices of different lengths.
	ErrLengthMismatch = errors.New("marginal: length mismatch")
)
