// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrInvalidSize indicates a non-positive cell count, bound or depth.
	ErrInvalidSize = errors.New("grid: sizes and bounds must be positive")
	// ErrIncompatibleGrid indicates the lattice cannot be decomposed within the bounds.
	ErrIncompatibleGrid = errors.New("grid: incompatible grid size")
)
