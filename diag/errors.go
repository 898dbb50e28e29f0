// SPDX-License-Identifier: MIT

package diag

import "errors"

var (
	// ErrInvalidLag indicates a lag outside [1, n−1] for the axis.
	ErrInvalidLag = errors.New("diag: invalid lag")
	// ErrEmpty indicates an empty field, or a summary requested before any field was added.
	ErrEmpty = errors.New("diag: no realizations")
	// ErrInvalidLevel indicates a NaN excursion level.
	ErrInvalidLevel = errors.New("diag: invalid excursion level")
)
