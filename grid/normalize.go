// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Normalize returns the nearest size (nrfx, nrfy) ≥ (nxe, nye) that Factorize
// accepts under the same bounds.
//
// Implementation:
//   - Stage 1: m starts at ⌈log4(nxe·nye / mxk)⌉ (0 when the request already fits).
//   - Stage 2: k1 = ⌈nxe/2^m⌉, k2 = ⌈nye/2^m⌉; rounding up can push k1·k2 past
//     mxk, in which case m grows until it fits.
//   - Stage 3: nrfx = k1·2^m, nrfy = k2·2^m.
//
// A request that is already feasible with the minimal m comes back unchanged.
// Callers crop the generated field back to (nxe, nye).
//
// Errors: ErrInvalidSize for non-positive inputs; ErrIncompatibleGrid when m
// would exceed mMax.
func Normalize(nxe, nye, mMax, mxk int) (nrfx, nrfy int, err error) {
	if nxe < 1 || nye < 1 || mxk < 1 || mMax < 0 {
		return 0, 0, fmt.Errorf("Normalize(%d,%d,mMax=%d,mxk=%d): %w", nxe, nye, mMax, mxk, ErrInvalidSize)
	}

	m := 0
	if ratio := float64(nxe) * float64(nye) / float64(mxk); ratio > 1 {
		m = int(math.Ceil(math.Log(ratio) / math.Log(4)))
	}
	// The log estimate can overshoot by one when ratio is an exact power of 4
	// (rounding in Log); step back while the smaller depth still fits.
	for m > 0 && ceilShift(nxe, m-1)*ceilShift(nye, m-1) <= mxk {
		m--
	}
	for ceilShift(nxe, m)*ceilShift(nye, m) > mxk {
		m++
	}
	if m > mMax {
		return 0, 0, fmt.Errorf("Normalize(%d,%d): depth %d exceeds %d: %w", nxe, nye, m, mMax, ErrIncompatibleGrid)
	}

	return ceilShift(nxe, m) << m, ceilShift(nye, m) << m, nil
}

// ceilShift returns ⌈n / 2^m⌉.
func ceilShift(n, m int) int { return (n + (1 << m) - 1) >> m }
