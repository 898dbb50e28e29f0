// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot and private helpers.
//
// Purpose:
//   - Expose a read-only view of the internal Options to matrix_test only.
//   - Export panic messages so tests never hard-code strings.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

// OptionsSnapshot is a stable copy of the resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way every kernel does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PanicEpsilonInvalid_TestOnly is the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// MaxAbsDiag_TestOnly forwards to maxAbsDiag.
func MaxAbsDiag_TestOnly(d *Dense) float64 { return maxAbsDiag(d) }
