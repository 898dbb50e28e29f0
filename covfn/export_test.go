// SPDX-License-Identifier: MIT

package covfn

// CovQuad_TestOnly forces the quadrature path regardless of kind.
func CovQuad_TestOnly(m *Model, a, b Rect) float64 { return m.covQuad(a, b) }

// LagBreaks_TestOnly forwards to lagBreaks.
func LagBreaks_TestOnly(a, b Interval) []float64 { return lagBreaks(a, b) }

// PanicQuadPointsInvalid_TestOnly is the WithQuadPoints panic message.
const PanicQuadPointsInvalid_TestOnly = panicQuadPointsInvalid
