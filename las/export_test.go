// SPDX-License-Identifier: MIT

package las

// Test bridge (white-box) for the draw order and topology helpers.

// DrawSlot_TestOnly forwards to drawSlot.
func DrawSlot_TestOnly(i, j, n1, n2 int) int { return drawSlot(i, j, n1, n2) }

// DrawOrder_TestOnly forwards to drawOrder.
func DrawOrder_TestOnly(n1, n2 int) [][2]int { return drawOrder(n1, n2) }

// TopologyAt_TestOnly forwards to topologyAt.
func TopologyAt_TestOnly(i, j, n1, n2 int) Topology { return topologyAt(i, j, n1, n2) }

// SpansFor_TestOnly forwards to spansFor.
func SpansFor_TestOnly(n int) []Span { return spansFor(n) }

// ParentIndex_TestOnly forwards to parentIndex.
func ParentIndex_TestOnly(di, dj int) int { return parentIndex(di, dj) }

// Panic messages of the Option constructors.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicStageWorkers_TestOnly   = panicStageWorkers
	PanicPivotTolerance_TestOnly = panicPivotTolerance
)
