// SPDX-License-Identifier: MIT

package las

import "fmt"

// Span is the set of parent offsets available along one axis.
type Span uint8

const (
	// Full has neighbors on both sides: offsets −1, 0, +1.
	Full Span = iota
	// Low sits on the low edge: offsets 0, +1.
	Low
	// High sits on the high edge: offsets −1, 0.
	High
	// Only is a lattice one cell wide: offset 0.
	Only

	numSpans = 4
)

var spanOffsets = [numSpans][]int{
	Full: {-1, 0, 1},
	Low:  {0, 1},
	High: {-1, 0},
	Only: {0},
}

var spanNames = [numSpans]string{Full: "full", Low: "low", High: "high", Only: "only"}

// String returns the span name.
func (s Span) String() string {
	if int(s) < numSpans {
		return spanNames[s]
	}

	return fmt.Sprintf("Span(%d)", int(s))
}

// spanOf returns the span of index i on an axis of n cells.
func spanOf(i, n int) Span {
	switch {
	case n == 1:
		return Only
	case i == 0:
		return Low
	case i == n-1:
		return High
	default:
		return Full
	}
}

// spansFor lists the spans occurring on an axis of n cells.
func spansFor(n int) []Span {
	switch {
	case n == 1:
		return []Span{Only}
	case n == 2:
		return []Span{Low, High}
	default:
		return []Span{Low, Full, High}
	}
}

// Class groups topologies by the shape of their parent neighborhood.
type Class uint8

const (
	Interior Class = iota // 9 parents
	Side                  // 6 parents, one edge
	Corner                // 4 parents, two edges
	Strip                 // lattice one cell wide along at least one axis
)

var classNames = [...]string{Interior: "interior", Side: "side", Corner: "corner", Strip: "strip"}

// String returns the class name.
func (c Class) String() string { return classNames[c] }

// Topology is the parent neighborhood of a cell: one Span per axis.
// The zero value is the interior topology.
type Topology struct {
	X, Y Span
}

// Offset is a parent position relative to the cell being subdivided.
type Offset struct {
	DI, DJ int
}

// Class classifies the topology.
func (t Topology) Class() Class {
	switch {
	case t.X == Only || t.Y == Only:
		return Strip
	case t.X == Full && t.Y == Full:
		return Interior
	case t.X == Full || t.Y == Full:
		return Side
	default:
		return Corner
	}
}

// Offsets lists the parent offsets, x-major, matching the rows of the
// estimation matrix.
func (t Topology) Offsets() []Offset {
	xs, ys := spanOffsets[t.X], spanOffsets[t.Y]
	out := make([]Offset, 0, len(xs)*len(ys))
	for _, di := range xs {
		for _, dj := range ys {
			out = append(out, Offset{DI: di, DJ: dj})
		}
	}

	return out
}

// parentIndices maps Offsets onto rows of the 3×3 neighborhood matrices.
func (t Topology) parentIndices() []int {
	offs := t.Offsets()
	idx := make([]int, len(offs))
	for k, o := range offs {
		idx[k] = parentIndex(o.DI, o.DJ)
	}

	return idx
}

// String renders "(x,y)".
func (t Topology) String() string { return "(" + t.X.String() + "," + t.Y.String() + ")" }

// topologyAt returns the topology of parent (i, j) on an n1×n2 lattice.
func topologyAt(i, j, n1, n2 int) Topology {
	return Topology{X: spanOf(i, n1), Y: spanOf(j, n2)}
}
