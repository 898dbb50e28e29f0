// SPDX-License-Identifier: MIT

package las

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/grid"
	"github.com/katalvlaran/lasfield/matrix"
)

// noSlot marks a topology that does not occur at a stage.
const noSlot = -1

// Table maps stage → topology → Coefficients. Entries live in one arena;
// each stage holds a span×span index into it. A Table is read-only after
// BuildTable and safe to share across goroutines.
type Table struct {
	slots [][numSpans][numSpans]int32 // slots[s-1]: stage s
	arena []Coefficients
}

// BuildTable solves every topology occurring at stages 1..spec.M.
// Parents of stage s have size t1/2^(s−1) × t2/2^(s−1), with t1×t2 the base cell size.
//
// Failed conditional factorizations are collected as warnings; any other
// failure aborts with an error.
func BuildTable(cov covfn.LocalAverager, spec grid.Spec, t1, t2 float64, opts ...matrix.Option) (*Table, []*SingularWarning, error) {
	t := &Table{slots: make([][numSpans][numSpans]int32, spec.M)}
	var warnings []*SingularWarning

	for s := 1; s <= spec.M; s++ {
		scale := math.Ldexp(1, -(s - 1))
		nb, err := BuildNeighborhood(cov, t1*scale, t2*scale)
		if err != nil {
			return nil, nil, fmt.Errorf("BuildTable: stage %d: %w", s, err)
		}
		slot := &t.slots[s-1]
		for x := range slot {
			for y := range slot[x] {
				slot[x][y] = noSlot
			}
		}

		n1, n2 := spec.StageDims(s - 1)
		for _, sx := range spansFor(n1) {
			for _, sy := range spansFor(n2) {
				topo := Topology{X: sx, Y: sy}
				k, err := SolveStage(nb, s, topo, opts...)
				var w *SingularWarning
				switch {
				case errors.As(err, &w):
					warnings = append(warnings, w)
				case err != nil:
					return nil, nil, fmt.Errorf("BuildTable: stage %d %v: %w", s, topo, err)
				}
				slot[sx][sy] = int32(len(t.arena))
				t.arena = append(t.arena, *k)
			}
		}
	}

	return t, warnings, nil
}

// Stages returns the number of subdivision stages covered.
func (t *Table) Stages() int { return len(t.slots) }

// Lookup returns the coefficients producing stage s (1-based) for topo.
func (t *Table) Lookup(s int, topo Topology) (*Coefficients, bool) {
	if s < 1 || s > len(t.slots) || int(topo.X) >= numSpans || int(topo.Y) >= numSpans {
		return nil, false
	}
	i := t.slots[s-1][topo.X][topo.Y]
	if i == noSlot {
		return nil, false
	}

	return &t.arena[i], true
}

// Topologies lists the topologies solved for stage s, x-span major.
func (t *Table) Topologies(s int) []Topology {
	if s < 1 || s > len(t.slots) {
		return nil
	}
	var out []Topology
	for x := Span(0); x < numSpans; x++ {
		for y := Span(0); y < numSpans; y++ {
			if t.slots[s-1][x][y] != noSlot {
				out = append(out, Topology{X: x, Y: y})
			}
		}
	}

	return out
}
