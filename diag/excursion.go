// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lasfield/las"
)

// Connectivity selects which neighbours join a cluster: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 joins cells sharing an edge.
	Conn4 Connectivity = iota
	// Conn8 also joins cells touching at a corner.
	Conn8
)

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// ExcursionSet describes the cells whose value exceeds a level.
type ExcursionSet struct {
	Level    float64
	Cells    int     // cells above Level
	Fraction float64 // Cells / total cells
	// Clusters holds the cell indices (i·NY + j) of each connected region,
	// largest first.
	Clusters [][]int
}

// Largest returns the size of the biggest cluster, or 0.
func (s ExcursionSet) Largest() int {
	if len(s.Clusters) == 0 {
		return 0
	}

	return len(s.Clusters[0])
}

// Excursions finds the connected regions of cells strictly above level.
//
// Time:   O(N·d), d = 4 or 8.
// Memory: O(N) for visited flags and output.
func Excursions(f *las.Field, level float64, conn Connectivity) (ExcursionSet, error) {
	if len(f.Data) == 0 {
		return ExcursionSet{}, ErrEmpty
	}
	if math.IsNaN(level) {
		return ExcursionSet{}, fmt.Errorf("Excursions(level=NaN): %w", ErrInvalidLevel)
	}

	set := ExcursionSet{Level: level}
	seen := make([]bool, len(f.Data))
	offsets := conn.offsets()
	for start, v := range f.Data {
		if v <= level || seen[start] {
			continue
		}
		// BFS over the region containing start
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ui, uj := u/f.NY, u%f.NY
			for _, d := range offsets {
				vi, vj := ui+d[0], uj+d[1]
				if vi < 0 || vi >= f.NX || vj < 0 || vj >= f.NY {
					continue
				}
				w := vi*f.NY + vj
				if !seen[w] && f.Data[w] > level {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		set.Cells += len(queue)
		set.Clusters = append(set.Clusters, queue)
	}
	set.Fraction = float64(set.Cells) / float64(len(f.Data))
	slices.SortStableFunc(set.Clusters, func(a, b []int) int { return len(b) - len(a) })

	return set, nil
}
