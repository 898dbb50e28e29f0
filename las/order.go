// SPDX-License-Identifier: MIT

package las

// Draw order.
//
// Each subdivision consumes three standard normals per parent, in this order:
//
//  1. corners (0,0), (0,n2−1), (n1−1,0), (n1−1,n2−1);
//  2. sides i=0 (j=1..n2−2), i=n1−1 (j=1..n2−2), j=0 (i=1..n1−2), j=n2−1 (i=1..n1−2);
//  3. interior parents, row-major.
//
// A lattice one cell wide (n1 == 1 or n2 == 1) is swept row-major instead.
// The normals of a stage are drawn up front into one buffer and parent (i,j)
// reads slot drawSlot(i,j), so the sweep itself may run in any order.

// drawSlot returns the position of parent (i, j) in the draw order of an n1×n2 lattice.
func drawSlot(i, j, n1, n2 int) int {
	if n1 == 1 || n2 == 1 {
		return i*n2 + j
	}
	in1, in2 := n1-2, n2-2 // interior extents
	lastI, lastJ := n1-1, n2-1
	switch {
	case (i == 0 || i == lastI) && (j == 0 || j == lastJ):
		slot := 0
		if j == lastJ {
			slot++
		}
		if i == lastI {
			slot += 2
		}
		return slot
	case i == 0:
		return 4 + j - 1
	case i == lastI:
		return 4 + in2 + j - 1
	case j == 0:
		return 4 + 2*in2 + i - 1
	case j == lastJ:
		return 4 + 2*in2 + in1 + i - 1
	default:
		return 4 + 2*in2 + 2*in1 + (i-1)*in2 + j - 1
	}
}

// drawOrder enumerates the parents of an n1×n2 lattice in draw order.
func drawOrder(n1, n2 int) [][2]int {
	out := make([][2]int, 0, n1*n2)
	if n1 == 1 || n2 == 1 {
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				out = append(out, [2]int{i, j})
			}
		}
		return out
	}
	out = append(out, [2]int{0, 0}, [2]int{0, n2 - 1}, [2]int{n1 - 1, 0}, [2]int{n1 - 1, n2 - 1})
	for j := 1; j < n2-1; j++ {
		out = append(out, [2]int{0, j})
	}
	for j := 1; j < n2-1; j++ {
		out = append(out, [2]int{n1 - 1, j})
	}
	for i := 1; i < n1-1; i++ {
		out = append(out, [2]int{i, 0})
	}
	for i := 1; i < n1-1; i++ {
		out = append(out, [2]int{i, n2 - 1})
	}
	for i := 1; i < n1-1; i++ {
		for j := 1; j < n2-1; j++ {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}
