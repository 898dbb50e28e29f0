// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Factorize decomposes n1×n2 into a base lattice k1×k2 and depth m with
// n1 = k1·2^m, n2 = k2·2^m and k1·k2 ≤ mxk.
//
// Starting from (k1,k2,m) = (n1,n2,0), both counts are halved while their
// product exceeds mxk. Halving an odd count, or needing more than mMax
// halvings, yields ErrIncompatibleGrid. The returned m is the smallest depth
// reachable this way.
//
// Complexity: O(log(n1·n2)).
func Factorize(n1, n2, mMax, mxk int) (Spec, error) {
	if n1 < 1 || n2 < 1 || mxk < 1 || mMax < 0 {
		return Spec{}, fmt.Errorf("Factorize(%d,%d,mMax=%d,mxk=%d): %w", n1, n2, mMax, mxk, ErrInvalidSize)
	}

	k1, k2, m := n1, n2, 0
	for k1*k2 > mxk {
		if k1%2 != 0 || k2%2 != 0 {
			return Spec{}, fmt.Errorf("Factorize(%d,%d): odd base %dx%d exceeds %d cells: %w",
				n1, n2, k1, k2, mxk, ErrIncompatibleGrid)
		}
		k1 /= 2
		k2 /= 2
		m++
		if m > mMax {
			return Spec{}, fmt.Errorf("Factorize(%d,%d): depth %d exceeds %d: %w", n1, n2, m, mMax, ErrIncompatibleGrid)
		}
	}

	return Spec{NX: n1, NY: n2, K1: k1, K2: k2, M: m}, nil
}
