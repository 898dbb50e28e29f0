// SPDX-License-Identifier: MIT

package grid

import "fmt"

const (
	// DefaultMaxBaseCells bounds k1·k2, the order of the base-lattice covariance matrix.
	DefaultMaxBaseCells = 256
	// DefaultMaxDepth bounds the number of subdivisions m.
	DefaultMaxDepth = 16
)

// Spec is a feasible decomposition NX = K1·2^M, NY = K2·2^M.
type Spec struct {
	NX, NY int // final cell counts along x and y
	K1, K2 int // base-lattice cell counts
	M      int // number of subdivisions
}

// BaseCells returns K1·K2.
func (s Spec) BaseCells() int { return s.K1 * s.K2 }

// Stages returns the number of lattices produced, M+1.
func (s Spec) Stages() int { return s.M + 1 }

// StageDims returns the lattice dimensions at stage (0 = base, M = final).
// Stages outside [0, M] are clamped.
func (s Spec) StageDims(stage int) (n1, n2 int) {
	if stage < 0 {
		stage = 0
	}
	if stage > s.M {
		stage = s.M
	}

	return s.K1 << stage, s.K2 << stage
}

// String renders the decomposition, e.g. "16x16 = (4x4)·2^2".
func (s Spec) String() string {
	return fmt.Sprintf("%dx%d = (%dx%d)·2^%d", s.NX, s.NY, s.K1, s.K2, s.M)
}
