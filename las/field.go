// SPDX-License-Identifier: MIT

package las

import (
	"fmt"

	"github.com/katalvlaran/lasfield/matrix"
)

// Field is one lattice of local averages.
//
// Cell (i, j) covers [i·DX, (i+1)·DX] × [j·DY, (j+1)·DY]; i runs along x and
// j along y. Data is row-major by i: Data[i·NY + j].
type Field struct {
	NX, NY int
	DX, DY float64
	Stage  int
	Data   []float64
}

func newField(nx, ny int, dx, dy float64, stage int) *Field {
	return &Field{NX: nx, NY: ny, DX: dx, DY: dy, Stage: stage, Data: make([]float64, nx*ny)}
}

// At returns the value of cell (i, j). It panics on out-of-range indices, like a slice.
func (f *Field) At(i, j int) float64 { return f.Data[i*f.NY+j] }

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	g := *f
	g.Data = append([]float64(nil), f.Data...)

	return &g
}

// Crop returns the leading nx×ny block.
func (f *Field) Crop(nx, ny int) (*Field, error) {
	if nx < 1 || ny < 1 || nx > f.NX || ny > f.NY {
		return nil, fmt.Errorf("Field.Crop(%d,%d) of %dx%d: %w", nx, ny, f.NX, f.NY, matrix.ErrOutOfRange)
	}
	if nx == f.NX && ny == f.NY {
		return f, nil
	}
	g := newField(nx, ny, f.DX, f.DY, f.Stage)
	for i := 0; i < nx; i++ {
		copy(g.Data[i*ny:(i+1)*ny], f.Data[i*f.NY:i*f.NY+ny])
	}

	return g, nil
}

// Coarsen averages 2×2 blocks, producing the parent lattice of an even-sized
// field. For any field generated by subdivision, Coarsen of stage s+1 equals
// stage s up to rounding.
func (f *Field) Coarsen() (*Field, error) {
	if f.NX%2 != 0 || f.NY%2 != 0 {
		return nil, fmt.Errorf("Field.Coarsen %dx%d: %w", f.NX, f.NY, matrix.ErrDimensionMismatch)
	}
	g := newField(f.NX/2, f.NY/2, 2*f.DX, 2*f.DY, f.Stage-1)
	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			g.Data[i*g.NY+j] = 0.25 * (f.At(2*i, 2*j) + f.At(2*i, 2*j+1) + f.At(2*i+1, 2*j) + f.At(2*i+1, 2*j+1))
		}
	}

	return g, nil
}

// Dense copies the field into an NX×NY matrix.
func (f *Field) Dense() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(f.NX, f.NY, f.Data)
}
