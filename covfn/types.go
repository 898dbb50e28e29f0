// SPDX-License-Identifier: MIT

package covfn

// Interval is the closed segment [Lo, Hi] along one axis.
type Interval struct {
	Lo, Hi float64
}

// Len returns Hi − Lo.
func (iv Interval) Len() float64 { return iv.Hi - iv.Lo }

// Rect is an axis-aligned cell X × Y.
type Rect struct {
	X, Y Interval
}

// Area returns the cell area.
func (r Rect) Area() float64 { return r.X.Len() * r.Y.Len() }

// Cell returns the rectangle of size tx×ty whose lower corner sits at (i·tx, j·ty).
// Fractional indices are allowed, which is how subdivided children are placed.
func Cell(i, j, tx, ty float64) Rect {
	return Rect{
		X: Interval{Lo: i * tx, Hi: (i + 1) * tx},
		Y: Interval{Lo: j * ty, Hi: (j + 1) * ty},
	}
}

// LocalAverager computes the covariance between the averages of a process over two rectangles.
// Implementations must be symmetric in (a, b) and safe for concurrent use.
type LocalAverager interface {
	Cov(a, b Rect) float64
}

// Func adapts a plain function to LocalAverager.
type Func func(a, b Rect) float64

// Cov calls f(a, b).
func (f Func) Cov(a, b Rect) float64 { return f(a, b) }

// Compile-time checks.
var (
	_ LocalAverager = Func(nil)
	_ LocalAverager = (*Model)(nil)
)
