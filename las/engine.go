// SPDX-License-Identifier: MIT

package las

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/grid"
	"github.com/katalvlaran/lasfield/matrix"
)

// Config describes the lattice to generate.
type Config struct {
	NX, NY           int     // requested cell counts along x and y
	XLength, YLength float64 // physical extents of the requested lattice
	MaxBaseCells     int     // bound on k1·k2; 0 ⇒ grid.DefaultMaxBaseCells
	MaxDepth         int     // bound on m; 0 ⇒ grid.DefaultMaxDepth
}

func (c Config) withDefaults() Config {
	if c.MaxBaseCells == 0 {
		c.MaxBaseCells = grid.DefaultMaxBaseCells
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = grid.DefaultMaxDepth
	}

	return c
}

func (c Config) validate() error {
	if c.NX < 1 || c.NY < 1 || c.MaxBaseCells < 1 || c.MaxDepth < 0 {
		return fmt.Errorf("Config %dx%d (mxk=%d, mMax=%d): %w", c.NX, c.NY, c.MaxBaseCells, c.MaxDepth, ErrInvalidConfig)
	}
	if !(c.XLength > 0) || !(c.YLength > 0) || math.IsInf(c.XLength, 0) || math.IsInf(c.YLength, 0) {
		return fmt.Errorf("Config extents %gx%g: %w", c.XLength, c.YLength, ErrInvalidConfig)
	}

	return nil
}

// Engine holds everything that depends only on the grid and the covariance
// model: the decomposition, the base-lattice factor and the coefficient table.
// It is immutable after New and safe for concurrent sampling, provided each
// goroutine uses its own random stream.
type Engine struct {
	cfg      Config
	spec     grid.Spec
	resized  bool
	dx, dy   float64 // final cell size
	baseL    *matrix.Dense
	table    *Table
	warnings []*SingularWarning
	opts     options
}

// New decomposes the grid, factors the base covariance and solves every
// stage's coefficients.
//
// Errors:
//   - ErrInvalidConfig for bad sizes, extents or a nil covariance.
//   - grid.ErrIncompatibleGrid when the size cannot be decomposed and resizing is off.
//   - ErrSingularNeighborhood and matrix errors from coefficient solving.
//
// Failed Cholesky factorizations do not fail New; see Warnings.
func New(cfg Config, cov covfn.LocalAverager, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, lasErrorf("New", err)
	}
	if cov == nil {
		return nil, lasErrorf("New: nil covariance", ErrInvalidConfig)
	}
	log := o.log
	start := time.Now()

	e := &Engine{cfg: cfg, opts: o, dx: cfg.XLength / float64(cfg.NX), dy: cfg.YLength / float64(cfg.NY)}
	spec, err := grid.Factorize(cfg.NX, cfg.NY, cfg.MaxDepth, cfg.MaxBaseCells)
	if err != nil {
		if !o.allowResize || !errors.Is(err, grid.ErrIncompatibleGrid) {
			return nil, lasErrorf("New", err)
		}
		nx, ny, nerr := grid.Normalize(cfg.NX, cfg.NY, cfg.MaxDepth, cfg.MaxBaseCells)
		if nerr != nil {
			return nil, lasErrorf("New", nerr)
		}
		if spec, err = grid.Factorize(nx, ny, cfg.MaxDepth, cfg.MaxBaseCells); err != nil {
			return nil, lasErrorf("New", err)
		}
		e.resized = true
		log.Warn("grid size adjusted",
			zap.Int("requested_nx", cfg.NX), zap.Int("requested_ny", cfg.NY),
			zap.Int("nx", nx), zap.Int("ny", ny))
	}
	e.spec = spec

	// Base cells are 2^m final cells wide; extents grow with the grid on resize.
	t1 := math.Ldexp(e.dx, spec.M)
	t2 := math.Ldexp(e.dy, spec.M)
	eps := matrix.WithEpsilon(o.pivotEps)

	q, err := BuildBase(cov, spec.K1, spec.K2, t1, t2)
	if err != nil {
		return nil, lasErrorf("New", err)
	}
	L, pivot, err := matrix.CholeskyPartial(q, eps)
	switch {
	case errors.Is(err, matrix.ErrNotPositiveDefinite):
		e.warnings = append(e.warnings, &SingularWarning{Stage: 0, Base: true, Pivot: pivot, Err: err})
	case err != nil:
		return nil, lasErrorf("New", err)
	}
	e.baseL = L

	table, warnings, err := BuildTable(cov, spec, t1, t2, eps)
	if err != nil {
		return nil, lasErrorf("New", err)
	}
	e.table = table
	e.warnings = append(e.warnings, warnings...)

	for _, w := range e.warnings {
		log.Warn("covariance not positive definite, continuing with partial factor",
			zap.Int("stage", w.Stage), zap.Bool("base", w.Base),
			zap.Stringer("topology", w.Topology), zap.Int("pivot", w.Pivot))
	}
	log.Debug("engine ready",
		zap.Stringer("grid", spec), zap.Float64("dx", e.dx), zap.Float64("dy", e.dy),
		zap.Int("warnings", len(e.warnings)), zap.Duration("elapsed", time.Since(start)))

	return e, nil
}

// Grid returns the (possibly resized) decomposition being generated.
func (e *Engine) Grid() grid.Spec { return e.spec }

// Requested returns the cell counts Sample returns.
func (e *Engine) Requested() (nx, ny int) { return e.cfg.NX, e.cfg.NY }

// Resized reports whether New grew the grid.
func (e *Engine) Resized() bool { return e.resized }

// CellSize returns the final cell size.
func (e *Engine) CellSize() (dx, dy float64) { return e.dx, e.dy }

// Table returns the coefficient table.
func (e *Engine) Table() *Table { return e.table }

// BaseFactor returns a copy of the base-lattice Cholesky factor.
func (e *Engine) BaseFactor() *matrix.Dense { return e.baseL.Clone().(*matrix.Dense) }

// Warnings lists every factorization that fell back to a partial factor.
func (e *Engine) Warnings() []*SingularWarning {
	return append([]*SingularWarning(nil), e.warnings...)
}

// Degraded reports whether any factorization fell back to a partial factor.
func (e *Engine) Degraded() bool { return len(e.warnings) > 0 }
