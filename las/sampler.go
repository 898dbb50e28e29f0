// SPDX-License-Identifier: MIT

package las

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lasfield/matrix"
)

// Sample generates one realization at the requested resolution.
// The result has zero mean and the model's variance per cell. Sample cannot
// fail on an Engine returned by New; use SampleContext for cancellation.
func (e *Engine) Sample(rng *rand.Rand) *Field {
	f, _ := e.SampleContext(context.Background(), rng)
	return f
}

// SampleContext is Sample with cancellation checked between stages.
// On cancellation it returns ctx.Err() and no field.
func (e *Engine) SampleContext(ctx context.Context, rng *rand.Rand) (*Field, error) {
	stages, err := e.generate(ctx, rng, false)
	if err != nil {
		return nil, err
	}

	return stages[0].Crop(e.cfg.NX, e.cfg.NY)
}

// SampleStages returns every stage 0..M of one realization. Stages are not
// cropped; when the grid was resized, only the last stage maps onto the request
// after Crop. A given rng yields the same final stage as Sample.
func (e *Engine) SampleStages(ctx context.Context, rng *rand.Rand) ([]*Field, error) {
	return e.generate(ctx, rng, true)
}

// generate runs stage 0 and every subdivision. With keep it returns all
// stages, otherwise only the last.
func (e *Engine) generate(ctx context.Context, rng *rand.Rand, keep bool) ([]*Field, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k1, k2 := e.spec.K1, e.spec.K2
	u := make([]float64, k1*k2)
	for i := range u {
		u[i] = rng.NormFloat64()
	}
	z, err := matrix.MatVec(e.baseL, u)
	if err != nil {
		return nil, lasErrorf("Sample: stage 0", err)
	}
	m := e.spec.M
	cur := &Field{
		NX: k1, NY: k2,
		DX: math.Ldexp(e.dx, m), DY: math.Ldexp(e.dy, m),
		Data: z,
	}

	var out []*Field
	if keep {
		out = make([]*Field, 0, m+1)
		out = append(out, cur)
	}
	debug := e.opts.log.Core().Enabled(zap.DebugLevel)
	for s := 1; s <= m; s++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if cur, err = e.subdivide(ctx, cur, s, rng); err != nil {
			return nil, err
		}
		if keep {
			out = append(out, cur)
		}
		if debug {
			e.opts.log.Debug("stage sampled",
				zap.Int("stage", s), zap.Int("nx", cur.NX), zap.Int("ny", cur.NY),
				zap.Duration("elapsed", time.Since(start)))
		}
	}
	if !keep {
		out = []*Field{cur}
	}

	return out, nil
}

// subdivide produces stage s from its parent lattice. All 3·n1·n2 normals are
// drawn first, in draw order; the sweep then reads them by slot, so splitting
// the rows across workers leaves the result unchanged.
func (e *Engine) subdivide(ctx context.Context, parent *Field, s int, rng *rand.Rand) (*Field, error) {
	n1, n2 := parent.NX, parent.NY
	noise := make([]float64, numDrawn*n1*n2)
	for k := range noise {
		noise[k] = rng.NormFloat64()
	}
	child := newField(2*n1, 2*n2, parent.DX/2, parent.DY/2, s)

	workers := min(e.opts.stageWorkers, n1)
	if workers <= 1 {
		return child, e.sweepRows(parent, child, noise, s, 0, n1)
	}
	g, gctx := errgroup.WithContext(ctx)
	band := (n1 + workers - 1) / workers
	for lo := 0; lo < n1; lo += band {
		hi := min(lo+band, n1)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return e.sweepRows(parent, child, noise, s, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return child, nil
}

// sweepRows subdivides parent rows [lo, hi).
func (e *Engine) sweepRows(parent, child *Field, noise []float64, s, lo, hi int) error {
	n1, n2 := parent.NX, parent.NY
	cny := child.NY
	var (
		p   [numParents]float64
		out [numChildren]float64
	)
	for i := lo; i < hi; i++ {
		for j := 0; j < n2; j++ {
			topo := topologyAt(i, j, n1, n2)
			k, ok := e.table.Lookup(s, topo)
			if !ok {
				return fmt.Errorf("Sample: stage %d: no coefficients for %v: %w", s, topo, ErrInvalidConfig)
			}
			for r, o := range k.Offsets {
				p[r] = parent.Data[(i+o.DI)*n2+j+o.DJ]
			}
			slot := numDrawn * drawSlot(i, j, n1, n2)
			k.Children(p[:len(k.Offsets)], noise[slot:slot+numDrawn], &out)

			base := 2*i*cny + 2*j
			child.Data[base] = out[0]
			child.Data[base+1] = out[1]
			child.Data[base+cny] = out[2]
			child.Data[base+cny+1] = out[3]
		}
	}

	return nil
}
