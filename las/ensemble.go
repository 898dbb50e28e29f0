// SPDX-License-Identifier: MIT

package las

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ensemble generates n realizations on up to WithWorkers goroutines.
// Realization r uses NewRand(DeriveSeed(seed, r)), so its field does not depend
// on scheduling and equals a sequential Sample with that stream.
//
// fn is called once per realization, concurrently from several goroutines and
// in no particular order; it owns the Field it receives. The first error from
// fn or from cancellation stops scheduling and is returned.
func (e *Engine) Ensemble(ctx context.Context, n int, seed uint64, fn func(r int, f *Field) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for r := 0; r < n; r++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			f, err := e.SampleContext(gctx, NewRand(DeriveSeed(seed, uint64(r))))
			if err != nil {
				return err
			}
			return fn(r, f)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
