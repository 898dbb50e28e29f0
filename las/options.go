// SPDX-License-Identifier: MIT

package las

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lasfield/matrix"
)

// DefaultPivotTolerance is the relative Cholesky pivot tolerance (see matrix.WithEpsilon).
const DefaultPivotTolerance = matrix.DefaultEpsilon

const (
	panicWorkersInvalid = "las: WithWorkers: n must be ≥ 1"
	panicStageWorkers   = "las: WithStageWorkers: n must be ≥ 1"
	panicPivotTolerance = "las: WithPivotTolerance: eps must be finite, non-negative"
)

// Option configures an Engine. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	log          *zap.Logger
	workers      int
	stageWorkers int
	allowResize  bool
	pivotEps     float64
}

func defaultOptions() options {
	return options{
		log:          zap.NewNop(),
		workers:      runtime.GOMAXPROCS(0),
		stageWorkers: 1,
		pivotEps:     DefaultPivotTolerance,
	}
}

// WithLogger routes grid adjustments and factorization warnings to l.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}

// WithWorkers bounds the realizations generated concurrently by Ensemble.
// Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithStageWorkers splits each subdivision sweep across n goroutines. The
// realization does not depend on n. Default: 1.
func WithStageWorkers(n int) Option {
	if n < 1 {
		panic(panicStageWorkers)
	}

	return func(o *options) { o.stageWorkers = n }
}

// WithAllowResize lets New grow an infeasible grid to the nearest feasible
// size; Sample crops back to the requested size.
func WithAllowResize(allow bool) Option {
	return func(o *options) { o.allowResize = allow }
}

// WithPivotTolerance sets the relative Cholesky pivot tolerance.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotTolerance)
	}

	return func(o *options) { o.pivotEps = eps }
}
