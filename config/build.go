// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/las"
	"github.com/katalvlaran/lasfield/marginal"
)

// CovModel builds the covariance model.
func (c Config) CovModel() (*covfn.Model, error) {
	kind, err := covfn.ParseKind(c.Model.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return covfn.NewModel(kind, c.Model.ThetaX, c.Model.ThetaY, c.Model.Variance,
		covfn.WithQuadPoints(c.Model.QuadPoints))
}

// LasConfig is the engine view of the grid block.
func (c Config) LasConfig() las.Config {
	return las.Config{
		NX: c.Grid.NX, NY: c.Grid.NY,
		XLength: c.Grid.XLength, YLength: c.Grid.YLength,
		MaxBaseCells: c.Grid.MaxBaseCells,
		MaxDepth:     c.Grid.MaxDepth,
	}
}

// Options returns the engine options of the run, logging to log.
func (c Config) Options(log *zap.Logger) []las.Option {
	opts := []las.Option{
		las.WithLogger(log),
		las.WithAllowResize(c.Grid.AllowResize),
		las.WithStageWorkers(c.Run.StageWorkers),
	}
	if c.Run.Workers > 0 {
		opts = append(opts, las.WithWorkers(c.Run.Workers))
	}

	return opts
}

// NewEngine builds the covariance model and the engine.
func (c Config) NewEngine(log *zap.Logger) (*las.Engine, *covfn.Model, error) {
	model, err := c.CovModel()
	if err != nil {
		return nil, nil, err
	}
	e, err := las.New(c.LasConfig(), model, c.Options(log)...)
	if err != nil {
		return nil, nil, err
	}

	return e, model, nil
}

// Distribution returns the configured marginal transform, or nil when none is set.
func (c Config) Distribution() (marginal.Distribution, error) {
	m := c.Marginal
	if m.Distribution == "" {
		return nil, nil
	}
	kind, err := marginal.ParseKind(m.Distribution)
	if err != nil {
		return nil, err
	}

	return marginal.New(kind, marginal.Params{
		Mean: m.Mean, StdDev: m.StdDev,
		Lower: m.Lower, Upper: m.Upper,
		Location: m.Location, Scale: m.Scale,
	})
}

// NewLogger builds a zap logger: the production configuration, or the
// development one when l.Development is set, at l.Level with l.Encoding.
func NewLogger(l LoggingConfig) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if l.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	if l.Level != "" {
		level, err := zapcore.ParseLevel(l.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	if l.Encoding != "" {
		cfg.Encoding = l.Encoding
	}
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
