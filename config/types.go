// SPDX-License-Identifier: MIT

package config

import (
	"github.com/katalvlaran/lasfield/covfn"
	"github.com/katalvlaran/lasfield/grid"
)

// Config is one generation run.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Model    ModelConfig    `yaml:"model"`
	Marginal MarginalConfig `yaml:"marginal"`
	Run      RunConfig      `yaml:"run"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GridConfig is the lattice and its physical extent.
type GridConfig struct {
	NX           int     `yaml:"nx" validate:"min=1"`
	NY           int     `yaml:"ny" validate:"min=1"`
	XLength      float64 `yaml:"x_length" validate:"gt=0"`
	YLength      float64 `yaml:"y_length" validate:"gt=0"`
	MaxBaseCells int     `yaml:"max_base_cells" validate:"min=1,max=4096"`
	MaxDepth     int     `yaml:"max_depth" validate:"min=0,max=30"`
	AllowResize  bool    `yaml:"allow_resize"`
}

// ModelConfig selects the covariance model.
type ModelConfig struct {
	Kind       string  `yaml:"kind" validate:"oneof=markov markov-separable gaussian"`
	ThetaX     float64 `yaml:"theta_x" validate:"gt=0"`
	ThetaY     float64 `yaml:"theta_y" validate:"gt=0"`
	Variance   float64 `yaml:"variance" validate:"gt=0"`
	QuadPoints int     `yaml:"quad_points" validate:"min=1,max=200"`
}

// MarginalConfig is the optional pointwise transform. An empty Distribution
// keeps the Gaussian field.
type MarginalConfig struct {
	Distribution string  `yaml:"distribution" validate:"omitempty,oneof=normal lognormal bounded"`
	Mean         float64 `yaml:"mean"`
	StdDev       float64 `yaml:"stddev" validate:"gte=0"`
	Lower        float64 `yaml:"lower"`
	Upper        float64 `yaml:"upper"`
	Location     float64 `yaml:"location"`
	Scale        float64 `yaml:"scale" validate:"gte=0"`
	// Standardize divides by the cell standard deviation before the transform.
	Standardize bool `yaml:"standardize"`
}

// RunConfig controls sampling.
type RunConfig struct {
	Seed         uint64 `yaml:"seed"`
	Realizations int    `yaml:"realizations" validate:"min=1"`
	Workers      int    `yaml:"workers" validate:"min=0"` // 0 ⇒ GOMAXPROCS
	StageWorkers int    `yaml:"stage_workers" validate:"min=1"`
	MaxLag       int    `yaml:"max_lag" validate:"min=0"`
}

// LoggingConfig selects the zap configuration.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding    string `yaml:"encoding" validate:"oneof=json console"`
	Development bool   `yaml:"development"`
}

// Default returns a 64x64 unit-variance Markov field on a 10x10 domain.
func Default() Config {
	return Config{
		Grid: GridConfig{
			NX: 64, NY: 64,
			XLength: 10, YLength: 10,
			MaxBaseCells: grid.DefaultMaxBaseCells,
			MaxDepth:     grid.DefaultMaxDepth,
		},
		Model: ModelConfig{
			Kind:       covfn.Markov.String(),
			ThetaX:     1,
			ThetaY:     1,
			Variance:   1,
			QuadPoints: covfn.DefaultQuadPoints,
		},
		Run: RunConfig{
			Seed:         1,
			Realizations: 1,
			StageWorkers: 1,
			MaxLag:       4,
		},
		Logging: LoggingConfig{Level: "info", Encoding: "console"},
	}
}
