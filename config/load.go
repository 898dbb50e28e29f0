// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LAS_"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load resolves a configuration from Default(), the YAML file at path (skipped
// when path is empty), the process environment and validation.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result. Environment
// variables are not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode rejects unknown keys so that typos do not fall back to defaults silently.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks field constraints and the cross-field rules of the marginal block.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Marginal.Distribution == "bounded" && !(c.Marginal.Lower < c.Marginal.Upper) {
		return fmt.Errorf("%w: marginal lower %g must be below upper %g", ErrInvalidConfig, c.Marginal.Lower, c.Marginal.Upper)
	}
	if c.Marginal.Distribution == "lognormal" && !(c.Marginal.Mean > 0) {
		return fmt.Errorf("%w: lognormal mean %g must be positive", ErrInvalidConfig, c.Marginal.Mean)
	}

	return nil
}

// ApplyEnv overrides c from LAS_* variables read through lookup (os.LookupEnv
// in production). Malformed values fail with ErrInvalidConfig.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := lookup(EnvPrefix + key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = f
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	integer("NX", &c.Grid.NX)
	integer("NY", &c.Grid.NY)
	float("X_LENGTH", &c.Grid.XLength)
	float("Y_LENGTH", &c.Grid.YLength)
	integer("MAX_BASE_CELLS", &c.Grid.MaxBaseCells)
	integer("MAX_DEPTH", &c.Grid.MaxDepth)
	boolean("ALLOW_RESIZE", &c.Grid.AllowResize)
	str("MODEL", &c.Model.Kind)
	float("THETA_X", &c.Model.ThetaX)
	float("THETA_Y", &c.Model.ThetaY)
	float("VARIANCE", &c.Model.Variance)
	str("DISTRIBUTION", &c.Marginal.Distribution)
	integer("REALIZATIONS", &c.Run.Realizations)
	integer("WORKERS", &c.Run.Workers)
	integer("STAGE_WORKERS", &c.Run.StageWorkers)
	str("LOG_LEVEL", &c.Logging.Level)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Run.Seed = s
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
