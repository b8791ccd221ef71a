// SPDX-License-Identifier: MIT

// Package config loads linear systems from YAML files.
//
// A file names the scalar backend and lists the coefficients and the right-hand
// side as strings, so exact values survive the trip through YAML:
//
//	name: example
//	backend: exact
//	coefficients:
//	  - ["1", "-2"]
//	  - ["2", "-1"]
//	rhs: ["3", "0"]
//
// Entries accept everything fraction.Parse does ("3", "-3/4", "1.25", "1e-3").
// A system without equations sets `unknowns` and leaves `coefficients` empty.
package config

import (
	"fmt"
	"math"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/fraction"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// Backend names accepted in the backend field.
const (
	// BackendExact analyzes with field.Rational.
	BackendExact = "exact"
	// BackendFloat analyzes with field.Float and the configured tolerance.
	BackendFloat = "float"
)

// Config is one linear system as stored in a YAML file. Entries are strings so
// that fractions such as "-3/4" survive the round trip exactly. The rhs may be
// omitted by commands that only look at the coefficient matrix.
type Config struct {
	Name           string     `yaml:"name"`
	Backend        string     `yaml:"backend"`
	Tolerance      float64    `yaml:"tolerance"`
	MaxDenominator int64      `yaml:"max_denominator"`
	Unknowns       int        `yaml:"unknowns,omitempty"`
	Coefficients   [][]string `yaml:"coefficients"`
	RHS            []string   `yaml:"rhs,omitempty"`
}

// Default returns an empty exact system with the default tolerance and
// max_denominator.
func Default() *Config {
	return &Config{
		Backend:        BackendExact,
		Tolerance:      field.DefaultTolerance,
		MaxDenominator: fraction.DefaultMaxDenominator,
	}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings and the shape of the coefficient rows.
// Entry syntax is checked when the system is built.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendExact, BackendFloat:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrBadTolerance, c.Tolerance)
	}
	if c.MaxDenominator < 1 {
		return fmt.Errorf("%w: %d", ErrBadDenominator, c.MaxDenominator)
	}
	if len(c.Coefficients) == 0 {
		if c.Unknowns < 0 {
			return fmt.Errorf("%w: unknowns=%d", ErrRagged, c.Unknowns)
		}
		return nil
	}
	cols := len(c.Coefficients[0])
	for i, row := range c.Coefficients {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrRagged, i, len(row), cols)
		}
	}
	if c.Unknowns != 0 && c.Unknowns != cols {
		return fmt.Errorf("%w: unknowns=%d but rows have %d entries", ErrRagged, c.Unknowns, cols)
	}

	return nil
}

// Columns is the number of unknowns.
func (c *Config) Columns() int {
	if len(c.Coefficients) == 0 {
		return c.Unknowns
	}
	return len(c.Coefficients[0])
}

// Float returns the float backend configured by Tolerance.
func (c *Config) Float() field.Float { return field.Float{Tol: c.Tolerance} }

// BuildRational parses the system into exact values.
func (c *Config) BuildRational() (*matrix.Dense[*big.Rat], []*big.Rat, error) {
	return build[*big.Rat](c, field.Rational{})
}

// BuildFloat parses the system into float64 values. Entries are parsed exactly
// and rounded once.
func (c *Config) BuildFloat() (*matrix.Dense[float64], []float64, error) {
	return build[float64](c, c.Float())
}

func build[E any](c *Config, f field.Field[E]) (*matrix.Dense[E], []E, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	a, err := matrix.New(f, len(c.Coefficients), c.Columns())
	if err != nil {
		return nil, nil, err
	}
	for i, row := range c.Coefficients {
		for j, s := range row {
			v, err := parse(f, s)
			if err != nil {
				return nil, nil, fmt.Errorf("coefficients[%d][%d]: %w", i, j, err)
			}
			if err = a.Set(i, j, v); err != nil {
				return nil, nil, err
			}
		}
	}
	rhs := make([]E, len(c.RHS))
	for i, s := range c.RHS {
		if rhs[i], err = parse(f, s); err != nil {
			return nil, nil, fmt.Errorf("rhs[%d]: %w", i, err)
		}
	}

	return a, rhs, nil
}

func parse[E any](f field.Field[E], s string) (E, error) {
	r, err := fraction.Parse(s)
	if err != nil {
		var zero E
		return zero, err
	}
	return f.FromRat(r), nil
}
