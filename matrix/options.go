// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for elimination kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import "math"

// PivotStrategy selects the pivot row during elimination.
type PivotStrategy int

const (
	// PivotAuto picks PivotFirstNonZero for exact backends and PivotLargest otherwise.
	PivotAuto PivotStrategy = iota
	// PivotFirstNonZero takes the first usable row (textbook hand elimination).
	PivotFirstNonZero
	// PivotLargest takes the row with the largest magnitude (partial pivoting).
	PivotLargest
)

// Panic messages (programmer errors only).
const (
	panicScaleInvalid = "matrix: WithScale requires a finite value >= 0"
	panicPivotInvalid = "matrix: WithPivoting got unknown strategy"
)

// Options holds elimination settings. Build it with NewOptions.
type Options struct {
	scale    float64
	hasScale bool
	pivot    PivotStrategy
}

// Option mutates Options.
type Option func(*Options)

// WithScale fixes the magnitude that float tolerances are measured against.
// Without it each kernel uses the largest magnitude of its own input. Reducing
// a coefficient matrix and its augmented form with the same scale makes the
// two eliminations agree column by column.
func WithScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) {
		o.scale = scale
		o.hasScale = true
	}
}

// WithPivoting selects the pivot strategy.
func WithPivoting(p PivotStrategy) Option {
	if p < PivotAuto || p > PivotLargest {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// NewOptions applies opts over the defaults (auto pivoting, scale from input).
func NewOptions(opts ...Option) Options {
	o := Options{pivot: PivotAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) strategy(exact bool) PivotStrategy {
	if o.pivot != PivotAuto {
		return o.pivot
	}
	if exact {
		return PivotFirstNonZero
	}

	return PivotLargest
}
