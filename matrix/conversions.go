// SPDX-License-Identifier: MIT
// Package matrix: conversions between backends and to gonum.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/field"
)

// Convert maps m from backend `from` to backend `to` through exact rationals.
// Rational → Float rounds to the nearest float64; Float → Rational is exact
// (binary value of each float).
func Convert[E, F any](from field.Field[E], to field.Field[F], m *Dense[E]) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := &Dense[F]{r: m.r, c: m.c, data: make([]F, len(m.data))}
	for idx, v := range m.data {
		r := from.Rat(v)
		if r == nil {
			return nil, ErrNaNInf
		}
		out.data[idx] = to.FromRat(r)
	}

	return out, nil
}

// ToGonum copies m into a gonum *mat.Dense using f.Float64.
// Empty matrices cannot be represented in gonum and yield ErrInvalidDimensions.
func ToGonum[E any](f field.Field[E], m *Dense[E]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.r == 0 || m.c == 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = f.Float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies a gonum matrix into a Dense[float64].
func FromGonum(g mat.Matrix) *Dense[float64] {
	r, c := g.Dims()
	out := &Dense[float64]{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}
