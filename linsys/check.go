// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/matrix"
)

const (
	opResidual  = "Residual"
	opSatisfies = "Satisfies"
)

// Residual returns A·x − b.
//
// Errors:
//   - ErrInvalidMatrix for a nil A.
//   - ErrDimension when len(b) differs from the rows of A.
//   - matrix.ErrDimensionMismatch when len(x) differs from the columns of A.
func Residual[E any](f field.Field[E], a *matrix.Dense[E], x, b []E) ([]E, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opResidual, ErrInvalidMatrix)
	}
	if len(b) != a.Rows() {
		return nil, fmt.Errorf("%s: b has %d entries, A has %d rows: %w", opResidual, len(b), a.Rows(), ErrDimension)
	}
	ax, err := matrix.MulVec(f, a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opResidual, err)
	}
	for i := range ax {
		ax[i] = f.Sub(ax[i], b[i])
	}

	return ax, nil
}

// Satisfies reports whether x solves A·x = b.
//
// The exact backend demands a zero residual. For the float backend the check is
// approximate: residual entries are accepted when negligible against
// max(|A|·Σ|x|, |b|), an upper bound on the magnitude the products can reach,
// so a badly scaled x may pass with a residual a tighter bound would reject.
func Satisfies[E any](f field.Field[E], a *matrix.Dense[E], b, x []E) (bool, error) {
	r, err := Residual(f, a, x, b)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opSatisfies, err)
	}
	var sumX, maxB float64
	for _, v := range x {
		sumX += f.Magnitude(v)
	}
	for _, v := range b {
		maxB = math.Max(maxB, f.Magnitude(v))
	}
	scale := math.Max(matrix.MaxMagnitude(f, a)*sumX, maxB)
	for _, v := range r {
		if !f.Negligible(v, scale) {
			return false, nil
		}
	}

	return true, nil
}
