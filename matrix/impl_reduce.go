// SPDX-License-Identifier: MIT
// Package matrix: row reduction kernels (REF, RREF, rank).
//
// Purpose:
//   - One elimination loop shared by REF and RREF, generic over the field backend.
//   - Exact backends produce exact echelon forms. Float backends decide pivots
//     against the input scale; columns without a pivot are cleared to exact zeros
//     below the current row, so zero rows of the result are exactly zero.

package matrix

import (
	"github.com/katalvlaran/lvlinalg/field"
)

const (
	opRREF = "RREF"
	opREF  = "REF"
	opRank = "Rank"
)

// ReducedForm is an echelon form together with its pivot columns.
// Pivots are unique, strictly increasing and each < Matrix.Cols(); row i of
// Matrix holds the pivot of column Pivots[i].
type ReducedForm[E any] struct {
	Matrix *Dense[E]
	Pivots []int
}

// Rank is the number of nonzero rows of the echelon form.
func (r *ReducedForm[E]) Rank() int { return len(r.Pivots) }

// IsPivot reports whether column j holds a pivot.
func (r *ReducedForm[E]) IsPivot(j int) bool {
	for _, p := range r.Pivots {
		if p == j {
			return true
		}
	}

	return false
}

// RREF computes the reduced row echelon form of m.
//
// Implementation:
//   - Stage 1: Clone m; determine the tolerance scale (WithScale or MaxMagnitude(m)).
//   - Stage 2: Column sweep. For each column pick a pivot row among the
//     unprocessed rows (strategy per Options), swap it up, scale it to a leading 1,
//     and clear the column in every other row.
//
// Behavior highlights:
//   - Each pivot is exactly One and the only nonzero entry of its column.
//   - For exact input the result is the unique RREF regardless of pivot strategy.
//   - m is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF[E any](f field.Field[E], m *Dense[E], opts ...Option) (*ReducedForm[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	w := m.Clone()
	pivots := eliminate(f, w, true, NewOptions(opts...))

	return &ReducedForm[E]{Matrix: w, Pivots: pivots}, nil
}

// REF computes a row echelon form of m: forward elimination only, each
// leading entry scaled to 1, zeros below every pivot.
// Unlike RREF the result depends on the pivot strategy.
func REF[E any](f field.Field[E], m *Dense[E], opts ...Option) (*ReducedForm[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opREF, err)
	}
	w := m.Clone()
	pivots := eliminate(f, w, false, NewOptions(opts...))

	return &ReducedForm[E]{Matrix: w, Pivots: pivots}, nil
}

// Rank returns the number of linearly independent rows of m.
func Rank[E any](f field.Field[E], m *Dense[E], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	w := m.Clone()

	return len(eliminate(f, w, false, NewOptions(opts...))), nil
}

// MaxMagnitude returns the largest |entry| of m (0 for empty matrices).
func MaxMagnitude[E any](f field.Field[E], m *Dense[E]) float64 {
	var best float64
	for _, v := range m.data {
		if mag := f.Magnitude(v); mag > best {
			best = mag
		}
	}

	return best
}

// eliminate runs Gauss(-Jordan) elimination on w in place and returns the pivot columns.
// backward=true clears above the pivots as well (RREF).
func eliminate[E any](f field.Field[E], w *Dense[E], backward bool, o Options) []int {
	scale := o.scale
	if !o.hasScale {
		scale = MaxMagnitude(f, w)
	}
	strategy := o.strategy(f.Exact())

	pivots := make([]int, 0, min(w.r, w.c))
	row := 0
	var (
		i, j, p int
		best    float64
		v       E
	)
	for col := 0; col < w.c && row < w.r; col++ {
		// Stage 2a: choose the pivot row.
		p = -1
		best = 0
		for i = row; i < w.r; i++ {
			v = w.at(i, col)
			if f.Negligible(v, scale) {
				continue
			}
			if strategy == PivotFirstNonZero {
				p = i
				break
			}
			if mag := f.Magnitude(v); p < 0 || mag > best {
				p, best = i, mag
			}
		}
		if p < 0 {
			// no pivot: whatever is left in this column is noise
			for i = row; i < w.r; i++ {
				w.set(i, col, f.Zero())
			}
			continue
		}

		// Stage 2b: move it up and normalize to a leading 1.
		w.swapRows(row, p)
		pv := w.at(row, col)
		for j = col + 1; j < w.c; j++ {
			w.set(row, j, f.Quo(w.at(row, j), pv))
		}
		w.set(row, col, f.One())

		// Stage 2c: clear the column.
		start := row + 1
		if backward {
			start = 0
		}
		for i = start; i < w.r; i++ {
			if i == row {
				continue
			}
			factor := w.at(i, col)
			if !exactlyZero(f, factor) {
				for j = col + 1; j < w.c; j++ {
					w.set(i, j, f.Sub(w.at(i, j), f.Mul(factor, w.at(row, j))))
				}
			}
			w.set(i, col, f.Zero())
		}

		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// exactlyZero skips no-op eliminations without applying the float tolerance.
func exactlyZero[E any](f field.Field[E], v E) bool {
	if f.Exact() {
		return f.IsZero(v)
	}

	return f.Magnitude(v) == 0
}
