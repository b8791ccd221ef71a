// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/matrix"
)

const (
	opAnalyze     = "Analyze"
	opAnalyzeRows = "AnalyzeRows"
	opAt          = "At"
)

// Analyze classifies the system coefficient·x = rhs and, when it is consistent,
// builds its solution.
//
// Steps:
//  1. Validate: coefficient must be non-nil (ErrInvalidMatrix) and rhs must have
//     one entry per row (ErrDimension).
//  2. Build [A | b] and reduce both A and [A | b]. Both reductions measure the
//     float tolerance against the largest entry of [A | b], which keeps their
//     pivot decisions identical on the first n columns.
//  3. rank = number of pivots; Free = columns of [0, n) without a pivot.
//  4. Classify by comparing the ranks with n.
//  5. Read the particular solution from the last column of the reduced augmented
//     matrix; build one basis vector per free column.
//
// Edge cases:
//   - A zero coefficient matrix with a nonzero rhs is INCONSISTENT.
//   - A homogeneous system is never INCONSISTENT. For the float backend a rhs
//     whose entries are all negligible counts as homogeneous and Augmented then
//     carries an exact zero column.
//   - With no equations (m == 0) every variable is free: INFINITE for n > 0,
//     UNIQUE with an empty solution for n == 0.
//
// coefficient and rhs are not modified.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m·n).
func Analyze[E any](f field.Field[E], coefficient *matrix.Dense[E], rhs []E) (*Result[E], error) {
	// 1) Validate input.
	if coefficient == nil {
		return nil, fmt.Errorf("%s: nil coefficient matrix: %w", opAnalyze, ErrInvalidMatrix)
	}
	m, n := coefficient.Shape()
	if len(rhs) != m {
		return nil, fmt.Errorf("%s: rhs has %d entries, coefficient has %d rows: %w", opAnalyze, len(rhs), m, ErrDimension)
	}

	// 2) Augment and reduce with a shared scale. A rhs that is negligible
	// everywhere is replaced by exact zeros so its residues cannot add up to a
	// spurious pivot in the last column.
	augmented, err := matrix.Augment(coefficient, rhs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	scale := matrix.MaxMagnitude(f, augmented)
	homogeneous := true
	for _, v := range rhs {
		if !f.Negligible(v, scale) {
			homogeneous = false
			break
		}
	}
	if homogeneous {
		if augmented, err = matrix.Augment(coefficient, zeros(f, m)); err != nil {
			return nil, fmt.Errorf("%s: %w", opAnalyze, err)
		}
	}
	coefReduced, err := matrix.RREF(f, coefficient, matrix.WithScale(scale))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	augReduced, err := matrix.RREF(f, augmented, matrix.WithScale(scale))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	// 3) Pivot/free partition of the unknowns.
	res := &Result[E]{
		Equations:       m,
		Unknowns:        n,
		CoefficientRank: coefReduced.Rank(),
		AugmentedRank:   augReduced.Rank(),
		Augmented:       augmented,
		Reduced:         augReduced,
		Pivots:          coefReduced.Pivots,
		Free:            freeColumns(coefReduced, n),
		Homogeneous:     homogeneous,
	}

	// 4) Classify.
	switch {
	case res.CoefficientRank < res.AugmentedRank:
		res.Classification = Inconsistent
		return res, nil
	case res.CoefficientRank == n:
		res.Classification = Unique
	default:
		res.Classification = Infinite
	}

	// 5) Particular solution and homogeneous basis.
	res.Solution = buildSolution(f, augReduced.Matrix.RowSlices(), res.Pivots, res.Free, n)

	return res, nil
}

// AnalyzeRows builds the coefficient matrix from rows and calls Analyze.
// Rows of differing length yield ErrInvalidMatrix; no rows means no equations
// over zero unknowns.
func AnalyzeRows[E any](f field.Field[E], rows [][]E, rhs []E) (*Result[E], error) {
	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opAnalyzeRows, ErrInvalidMatrix, err)
	}

	return Analyze(f, a, rhs)
}

func freeColumns[E any](rf *matrix.ReducedForm[E], n int) []int {
	free := make([]int, 0, n-rf.Rank())
	for j := 0; j < n; j++ {
		if !rf.IsPivot(j) {
			free = append(free, j)
		}
	}

	return free
}

// buildSolution reads pivot row i (pivot column pivots[i]) of the reduced
// augmented rows: x[pivot] = rhs - Σ coef·x[free]. Free variables are set to 0
// for the particular solution and to the unit vectors for the basis.
func buildSolution[E any](f field.Field[E], reduced [][]E, pivots, free []int, n int) *Solution[E] {
	values := zeros(f, n)
	for i, j := range pivots {
		values[j] = reduced[i][n]
	}

	basis := make([][]E, 0, len(free))
	for _, fc := range free {
		v := zeros(f, n)
		v[fc] = f.One()
		for i, j := range pivots {
			v[j] = f.Neg(reduced[i][fc])
		}
		basis = append(basis, v)
	}

	return &Solution[E]{Values: values, Basis: basis, Free: free}
}

func zeros[E any](f field.Field[E], n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = f.Zero()
	}

	return out
}
