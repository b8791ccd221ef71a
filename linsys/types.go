// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// Sentinel errors returned by the analyzer.
var (
	// ErrDimension indicates that the right-hand side length differs from the
	// number of equations.
	ErrDimension = errors.New("linsys: rhs length does not match coefficient rows")

	// ErrInvalidMatrix indicates a nil or non-rectangular coefficient matrix.
	ErrInvalidMatrix = errors.New("linsys: invalid coefficient matrix")

	// ErrParameterCount indicates that Solution.At got a parameter count
	// different from the number of free variables.
	ErrParameterCount = errors.New("linsys: parameter count does not match free variables")
)

// Classification is the solvability class of a system.
type Classification int

const (
	// Inconsistent systems have no solution: rank(A) < rank([A|b]).
	Inconsistent Classification = iota
	// Unique systems have exactly one solution: rank(A) == rank([A|b]) == n.
	Unique
	// Infinite systems have a solution space of dimension n - rank(A) > 0.
	Infinite
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case Inconsistent:
		return "INCONSISTENT"
	case Unique:
		return "UNIQUE"
	case Infinite:
		return "INFINITE"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Solution describes the solution set of a consistent system.
//
// Values has one entry per unknown. For a UNIQUE system it is the solution and
// Basis is empty. For an INFINITE system it is the particular solution with every
// free variable set to zero; Basis[k] belongs to free column Free[k], holds 1 at
// Free[k] and 0 at every other free column.
type Solution[E any] struct {
	Values []E
	Basis  [][]E
	Free   []int
}

// At evaluates Values + Σ params[k]·Basis[k].
//
// Errors:
//   - ErrParameterCount when len(params) != len(Basis).
func (s *Solution[E]) At(f field.Field[E], params []E) ([]E, error) {
	if len(params) != len(s.Basis) {
		return nil, fmt.Errorf("%s: got %d parameters, want %d: %w", opAt, len(params), len(s.Basis), ErrParameterCount)
	}
	out := make([]E, len(s.Values))
	copy(out, s.Values)
	for k, vec := range s.Basis {
		for i := range out {
			out[i] = f.Add(out[i], f.Mul(params[k], vec[i]))
		}
	}

	return out, nil
}

// Result is the outcome of Analyze.
type Result[E any] struct {
	Classification Classification

	Equations int // m, rows of the coefficient matrix
	Unknowns  int // n, columns of the coefficient matrix

	CoefficientRank int
	AugmentedRank   int

	// Augmented is [A | b], m × (n+1); b is exactly zero when Homogeneous.
	Augmented *matrix.Dense[E]
	// Reduced is the reduced row echelon form of Augmented with its pivots;
	// it may carry a pivot in column n when the system is inconsistent.
	Reduced *matrix.ReducedForm[E]

	// Pivots are the pivot columns of the coefficient matrix, strictly increasing.
	Pivots []int
	// Free are the remaining columns of [0, n), ascending.
	Free []int

	// Homogeneous is set when every entry of b is zero (negligible for float).
	Homogeneous bool

	// Solution is nil for inconsistent systems.
	Solution *Solution[E]
}

// Consistent reports whether the system has at least one solution.
func (r *Result[E]) Consistent() bool { return r.Classification != Inconsistent }

// Unique returns the solution of a UNIQUE system.
func (r *Result[E]) Unique() ([]E, bool) {
	if r.Classification != Unique {
		return nil, false
	}

	return r.Solution.Values, true
}

// Particular returns the particular solution, nil when inconsistent.
func (r *Result[E]) Particular() []E {
	if r.Solution == nil {
		return nil
	}

	return r.Solution.Values
}

// Basis returns the homogeneous basis, nil when inconsistent or unique.
func (r *Result[E]) Basis() [][]E {
	if r.Solution == nil {
		return nil
	}

	return r.Solution.Basis
}

// FreeCount is n - rank(A).
func (r *Result[E]) FreeCount() int { return len(r.Free) }
