// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; tests match
// them with errors.Is. No kernel panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates negative rows or columns.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNonRectangular indicates row slices of differing lengths.
	ErrNonRectangular = errors.New("matrix: rows have differing lengths")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Mul where a.Cols != b.Rows, or a vector of wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by Inverse when the matrix has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a symmetric matrix was required.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrEigenFailed indicates that the numeric eigen factorization did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrZeroVector indicates an operation undefined for the zero vector (angle, projection).
	ErrZeroVector = errors.New("matrix: zero vector")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
