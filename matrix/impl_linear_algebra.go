// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense matrices over any
// field backend: element-wise addition and subtraction, scalar scaling,
// multiplication, matrix-vector products, transpose, augmentation and
// symmetry checks. All functions validate first and return clear errors on
// dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Operands are never mutated; each result is freshly allocated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/field"
)

// Operation name constants for unified error wrapping.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opScale          = "Scale"
	opMul            = "Mul"
	opMulVec         = "MulVec"
	opTranspose      = "Transpose"
	opAugment        = "Augment"
	opEqual          = "Equal"
	opSymmetric      = "IsSymmetric"
	opSymmetricParts = "SymmetricParts"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b.
// Internal helper for Add/Sub to share validation and allocation.
func addSub[E any](f field.Field[E], a, b *Dense[E], negate bool, opTag string) (*Dense[E], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[E]{r: a.r, c: a.c, data: make([]E, len(a.data))}
	for idx := range a.data { // deterministic 0..n-1
		if negate {
			res.data[idx] = f.Sub(a.data[idx], b.data[idx])
		} else {
			res.data[idx] = f.Add(a.data[idx], b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[E any](f field.Field[E], a, b *Dense[E]) (*Dense[E], error) {
	return addSub(f, a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub[E any](f field.Field[E], a, b *Dense[E]) (*Dense[E], error) {
	return addSub(f, a, b, true, opSub)
}

// Scale returns alpha·m.
func Scale[E any](f field.Field[E], alpha E, m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense[E]{r: m.r, c: m.c, data: make([]E, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = f.Mul(alpha, v)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j accumulation (row-major friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[E any](f field.Field[E], a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := New(f, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av      E
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.at(i, k)
			for j = 0; j < b.c; j++ {
				res.set(i, j, f.Add(res.at(i, j), f.Mul(av, b.at(k, j))))
			}
		}
	}

	return res, nil
}

// MulVec returns y = A·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols).
func MulVec[E any](f field.Field[E], a *Dense[E], x []E) ([]E, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]E, a.r)
	for i := 0; i < a.r; i++ {
		acc := f.Zero()
		for j := 0; j < a.c; j++ {
			acc = f.Add(acc, f.Mul(a.at(i, j), x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ.
func Transpose[E any](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense[E]{r: m.c, c: m.r, data: make([]E, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// Augment returns [m | col], m with col appended as its last column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(col) != m.Rows).
func Augment[E any](m *Dense[E], col []E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateVecLen(col, m.r); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	c := m.c + 1
	res := &Dense[E]{r: m.r, c: c, data: make([]E, m.r*c)}
	for i := 0; i < m.r; i++ {
		copy(res.data[i*c:i*c+m.c], m.data[i*m.c:(i+1)*m.c])
		res.data[i*c+m.c] = col[i]
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and f-equal entries.
func Equal[E any](f field.Field[E], a, b *Dense[E]) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opEqual, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	for idx := range a.data {
		if !f.Equal(a.data[idx], b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// IsSymmetric reports whether m == mᵀ under the backend's equality.
// Non-square matrices are not symmetric.
func IsSymmetric[E any](f field.Field[E], m *Dense[E]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opSymmetric, err)
	}
	if m.r != m.c {
		return false, nil
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if !f.Equal(m.at(i, j), m.at(j, i)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// SymmetricParts splits a square matrix into S = (A+Aᵀ)/2 and K = (A−Aᵀ)/2,
// so that A = S + K with S symmetric and K skew-symmetric.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func SymmetricParts[E any](f field.Field[E], m *Dense[E]) (sym, skew *Dense[E], err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opSymmetricParts, err)
	}
	n := m.r
	two := f.FromInt64(2)
	sym = &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	skew = &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, at := m.at(i, j), m.at(j, i)
			sym.set(i, j, f.Quo(f.Add(a, at), two))
			skew.set(i, j, f.Quo(f.Sub(a, at), two))
		}
	}

	return sym, skew, nil
}
