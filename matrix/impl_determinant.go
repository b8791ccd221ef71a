// SPDX-License-Identifier: MIT
// Package matrix: determinant, cofactors, adjugate and inverse.

package matrix

import (
	"github.com/katalvlaran/lvlinalg/field"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// Determinant computes det(m) by Gaussian elimination.
//
// Implementation:
//   - Stage 1: Validate square; the 0×0 determinant is One.
//   - Stage 2: Forward elimination on a copy; every row swap flips the sign,
//     the determinant is the signed product of the pivots.
//
// Behavior highlights:
//   - Exact for the Rational backend.
//   - For Float a column without a non-negligible pivot yields exactly zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[E any](f field.Field[E], m *Dense[E], opts ...Option) (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opDeterminant, err)
	}

	return det(f, m.Clone(), NewOptions(opts...)), nil
}

// det destroys w.
func det[E any](f field.Field[E], w *Dense[E], o Options) E {
	n := w.r
	scale := o.scale
	if !o.hasScale {
		scale = MaxMagnitude(f, w)
	}
	strategy := o.strategy(f.Exact())
	acc := f.One()
	for col := 0; col < n; col++ {
		p := -1
		var best float64
		for i := col; i < n; i++ {
			v := w.at(i, col)
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
			return f.Zero()
		}
		if p != col {
			w.swapRows(col, p)
			acc = f.Neg(acc)
		}
		pv := w.at(col, col)
		acc = f.Mul(acc, pv)
		for i := col + 1; i < n; i++ {
			factor := f.Quo(w.at(i, col), pv)
			if exactlyZero(f, factor) {
				continue
			}
			for j := col + 1; j < n; j++ {
				w.set(i, j, f.Sub(w.at(i, j), f.Mul(factor, w.at(col, j))))
			}
		}
	}

	return acc
}

// Minor returns m with row i and column j removed.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func Minor[E any](m *Dense[E], i, j int) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if !m.inBounds(i, j) {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, i, j, ErrOutOfRange))
	}
	res := &Dense[E]{r: m.r - 1, c: m.c - 1, data: make([]E, 0, (m.r-1)*(m.c-1))}
	for r := 0; r < m.r; r++ {
		if r == i {
			continue
		}
		for c := 0; c < m.c; c++ {
			if c == j {
				continue
			}
			res.data = append(res.data, m.at(r, c))
		}
	}

	return res, nil
}

// Cofactor returns C[i,j] = (-1)^(i+j) · det(Minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Cofactor[E any](f field.Field[E], m *Dense[E], i, j int) (E, error) {
	var zero E
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	minor, err := Minor(m, i, j)
	if err != nil {
		return zero, matrixErrorf(opCofactor, err)
	}
	d := det(f, minor, NewOptions())
	if (i+j)%2 == 1 {
		d = f.Neg(d)
	}

	return d, nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix, so that
// m·adj(m) = det(m)·I. Defined for singular matrices as well.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n⁵) (n² cofactors by elimination); intended for small matrices.
func Adjugate[E any](f field.Field[E], m *Dense[E]) (*Dense[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.r
	res := &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c, err := Cofactor(f, m, i, j)
			if err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			res.set(j, i, c)
		}
	}

	return res, nil
}

// Inverse computes m⁻¹ by Gauss–Jordan elimination of [m | I].
//
// Implementation:
//   - Stage 1: Validate square; build [m | I].
//   - Stage 2: RREF; m is invertible iff the first n pivots are 0..n-1.
//   - Stage 3: Read the right block.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[E any](f field.Field[E], m *Dense[E], opts ...Option) (*Dense[E], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.r
	w := &Dense[E]{r: n, c: 2 * n, data: make([]E, 2*n*n)}
	for i := 0; i < n; i++ {
		copy(w.data[i*2*n:i*2*n+n], m.data[i*n:(i+1)*n])
		for j := 0; j < n; j++ {
			if i == j {
				w.set(i, n+j, f.One())
			} else {
				w.set(i, n+j, f.Zero())
			}
		}
	}
	o := NewOptions(opts...)
	if !o.hasScale {
		// measure the tolerance against m, not the identity block
		o.scale, o.hasScale = MaxMagnitude(f, m), true
	}
	pivots := eliminate(f, w, true, o)
	if len(pivots) < n || (n > 0 && pivots[n-1] != n-1) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res := &Dense[E]{r: n, c: n, data: make([]E, n*n)}
	for i := 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], w.data[i*2*n+n:(i+1)*2*n])
	}

	return res, nil
}
