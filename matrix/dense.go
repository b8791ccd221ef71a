// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c); At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/field"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the accessor name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major rows×cols matrix over the element type E.
//   - r,c hold dimensions; either may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// Elements are treated as immutable values: kernels replace entries and never
// modify an element in place, so a *big.Rat stored in one matrix may be shared
// with another.
type Dense[E any] struct {
	r, c int
	data []E
}

// New allocates a rows×cols matrix filled with f.Zero().
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[E any](f field.Field[E], rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	d := &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols)}
	for idx := range d.data {
		d.data[idx] = f.Zero()
	}

	return d, nil
}

// FromRows builds a matrix from a slice of equal-length rows.
// The row slices are copied; the elements themselves are shared.
//
// An empty input yields a 0×0 matrix; use New(f, 0, n) to describe zero
// equations over n unknowns.
//
// Errors:
//   - ErrNonRectangular when row lengths differ.
func FromRows[E any](rows [][]E) (*Dense[E], error) {
	if len(rows) == 0 {
		return &Dense[E]{}, nil
	}
	cols := len(rows[0])
	d := &Dense[E]{r: len(rows), c: cols, data: make([]E, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
		d.data = append(d.data, row...)
	}

	return d, nil
}

// FromInts converts integer rows through f.FromInt64.
func FromInts[E any](f field.Field[E], rows [][]int64) (*Dense[E], error) {
	conv := make([][]E, len(rows))
	for i, row := range rows {
		conv[i] = make([]E, len(row))
		for j, v := range row {
			conv[i][j] = f.FromInt64(v)
		}
	}

	return FromRows(conv)
}

// FromFloats converts float rows through f.FromFloat64.
//
// Errors:
//   - ErrNaNInf for non-finite entries, ErrNonRectangular for ragged rows.
func FromFloats[E any](f field.Field[E], rows [][]float64) (*Dense[E], error) {
	conv := make([][]E, len(rows))
	var err error
	for i, row := range rows {
		conv[i] = make([]E, len(row))
		for j, v := range row {
			if conv[i][j], err = f.FromFloat64(v); err != nil {
				return nil, fmt.Errorf("FromFloats(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return FromRows(conv)
}

// Identity returns the n×n identity matrix.
func Identity[E any](f field.Field[E], n int) (*Dense[E], error) {
	d, err := New(f, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = f.One()
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[E]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[E]) Shape() (int, int) { return m.r, m.c }

func (m *Dense[E]) inBounds(i, j int) bool { return i >= 0 && i < m.r && j >= 0 && j < m.c }

// At returns the element at (i, j), or ErrOutOfRange.
func (m *Dense[E]) At(i, j int) (E, error) {
	if !m.inBounds(i, j) {
		var zero E
		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set stores v at (i, j), or returns ErrOutOfRange.
func (m *Dense[E]) Set(i, j int, v E) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// at/set are the unchecked accessors used inside kernels after validation.
func (m *Dense[E]) at(i, j int) E     { return m.data[i*m.c+j] }
func (m *Dense[E]) set(i, j int, v E) { m.data[i*m.c+j] = v }

// Row returns a copy of row i.
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[E]) Col(j int) ([]E, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RowSlices returns a copy of the matrix as [][]E.
func (m *Dense[E]) RowSlices() [][]E {
	out := make([][]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]E, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a copy with its own backing buffer.
func (m *Dense[E]) Clone() *Dense[E] {
	out := &Dense[E]{r: m.r, c: m.c, data: make([]E, len(m.data))}
	copy(out.data, m.data)

	return out
}

func (m *Dense[E]) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// Format renders the matrix one row per line using f.Format for the cells,
// e.g. "[1, -1/2]\n[0, 3]\n". Column alignment is the render package's job.
func (m *Dense[E]) Format(f field.Field[E]) string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(f.Format(m.at(i, j)))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
