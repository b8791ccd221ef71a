// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/fraction"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// DefaultMinWidth is the narrowest column Matrix draws.
const DefaultMinWidth = 8

// Options controls how values are printed.
type Options struct {
	// Decimal prints cells with six significant digits instead of fractions.
	Decimal bool
	// MaxDenominator bounds fractions of float values; 0 means
	// fraction.DefaultMaxDenominator.
	MaxDenominator int64
	// MinWidth is the minimum column width; 0 means DefaultMinWidth.
	MinWidth int
}

func (o Options) minWidth() int {
	if o.MinWidth <= 0 {
		return DefaultMinWidth
	}
	return o.MinWidth
}

// Cell formats one value as a fraction or, with Options.Decimal, a decimal.
// Negative zero prints as 0.
func Cell[E any](f field.Field[E], v E, opts Options) string {
	if opts.Decimal {
		return fmt.Sprintf("%.6g", unsignedZero(f.Float64(v)))
	}
	if f.Exact() {
		return fraction.Format(f.Rat(v))
	}

	return fraction.FormatFloat(f.Float64(v), opts.MaxDenominator)
}

// FormatMatrix lays m out between ⎡⎢⎣ ⎤⎥⎦ brackets, or [ ] for a single row.
// A matrix without rows renders as "[]".
func FormatMatrix[E any](f field.Field[E], m *matrix.Dense[E], opts Options) string {
	rows := m.RowSlices()
	if len(rows) == 0 {
		return "[]"
	}
	cells := make([][]string, len(rows))
	widths := make([]int, m.Cols())
	for j := range widths {
		widths[j] = opts.minWidth()
	}
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = Cell(f, v, opts)
			widths[j] = max(widths[j], len([]rune(cells[i][j])))
		}
	}

	var sb strings.Builder
	last := len(rows) - 1
	for i, row := range cells {
		left, right := "⎢ ", " ⎥"
		switch {
		case last == 0:
			left, right = "[ ", " ]"
		case i == 0:
			left, right = "⎡ ", " ⎤"
		case i == last:
			left, right = "⎣ ", " ⎦"
		}
		padded := make([]string, len(row))
		for j, c := range row {
			padded[j] = strings.Repeat(" ", widths[j]-len([]rune(c))) + c
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(left + strings.Join(padded, "  ") + right)
	}

	return sb.String()
}

// Matrix writes FormatMatrix(f, m, opts) followed by a newline.
func Matrix[E any](w io.Writer, f field.Field[E], m *matrix.Dense[E], opts Options) error {
	_, err := io.WriteString(w, FormatMatrix(f, m, opts)+"\n")

	return err
}

// Vector formats v as "[a, b, c]".
func Vector[E any](f field.Field[E], v []E, opts Options) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = Cell(f, x, opts)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func unsignedZero(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}
