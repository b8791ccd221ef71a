// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

const rule = "------------------------------------------------------------"

var statusText = map[linsys.Classification]string{
	linsys.Inconsistent: "No solution (Inconsistent)",
	linsys.Unique:       "Unique solution",
	linsys.Infinite:     "Infinitely many solutions",
}

// printer keeps the first write error and drops everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Report writes the analysis of res: the input and reduced matrices, ranks,
// the pivot/free partition, the classification and the solution blocks.
//
// Solution blocks:
//   - UNIQUE: every variable as a decimal and as a fraction.
//   - INFINITE, homogeneous: the trivial solution and the basis vectors.
//   - INFINITE, otherwise: the particular solution, the basis vectors and the
//     parametric form of every variable.
//   - INCONSISTENT: a single line.
func Report[E any](w io.Writer, f field.Field[E], res *linsys.Result[E], opts Options) error {
	st := newStyles(w)
	p := &printer{w: w}
	coefficient, rhs := split(res.Augmented, res.Unknowns)

	section := func(title, body string) {
		p.linef("%s", st.muted.Render(rule))
		p.linef("%s", st.heading.Render(title))
		p.linef("%s", body)
	}
	section("COEFFICIENT MATRIX A:", FormatMatrix(f, coefficient, opts))
	section("CONSTANT VECTOR b:", FormatMatrix(f, rhs, opts))
	section("AUGMENTED MATRIX [A | b]:", FormatMatrix(f, res.Augmented, opts))
	section("RREF OF AUGMENTED MATRIX:", FormatMatrix(f, res.Reduced.Matrix, opts))

	p.linef("%s", st.muted.Render(rule))
	p.linef("Rank(A) = %d, Rank([A|b]) = %d", res.CoefficientRank, res.AugmentedRank)
	p.linef("Number of variables: %d", res.Unknowns)
	p.linef("Pivot columns (leading variables): %s", variables(res.Pivots))
	p.linef("Free variables: %s", variables(res.Free))
	p.linef("Number of free variables: %d", res.FreeCount())
	p.linef("%s", st.muted.Render(rule))
	p.linef("STATUS: %s", st.status[res.Classification].Render(statusText[res.Classification]))
	p.linef("%s", st.muted.Render(rule))
	p.linef("")

	writeSolution(p, f, res, opts)

	return p.err
}

func writeSolution[E any](p *printer, f field.Field[E], res *linsys.Result[E], opts Options) {
	frac := Options{MaxDenominator: opts.MaxDenominator}
	switch {
	case res.Classification == linsys.Inconsistent:
		p.linef("✗ No solution exists for this system.")

	case res.Classification == linsys.Unique:
		x, _ := res.Unique()
		p.linef("✓ UNIQUE SOLUTION:")
		p.linef("\nDecimal:")
		for i, v := range x {
			p.linef("  x%d = %s", i+1, decimal(f, v))
		}
		p.linef("\nFraction:")
		for i, v := range x {
			p.linef("  x%d = %s", i+1, Cell(f, v, frac))
		}

	case res.Homogeneous:
		p.linef("✓ HOMOGENEOUS SYSTEM (Infinitely many solutions)")
		p.linef("\nTRIVIAL SOLUTION:")
		for i := 0; i < res.Unknowns; i++ {
			p.linef("  x%d = 0", i+1)
		}
		p.linef("\nGENERAL SOLUTION:")
		p.linef("x = c₁*v₁ + c₂*v₂ + ... (c₁, c₂, ... ∈ ℝ)")
		writeBasis(p, f, res.Basis(), "BASIS VECTORS", frac)

	default:
		p.linef("✓ NON-HOMOGENEOUS SYSTEM (Infinitely many solutions)")
		p.linef("\nPARTICULAR SOLUTION (free variables = 0):")
		p.linef("Decimal:")
		for i, v := range res.Particular() {
			p.linef("  x%d = %s", i+1, decimal(f, v))
		}
		p.linef("Fraction:")
		for i, v := range res.Particular() {
			p.linef("  x%d = %s", i+1, Cell(f, v, frac))
		}
		p.linef("\nGENERAL SOLUTION:")
		p.linef("x = x_p + c₁*v₁ + c₂*v₂ + ... (c₁, c₂, ... ∈ ℝ)")
		writeBasis(p, f, res.Basis(), "BASIS VECTORS FOR HOMOGENEOUS PART", frac)
		p.linef("\nPARAMETRIC FORM:")
		for _, line := range Parametric(f, res.Solution) {
			p.linef("  %s", line)
		}
	}
}

func writeBasis[E any](p *printer, f field.Field[E], basis [][]E, title string, frac Options) {
	p.linef("\n%s (Decimal):", title)
	for k, v := range basis {
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = decimal(f, x)
		}
		p.linef("  v%d = [%s]ᵀ", k+1, strings.Join(parts, ", "))
	}
	p.linef("\n%s (Fraction):", title)
	for k, v := range basis {
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = Cell(f, x, frac)
		}
		p.linef("  v%d = [%s]ᵀ", k+1, strings.Join(parts, ", "))
	}
}

// Parametric returns one line per variable, "x1 = 0.750000 - 0.625000*c1",
// where c1, c2, ... are the parameters of the basis vectors in order. Free
// variables start from 0 since the particular solution sets them to zero.
// Coefficients equal to ±1 print as ±ck and zero coefficients are dropped,
// both decided by the backend's zero policy.
func Parametric[E any](f field.Field[E], sol *linsys.Solution[E]) []string {
	if sol == nil {
		return nil
	}
	free := make(map[int]bool, len(sol.Free))
	for _, j := range sol.Free {
		free[j] = true
	}
	one, minusOne := f.One(), f.Neg(f.One())

	lines := make([]string, len(sol.Values))
	for i, v := range sol.Values {
		terms := []string{decimal(f, v)}
		if free[i] {
			terms[0] = "0"
		}
		for k, vec := range sol.Basis {
			c := vec[i]
			switch {
			case f.IsZero(c):
			case f.Equal(c, one):
				terms = append(terms, fmt.Sprintf("c%d", k+1))
			case f.Equal(c, minusOne):
				terms = append(terms, fmt.Sprintf("-c%d", k+1))
			default:
				terms = append(terms, fmt.Sprintf("%s*c%d", decimal(f, c), k+1))
			}
		}
		lines[i] = fmt.Sprintf("x%d = %s", i+1, strings.ReplaceAll(strings.Join(terms, " + "), "+ -", "- "))
	}

	return lines
}

func decimal[E any](f field.Field[E], v E) string {
	return fmt.Sprintf("%.6f", unsignedZero(f.Float64(v)))
}

// variables names columns as 1-based unknowns: "x1, x3", or "none".
func variables(cols []int) string {
	if len(cols) == 0 {
		return "none"
	}
	names := make([]string, len(cols))
	for i, j := range cols {
		names[i] = fmt.Sprintf("x%d", j+1)
	}

	return strings.Join(names, ", ")
}

// split separates [A | b] into A and b as a column.
func split[E any](augmented *matrix.Dense[E], n int) (*matrix.Dense[E], *matrix.Dense[E]) {
	rows := augmented.RowSlices()
	a := make([][]E, len(rows))
	b := make([][]E, len(rows))
	for i, row := range rows {
		a[i], b[i] = row[:n], row[n:]
	}
	// rows are uniform by construction
	coefficient, _ := matrix.FromRows(a)
	rhs, _ := matrix.FromRows(b)

	return coefficient, rhs
}
