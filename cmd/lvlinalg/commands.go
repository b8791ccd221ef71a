// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/big"
	"math/cmplx"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/fraction"
	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/render"
)

func newSolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "classify the system and print its solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, ro := cmd.OutOrStdout(), opts.render(cfg)
			return runOn(cfg,
				func(s system[*big.Rat]) error { return solve(out, s, ro) },
				func(s system[float64]) error { return solve(out, s, ro) },
			)
		},
	}
}

func solve[E any](w io.Writer, s system[E], ro render.Options) error {
	res, err := linsys.Analyze(s.f, s.a, s.b)
	if err != nil {
		return err
	}
	log.Debugf("analysis: %s, rank(A)=%d, rank([A|b])=%d", res.Classification, res.CoefficientRank, res.AugmentedRank)

	return render.Report(w, s.f, res, ro)
}

func newRREFCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rref",
		Short: "reduced row echelon form of [A | b], or of A when there is no rhs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, ro := cmd.OutOrStdout(), opts.render(cfg)
			return runOn(cfg,
				func(s system[*big.Rat]) error { return rref(out, s, ro) },
				func(s system[float64]) error { return rref(out, s, ro) },
			)
		},
	}
}

func rref[E any](w io.Writer, s system[E], ro render.Options) error {
	m := s.a
	if len(s.b) > 0 {
		var err error
		if m, err = matrix.Augment(s.a, s.b); err != nil {
			return err
		}
	}
	rf, err := matrix.RREF(s.f, m)
	if err != nil {
		return err
	}
	cols := make([]string, len(rf.Pivots))
	for i, j := range rf.Pivots {
		cols[i] = fmt.Sprint(j + 1)
	}
	if err = render.Matrix(w, s.f, rf.Matrix, ro); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "rank: %d\npivot columns: %s\n", rf.Rank(), strings.Join(cols, ", "))

	return err
}

func newDetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "determinant of the coefficient matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, ro := cmd.OutOrStdout(), opts.render(cfg)
			return runOn(cfg,
				func(s system[*big.Rat]) error { return det(out, s, ro) },
				func(s system[float64]) error { return det(out, s, ro) },
			)
		},
	}
}

func det[E any](w io.Writer, s system[E], ro render.Options) error {
	d, err := matrix.Determinant(s.f, s.a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "det(A) = %s\n", render.Cell(s.f, d, ro))

	return err
}

func newInverseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse",
		Short: "inverse of the coefficient matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, ro := cmd.OutOrStdout(), opts.render(cfg)
			return runOn(cfg,
				func(s system[*big.Rat]) error { return inverse(out, s, ro) },
				func(s system[float64]) error { return inverse(out, s, ro) },
			)
		},
	}
}

func inverse[E any](w io.Writer, s system[E], ro render.Options) error {
	inv, err := matrix.Inverse(s.f, s.a)
	if err != nil {
		return err
	}

	return render.Matrix(w, s.f, inv, ro)
}

func newEigenCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eigen",
		Short: "eigenvalues with multiplicities; eigenvectors for symmetric matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return runOn(cfg,
				func(s system[*big.Rat]) error { return eigen(out, s) },
				func(s system[float64]) error { return eigen(out, s) },
			)
		},
	}
}

func eigen[E any](w io.Writer, s system[E]) error {
	spec, err := matrix.Eigen(s.f, s.a)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, ev := range spec.Values {
		if ev.IsReal() {
			fmt.Fprintf(&sb, "λ = %.6g  (algebraic %d, geometric %d)\n", real(ev.Value), ev.Algebraic, ev.Geometric)
			for _, v := range ev.Vectors {
				fmt.Fprintf(&sb, "    v = %s\n", render.Vector(field.Float{}, v, render.Options{Decimal: true}))
			}
		} else {
			fmt.Fprintf(&sb, "λ = %.6g%+.6gi  (algebraic %d)\n", real(ev.Value), imag(ev.Value), ev.Algebraic)
		}
	}
	if spec.Real {
		fmt.Fprintf(&sb, "diagonalizable: %t\n", spec.Diagonalizable)
	} else {
		fmt.Fprintf(&sb, "complex spectrum (|λ|max = %.6g), not diagonalizable over the reals\n", spectralRadius(spec))
	}

	if sym, _ := matrix.IsSymmetric(s.f, s.a); sym && s.a.Rows() > 0 {
		vals, vecs, err := matrix.EigenSym(s.f, s.a)
		if err != nil {
			return err
		}
		sb.WriteString("orthonormal eigenvectors (columns):\n")
		sb.WriteString(render.FormatMatrix(field.Float{}, vecs, render.Options{Decimal: true}))
		fmt.Fprintf(&sb, "\nfor λ = %v\n", vals)
	}
	_, err = io.WriteString(w, sb.String())

	return err
}

func spectralRadius(s *matrix.Spectrum) float64 {
	var r float64
	for _, ev := range s.Values {
		r = max(r, cmplx.Abs(ev.Value))
	}

	return r
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var raw []string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "substitute a candidate solution into the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, ro := cmd.OutOrStdout(), opts.render(cfg)
			return runOn(cfg,
				func(s system[*big.Rat]) error { return check(out, s, raw, ro) },
				func(s system[float64]) error { return check(out, s, raw, ro) },
			)
		},
	}
	cmd.Flags().StringSliceVar(&raw, "x", nil, "candidate solution, comma separated (fractions allowed)")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}

func check[E any](w io.Writer, s system[E], raw []string, ro render.Options) error {
	x := make([]E, len(raw))
	for i, txt := range raw {
		r, err := fraction.Parse(txt)
		if err != nil {
			return fmt.Errorf("--x[%d]: %w", i, err)
		}
		x[i] = s.f.FromRat(r)
	}
	ok, err := linsys.Satisfies(s.f, s.a, s.b, x)
	if err != nil {
		return err
	}
	residual, err := linsys.Residual(s.f, s.a, x, s.b)
	if err != nil {
		return err
	}
	verdict := "x is NOT a solution"
	if ok {
		verdict = "x is a solution"
	}
	_, err = fmt.Fprintf(w, "A·x - b = %s\n%s\n", render.Vector(s.f, residual, ro), verdict)

	return err
}
