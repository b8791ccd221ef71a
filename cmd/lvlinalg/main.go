// SPDX-License-Identifier: MIT

// Command lvlinalg analyzes linear systems and runs the matrix kernels on
// systems read from YAML files or taken from the built-in presets.
//
//	lvlinalg solve -f system.yaml
//	lvlinalg solve --preset infinite --decimal
//	lvlinalg check --preset unique --x -1,-2
package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/render"
)

var log = logging.Logger("lvlinalg")

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	file    string
	preset  string
	float   bool
	tol     float64
	maxDen  int64
	decimal bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:          "lvlinalg",
		Short:        "linear system analysis and matrix toolkit",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			return logging.SetLogLevel("lvlinalg", level)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVarP(&opts.file, "file", "f", "", "system file (yaml)")
	pf.StringVar(&opts.preset, "preset", "", "built-in system ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.BoolVar(&opts.float, "float", false, "use the float backend regardless of the file")
	pf.Float64Var(&opts.tol, "tol", 0, "float zero tolerance (0 keeps the file's value)")
	pf.Int64Var(&opts.maxDen, "max-den", 0, "max denominator when printing floats as fractions (0 keeps the file's value)")
	pf.BoolVar(&opts.decimal, "decimal", false, "print matrices with decimals instead of fractions")

	root.AddCommand(
		newSolveCmd(opts),
		newRREFCmd(opts),
		newDetCmd(opts),
		newInverseCmd(opts),
		newEigenCmd(opts),
		newCheckCmd(opts),
	)

	return root
}

// loadConfig resolves the system named by --file or --preset and applies the
// backend overrides.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case opts.file != "" && opts.preset != "":
		return nil, errors.New("use either --file or --preset, not both")
	case opts.preset != "":
		if cfg = config.GetPreset(opts.preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", opts.preset, strings.Join(config.ListPresets(), ", "))
		}
	case opts.file != "":
		if cfg, err = config.Load(opts.file); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("no system given: pass --file or --preset")
	}

	if opts.float {
		cfg.Backend = config.BackendFloat
	}
	if opts.tol > 0 {
		cfg.Tolerance = opts.tol
	}
	if opts.maxDen > 0 {
		cfg.MaxDenominator = opts.maxDen
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debugf("system %q: %d equations, %d unknowns, backend %s", cfg.Name, len(cfg.Coefficients), cfg.Columns(), cfg.Backend)

	return cfg, nil
}

func (o *globalOptions) render(cfg *config.Config) render.Options {
	return render.Options{Decimal: o.decimal, MaxDenominator: cfg.MaxDenominator}
}

// system is a parsed system on one backend.
type system[E any] struct {
	f field.Field[E]
	a *matrix.Dense[E]
	b []E
}

// runOn builds the system on the configured backend and hands it to the
// matching callback.
func runOn(cfg *config.Config, exact func(system[*big.Rat]) error, float func(system[float64]) error) error {
	if cfg.Backend == config.BackendFloat {
		a, b, err := cfg.BuildFloat()
		if err != nil {
			return err
		}
		return float(system[float64]{f: cfg.Float(), a: a, b: b})
	}
	a, b, err := cfg.BuildRational()
	if err != nil {
		return err
	}

	return exact(system[*big.Rat]{f: field.Rational{}, a: a, b: b})
}
