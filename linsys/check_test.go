// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestResidual(t *testing.T) {
	a, b := scenarioUnique.exact(t)
	r, err := linsys.Residual(q, a, []*big.Rat{q.FromInt64(-1), q.FromInt64(-2)}, b)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0"}, strs(r))

	r, err = linsys.Residual(q, a, []*big.Rat{q.FromInt64(1), q.FromInt64(0)}, b)
	require.NoError(t, err)
	require.Equal(t, []string{"-2", "2"}, strs(r))

	_, err = linsys.Residual(q, a, []*big.Rat{q.One()}, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = linsys.Residual(q, a, []*big.Rat{q.One(), q.One()}, b[:1])
	require.ErrorIs(t, err, linsys.ErrDimension)
	_, err = linsys.Residual[*big.Rat](q, nil, nil, nil)
	require.ErrorIs(t, err, linsys.ErrInvalidMatrix)
}

func TestSatisfies(t *testing.T) {
	a, b := scenarioInfinite.exact(t)
	ok, err := linsys.Satisfies(q, a, b, []*big.Rat{big.NewRat(3, 4), big.NewRat(-1, 4), q.Zero(), q.FromInt64(3)})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = linsys.Satisfies(q, a, b, []*big.Rat{q.Zero(), q.Zero(), q.Zero(), q.FromInt64(3)})
	require.NoError(t, err)
	require.False(t, ok)

	fa, fb := scenarioUnique.float(t)
	ok, err = linsys.Satisfies(fl, fa, fb, []float64{-1 + 1e-13, -2})
	require.NoError(t, err)
	require.True(t, ok, "float residue below tolerance")
	ok, err = linsys.Satisfies(fl, fa, fb, []float64{-1.001, -2})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = linsys.Satisfies(fl, fa, fb, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSatisfies_FloatScalesWithX(t *testing.T) {
	a, err := matrix.FromFloats[float64](fl, [][]float64{{1, -1}})
	require.NoError(t, err)
	b := []float64{0}

	// the same residual of 0.01 is rejected for a small x and accepted for a
	// large one, since the tolerance is measured against |A|·Σ|x|
	ok, err := linsys.Satisfies(fl, a, b, []float64{1, 1.01})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = linsys.Satisfies(fl, a, b, []float64{1e8, 1e8 + 0.01})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSolutionAt(t *testing.T) {
	a, b := scenarioInfinite.exact(t)
	res, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)

	x, err := res.Solution.At(q, []*big.Rat{q.FromInt64(8)})
	require.NoError(t, err)
	require.Equal(t, []string{"-17/4", "-5/4", "8", "3"}, strs(x))
	ok, err := linsys.Satisfies(q, a, b, x)
	require.NoError(t, err)
	require.True(t, ok)

	// the particular solution itself is not touched
	require.Equal(t, []string{"3/4", "-1/4", "0", "3"}, strs(res.Particular()))

	_, err = res.Solution.At(q, nil)
	require.ErrorIs(t, err, linsys.ErrParameterCount)

	ua, ub := scenarioUnique.exact(t)
	ures, err := linsys.Analyze(q, ua, ub)
	require.NoError(t, err)
	x, err = ures.Solution.At(q, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"-1", "-2"}, strs(x))
}

func TestClassificationString(t *testing.T) {
	require.Equal(t, "INCONSISTENT", linsys.Inconsistent.String())
	require.Equal(t, "INFINITE", linsys.Infinite.String())
	require.Equal(t, "Classification(9)", linsys.Classification(9).String())
}
