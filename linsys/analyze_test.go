// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	scenarioUnique       = system{a: [][]int64{{1, -2}, {2, -1}}, b: []int64{3, 0}}
	scenarioInfinite     = system{a: [][]int64{{1, 3, 1, 1}, {2, -2, 1, 2}, {3, 1, 2, -1}}, b: []int64{3, 8, -1}}
	scenarioInconsistent = system{a: [][]int64{{1, 1}, {1, 1}}, b: []int64{1, 2}}
	scenarioZero         = system{a: [][]int64{{0, 0}, {0, 0}}, b: []int64{0, 0}}
)

func TestAnalyze_ScenarioUnique(t *testing.T) {
	a, b := scenarioUnique.exact(t)
	res, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, res.Classification)
	require.Equal(t, "UNIQUE", res.Classification.String())
	x, ok := res.Unique()
	require.True(t, ok)
	require.Equal(t, []string{"-1", "-2"}, strs(x))
	require.Empty(t, res.Basis())
	require.Empty(t, res.Free)
	require.False(t, res.Homogeneous)
	requireSolutionProperties(t, q, a, b, res)

	fa, fb := scenarioUnique.float(t)
	fres, err := linsys.Analyze(fl, fa, fb)
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, fres.Classification)
	fx, ok := fres.Unique()
	require.True(t, ok)
	require.InDeltaSlice(t, []float64{-1, -2}, fx, 1e-12)
	requireSolutionProperties(t, fl, fa, fb, fres)
}

func TestAnalyze_ScenarioInfinite(t *testing.T) {
	a, b := scenarioInfinite.exact(t)
	res, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, res.Classification)
	require.Equal(t, 3, res.CoefficientRank)
	require.Equal(t, 3, res.AugmentedRank)
	require.Equal(t, []int{0, 1, 3}, res.Pivots)
	require.Equal(t, []int{2}, res.Free)
	require.Equal(t, 1, res.FreeCount())
	require.Equal(t, []string{"3/4", "-1/4", "0", "3"}, strs(res.Particular()))
	require.Len(t, res.Basis(), 1)
	require.Equal(t, []string{"-5/8", "-1/8", "1", "0"}, strs(res.Basis()[0]))
	_, ok := res.Unique()
	require.False(t, ok)
	requireSolutionProperties(t, q, a, b, res)

	fa, fb := scenarioInfinite.float(t)
	fres, err := linsys.Analyze(fl, fa, fb)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, fres.Classification)
	require.Equal(t, []int{0, 1, 3}, fres.Pivots)
	require.InDeltaSlice(t, []float64{0.75, -0.25, 0, 3}, fres.Particular(), 1e-12)
	require.InDeltaSlice(t, []float64{-0.625, -0.125, 1, 0}, fres.Basis()[0], 1e-12)
	requireSolutionProperties(t, fl, fa, fb, fres)
}

func TestAnalyze_ScenarioInconsistent(t *testing.T) {
	a, b := scenarioInconsistent.exact(t)
	res, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)
	require.Equal(t, linsys.Inconsistent, res.Classification)
	require.Equal(t, 1, res.CoefficientRank)
	require.Equal(t, 2, res.AugmentedRank)
	require.Nil(t, res.Solution)
	require.Nil(t, res.Particular())
	require.Nil(t, res.Basis())
	require.False(t, res.Consistent())

	fa, fb := scenarioInconsistent.float(t)
	fres, err := linsys.Analyze(fl, fa, fb)
	require.NoError(t, err)
	require.Equal(t, linsys.Inconsistent, fres.Classification)
	require.Nil(t, fres.Solution)
}

func TestAnalyze_ScenarioZero(t *testing.T) {
	a, b := scenarioZero.exact(t)
	res, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, res.Classification)
	require.True(t, res.Homogeneous)
	require.Empty(t, res.Pivots)
	require.Equal(t, []int{0, 1}, res.Free)
	require.Equal(t, []string{"0", "0"}, strs(res.Particular()))
	require.Len(t, res.Basis(), 2)
	require.Equal(t, []string{"1", "0"}, strs(res.Basis()[0]))
	require.Equal(t, []string{"0", "1"}, strs(res.Basis()[1]))
	requireSolutionProperties(t, q, a, b, res)

	fa, fb := scenarioZero.float(t)
	fres, err := linsys.Analyze(fl, fa, fb)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, fres.Classification)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, fres.Basis())
}

func TestAnalyze_EdgeCases(t *testing.T) {
	t.Run("zero coefficient nonzero rhs", func(t *testing.T) {
		for _, n := range []int{1, 3, 5} {
			a, err := matrix.New[*big.Rat](q, 2, n)
			require.NoError(t, err)
			res, err := linsys.Analyze(q, a, []*big.Rat{q.Zero(), q.FromInt64(4)})
			require.NoError(t, err)
			require.Equal(t, linsys.Inconsistent, res.Classification, "n=%d", n)
		}
	})

	t.Run("homogeneous is never inconsistent", func(t *testing.T) {
		s := system{a: [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}, b: []int64{0, 0, 0}}
		a, b := s.exact(t)
		res, err := linsys.Analyze(q, a, b)
		require.NoError(t, err)
		require.True(t, res.Homogeneous)
		require.Equal(t, linsys.Infinite, res.Classification)
		require.Equal(t, []string{"0", "0", "0"}, strs(res.Particular()))
		requireSolutionProperties(t, q, a, b, res)

		s = system{a: [][]int64{{2, 1}, {1, 3}}, b: []int64{0, 0}}
		a, b = s.exact(t)
		res, err = linsys.Analyze(q, a, b)
		require.NoError(t, err)
		require.Equal(t, linsys.Unique, res.Classification)
		require.Equal(t, []string{"0", "0"}, strs(res.Particular()))

		// residues below the tolerance must not surface as a pivot in column n
		fa, err := matrix.FromFloats[float64](fl, [][]float64{{1}, {1}})
		require.NoError(t, err)
		fres, err := linsys.Analyze(fl, fa, []float64{6e-10, -6e-10})
		require.NoError(t, err)
		require.True(t, fres.Homogeneous)
		require.Equal(t, linsys.Unique, fres.Classification)
		require.Equal(t, fres.CoefficientRank, fres.AugmentedRank)
		require.Equal(t, []float64{0}, fres.Particular())
	})

	t.Run("no equations", func(t *testing.T) {
		a, err := matrix.New[*big.Rat](q, 0, 3)
		require.NoError(t, err)
		res, err := linsys.Analyze(q, a, nil)
		require.NoError(t, err)
		require.Equal(t, linsys.Infinite, res.Classification)
		require.Empty(t, res.Pivots)
		require.Equal(t, []int{0, 1, 2}, res.Free)
		require.Equal(t, []string{"0", "0", "0"}, strs(res.Particular()))
		require.Len(t, res.Basis(), 3)
		require.Equal(t, []string{"0", "0", "1"}, strs(res.Basis()[2]))
	})

	t.Run("no unknowns", func(t *testing.T) {
		res, err := linsys.AnalyzeRows(q, [][]*big.Rat{{}, {}}, []*big.Rat{q.Zero(), q.Zero()})
		require.NoError(t, err)
		require.Equal(t, linsys.Unique, res.Classification)
		require.Empty(t, res.Particular())

		res, err = linsys.AnalyzeRows(q, [][]*big.Rat{{}, {}}, []*big.Rat{q.Zero(), q.One()})
		require.NoError(t, err)
		require.Equal(t, linsys.Inconsistent, res.Classification)
	})

	t.Run("wide system", func(t *testing.T) {
		s := system{a: [][]int64{{1, 2, -1}, {2, 4, 1}, {3, 6, 0}}, b: []int64{3, 9, 12}}
		a, b := s.exact(t)
		res, err := linsys.Analyze(q, a, b)
		require.NoError(t, err)
		require.Equal(t, linsys.Infinite, res.Classification)
		require.Equal(t, []int{0, 2}, res.Pivots)
		require.Equal(t, []string{"4", "0", "1"}, strs(res.Particular()))
		require.Equal(t, []string{"-2", "1", "0"}, strs(res.Basis()[0]))
	})
}

func TestAnalyze_Errors(t *testing.T) {
	a, _ := scenarioUnique.exact(t)
	_, err := linsys.Analyze(q, a, []*big.Rat{q.One()})
	require.ErrorIs(t, err, linsys.ErrDimension)

	_, err = linsys.Analyze[*big.Rat](q, nil, nil)
	require.ErrorIs(t, err, linsys.ErrInvalidMatrix)

	_, err = linsys.AnalyzeRows(fl, [][]float64{{1, 2}, {3}}, []float64{1, 2})
	require.ErrorIs(t, err, linsys.ErrInvalidMatrix)
	require.ErrorIs(t, err, matrix.ErrNonRectangular)
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	a, b := scenarioInfinite.exact(t)
	before := a.Format(q)
	_, err := linsys.Analyze(q, a, b)
	require.NoError(t, err)
	require.Equal(t, before, a.Format(q))
	require.Equal(t, []string{"3", "8", "-1"}, strs(b))
}

func TestAnalyze_Idempotent(t *testing.T) {
	for _, s := range []system{scenarioUnique, scenarioInfinite, scenarioInconsistent, scenarioZero} {
		a, b := s.exact(t)
		first, err := linsys.Analyze(q, a, b)
		require.NoError(t, err)
		second, err := linsys.Analyze(q, a, b)
		require.NoError(t, err)
		require.Equal(t, first.Classification, second.Classification)
		require.Equal(t, first.Pivots, second.Pivots)
		require.Equal(t, first.Reduced.Matrix.Format(q), second.Reduced.Matrix.Format(q))
		if first.Solution != nil {
			require.Equal(t, strs(first.Particular()), strs(second.Particular()))
			for k := range first.Basis() {
				require.Equal(t, strs(first.Basis()[k]), strs(second.Basis()[k]))
			}
		}

		fa, fb := s.float(t)
		ff, err := linsys.Analyze(fl, fa, fb)
		require.NoError(t, err)
		fs, err := linsys.Analyze(fl, fa, fb)
		require.NoError(t, err)
		require.Equal(t, ff, fs)
	}
}

// TestAnalyze_RandomSystems checks the rank invariants on generated systems:
// full-rank squares are UNIQUE, dependent rows with a consistent rhs are
// INFINITE, and breaking that rhs makes them INCONSISTENT.
func TestAnalyze_RandomSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	draw := func() int64 { return rng.Int63n(11) - 5 }

	for iter := 0; iter < 50; iter++ {
		n := 2 + rng.Intn(3)
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, n)
			for j := range rows[i] {
				rows[i][j] = draw()
			}
		}
		x0 := make([]int64, n)
		for j := range x0 {
			x0[j] = draw()
		}
		b := make([]int64, n)
		for i := range rows {
			for j := range rows[i] {
				b[i] += rows[i][j] * x0[j]
			}
		}

		// square with the given rows
		s := system{a: rows, b: b}
		a, rb := s.exact(t)
		rank, err := matrix.Rank(q, a)
		require.NoError(t, err)
		res, err := linsys.Analyze(q, a, rb)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.AugmentedRank, res.CoefficientRank)
		require.Equal(t, rank, res.CoefficientRank)
		if rank == n {
			require.Equal(t, linsys.Unique, res.Classification)
			x, _ := res.Unique()
			want := make([]string, n)
			for j, v := range x0 {
				want[j] = q.Format(q.FromInt64(v))
			}
			require.Equal(t, want, strs(x))
		} else {
			require.Equal(t, linsys.Infinite, res.Classification)
		}
		requireSolutionProperties(t, q, a, rb, res)

		fa, fb := s.float(t)
		fres, err := linsys.Analyze(fl, fa, fb)
		require.NoError(t, err)
		require.Equal(t, res.Classification, fres.Classification)
		requireSolutionProperties(t, fl, fa, fb, fres)

		// append a dependent row: sum of the first two equations
		dep := system{a: append(append([][]int64{}, rows...), sumRows(rows[0], rows[1])), b: append(append([]int64{}, b...), b[0]+b[1])}
		a, rb = dep.exact(t)
		res, err = linsys.Analyze(q, a, rb)
		require.NoError(t, err)
		require.Equal(t, rank, res.CoefficientRank)
		require.NotEqual(t, linsys.Inconsistent, res.Classification)
		requireSolutionProperties(t, q, a, rb, res)

		// and break its rhs: the dependent equation now contradicts the first two
		dep.b[n]++
		a, rb = dep.exact(t)
		res, err = linsys.Analyze(q, a, rb)
		require.NoError(t, err)
		require.Equal(t, res.Classification == linsys.Inconsistent, res.CoefficientRank < res.AugmentedRank)
		require.Equal(t, linsys.Inconsistent, res.Classification)
		require.Nil(t, res.Solution)
	}
}

func sumRows(a, b []int64) []int64 {
	out := make([]int64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

func TestAnalyze_FloatToleranceDiffersFromExact(t *testing.T) {
	fa, err := matrix.FromFloats[float64](fl, [][]float64{{1, 1}, {1, 1 + 1e-12}})
	require.NoError(t, err)
	fb := []float64{2, 2}

	fres, err := linsys.Analyze(fl, fa, fb)
	require.NoError(t, err)
	require.Equal(t, linsys.Infinite, fres.Classification)

	qa, err := matrix.Convert(fl, q, fa)
	require.NoError(t, err)
	qres, err := linsys.Analyze(q, qa, []*big.Rat{q.FromInt64(2), q.FromInt64(2)})
	require.NoError(t, err)
	require.Equal(t, linsys.Unique, qres.Classification)
}
