// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestDeterminant(t *testing.T) {
	rows := [][]int64{{-3, 0, 0, 0}, {4, 1, 0, 0}, {-1, 4, -4, 0}, {0, 3, 2, 3}}
	d, err := matrix.Determinant(q, MustRat(t, rows))
	require.NoError(t, err)
	require.Equal(t, "36", q.Format(d))

	m := MustRat(t, [][]int64{{0, 1}, {1, 0}})
	d, err = matrix.Determinant(q, m)
	require.NoError(t, err)
	require.Equal(t, "-1", q.Format(d), "row swap flips the sign")

	d, err = matrix.Determinant(q, MustRat(t, [][]int64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.True(t, q.IsZero(d))

	empty, err := matrix.New[*big.Rat](q, 0, 0)
	require.NoError(t, err)
	d, err = matrix.Determinant(q, empty)
	require.NoError(t, err)
	require.Equal(t, "1", q.Format(d))

	_, err = matrix.Determinant(q, MustRat(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_FloatMatchesGonum(t *testing.T) {
	rows := [][]float64{{4, 2, 1}, {3, 5, 2}, {2, 1, 3}}
	a := MustFloat(t, rows)
	d, err := matrix.Determinant(fl, a)
	require.NoError(t, err)

	g, err := matrix.ToGonum(fl, a)
	require.NoError(t, err)
	require.InDelta(t, mat.Det(g), d, 1e-9)
	require.InDelta(t, 35.0, d, 1e-9)
}

func TestInverse(t *testing.T) {
	a := MustRat(t, [][]int64{{4, 2, 1}, {3, 5, 2}, {2, 1, 3}})
	inv, err := matrix.Inverse(q, a)
	require.NoError(t, err)

	prod, err := matrix.Mul(q, a, inv)
	require.NoError(t, err)
	id, err := matrix.Identity[*big.Rat](q, 3)
	require.NoError(t, err)
	require.Equal(t, RatStrings(id), RatStrings(prod))
	require.Equal(t, "13/35", VecStrings(inv.RowSlices()[0])[0])

	_, err = matrix.Inverse(q, MustRat(t, [][]int64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(fl, MustFloat(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_FloatMatchesGonum(t *testing.T) {
	a := MustFloat(t, [][]float64{{4, 2, 1}, {3, 5, 2}, {2, 1, 3}})
	inv, err := matrix.Inverse(fl, a)
	require.NoError(t, err)

	g, err := matrix.ToGonum(fl, a)
	require.NoError(t, err)
	var want mat.Dense
	require.NoError(t, want.Inverse(g))
	RequireCloseRows(t, matrix.FromGonum(&want).RowSlices(), inv, 1e-12)
}

func TestAdjugate(t *testing.T) {
	adj, err := matrix.Adjugate(q, MustRat(t, [][]int64{{1, 0, -1}, {-1, 1, 0}, {0, -1, 1}}))
	require.NoError(t, err)
	require.Equal(t, [][]string{{"1", "1", "1"}, {"1", "1", "1"}, {"1", "1", "1"}}, RatStrings(adj))

	a := MustRat(t, [][]int64{{1, 2, -1}, {3, 1, 1}, {0, 4, 7}})
	adj, err = matrix.Adjugate(q, a)
	require.NoError(t, err)
	d, err := matrix.Determinant(q, a)
	require.NoError(t, err)
	require.Equal(t, "-51", q.Format(d))

	lhs, err := matrix.Mul(q, a, adj)
	require.NoError(t, err)
	id, _ := matrix.Identity[*big.Rat](q, 3)
	rhs, err := matrix.Scale(q, d, id)
	require.NoError(t, err)
	require.Equal(t, RatStrings(rhs), RatStrings(lhs))
}

func TestMinorAndCofactor(t *testing.T) {
	a := MustRat(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})
	mi, err := matrix.Minor(a, 0, 1)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"4", "6"}, {"7", "10"}}, RatStrings(mi))

	c, err := matrix.Cofactor(q, a, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "2", q.Format(c))

	_, err = matrix.Minor(a, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
