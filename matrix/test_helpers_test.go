// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for both backends.
//   - Compare exact results as rational strings so failures read like the math.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	q  field.Rational
	fl field.Float
)

// MustRat builds an exact matrix from integer rows or fails the test.
func MustRat(t *testing.T, rows [][]int64) *matrix.Dense[*big.Rat] {
	t.Helper()
	m, err := matrix.FromInts[*big.Rat](q, rows)
	require.NoError(t, err)

	return m
}

// MustFloat builds a float matrix from rows or fails the test.
func MustFloat(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromFloats[float64](fl, rows)
	require.NoError(t, err)

	return m
}

// RatVec converts integers into exact elements.
func RatVec(vals ...int64) []*big.Rat {
	out := make([]*big.Rat, len(vals))
	for i, v := range vals {
		out[i] = q.FromInt64(v)
	}

	return out
}

// RatStrings renders an exact matrix as rows of "p/q" strings.
func RatStrings(m *matrix.Dense[*big.Rat]) [][]string {
	rows := m.RowSlices()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = VecStrings(row)
	}

	return out
}

// VecStrings renders an exact vector as "p/q" strings.
func VecStrings(v []*big.Rat) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = q.Format(x)
	}

	return out
}

// RequireCloseRows compares a float matrix against expected rows within delta.
func RequireCloseRows(t *testing.T, want [][]float64, got *matrix.Dense[float64], delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), got.Cols(), "cols")
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, v, delta, "at [%d,%d]", i, j)
		}
	}
}
