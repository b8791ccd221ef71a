// SPDX-License-Identifier: MIT
// Package linsys_test contains test helpers.

package linsys_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/field"
	"github.com/katalvlaran/lvlinalg/linsys"
	"github.com/katalvlaran/lvlinalg/matrix"
)

var (
	q  field.Rational
	fl field.Float
)

// system is an integer fixture usable with both backends.
type system struct {
	a [][]int64
	b []int64
}

func (s system) exact(t *testing.T) (*matrix.Dense[*big.Rat], []*big.Rat) {
	t.Helper()
	a, err := matrix.FromInts[*big.Rat](q, s.a)
	require.NoError(t, err)
	b := make([]*big.Rat, len(s.b))
	for i, v := range s.b {
		b[i] = q.FromInt64(v)
	}

	return a, b
}

func (s system) float(t *testing.T) (*matrix.Dense[float64], []float64) {
	t.Helper()
	a, err := matrix.FromInts[float64](fl, s.a)
	require.NoError(t, err)
	b := make([]float64, len(s.b))
	for i, v := range s.b {
		b[i] = float64(v)
	}

	return a, b
}

// strs renders exact values as "p/q" strings.
func strs(v []*big.Rat) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = q.Format(x)
	}

	return out
}

// requireSolutionProperties checks what every consistent result must satisfy:
// the particular solution solves the system, every basis vector solves the
// homogeneous system and is a unit vector on the free columns.
func requireSolutionProperties[E any](t *testing.T, f field.Field[E], a *matrix.Dense[E], b []E, res *linsys.Result[E]) {
	t.Helper()
	require.NotNil(t, res.Solution)
	require.Len(t, res.Solution.Values, res.Unknowns)
	require.Len(t, res.Basis(), res.Unknowns-res.CoefficientRank)
	require.Equal(t, res.Free, res.Solution.Free)

	ok, err := linsys.Satisfies(f, a, b, res.Particular())
	require.NoError(t, err)
	require.True(t, ok, "particular solution")

	zero := make([]E, a.Rows())
	for i := range zero {
		zero[i] = f.Zero()
	}
	for k, v := range res.Basis() {
		ok, err = linsys.Satisfies(f, a, zero, v)
		require.NoError(t, err)
		require.True(t, ok, "basis vector %d is not homogeneous", k)
		for _, fc := range res.Free {
			if fc == res.Free[k] {
				require.True(t, f.Equal(v[fc], f.One()))
			} else {
				require.True(t, f.IsZero(v[fc]))
			}
		}
	}
	for _, fc := range res.Free {
		require.True(t, f.IsZero(res.Particular()[fc]), "free variable %d must be 0", fc)
	}
}
