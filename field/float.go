// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/big"
	"strconv"
)

// Float is the float64 backend.
//
// Tol is the zero threshold; the zero value means DefaultTolerance. A value a is
// zero when |a| <= Tol, and negligible against scale when |a| <= Tol·max(1, scale).
// Classification of near-singular systems depends on Tol and may differ from
// what exact arithmetic would report.
type Float struct {
	Tol float64
}

var _ Field[float64] = Float{}

// NewFloat returns a Float backend with the given tolerance (0 selects DefaultTolerance).
func NewFloat(tol float64) (Float, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return Float{}, ErrBadTolerance
	}

	return Float{Tol: tol}, nil
}

// Tolerance returns the effective zero threshold.
func (f Float) Tolerance() float64 {
	if f.Tol == 0 {
		return DefaultTolerance
	}
	return f.Tol
}

func (Float) Name() string { return "float" }
func (Float) Exact() bool  { return false }

func (Float) Zero() float64             { return 0 }
func (Float) One() float64              { return 1 }
func (Float) FromInt64(v int64) float64 { return float64(v) }
func (Float) FromRat(r *big.Rat) float64 {
	if r == nil {
		return 0
	}
	v, _ := r.Float64()
	return v
}

func (Float) FromFloat64(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}

	return v, nil
}

func (Float) Add(a, b float64) float64 { return a + b }
func (Float) Sub(a, b float64) float64 { return a - b }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Quo(a, b float64) float64 { return a / b }
func (Float) Neg(a float64) float64    { return -a }

func (f Float) IsZero(a float64) bool { return math.Abs(a) <= f.Tolerance() }

func (f Float) Negligible(a float64, scale float64) bool {
	return math.Abs(a) <= f.Tolerance()*math.Max(1, math.Abs(scale))
}

// Equal compares a and b relative to the larger of the two magnitudes.
func (f Float) Equal(a, b float64) bool {
	return f.Negligible(a-b, math.Max(math.Abs(a), math.Abs(b)))
}

func (Float) Magnitude(a float64) float64 { return math.Abs(a) }
func (Float) Float64(a float64) float64   { return a }

func (Float) Rat(a float64) *big.Rat {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return nil
	}
	return new(big.Rat).SetFloat64(a)
}

// Format renders a with the shortest decimal representation that round-trips.
func (Float) Format(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
