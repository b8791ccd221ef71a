// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/big"
)

// Rational is the exact backend over *big.Rat. The zero value is ready to use.
//
// A nil *big.Rat operand is read as zero, so zero-initialised slices of
// elements behave like zero vectors.
type Rational struct{}

var _ Field[*big.Rat] = Rational{}

func (Rational) Name() string { return "exact" }
func (Rational) Exact() bool  { return true }

func (Rational) Zero() *big.Rat { return new(big.Rat) }
func (Rational) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rational) FromInt64(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

func (Rational) FromRat(r *big.Rat) *big.Rat { return new(big.Rat).Set(orZero(r)) }

// FromFloat64 keeps the exact binary value of v (0.1 becomes 3602879701896397/36028797018963968).
// Use fraction.Approximate first when a short fraction is wanted.
func (Rational) FromFloat64(v float64) (*big.Rat, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotFinite
	}

	return new(big.Rat).SetFloat64(v), nil
}

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(orZero(a), orZero(b)) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(orZero(a), orZero(b)) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(orZero(a), orZero(b)) }
func (Rational) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(orZero(a), orZero(b)) }
func (Rational) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(orZero(a)) }

func (Rational) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }

func (r Rational) Negligible(a *big.Rat, _ float64) bool { return r.IsZero(a) }

func (Rational) Equal(a, b *big.Rat) bool { return orZero(a).Cmp(orZero(b)) == 0 }

func (r Rational) Magnitude(a *big.Rat) float64 { return math.Abs(r.Float64(a)) }

func (Rational) Float64(a *big.Rat) float64 {
	v, _ := orZero(a).Float64()
	return v
}

func (Rational) Rat(a *big.Rat) *big.Rat { return new(big.Rat).Set(orZero(a)) }

// Format renders a as "p/q", or "p" when the denominator is 1.
func (Rational) Format(a *big.Rat) string { return orZero(a).RatString() }

var ratZero = new(big.Rat)

func orZero(a *big.Rat) *big.Rat {
	if a == nil {
		return ratZero
	}
	return a
}
