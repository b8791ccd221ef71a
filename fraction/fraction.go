// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultMaxDenominator bounds the denominators produced by FormatFloat when the
// caller has no preference.
const DefaultMaxDenominator = 1000

// Format renders r as "p/q" in lowest terms, or "p" when r is an integer.
// A nil r renders as "0".
func Format(r *big.Rat) string {
	if r == nil {
		return "0"
	}
	if r.IsInt() {
		return r.Num().String()
	}

	return r.String()
}

// Parse reads an integer ("3"), a fraction ("-3/4"), a decimal ("1.25") or a
// number in exponent form ("1e-3") into an exact rational.
//
// Errors:
//   - ErrSyntax for anything else, including a zero denominator.
func Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(s)
	if !ok || s == "" {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return r, nil
}

// Approximate returns the fraction closest to x whose denominator does not
// exceed maxDenominator.
//
// Implementation:
//   - Stage 1: Take the exact binary value of |x|; return it as is when its
//     denominator already fits.
//   - Stage 2: Walk the continued-fraction convergents until the next one would
//     exceed maxDenominator.
//   - Stage 3: Compare the last convergent with the best semiconvergent and keep
//     the closer one; ties go to the convergent.
//
// Errors:
//   - ErrNotFinite for NaN and ±Inf.
//   - ErrBadDenominator when maxDenominator < 1.
func Approximate(x float64, maxDenominator int64) (*big.Rat, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("Approximate(%v): %w", x, ErrNotFinite)
	}
	if maxDenominator < 1 {
		return nil, fmt.Errorf("Approximate(max=%d): %w", maxDenominator, ErrBadDenominator)
	}
	exact := new(big.Rat).SetFloat64(math.Abs(x))
	limit := big.NewInt(maxDenominator)
	if exact.Denom().Cmp(limit) <= 0 {
		return withSign(exact, x), nil
	}

	var (
		p0, q0 = big.NewInt(0), big.NewInt(1)
		p1, q1 = big.NewInt(1), big.NewInt(0)
		n      = new(big.Int).Set(exact.Num())
		d      = new(big.Int).Set(exact.Denom())
		a, q2  = new(big.Int), new(big.Int)
		rem    = new(big.Int)
	)
	for {
		a.QuoRem(n, d, rem)
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		n, d = d, new(big.Int).Set(rem)
	}

	// k = (max - q0) / q1; semiconvergent (p0 + k·p1) / (q0 + k·q1)
	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	if distance(conv, exact).Cmp(distance(semi, exact)) <= 0 {
		return withSign(conv, x), nil
	}

	return withSign(semi, x), nil
}

// FormatFloat renders x as the fraction Approximate picks. Values that cannot be
// approximated (NaN, ±Inf) fall back to strconv formatting; a maxDenominator
// below 1 means DefaultMaxDenominator.
func FormatFloat(x float64, maxDenominator int64) string {
	if maxDenominator < 1 {
		maxDenominator = DefaultMaxDenominator
	}
	r, err := Approximate(x, maxDenominator)
	if err != nil {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	return Format(r)
}

func distance(a, b *big.Rat) *big.Rat {
	d := new(big.Rat).Sub(a, b)

	return d.Abs(d)
}

func withSign(r *big.Rat, x float64) *big.Rat {
	if x < 0 {
		return r.Neg(r)
	}

	return r
}
