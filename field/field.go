// SPDX-License-Identifier: MIT

package field

import "math/big"

// DefaultTolerance is the zero threshold of the Float backend when none is set.
const DefaultTolerance = 1e-9

// Field is the scalar arithmetic used by matrix kernels.
//
// E is the element representation (*big.Rat for Rational, float64 for Float).
// Implementations must return fresh values and never modify their arguments.
type Field[E any] interface {
	// Name is a short backend label ("exact", "float").
	Name() string
	// Exact reports whether arithmetic is free of rounding.
	Exact() bool

	Zero() E
	One() E
	FromInt64(v int64) E
	FromRat(r *big.Rat) E
	// FromFloat64 converts v; NaN and ±Inf yield ErrNotFinite.
	FromFloat64(v float64) (E, error)

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	// Quo returns a/b. b must not be zero; callers guard with IsZero.
	Quo(a, b E) E
	Neg(a E) E

	// IsZero reports whether a is zero under the backend's policy.
	IsZero(a E) bool
	// Negligible reports whether a is zero relative to scale, the largest
	// magnitude of the data a was derived from. Exact backends ignore scale.
	Negligible(a E, scale float64) bool
	Equal(a, b E) bool

	// Magnitude is |a| as a float64, used for pivot selection.
	Magnitude(a E) float64
	Float64(a E) float64
	// Rat returns the exact rational value of a (nil when a is not finite).
	Rat(a E) *big.Rat
	Format(a E) string
}
