// SPDX-License-Identifier: MIT

package fraction

import "errors"

var (
	// ErrNotFinite is returned when NaN or ±Inf is approximated.
	ErrNotFinite = errors.New("fraction: NaN or Inf value")

	// ErrBadDenominator is returned for a maximum denominator below 1.
	ErrBadDenominator = errors.New("fraction: max denominator must be >= 1")

	// ErrSyntax is returned by Parse for text that is not a number.
	ErrSyntax = errors.New("fraction: invalid number")
)
