// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownBackend indicates a backend other than "exact" or "float".
	ErrUnknownBackend = errors.New("config: unknown backend")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("config: tolerance must be finite and >= 0")

	// ErrBadDenominator indicates a max_denominator below 1.
	ErrBadDenominator = errors.New("config: max_denominator must be >= 1")

	// ErrRagged indicates coefficient rows of differing length, or an unknowns
	// count that disagrees with them.
	ErrRagged = errors.New("config: coefficient rows differ in length")
)
