// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrNotFinite is returned when a NaN or ±Inf value is offered to a backend.
	ErrNotFinite = errors.New("field: NaN or Inf value")

	// ErrBadTolerance is returned by NewFloat for negative or non-finite tolerances.
	ErrBadTolerance = errors.New("field: tolerance must be finite and >= 0")
)
