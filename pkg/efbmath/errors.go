// pkg/efbmath/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package efbmath

import "errors"

// Sentinel errors for the measurement taxonomy. Callers should use
// errors.Is against these, not string matching.
var (
	// ErrUnitMismatch is returned when combining angles with incompatible
	// reference axes (e.g. adding a true-north angle to a magnetic-north
	// one) without an explicit variation conversion.
	ErrUnitMismatch = errors.New("efbmath: incompatible angle reference axes")

	// ErrNegativeValue is returned by constructors of quantities that must
	// be non-negative (length, mass, volume, speed) when given a negative
	// magnitude.
	ErrNegativeValue = errors.New("efbmath: negative magnitude not allowed")

	// ErrNotFinite is returned when a constructed quantity would be NaN or
	// infinite.
	ErrNotFinite = errors.New("efbmath: value must be finite")
)
