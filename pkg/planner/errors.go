// pkg/planner/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import "errors"

// Sentinel errors for the planner's precondition checks.
var (
	// ErrStationCountMismatch is returned when the supplied station-mass
	// vector's length does not match the aircraft's station count.
	ErrStationCountMismatch = errors.New("planner: station mass count mismatch")

	// ErrTankOverflow is returned when the fuel on ramp exceeds the
	// aircraft's total usable tank capacity.
	ErrTankOverflow = errors.New("planner: fuel exceeds total tank capacity")

	// ErrBelowMinimumFuel is returned by a ManualFuel policy whose
	// declared quantity is below the computed minimum fuel.
	ErrBelowMinimumFuel = errors.New("planner: manual fuel below minimum required")
)
