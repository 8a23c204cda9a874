// pkg/efbmath/core.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package efbmath provides the typed measurement values (angle, length,
// duration, mass, speed, volume, fuel, fuel flow, wind, vertical distance)
// and the great-circle geography the rest of the planning core is built
// from.
package efbmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Degrees converts an angle in radians to degrees.
func Degrees(r float64) float64 { return r * 180 / math.Pi }

// Radians converts an angle in degrees to radians.
func Radians(d float64) float64 { return d * math.Pi / 180 }

// Abs returns the absolute value of x for any ordered, signed numeric type.
func Abs[V constraints.Signed | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the closed interval [low, high].
func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// SafeAsin clamps its argument to [-1, 1] before calling math.Asin so that
// floating-point roundoff at the domain boundary (e.g. a wind-correction
// ratio of 1.0000000002) doesn't produce a NaN.
func SafeAsin(x float64) float64 { return math.Asin(Clamp(x, -1, 1)) }

// NormalizeRadians reduces a to the half-open interval [0, 2π).
func NormalizeRadians(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// roundHalfToEven rounds x to the nearest integer, breaking ties toward
// the nearest even integer (banker's rounding). ETE is rounded this way
// so repeatedly re-deriving it from distance and ground speed doesn't
// drift from systematically rounding up or down.
func roundHalfToEven(x float64) float64 {
	floor := math.Floor(x)
	diff := x - floor
	switch {
	case diff < 0.5:
		return floor
	case diff > 0.5:
		return floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			return floor
		}
		return floor + 1
	}
}
