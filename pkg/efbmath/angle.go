// pkg/efbmath/angle.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package efbmath

import (
	"fmt"
	"math"
)

// AngleRef tags the reference axis an Angle is measured against. Two
// angles with different reference axes are never silently combined; a
// variation must be applied explicitly via ToMagnetic/ToTrue.
type AngleRef int

const (
	// TrueNorth angles are measured clockwise from true (geographic) north.
	TrueNorth AngleRef = iota
	// MagneticNorth angles are measured clockwise from magnetic north.
	MagneticNorth
	// Radian angles carry no compass reference at all (e.g. a
	// wind-correction angle or a magnetic variation offset); they combine
	// freely with any other Radian angle but never with a TrueNorth or
	// MagneticNorth angle.
	Radian
)

func (r AngleRef) String() string {
	switch r {
	case TrueNorth:
		return "true"
	case MagneticNorth:
		return "magnetic"
	case Radian:
		return "radian"
	default:
		return "unknown"
	}
}

// Angle is a normalised angular measurement tagged with its reference
// axis. The underlying radian value is always in [0, 2π).
type Angle struct {
	rad float64
	ref AngleRef
}

// TrueHeadingRad constructs a true-north angle from radians, normalising it.
func TrueHeadingRad(rad float64) Angle { return Angle{NormalizeRadians(rad), TrueNorth} }

// TrueHeadingDeg constructs a true-north angle from degrees, normalising it.
func TrueHeadingDeg(deg float64) Angle { return TrueHeadingRad(Radians(deg)) }

// MagneticHeadingRad constructs a magnetic-north angle from radians.
func MagneticHeadingRad(rad float64) Angle { return Angle{NormalizeRadians(rad), MagneticNorth} }

// MagneticHeadingDeg constructs a magnetic-north angle from degrees.
func MagneticHeadingDeg(deg float64) Angle { return MagneticHeadingRad(Radians(deg)) }

// RadianAngle constructs an axis-less angle (e.g. a variation or a WCA)
// from radians. It is normalised the same way as compass angles.
func RadianAngle(rad float64) Angle { return Angle{NormalizeRadians(rad), Radian} }

// DegreeAngle constructs an axis-less angle from degrees.
func DegreeAngle(deg float64) Angle { return RadianAngle(Radians(deg)) }

// Radians returns the normalised angle in radians.
func (a Angle) Radians() float64 { return a.rad }

// Degrees returns the normalised angle in degrees, in [0, 360).
func (a Angle) Degrees() float64 { return Degrees(a.rad) }

// Ref returns the angle's reference axis.
func (a Angle) Ref() AngleRef { return a.ref }

// Add returns a+b, normalised, failing with ErrUnitMismatch if the two
// angles have different reference axes.
func (a Angle) Add(b Angle) (Angle, error) {
	if a.ref != b.ref {
		return Angle{}, fmt.Errorf("%w: %s + %s", ErrUnitMismatch, a.ref, b.ref)
	}
	return Angle{NormalizeRadians(a.rad + b.rad), a.ref}, nil
}

// Sub returns a-b, normalised, failing with ErrUnitMismatch if the two
// angles have different reference axes.
func (a Angle) Sub(b Angle) (Angle, error) {
	if a.ref != b.ref {
		return Angle{}, fmt.Errorf("%w: %s - %s", ErrUnitMismatch, a.ref, b.ref)
	}
	return Angle{NormalizeRadians(a.rad - b.rad), a.ref}, nil
}

// ToMagnetic converts a TrueNorth angle to a MagneticNorth angle given the
// local variation (east positive, an axis-less Radian angle signed via its
// underlying radians — callers pass negative values for westerly
// variation). magnetic = true - variation.
func (a Angle) ToMagnetic(variationEastRad float64) Angle {
	return Angle{NormalizeRadians(a.rad - variationEastRad), MagneticNorth}
}

// ToTrue converts a MagneticNorth angle to a TrueNorth angle given the
// local variation (east positive). true = magnetic + variation.
func (a Angle) ToTrue(variationEastRad float64) Angle {
	return Angle{NormalizeRadians(a.rad + variationEastRad), TrueNorth}
}

// Normalize returns the angle re-normalised to [0, 2π); since Angle values
// are always constructed normalised, this is idempotent by construction
// (see testable property #1).
func (a Angle) Normalize() Angle { return Angle{NormalizeRadians(a.rad), a.ref} }

// String renders the angle as "DDD°", truncated (not rounded) to whole
// degrees.
func (a Angle) String() string {
	d := int(math.Trunc(a.Degrees()))
	return fmt.Sprintf("%03d°", d)
}
