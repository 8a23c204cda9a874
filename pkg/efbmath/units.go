// pkg/efbmath/units.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package efbmath

import (
	"fmt"
	"math"
	"time"
)

const metersPerNM = 1852.0

// Length is stored internally in meters.
type Length struct{ m float64 }

// Meters constructs a Length from a meter magnitude.
func Meters(v float64) Length { return Length{v} }

// NM constructs a Length from a nautical-mile magnitude.
func NM(v float64) Length { return Length{v * metersPerNM} }

// NewLength validates v before constructing a Length in meters; it is the
// boundary-checked counterpart of Meters, for use wherever a length
// originates from outside the core (e.g. an aircraft builder setter).
func NewLength(v float64) (Length, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, ErrNotFinite
	}
	if v < 0 {
		return Length{}, ErrNegativeValue
	}
	return Length{v}, nil
}

func (l Length) Meters() float64 { return l.m }
func (l Length) NM() float64     { return l.m / metersPerNM }

func (l Length) Add(o Length) Length { return Length{l.m + o.m} }
func (l Length) Sub(o Length) Length { return Length{l.m - o.m} }

// Div returns the Duration it takes to cover this length at the given
// Speed. Callers must ensure speed is non-zero.
func (l Length) Div(s Speed) Duration {
	secs := l.Meters() / s.MetersPerSecond()
	return Duration{time.Duration(roundHalfToEven(secs)) * time.Second}
}

// Per returns the Speed that covers this length in the given Duration.
// Callers must ensure the duration is non-zero.
func (l Length) Per(d Duration) Speed {
	return Speed{l.Meters() / d.Seconds()}
}

// String renders the length in nm if it exceeds 1 nm, else in meters.
func (l Length) String() string {
	if math.Abs(l.m) > metersPerNM {
		return fmt.Sprintf("%.2fnm", l.NM())
	}
	return fmt.Sprintf("%.0fm", l.m)
}

// Mass is stored internally in kilograms.
type Mass struct{ kg float64 }

func Kilograms(v float64) Mass { return Mass{v} }

func NewMass(v float64) (Mass, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Mass{}, ErrNotFinite
	}
	if v < 0 {
		return Mass{}, ErrNegativeValue
	}
	return Mass{v}, nil
}

func (m Mass) Kilograms() float64 { return m.kg }
func (m Mass) Add(o Mass) Mass    { return Mass{m.kg + o.kg} }
func (m Mass) Sub(o Mass) Mass    { return Mass{m.kg - o.kg} }
func (m Mass) Scale(f float64) Mass { return Mass{m.kg * f} }

func (m Mass) String() string { return fmt.Sprintf("%.1fkg", m.kg) }

// Volume is stored internally in liters.
type Volume struct{ l float64 }

func Liters(v float64) Volume { return Volume{v} }

func NewVolume(v float64) (Volume, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Volume{}, ErrNotFinite
	}
	if v < 0 {
		return Volume{}, ErrNegativeValue
	}
	return Volume{v}, nil
}

func (v Volume) Liters() float64  { return v.l }
func (v Volume) Add(o Volume) Volume { return Volume{v.l + o.l} }
func (v Volume) Sub(o Volume) Volume { return Volume{v.l - o.l} }

func (v Volume) String() string { return fmt.Sprintf("%.1fL", v.l) }

// Speed is stored internally in meters per second.
type Speed struct{ mps float64 }

func Knots(v float64) Speed          { return Speed{v * metersPerNM / 3600} }
func MetersPerSecond(v float64) Speed { return Speed{v} }

func NewSpeed(knotsValue float64) (Speed, error) {
	if math.IsNaN(knotsValue) || math.IsInf(knotsValue, 0) {
		return Speed{}, ErrNotFinite
	}
	if knotsValue < 0 {
		return Speed{}, ErrNegativeValue
	}
	return Knots(knotsValue), nil
}

func (s Speed) Knots() float64           { return s.mps * 3600 / metersPerNM }
func (s Speed) MetersPerSecond() float64 { return s.mps }

func (s Speed) String() string { return fmt.Sprintf("%.0fkt", s.Knots()) }

// Duration wraps a time.Duration as the core's integer-second duration
// family member.
type Duration struct{ d time.Duration }

func Seconds(s int64) Duration          { return Duration{time.Duration(s) * time.Second} }
func DurationOf(d time.Duration) Duration { return Duration{d.Round(time.Second)} }

func (d Duration) Seconds() float64      { return d.d.Seconds() }
func (d Duration) AsTimeDuration() time.Duration { return d.d }
func (d Duration) Add(o Duration) Duration { return Duration{d.d + o.d} }

// String renders the duration as "HH:MM:SS". FuelFlow.Mul (fuel.go)
// scales a fuel-flow rate by a Duration to yield a Fuel.
func (d Duration) String() string {
	total := int64(d.d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
