// pkg/efbmath/fuel.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package efbmath

import "fmt"

// FuelType tags the density used to convert between mass and volume.
type FuelType int

const (
	AvGas FuelType = iota
	Diesel
	JetA
)

func (t FuelType) String() string {
	switch t {
	case AvGas:
		return "AvGas"
	case Diesel:
		return "Diesel"
	case JetA:
		return "JetA"
	default:
		return "unknown"
	}
}

// densityKgPerLiter gives the fixed density used throughout the core for
// mass<->volume conversion; no temperature or altitude correction is
// modeled.
func (t FuelType) densityKgPerLiter() float64 {
	switch t {
	case AvGas:
		return 0.72
	case Diesel:
		return 0.85
	case JetA:
		return 0.80
	default:
		return 0.80
	}
}

// Fuel is a (fuel-type, mass) pair.
type Fuel struct {
	Type FuelType
	Mass Mass
}

// FuelMass constructs a Fuel directly from a mass.
func FuelMass(t FuelType, m Mass) Fuel { return Fuel{t, m} }

// FuelVolume constructs a Fuel from a volume, converting via the fuel
// type's fixed density.
func FuelVolume(t FuelType, v Volume) Fuel {
	return Fuel{t, Kilograms(v.Liters() * t.densityKgPerLiter())}
}

// Volume converts the fuel's mass back to volume via its type's density.
func (f Fuel) Volume() Volume { return Liters(f.Mass.Kilograms() / f.Type.densityKgPerLiter()) }

func (f Fuel) Add(o Fuel) Fuel { return Fuel{f.Type, f.Mass.Add(o.Mass)} }
func (f Fuel) Sub(o Fuel) Fuel { return Fuel{f.Type, f.Mass.Sub(o.Mass)} }

func (f Fuel) String() string {
	return fmt.Sprintf("%.1fL %s", f.Volume().Liters(), f.Type)
}

// FuelFlow is a tagged fuel-flow quantity: a fuel quantity consumed per
// hour.
type FuelFlow struct {
	perHour Fuel
}

// PerHour constructs a FuelFlow from the fuel consumed in one hour.
func PerHour(f Fuel) FuelFlow { return FuelFlow{f} }

// Mul multiplies the flow by a Duration to yield the Fuel consumed.
func (ff FuelFlow) Mul(d Duration) Fuel {
	hours := d.Seconds() / 3600
	return Fuel{ff.perHour.Type, ff.perHour.Mass.Scale(hours)}
}

func (ff FuelFlow) String() string {
	return fmt.Sprintf("%.1fL/h %s", ff.perHour.Volume().Liters(), ff.perHour.Type)
}
