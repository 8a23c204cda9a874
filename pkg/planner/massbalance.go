// pkg/planner/massbalance.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/efbmath"
)

// MassAndBalance is the on-ramp and after-landing loading state of the
// aircraft. IsBalanced is deliberately not a field here: it is derived
// on access from these two points against the envelope, never cached,
// so it always reflects the authoritative mass/balance fields.
type MassAndBalance struct {
	MassOnRamp    efbmath.Mass
	BalanceOnRamp efbmath.Length

	MassAfterLanding    efbmath.Mass
	BalanceAfterLanding efbmath.Length
}

// IsBalanced reports whether both the on-ramp and after-landing
// (mass, balance) points lie inside ac's CG envelope.
func (mb MassAndBalance) IsBalanced(ac *aircraft.Aircraft) bool {
	return ac.Contains(mb.MassOnRamp, mb.BalanceOnRamp) &&
		ac.Contains(mb.MassAfterLanding, mb.BalanceAfterLanding)
}

// computeMassAndBalance evaluates the on-ramp and after-landing loading
// points. Stations contribute mass_i·arm_i; the empty aircraft
// contributes empty_mass·empty_balance; fuel is allocated into tanks
// greedily in declared order until the requested mass is allocated, and
// ErrTankOverflow is returned if it exceeds total capacity.
func computeMassAndBalance(ac *aircraft.Aircraft, stationMasses []efbmath.Mass, onRamp, afterLanding efbmath.Fuel) (MassAndBalance, error) {
	if len(stationMasses) != len(ac.Stations) {
		return MassAndBalance{}, ErrStationCountMismatch
	}

	var stationMass, stationMoment float64
	for i, m := range stationMasses {
		stationMass += m.Kilograms()
		stationMoment += m.Kilograms() * ac.Stations[i].Arm.Meters()
	}

	emptyMoment := ac.EmptyMass.Kilograms() * ac.EmptyBalance.Meters()

	onRampFuelMoment, err := fuelMoment(ac, onRamp)
	if err != nil {
		return MassAndBalance{}, err
	}
	afterLandingFuelMoment, err := fuelMoment(ac, afterLanding)
	if err != nil {
		return MassAndBalance{}, err
	}

	massOnRamp := ac.EmptyMass.Kilograms() + stationMass + onRamp.Mass.Kilograms()
	massAfterLanding := ac.EmptyMass.Kilograms() + stationMass + afterLanding.Mass.Kilograms()

	return MassAndBalance{
		MassOnRamp:          efbmath.Kilograms(massOnRamp),
		BalanceOnRamp:       efbmath.Meters((emptyMoment + stationMoment + onRampFuelMoment) / massOnRamp),
		MassAfterLanding:    efbmath.Kilograms(massAfterLanding),
		BalanceAfterLanding: efbmath.Meters((emptyMoment + stationMoment + afterLandingFuelMoment) / massAfterLanding),
	}, nil
}

// fuelMoment fills ac's tanks greedily in declared order with fuel's
// mass (converted to volume via its type's density) and returns the
// resulting total moment in kg·m, or ErrTankOverflow if fuel exceeds
// total capacity.
func fuelMoment(ac *aircraft.Aircraft, fuel efbmath.Fuel) (float64, error) {
	remaining := fuel.Volume().Liters()
	var moment float64

	for _, tk := range ac.Tanks {
		if remaining <= 0 {
			break
		}
		fill := remaining
		if tankCap := tk.Capacity.Liters(); fill > tankCap {
			fill = tankCap
		}
		fillMass := efbmath.FuelVolume(fuel.Type, efbmath.Liters(fill)).Mass.Kilograms()
		moment += fillMass * tk.Arm.Meters()
		remaining -= fill
	}

	const eps = 1e-6
	if remaining > eps {
		return 0, ErrTankOverflow
	}
	return moment, nil
}
