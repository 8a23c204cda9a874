// pkg/planner/fuel.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/route"
)

// rocFtPerMin is the fixed rate-of-climb used to estimate climb-fuel
// time. It is a constant rather than a builder parameter: no aircraft
// profile in this core varies it.
const rocFtPerMin = 500.0

// FuelPlanning is the fully itemised fuel plan for a route: each
// quantity is a distinctly retrievable field rather than folded into a
// map, so a caller can read exactly the figure it needs without parsing
// a bag of results.
type FuelPlanning struct {
	Taxi         efbmath.Fuel
	Climb        efbmath.Fuel
	Trip         efbmath.Fuel
	Alternate    efbmath.Fuel
	Reserve      efbmath.Fuel
	Minimum      efbmath.Fuel
	OnRamp       efbmath.Fuel
	Extra        efbmath.Fuel
	AfterLanding efbmath.Fuel
}

// climbLevel resolves the vertical distance the climb/reserve phase's
// performance should be queried at: the route's assigned level, capped
// at ceiling. Absent a route level the ceiling stands in, both as the
// level the climb estimate climbs to and as the query level.
func climbLevel(routeLevel *efbmath.VerticalDistance, ceiling efbmath.VerticalDistance) efbmath.VerticalDistance {
	if routeLevel == nil {
		return ceiling
	}
	if routeLevel.Gt(ceiling) {
		return ceiling
	}
	return *routeLevel
}

// departureElevationFt returns the first leg's departure fix elevation,
// or zero if the fix carries none (e.g. it is a bare waypoint rather
// than an airport).
func departureElevationFt(r *route.Route) float64 {
	if len(r.Legs) == 0 {
		return 0
	}
	from := r.Legs[0].From
	if !from.HasElevation {
		return 0
	}
	return from.ElevationFt
}

func computeClimbFuel(perf PerfFn, level efbmath.VerticalDistance, departureElevFt float64) efbmath.Fuel {
	climbFt := level.Feet() - departureElevFt
	if climbFt < 0 {
		climbFt = 0
	}
	minutes := climbFt / rocFtPerMin
	d := efbmath.Seconds(int64(minutes * 60))
	return perf(level).FF.Mul(d)
}

func computeTripFuel(perf PerfFn, r *route.Route) efbmath.Fuel {
	var total efbmath.Fuel
	first := true
	for _, leg := range r.Legs {
		if leg.Level == nil {
			continue
		}
		ete, ok := leg.ETE()
		if !ok {
			continue
		}
		f := perf(*leg.Level).FF.Mul(ete)
		if first {
			total = f
			first = false
		} else {
			total = total.Add(f)
		}
	}
	return total
}

// computeReserveFuel implements a fixed-duration reserve: cruise-flow
// fuel burned for a fixed duration.
func computeReserveFuel(perf PerfFn, level efbmath.VerticalDistance, reserve Reserve) efbmath.Fuel {
	return perf(level).FF.Mul(reserve.Duration)
}

// computeFuelPlanning evaluates taxi/climb/trip/alternate/reserve/
// minimum, then resolves on_ramp/extra/after_landing from policy.
// Alternate is always zero: the builder has no alternate-airport setter
// in this core.
func computeFuelPlanning(ac *aircraft.Aircraft, taxi efbmath.Fuel, policy FuelPolicy, reserve Reserve, perf PerfFn, ceiling efbmath.VerticalDistance, r *route.Route) (FuelPlanning, error) {
	fuelType := ac.FuelType
	level := climbLevel(r.InitialLevel, ceiling)
	depElevFt := departureElevationFt(r)

	fp := FuelPlanning{
		Taxi:      taxi,
		Climb:     computeClimbFuel(perf, level, depElevFt),
		Trip:      computeTripFuel(perf, r),
		Alternate: efbmath.FuelMass(fuelType, efbmath.Kilograms(0)),
		Reserve:   computeReserveFuel(perf, level, reserve),
	}
	fp.Minimum = fp.Taxi.Add(fp.Climb).Add(fp.Trip).Add(fp.Alternate).Add(fp.Reserve)

	switch policy.Kind {
	case MinimumFuel:
		fp.OnRamp = fp.Minimum

	case MaximumFuel:
		fp.OnRamp = efbmath.FuelVolume(fuelType, ac.TotalCapacity())

	case ManualFuel:
		fp.OnRamp = policy.Fuel
		if fp.OnRamp.Mass.Kilograms() < fp.Minimum.Mass.Kilograms() {
			return FuelPlanning{}, ErrBelowMinimumFuel
		}

	case FuelAtLanding:
		// The declared after-landing quantity stands in for the Reserve
		// getter, but Minimum above still reflects the planner's own
		// reserve calculation for comparison purposes.
		fp.OnRamp = fp.Trip.Add(fp.Climb).Add(fp.Alternate).Add(policy.Fuel).Add(fp.Taxi)
		fp.Reserve = policy.Fuel

	case ExtraFuel:
		fp.OnRamp = fp.Minimum.Add(policy.Fuel)

	default:
		fp.OnRamp = fp.Minimum
	}

	fp.Extra = fp.OnRamp.Sub(fp.Minimum)
	fp.AfterLanding = fp.OnRamp.Sub(fp.Taxi).Sub(fp.Climb).Sub(fp.Trip).Sub(fp.Alternate)

	return fp, nil
}
