// pkg/planner/planner.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import (
	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/route"
)

// Planning is the fuel plan and mass-and-balance assessment produced by
// Plan for one aircraft flying one route.
type Planning struct {
	Fuel FuelPlanning
	MassAndBalance
}

// IsBalanced reports whether both loading points lie inside ac's CG
// envelope; ac must be the same aircraft Plan was called with.
func (p Planning) IsBalanced(ac *aircraft.Aircraft) bool {
	return p.MassAndBalance.IsBalanced(ac)
}

// Plan evaluates the fuel plan and mass-and-balance for ac flying r,
// given per-station loaded masses, a fuel policy, taxi fuel, reserve
// rule, a performance function, and a ceiling level.
//
// Plan fails atomically: on any error, no partial Planning is
// returned.
func Plan(
	ac *aircraft.Aircraft,
	stationMasses []efbmath.Mass,
	policy FuelPolicy,
	taxi efbmath.Fuel,
	reserve Reserve,
	perf PerfFn,
	ceiling efbmath.VerticalDistance,
	r *route.Route,
) (*Planning, error) {
	if len(stationMasses) != len(ac.Stations) {
		return nil, ErrStationCountMismatch
	}

	fuel, err := computeFuelPlanning(ac, taxi, policy, reserve, perf, ceiling, r)
	if err != nil {
		return nil, err
	}

	mb, err := computeMassAndBalance(ac, stationMasses, fuel.OnRamp, fuel.AfterLanding)
	if err != nil {
		return nil, err
	}

	return &Planning{Fuel: fuel, MassAndBalance: mb}, nil
}
