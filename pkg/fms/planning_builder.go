// pkg/fms/planning_builder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package fms

import (
	"errors"

	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/planner"
)

// ErrNoAircraft is returned by SetFlightPlanning when a PlanningBuilder
// was never given an aircraft via SetAircraft.
var ErrNoAircraft = errors.New("fms: planning builder has no aircraft")

// ErrNoPerf is returned by SetFlightPlanning when a PlanningBuilder was
// never given a performance function via SetPerf.
var ErrNoPerf = errors.New("fms: planning builder has no performance function")

// PlanningBuilder accumulates the inputs a flight planning run needs:
// an aircraft, loaded masses, fuel policy, taxi fuel, reserve rule, and
// performance function. It is a plain Go value; FMS.SetFlightPlanning
// consumes a snapshot of it and later mutation of the builder (or of
// the aircraft builder passed to SetAircraft) never affects an
// already-set planning.
type PlanningBuilder struct {
	aircraft *aircraft.Aircraft
	masses   []efbmath.Mass
	policy   planner.FuelPolicy
	taxi     efbmath.Fuel
	reserve  planner.Reserve
	perf     planner.PerfFn
	ceiling  efbmath.VerticalDistance
}

// NewPlanningBuilder returns an empty PlanningBuilder, defaulted to the
// MinimumFuel policy.
func NewPlanningBuilder() *PlanningBuilder {
	return &PlanningBuilder{policy: planner.NewMinimumFuelPolicy()}
}

// SetAircraft snapshots ab's current state so later edits to ab do not
// affect this builder.
func (b *PlanningBuilder) SetAircraft(ab *aircraft.Builder) *PlanningBuilder {
	b.aircraft = ab.Build()
	return b
}

// SetMass sets the per-station loaded mass vector; its length must
// match the aircraft's station count at SetFlightPlanning time or
// ErrStationCountMismatch is returned.
func (b *PlanningBuilder) SetMass(masses []efbmath.Mass) *PlanningBuilder {
	b.masses = append([]efbmath.Mass(nil), masses...)
	return b
}

// SetPolicy sets the fuel policy.
func (b *PlanningBuilder) SetPolicy(p planner.FuelPolicy) *PlanningBuilder {
	b.policy = p
	return b
}

// SetTaxi sets the taxi fuel, burned but not counted as enroute.
func (b *PlanningBuilder) SetTaxi(f efbmath.Fuel) *PlanningBuilder {
	b.taxi = f
	return b
}

// SetReserve sets the reserve-fuel rule.
func (b *PlanningBuilder) SetReserve(r planner.Reserve) *PlanningBuilder {
	b.reserve = r
	return b
}

// SetPerf sets the performance function and the ceiling level used to
// cap climb/reserve integration.
func (b *PlanningBuilder) SetPerf(fn planner.PerfFn, ceiling efbmath.VerticalDistance) *PlanningBuilder {
	b.perf = fn
	b.ceiling = ceiling
	return b
}

func (b *PlanningBuilder) validate() error {
	if b.aircraft == nil {
		return ErrNoAircraft
	}
	if b.perf == nil {
		return ErrNoPerf
	}
	return nil
}
