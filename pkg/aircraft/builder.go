// pkg/aircraft/builder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aircraft

import (
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/util"
)

// Builder is the aircraft factory: an ordered set of setters/push-remove
// mutators over stations, tanks, and envelope vertices. Builder is a
// plain Go value; Build snapshots it into an immutable Aircraft, so
// mutating the builder after Build never affects the built Aircraft.
type Builder struct {
	registration string
	notes        string

	stations []Station

	emptyMass    efbmath.Mass
	emptyBalance efbmath.Length

	fuelType efbmath.FuelType
	tanks    []Tank

	cgEnvelope []EnvelopeVertex
}

// NewBuilder returns an empty aircraft Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Registration(reg string) *Builder { b.registration = reg; return b }
func (b *Builder) Notes(notes string) *Builder      { b.notes = notes; return b }

func (b *Builder) EmptyMass(m efbmath.Mass) *Builder        { b.emptyMass = m; return b }
func (b *Builder) EmptyBalance(arm efbmath.Length) *Builder { b.emptyBalance = arm; return b }
func (b *Builder) FuelType(t efbmath.FuelType) *Builder     { b.fuelType = t; return b }

// StationsPush appends a station at the end of the ordered station list.
func (b *Builder) StationsPush(arm efbmath.Length, description string) *Builder {
	b.stations = append(b.stations, Station{Arm: arm, Description: description})
	return b
}

// StationsRemove removes the station at index i; a no-op if i is out of range.
func (b *Builder) StationsRemove(i int) *Builder {
	b.stations = util.DeleteSliceElement(b.stations, i)
	return b
}

// Stations returns the ordered station list for iteration.
func (b *Builder) Stations() []Station { return util.DuplicateSlice(b.stations) }

// TanksPush appends a fuel tank at the end of the ordered tank list.
func (b *Builder) TanksPush(capacity efbmath.Volume, arm efbmath.Length) *Builder {
	b.tanks = append(b.tanks, Tank{Capacity: capacity, Arm: arm})
	return b
}

// TanksRemove removes the tank at index i; a no-op if i is out of range.
func (b *Builder) TanksRemove(i int) *Builder {
	b.tanks = util.DeleteSliceElement(b.tanks, i)
	return b
}

// Tanks returns the ordered tank list for iteration.
func (b *Builder) Tanks() []Tank { return util.DuplicateSlice(b.tanks) }

// CGEnvelopePush appends a vertex at the end of the ordered envelope
// polygon (the first and last vertex close the polygon).
func (b *Builder) CGEnvelopePush(mass efbmath.Mass, arm efbmath.Length) *Builder {
	b.cgEnvelope = append(b.cgEnvelope, EnvelopeVertex{Mass: mass, Arm: arm})
	return b
}

// CGEnvelopeRemove removes the vertex at index i; a no-op if i is out of range.
func (b *Builder) CGEnvelopeRemove(i int) *Builder {
	b.cgEnvelope = util.DeleteSliceElement(b.cgEnvelope, i)
	return b
}

// CGEnvelope returns the ordered envelope vertex list for iteration.
func (b *Builder) CGEnvelope() []EnvelopeVertex { return util.DuplicateSlice(b.cgEnvelope) }

// Build snapshots the builder's current state into an immutable Aircraft.
func (b *Builder) Build() *Aircraft {
	return &Aircraft{
		Registration: b.registration,
		Notes:        b.notes,
		Stations:     util.DuplicateSlice(b.stations),
		EmptyMass:    b.emptyMass,
		EmptyBalance: b.emptyBalance,
		FuelType:     b.fuelType,
		Tanks:        util.DuplicateSlice(b.tanks),
		CGEnvelope:   util.DuplicateSlice(b.cgEnvelope),
	}
}
