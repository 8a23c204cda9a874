// pkg/aircraft/aircraft_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aircraft

import (
	"testing"

	"github.com/pearson-efb/flightplan/pkg/efbmath"
)

// c172Diesel builds a 4-station C172 on a single Diesel tank.
func c172Diesel() *Aircraft {
	return NewBuilder().
		Registration("D-EFBX").
		EmptyMass(efbmath.Kilograms(807)).
		EmptyBalance(efbmath.Meters(1.0)).
		FuelType(efbmath.Diesel).
		StationsPush(efbmath.Meters(0.94), "pilot+front pax").
		StationsPush(efbmath.Meters(1.85), "rear left").
		StationsPush(efbmath.Meters(1.85), "rear right").
		StationsPush(efbmath.Meters(2.41), "baggage").
		TanksPush(efbmath.Liters(136.6), efbmath.Meters(1.02)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(0.80)).
		CGEnvelopePush(efbmath.Kilograms(1111), efbmath.Meters(0.80)).
		CGEnvelopePush(efbmath.Kilograms(1111), efbmath.Meters(1.20)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(1.10)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(0.80)).
		Build()
}

func TestBuilderSnapshotIndependence(t *testing.T) {
	b := NewBuilder().Registration("D-EFBX").StationsPush(efbmath.Meters(1), "pilot")
	ac := b.Build()
	b.StationsPush(efbmath.Meters(2), "passenger")

	if len(ac.Stations) != 1 {
		t.Fatalf("built Aircraft should not see later builder mutations, got %d stations", len(ac.Stations))
	}
}

func TestStationsRemove(t *testing.T) {
	b := NewBuilder().
		StationsPush(efbmath.Meters(1), "a").
		StationsPush(efbmath.Meters(2), "b").
		StationsPush(efbmath.Meters(3), "c")
	b.StationsRemove(1)
	ac := b.Build()
	if len(ac.Stations) != 2 || ac.Stations[0].Description != "a" || ac.Stations[1].Description != "c" {
		t.Fatalf("unexpected stations after remove: %+v", ac.Stations)
	}
}

func TestEnvelopeContainsInterior(t *testing.T) {
	ac := c172Diesel()
	if !ac.Contains(efbmath.Kilograms(955), efbmath.Meters(0.95)) {
		t.Error("expected an interior point to be inside the envelope")
	}
}

func TestEnvelopeVertexIsInside(t *testing.T) {
	// A point equal to any vertex is inside (boundary inclusive).
	ac := c172Diesel()
	for _, v := range ac.CGEnvelope {
		if !ac.Contains(v.Mass, v.Arm) {
			t.Errorf("vertex (%v, %v) should be inside its own polygon", v.Mass, v.Arm)
		}
	}
}

func TestEnvelopeExcludesExterior(t *testing.T) {
	ac := c172Diesel()
	if ac.Contains(efbmath.Kilograms(1200), efbmath.Meters(0.95)) {
		t.Error("expected an over-gross point to be outside the envelope")
	}
	if ac.Contains(efbmath.Kilograms(900), efbmath.Meters(2.0)) {
		t.Error("expected a far-aft point to be outside the envelope")
	}
}

func TestTotalCapacity(t *testing.T) {
	ac := c172Diesel()
	if got := ac.TotalCapacity().Liters(); got != 136.6 {
		t.Errorf("total capacity = %v, want 136.6", got)
	}
}
