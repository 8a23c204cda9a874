// pkg/fms/fms_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package fms

import (
	"strings"
	"testing"

	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/navdb"
	"github.com/pearson-efb/flightplan/pkg/planner"
	"github.com/pearson-efb/flightplan/pkg/route"
)

// setField left-justifies value into line[start:end], padding with
// spaces; mirrors pkg/navdb's own test helper so this package's
// end-to-end tests don't depend on unexported navdb internals.
func setField(line []byte, start, end int, value string) {
	copy(line[start:end], value)
	for i := start + len(value); i < end; i++ {
		line[i] = ' '
	}
}

func blankLine(section byte) []byte {
	line := make([]byte, 132)
	for i := range line {
		line[i] = ' '
	}
	line[0] = 'S'
	line[4] = section
	return line
}

func airportLine(icao, latField, longField, variationField, elevationField, name string) []byte {
	line := blankLine('P')
	setField(line, 6, 10, icao)
	line[12] = 'A'
	setField(line, 32, 41, latField)
	setField(line, 41, 51, longField)
	setField(line, 51, 56, variationField)
	setField(line, 56, 61, elevationField)
	setField(line, 93, 123, name)
	return line
}

func terminalWaypointLine(icao, ident, latField, longField, name string) []byte {
	line := blankLine('P')
	line[5] = 'C'
	setField(line, 6, 10, icao)
	setField(line, 13, 18, ident)
	setField(line, 32, 41, latField)
	setField(line, 41, 51, longField)
	setField(line, 98, 123, name)
	return line
}

// hamburgNavData builds four ARINC-424 records: EDDH, DHN1, DHN2, EDHF.
func hamburgNavData() []byte {
	lines := [][]byte{
		airportLine("EDDH", "N53374944", "E009591788", "E0010", "00053", "HAMBURG"),
		terminalWaypointLine("EDDH", "DHN1", "N53540000", "E009300000", "DHN1"),
		terminalWaypointLine("EDDH", "DHN2", "N53450000", "E009450000", "DHN2"),
		airportLine("EDHF", "N53525586", "E009075228", "E0012", "00046", "ITZEHOE HUNGRIGER WOLF"),
	}
	var buf []byte
	for _, l := range lines {
		buf = append(buf, l...)
		buf = append(buf, '\n')
	}
	return buf
}

func TestDecodeFailsWhenFixUnresolved(t *testing.T) {
	f := New()
	err := f.Decode("29020KT N0107 A0250 EDDH EDHF")
	if err == nil {
		t.Fatal("expected UnresolvedFix against an empty database")
	}
	if _, ok := err.(*route.UnresolvedFix); !ok {
		t.Fatalf("err = %v (%T), want *route.UnresolvedFix", err, err)
	}
	if f.Route() != nil {
		t.Error("no route should be installed after a failed decode")
	}
}

func TestHappyPathThreeLegRoute(t *testing.T) {
	f := New()
	f.NDRead(hamburgNavData(), Arinc424)

	if err := f.Decode("29020KT N0107 A0250 EDDH DHN2 DHN1 EDHF"); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	r := f.Route()
	if r == nil {
		t.Fatal("expected a route to be installed")
	}
	if len(r.Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(r.Legs))
	}
	if r.Legs[0].From.Ident != "EDDH" {
		t.Errorf("leg[0].from = %q, want EDDH", r.Legs[0].From.Ident)
	}
	if r.Legs[2].To.Ident != "EDHF" {
		t.Errorf("leg[2].to = %q, want EDHF", r.Legs[2].To.Ident)
	}

	total := r.TotalDistance()
	if total.NM() < 25 || total.NM() > 50 {
		t.Errorf("total distance = %.2fnm, want 25-50nm", total.NM())
	}
	ete := r.TotalETE()
	if ete.Seconds() < 15*60 || ete.Seconds() > 35*60 {
		t.Errorf("total ete = %s, want 15-35min", ete)
	}
}

func TestDecodeReplacesRouteAtomically(t *testing.T) {
	f := New()
	f.NDRead(hamburgNavData(), Arinc424)
	if err := f.Decode("29020KT N0107 A0250 EDDH DHN2 DHN1 EDHF"); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	first := f.Route()

	if err := f.Decode("29020KT N0107 A0250 EDDH EDHF NOPE"); err == nil {
		t.Fatal("expected the second decode to fail")
	}

	if f.Route() != first {
		t.Error("a failed decode must not replace the current route")
	}
}

func TestNDReadIsIdempotent(t *testing.T) {
	f1, f2 := New(), New()
	data := hamburgNavData()
	f1.NDRead(data, Arinc424)
	f2.NDRead(data, Arinc424)
	f2.NDRead(data, Arinc424)

	for _, ident := range []string{"EDDH", "DHN1", "DHN2", "EDHF"} {
		r1, ok1 := f1.lookupForTest(ident)
		r2, ok2 := f2.lookupForTest(ident)
		if ok1 != ok2 || r1.Position != r2.Position {
			t.Errorf("lookup(%q) diverged after a repeated nd_read: %+v vs %+v", ident, r1, r2)
		}
	}
}

func (f *FMS) lookupForTest(ident string) (navdb.Record, bool) {
	return f.db.Lookup(ident, nil)
}

func c172Diesel() *aircraft.Builder {
	return aircraft.NewBuilder().
		Registration("D-EFBX").
		EmptyMass(efbmath.Kilograms(807)).
		EmptyBalance(efbmath.Meters(1.0)).
		FuelType(efbmath.Diesel).
		StationsPush(efbmath.Meters(0.94), "pilot+front pax").
		StationsPush(efbmath.Meters(1.85), "rear left").
		StationsPush(efbmath.Meters(1.85), "rear right").
		StationsPush(efbmath.Meters(2.41), "baggage").
		TanksPush(efbmath.Liters(80), efbmath.Meters(1.02)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(0.80)).
		CGEnvelopePush(efbmath.Kilograms(1111), efbmath.Meters(0.80)).
		CGEnvelopePush(efbmath.Kilograms(1111), efbmath.Meters(1.20)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(1.10)).
		CGEnvelopePush(efbmath.Kilograms(700), efbmath.Meters(0.80))
}

func dieselPerf21Lph() planner.PerfFn {
	return planner.ConstantPerf(planner.Performance{
		TAS: efbmath.Knots(90),
		FF:  efbmath.PerHour(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(21))),
	})
}

func decodedHamburgRoute(t *testing.T) *FMS {
	t.Helper()
	f := New()
	f.NDRead(hamburgNavData(), Arinc424)
	if err := f.Decode("29020KT N0107 A0250 EDDH DHN2 DHN1 EDHF"); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return f
}

func TestSetFlightPlanningManualFuelAboveMinimum(t *testing.T) {
	f := decodedHamburgRoute(t)
	pb := NewPlanningBuilder().
		SetAircraft(c172Diesel()).
		SetMass([]efbmath.Mass{{}, {}, {}, {}}).
		SetPolicy(planner.NewManualFuelPolicy(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(80)))).
		SetTaxi(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(10))).
		SetReserve(planner.Manual(efbmath.Seconds(1800))).
		SetPerf(dieselPerf21Lph(), efbmath.Altitude(5000))

	if err := f.SetFlightPlanning(pb); err != nil {
		t.Fatalf("SetFlightPlanning: %v", err)
	}

	p := f.FlightPlanning()
	if got := p.Fuel.OnRamp.Volume().Liters(); got < 79.9 || got > 80.1 {
		t.Errorf("on_ramp = %.2fL, want 80L", got)
	}
	if p.Fuel.Extra.Mass.Kilograms() <= 0 {
		t.Error("expected positive extra fuel")
	}
}

func TestSetFlightPlanningManualFuelBelowMinimumInstallsNoPlanning(t *testing.T) {
	f := decodedHamburgRoute(t)
	pb := NewPlanningBuilder().
		SetAircraft(c172Diesel()).
		SetMass([]efbmath.Mass{{}, {}, {}, {}}).
		SetPolicy(planner.NewManualFuelPolicy(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(5)))).
		SetTaxi(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(10))).
		SetReserve(planner.Manual(efbmath.Seconds(1800))).
		SetPerf(dieselPerf21Lph(), efbmath.Altitude(5000))

	if err := f.SetFlightPlanning(pb); err == nil {
		t.Fatal("expected BelowMinimumFuel")
	}
	if f.FlightPlanning() != nil {
		t.Error("no planning should be installed after a failed set_flight_planning")
	}
}

func TestSetFlightPlanningEnvelopeCheck(t *testing.T) {
	f := decodedHamburgRoute(t)
	pbFront := NewPlanningBuilder().
		SetAircraft(c172Diesel()).
		SetMass([]efbmath.Mass{efbmath.Kilograms(80), {}, {}, {}}).
		SetPolicy(planner.NewMaximumFuelPolicy()).
		SetTaxi(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(10))).
		SetReserve(planner.Manual(efbmath.Seconds(1800))).
		SetPerf(dieselPerf21Lph(), efbmath.Altitude(5000))

	if err := f.SetFlightPlanning(pbFront); err != nil {
		t.Fatalf("SetFlightPlanning: %v", err)
	}
	if got := f.FlightPlanning().MassOnRamp.Kilograms(); got < 940 || got > 970 {
		t.Errorf("mass_on_ramp = %.1fkg, want ~955kg", got)
	}
	if !f.IsBalanced() {
		t.Error("expected the front-loaded plan to be balanced")
	}

	pbAft := NewPlanningBuilder().
		SetAircraft(c172Diesel()).
		SetMass([]efbmath.Mass{{}, {}, {}, efbmath.Kilograms(250)}).
		SetPolicy(planner.NewMaximumFuelPolicy()).
		SetTaxi(efbmath.FuelVolume(efbmath.Diesel, efbmath.Liters(10))).
		SetReserve(planner.Manual(efbmath.Seconds(1800))).
		SetPerf(dieselPerf21Lph(), efbmath.Altitude(5000))

	if err := f.SetFlightPlanning(pbAft); err != nil {
		t.Fatalf("SetFlightPlanning: %v", err)
	}
	if f.IsBalanced() {
		t.Error("expected the all-aft-loaded plan to be out of balance")
	}
}

func TestErrorsAccumulateAcrossMalformedLines(t *testing.T) {
	f := New()
	good := hamburgNavData()
	bad := []byte(strings.Repeat("X", 50) + "\n")
	f.NDRead(append(good, bad...), Arinc424)
	if !f.Errors().HaveErrors() {
		t.Error("expected a diagnostic for the malformed trailing line")
	}
}
