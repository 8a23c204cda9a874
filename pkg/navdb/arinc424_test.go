// pkg/navdb/arinc424_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdb

import (
	"strings"
	"testing"

	"github.com/pearson-efb/flightplan/pkg/util"
)

// setField copies value left-justified into line[start:end]; the rest of
// the field keeps the spaces blankLine filled it with. It is a test-only
// substitute for hand-counting column offsets in literal fixture strings.
func setField(line []byte, start, end int, value string) {
	if len(value) > end-start {
		panic("value too long for field")
	}
	copy(line[start:end], value)
}

func blankLine(section byte) []byte {
	line := make([]byte, arinc424LineLength)
	for i := range line {
		line[i] = ' '
	}
	line[0] = 'S'
	line[4] = section
	return line
}

// airportLine builds a 'PA' primary airport record.
func airportLine(icao string, latField, longField, variationField, elevationField, name string) []byte {
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

// terminalWaypointLine builds a 'PC' terminal waypoint record attached
// to icao.
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

// enrouteWaypointLine builds an 'EA' enroute waypoint record.
func enrouteWaypointLine(ident, latField, longField, name string) []byte {
	line := blankLine('E')
	line[5] = 'A'
	setField(line, 6, 10, "ED")
	setField(line, 13, 18, ident)
	setField(line, 32, 41, latField)
	setField(line, 41, 51, longField)
	setField(line, 98, 123, name)
	return line
}

func TestParseARINC424Airport(t *testing.T) {
	// EDDH (Hamburg), 53.6304N 009.9883E, elevation 53ft, variation 1.0E.
	line := airportLine("EDDH", "N53374944", "E009591788", "E0010", "00053", "HAMBURG")
	records := ParseARINC424(strings.NewReader(string(line)+"\n"), nil)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if !r.IsAirport() || r.Ident != "EDDH" {
		t.Fatalf("expected airport EDDH, got %+v", r)
	}
	if got := r.Position.LatDeg(); got < 53.6 || got > 53.7 {
		t.Errorf("expected lat ~53.63, got %v", got)
	}
	if got := r.Position.LonDeg(); got < 9.9 || got > 10.0 {
		t.Errorf("expected lon ~9.99, got %v", got)
	}
	if r.ElevationFt != 53 {
		t.Errorf("expected elevation 53ft, got %v", r.ElevationFt)
	}
	if got := r.MagneticVariation.Degrees(); got < 0.9 || got > 1.1 {
		t.Errorf("expected variation ~1.0E, got %v", got)
	}
	if r.Name != "Hamburg" {
		t.Errorf("expected name Hamburg (stop-shouted), got %q", r.Name)
	}
}

func TestParseARINC424TerminalWaypoint(t *testing.T) {
	line := terminalWaypointLine("EDDH", "DHN1", "N53540000", "E009300000", "DHN1 FIX")
	records := ParseARINC424(strings.NewReader(string(line)+"\n"), nil)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.IsAirport() || r.Ident != "DHN1" || r.SubSection != Terminal || r.Airport != "EDDH" {
		t.Fatalf("expected terminal waypoint DHN1/EDDH, got %+v", r)
	}
}

func TestParseARINC424EnrouteWaypoint(t *testing.T) {
	line := enrouteWaypointLine("KARLA", "N54000000", "E010000000", "KARLA")
	records := ParseARINC424(strings.NewReader(string(line)+"\n"), nil)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.IsAirport() || r.Ident != "KARLA" || r.SubSection != Enroute {
		t.Fatalf("expected enroute waypoint KARLA, got %+v", r)
	}
	if r.Region != "ED" {
		t.Errorf("expected region ED, got %q", r.Region)
	}
}

func TestParseARINC424SkipsMalformedLines(t *testing.T) {
	good := enrouteWaypointLine("KARLA", "N54000000", "E010000000", "KARLA")
	bad := []byte(strings.Repeat("X", 50)) // too short, not a standard field

	var eh util.ErrorLogger
	input := string(good) + "\n" + string(bad) + "\n"
	records := ParseARINC424(strings.NewReader(input), &eh)
	if len(records) != 1 {
		t.Fatalf("expected the malformed line to be skipped, not aborted; got %d records", len(records))
	}
}

func TestParseARINC424IgnoresUnknownSections(t *testing.T) {
	line := blankLine('H') // heliport family: not modeled
	records := ParseARINC424(strings.NewReader(string(line)+"\n"), nil)
	if len(records) != 0 {
		t.Fatalf("expected unknown section to be ignored, got %d records", len(records))
	}
}

func BenchmarkParseARINC424(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.Write(airportLine("EDDH", "N53374944", "E009591788", "E0010", "00053", "HAMBURG"))
		sb.WriteByte('\n')
		sb.Write(terminalWaypointLine("EDDH", "DHN1", "N53540000", "E009300000", "DHN1 FIX"))
		sb.WriteByte('\n')
		sb.Write(enrouteWaypointLine("KARLA", "N54000000", "E010000000", "KARLA"))
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseARINC424(strings.NewReader(input), nil)
	}
}
