// pkg/navdb/arinc424.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdb

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/util"
)

// displayName trims an ARINC-424 name field and reformats it from the
// format's conventional all-caps ("HAMBURG") into mixed case ("Hamburg")
// for presentation, e.g. by the out-of-scope pretty-printer.
func displayName(b []byte) string {
	return util.StopShouting(strings.TrimSpace(string(b)))
}

// arinc424LineLength is the fixed column width of an ARINC-424 record,
// not counting the trailing newline.
const arinc424LineLength = 132

func empty(b []byte) bool {
	for _, c := range b {
		if c != ' ' {
			return false
		}
	}
	return true
}

// parseLLDigits parses a DD/DDD, MM, SS.ss triple of ASCII-digit byte
// slices into decimal degrees.
func parseLLDigits(d, m, s []byte) (float64, error) {
	deg, err := strconv.Atoi(strings.TrimSpace(string(d)))
	if err != nil {
		return 0, err
	}
	min, err := strconv.Atoi(strings.TrimSpace(string(m)))
	if err != nil {
		return 0, err
	}
	sec, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return 0, err
	}
	return float64(deg) + float64(min)/60 + float64(sec)/100/3600, nil
}

// parseLatLong decodes the fixed 9-char "NDDMMSSss"-style latitude field
// and 10-char "EDDDMMSSss"-style longitude field used throughout
// ARINC-424.
func parseLatLong(lat, long []byte) (efbmath.GeoPoint, error) {
	if len(lat) < 9 || len(long) < 10 {
		return efbmath.GeoPoint{}, ErrMalformedRecord
	}
	if lat[0] != 'N' && lat[0] != 'S' {
		return efbmath.GeoPoint{}, ErrMalformedRecord
	}
	if long[0] != 'E' && long[0] != 'W' {
		return efbmath.GeoPoint{}, ErrMalformedRecord
	}

	latDeg, err := parseLLDigits(lat[1:3], lat[3:5], lat[5:9])
	if err != nil {
		return efbmath.GeoPoint{}, err
	}
	lonDeg, err := parseLLDigits(long[1:4], long[4:6], long[6:10])
	if err != nil {
		return efbmath.GeoPoint{}, err
	}

	if lat[0] == 'S' {
		latDeg = -latDeg
	}
	if long[0] == 'W' {
		lonDeg = -lonDeg
	}
	return efbmath.Point(latDeg, lonDeg), nil
}

// parseMagneticVariation decodes the 5-char "E/W" + tenths-of-degree
// field at cols 52-56 into an east-positive axis-less Angle.
func parseMagneticVariation(b []byte) (efbmath.Angle, error) {
	if len(b) < 5 || (b[0] != 'E' && b[0] != 'W') {
		return efbmath.Angle{}, ErrMalformedRecord
	}
	tenths, err := strconv.Atoi(strings.TrimSpace(string(b[1:5])))
	if err != nil {
		return efbmath.Angle{}, err
	}
	deg := float64(tenths) / 10
	if b[0] == 'W' {
		deg = -deg
	}
	return efbmath.DegreeAngle(deg), nil
}

func parseSignedInt(b []byte) (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

// ParseARINC424 reads ARINC-424 text (one 132-column record per line) and
// returns the decoded Airport and Waypoint records. Malformed or
// unsupported lines are skipped; eh (may be nil) accumulates a
// ParseError for every malformed line (too short, or a modelled record
// whose fields fail to parse) rather than aborting the read — a single
// bad line in a navigation data file shouldn't take down the whole
// database load. Blank lines, lines not starting with 'S', and record
// types that are not modelled are skipped without a ParseError.
func ParseARINC424(r io.Reader, eh *util.ErrorLogger) []Record {
	var records []Record

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), 4096)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := []byte(strings.TrimRight(sc.Text(), "\r"))
		if len(line) < arinc424LineLength {
			// Trailing whitespace is tolerated, but a line that's too
			// short to hold the fields we care about is skipped.
			if len(strings.TrimSpace(string(line))) == 0 {
				continue
			}
			if eh != nil {
				eh.Error(&ParseError{Line: lineNo, Column: len(line), Reason: "line shorter than 132 columns"})
			}
			continue
		}

		if line[0] != 'S' {
			continue // not a standard-format field; ignore
		}

		rec, ok, err := parseLine(line)
		if err != nil {
			if eh != nil {
				eh.Error(&ParseError{Line: lineNo, Reason: err.Error()})
			}
			continue
		}
		if ok {
			records = append(records, rec)
		}
	}

	return records
}

// parseLine classifies and decodes a single 132-column line. ok is false
// for recognized-but-uninteresting sections, so the ingester can stay
// lenient about ARINC-424 record types it doesn't model.
func parseLine(line []byte) (rec Record, ok bool, err error) {
	section := line[4]

	switch section {
	case 'P': // airport family
		icao := strings.TrimSpace(string(line[6:10]))

		// The terminal subsection code sits right after the section
		// letter ('PC'); airport primary records leave that column blank
		// and carry their subsection at column 13 instead.
		switch {
		case line[5] == 'C': // waypoint attached to this airport (terminal waypoint)
			ident := strings.TrimSpace(string(line[13:18]))
			if empty(line[32:51]) {
				return Record{}, false, ErrMalformedRecord
			}
			pos, err := parseLatLong(line[32:41], line[41:51])
			if err != nil {
				return Record{}, false, err
			}
			name := displayName(line[98:123])

			return Record{
				Kind:       KindWaypoint,
				Ident:      ident,
				Position:   pos,
				Name:       name,
				SubSection: Terminal,
				Airport:    icao,
			}, true, nil

		case line[12] == 'A': // primary airport record
			pos, err := parseLatLong(line[32:41], line[41:51])
			if err != nil {
				return Record{}, false, err
			}
			variation, err := parseMagneticVariation(line[51:56])
			if err != nil {
				return Record{}, false, err
			}
			elevFt, err := parseSignedInt(line[56:61])
			if err != nil {
				return Record{}, false, err
			}
			name := displayName(line[93:123])

			return Record{
				Kind:              KindAirport,
				Ident:             icao,
				Position:          pos,
				Name:              name,
				ElevationFt:       float64(elevFt),
				MagneticVariation: variation,
			}, true, nil

		default:
			return Record{}, false, nil
		}

	case 'E': // enroute
		subsection := line[5]
		if subsection != 'A' {
			return Record{}, false, nil // enroute airways and others: not modeled here
		}

		region := strings.TrimSpace(string(line[6:10]))
		ident := strings.TrimSpace(string(line[13:18]))
		if empty(line[32:51]) {
			return Record{}, false, ErrMalformedRecord
		}
		pos, err := parseLatLong(line[32:41], line[41:51])
		if err != nil {
			return Record{}, false, err
		}
		name := displayName(line[98:123])

		return Record{
			Kind:       KindWaypoint,
			Ident:      ident,
			Position:   pos,
			Name:       name,
			SubSection: Enroute,
			Region:     region,
		}, true, nil

	default:
		// Unknown section: skip rather than reject.
		return Record{}, false, nil
	}
}
