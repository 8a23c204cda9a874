// pkg/navdb/record.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package navdb ingests fixed-column ARINC-424 navigation records into a
// keyed store and resolves idents to fixes for the route decoder.
package navdb

import "github.com/pearson-efb/flightplan/pkg/efbmath"

// SubSection discriminates the Waypoint half of the Record union between
// an enroute fix and one attached to a terminal airport.
type SubSection int

const (
	Enroute SubSection = iota
	Terminal
)

func (s SubSection) String() string {
	if s == Terminal {
		return "PC"
	}
	return "E"
}

// Kind discriminates the navigation Record union.
type Kind int

const (
	KindAirport Kind = iota
	KindWaypoint
)

// Record is the discriminated union of navigation records the ingester
// produces: an Airport or a Waypoint. Only the fields relevant to the
// active Kind are meaningful.
type Record struct {
	Kind Kind

	// Ident is the record's own identifier: a 4-char ICAO ident for an
	// Airport, up to 5 chars for a Waypoint.
	Ident string

	Position efbmath.GeoPoint
	Name     string

	// Airport-only fields.
	ElevationFt       float64
	MagneticVariation efbmath.Angle // Radian-axis, east positive

	// Waypoint-only fields.
	SubSection SubSection
	// Region is the ICAO region code an Enroute waypoint belongs to
	// (empty for Terminal waypoints, whose Airport locates them instead).
	Region string
	// Airport is the ident of the attached airport for a Terminal
	// waypoint (empty for Enroute); it is the context used to resolve
	// which of several like-named waypoints a route leg means.
	Airport string
}

// IsAirport reports whether the record is an Airport.
func (r Record) IsAirport() bool { return r.Kind == KindAirport }
