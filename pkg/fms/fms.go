// pkg/fms/fms.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package fms implements the Flight Management System façade: it owns
// the navigation database and the current route, and drives the route
// decoder, leg evaluator, and fuel/mass-and-balance planner on behalf
// of a caller. It exposes ordinary methods returning values and errors
// rather than opaque handles.
package fms

import (
	"bytes"
	"errors"

	"github.com/pearson-efb/flightplan/pkg/aircraft"
	"github.com/pearson-efb/flightplan/pkg/navdb"
	"github.com/pearson-efb/flightplan/pkg/planner"
	"github.com/pearson-efb/flightplan/pkg/route"
	"github.com/pearson-efb/flightplan/pkg/util"
)

// InputFormat tags the navigation-data text format a caller hands to
// NDRead. OpenAir airspace parsing uses the same ingester pattern as
// ARINC-424 but is out of scope for this core; NDRead logs an
// "unsupported format" diagnostic for it rather than failing,
// consistent with ingestion never failing globally.
type InputFormat int

const (
	Arinc424 InputFormat = iota
	OpenAir
)

// ErrNoRoute is returned by SetFlightPlanning when no route has been
// decoded yet: a planning always evaluates against the current route.
var ErrNoRoute = errors.New("fms: no route decoded")

// FMS is the flight management system façade. It owns its navigation
// database and current route exclusively; an FMS value must not be
// shared across goroutines without external serialisation — the
// surrounding adapter layer is responsible for that.
type FMS struct {
	db *navdb.Store

	route    *route.Route
	planning *planner.Planning
	aircraft *aircraft.Aircraft // the aircraft the current planning was built against

	errors *util.ErrorLogger
}

// New returns an FMS with an empty navigation database, no route, and
// no planning.
func New() *FMS {
	return &FMS{db: navdb.NewStore(), errors: &util.ErrorLogger{}}
}

// NDRead adds the records parsed from data in the given format to the
// navigation database. Ingestion never fails globally: malformed lines
// are skipped and logged to the FMS's internal error accumulator,
// retrievable via Errors. Re-reading the same data is idempotent.
func (f *FMS) NDRead(data []byte, format InputFormat) {
	switch format {
	case Arinc424:
		f.errors.Push("nd_read")
		records := navdb.ParseARINC424(bytes.NewReader(data), f.errors)
		f.db.Ingest(records)
		f.errors.Pop()
	case OpenAir:
		f.errors.Push("nd_read")
		f.errors.ErrorString("OpenAir ingestion is out of scope for this core")
		f.errors.Pop()
	}
}

// Errors returns the accumulated non-fatal ingestion diagnostics.
func (f *FMS) Errors() *util.ErrorLogger { return f.errors }

// Decode tokenises text and resolves it against the navigation
// database, replacing the current route. On failure the current route
// is left untouched — decoding never installs a partial route.
func (f *FMS) Decode(text string) error {
	pre, err := route.Decode(text)
	if err != nil {
		return err
	}
	r, err := route.Resolve(pre, f.db, f.errors)
	if err != nil {
		return err
	}
	f.route = r
	return nil
}

// Route returns the current route, or nil if none has been decoded yet.
// The returned value is a borrow: its lifetime is tied to the FMS and a
// later Decode call replaces what it points to without mutating the
// value already returned.
func (f *FMS) Route() *route.Route { return f.route }

// SetFlightPlanning evaluates b against the current route and replaces
// the current planning. It fails atomically: on error, the previous
// planning (if any) is left untouched.
func (f *FMS) SetFlightPlanning(b *PlanningBuilder) error {
	if f.route == nil {
		return ErrNoRoute
	}
	if err := b.validate(); err != nil {
		return err
	}

	p, err := planner.Plan(b.aircraft, b.masses, b.policy, b.taxi, b.reserve, b.perf, b.ceiling, f.route)
	if err != nil {
		return err
	}

	f.planning = p
	f.aircraft = b.aircraft
	return nil
}

// FlightPlanning returns the current planning, or nil if none has been
// set yet.
func (f *FMS) FlightPlanning() *planner.Planning { return f.planning }

// IsBalanced reports whether the current planning's on-ramp and
// after-landing loading points both lie inside the planned aircraft's
// CG envelope. It returns false if no planning has been set.
func (f *FMS) IsBalanced() bool {
	if f.planning == nil || f.aircraft == nil {
		return false
	}
	return f.planning.IsBalanced(f.aircraft)
}
