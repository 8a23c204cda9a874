// pkg/planner/perf.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package planner computes fuel planning and mass-and-balance for an
// aircraft flying a resolved route. It is the only component that
// depends on both pkg/aircraft and pkg/route.
package planner

import "github.com/pearson-efb/flightplan/pkg/efbmath"

// Performance is the aircraft performance at a given vertical distance:
// true airspeed and fuel flow.
type Performance struct {
	TAS efbmath.Speed
	FF  efbmath.FuelFlow
}

// PerfFn is a pure function from a vertical distance to a Performance.
// Callers may be invoked many times with arbitrary levels at or below
// the planning Ceiling; PerfFn implementations must not assume any
// internal caching.
type PerfFn func(level efbmath.VerticalDistance) Performance

// TablePerf builds a PerfFn from a small piecewise-constant-above table:
// the performance of the highest table entry at or below the queried
// level applies. entries need not be sorted; TablePerf sorts a copy
// eagerly so every call is a simple linear scan.
func TablePerf(entries map[float64]Performance) PerfFn {
	type row struct {
		ft   float64
		perf Performance
	}
	rows := make([]row, 0, len(entries))
	for ft, p := range entries {
		rows = append(rows, row{ft, p})
	}
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].ft < rows[j-1].ft; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}

	return func(level efbmath.VerticalDistance) Performance {
		if len(rows) == 0 {
			return Performance{}
		}
		best := rows[0]
		for _, r := range rows {
			if r.ft <= level.Feet() {
				best = r
			}
		}
		return best.perf
	}
}

// ConstantPerf returns a PerfFn that ignores its level argument and
// always returns p — the common case for simple single-cruise-phase
// planning (e.g. a fixed fuel flow at any level).
func ConstantPerf(p Performance) PerfFn {
	return func(efbmath.VerticalDistance) Performance { return p }
}
