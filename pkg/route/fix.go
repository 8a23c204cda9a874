// pkg/route/fix.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package route tokenises a textual route string, resolves its fixes
// against a navigation database, and evaluates the resulting legs'
// great-circle navigation (bearing, heading, ground speed, ETE).
package route

import (
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/navdb"
)

// Fix is a resolved route point, copied by value out of the navigation
// database so that a Route stays independent of later database
// mutation.
type Fix struct {
	Ident    string
	Position efbmath.GeoPoint

	// HasVariation reports whether Variation is meaningful: only an
	// Airport record carries a magnetic variation; a Waypoint fix
	// leaves this false and legs fall back to zero variation.
	HasVariation bool
	Variation    efbmath.Angle // axis-less (Radian), east positive

	// HasElevation reports whether ElevationFt is meaningful: only an
	// Airport record carries a field elevation, which the fuel planner
	// uses as the departure elevation for its climb-fuel estimate.
	HasElevation bool
	ElevationFt  float64
}

func fixFromRecord(r navdb.Record) Fix {
	f := Fix{Ident: r.Ident, Position: r.Position}
	if r.IsAirport() {
		f.HasVariation = true
		f.Variation = r.MagneticVariation
		f.HasElevation = true
		f.ElevationFt = r.ElevationFt
	}
	return f
}
