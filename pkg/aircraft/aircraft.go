// pkg/aircraft/aircraft.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package aircraft models a fixed-wing aircraft's loading stations, fuel
// tanks, and centre-of-gravity envelope — the aircraft model the
// fuel/mass-and-balance planner in pkg/planner consumes.
package aircraft

import "github.com/pearson-efb/flightplan/pkg/efbmath"

// Station is a loading position on the aircraft (a seat, a baggage
// compartment, ...): an arm (lever from the datum) and a human-readable
// description an adapter can display to the pilot. Loaded mass per
// station is supplied separately at planning time.
type Station struct {
	Arm         efbmath.Length
	Description string
}

// Tank is a fuel tank: its usable capacity and the lever arm it acts
// through. Fuel type is shared by every tank on the aircraft.
type Tank struct {
	Capacity efbmath.Volume
	Arm      efbmath.Length
}

// EnvelopeVertex is one (mass, arm) vertex of the CG envelope polygon.
// The first and last vertex close the polygon by convention.
type EnvelopeVertex struct {
	Mass efbmath.Mass
	Arm  efbmath.Length
}

// Aircraft is the built, immutable aircraft definition a Planner
// evaluates against.
type Aircraft struct {
	Registration string
	Notes        string

	Stations []Station

	EmptyMass    efbmath.Mass
	EmptyBalance efbmath.Length // arm, not a distance along a track

	FuelType efbmath.FuelType
	Tanks    []Tank

	CGEnvelope []EnvelopeVertex
}

// TotalCapacity sums every tank's usable capacity.
func (a *Aircraft) TotalCapacity() efbmath.Volume {
	var total efbmath.Volume
	for _, tk := range a.Tanks {
		total = total.Add(tk.Capacity)
	}
	return total
}

// Contains reports whether the (mass, arm) point lies inside the CG
// envelope polygon, boundary inclusive. The arm is plotted on the
// x-axis and mass on the y-axis, the conventional CG-envelope chart
// orientation. The polygon is assumed simple (non-self-intersecting);
// providers are trusted to supply one.
func (a *Aircraft) Contains(mass efbmath.Mass, arm efbmath.Length) bool {
	return pointInPolygon(a.CGEnvelope, arm.Meters(), mass.Kilograms())
}

// pointInPolygon implements the standard even-odd ray-casting test,
// extended to treat a point exactly on an edge as inside.
func pointInPolygon(poly []EnvelopeVertex, x, y float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].Arm.Meters(), poly[i].Mass.Kilograms()
		xj, yj := poly[j].Arm.Meters(), poly[j].Mass.Kilograms()

		if onSegment(x, y, xi, yi, xj, yj) {
			return true
		}

		if (yi > y) != (yj > y) {
			xCross := xi + (y-yi)/(yj-yi)*(xj-xi)
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether (x,y) lies on the closed segment
// (xi,yi)-(xj,yj), within float64 rounding tolerance.
func onSegment(x, y, xi, yi, xj, yj float64) bool {
	const eps = 1e-9
	cross := (x-xi)*(yj-yi) - (y-yi)*(xj-xi)
	if efbmath.Abs(cross) > eps*(efbmath.Abs(xj-xi)+efbmath.Abs(yj-yi)+1) {
		return false
	}
	if x < min(xi, xj)-eps || x > max(xi, xj)+eps {
		return false
	}
	if y < min(yi, yj)-eps || y > max(yi, yj)+eps {
		return false
	}
	return true
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
