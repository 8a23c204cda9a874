// pkg/route/leg.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"math"

	"github.com/pearson-efb/flightplan/pkg/efbmath"
)

// Leg is a directed segment between two consecutive resolved fixes,
// carrying the route-level level/wind/tas it inherited. Its
// navigation-derived fields (bearing, dist, mc, heading, mh, gs, ete)
// are computed lazily and cached until the Leg is dropped.
type Leg struct {
	From, To Fix

	Level *efbmath.VerticalDistance
	Wind  *efbmath.Wind
	TAS   *efbmath.Speed

	bearing *efbmath.Angle
	dist    *efbmath.Length
	mc      *efbmath.Angle
	heading *efbmath.Angle
	mh      *efbmath.Angle
	gs      *efbmath.Speed
}

// variationRad is the magnetic variation at the leg's departure fix, or
// zero when the fix carries none.
func (l *Leg) variationRad() float64 {
	if l.From.HasVariation {
		return l.From.Variation.Radians()
	}
	return 0
}

// Bearing returns the true-north initial great-circle bearing from
// From to To.
func (l *Leg) Bearing() efbmath.Angle {
	if l.bearing == nil {
		b := l.From.Position.InitialBearing(l.To.Position)
		l.bearing = &b
	}
	return *l.bearing
}

// Dist returns the great-circle distance from From to To.
func (l *Leg) Dist() efbmath.Length {
	if l.dist == nil {
		d := l.From.Position.Distance(l.To.Position)
		l.dist = &d
	}
	return *l.dist
}

// MC returns the magnetic course: bearing minus the variation at From.
// Always computable (variation defaults to zero).
func (l *Leg) MC() efbmath.Angle {
	if l.mc == nil {
		m := efbmath.MagneticHeadingRad(l.Bearing().Radians() - l.variationRad())
		l.mc = &m
	}
	return *l.mc
}

// windAndTAS returns the leg's wind and TAS, and false if either input
// is absent; every wind-dependent derived field is absent in that case.
func (l *Leg) windAndTAS() (efbmath.Wind, efbmath.Speed, bool) {
	if l.Wind == nil || l.TAS == nil {
		return efbmath.Wind{}, efbmath.Speed{}, false
	}
	return *l.Wind, *l.TAS, true
}

// wca returns the wind-correction angle in radians:
// asin((wind_speed/tas)·sin(wind_dir_true − bearing + π)).
func (l *Leg) wca(w efbmath.Wind, tas efbmath.Speed) float64 {
	bearing := l.Bearing().Radians()
	ratio := w.Speed.Knots() / tas.Knots()
	return efbmath.SafeAsin(ratio * math.Sin(w.Direction.Radians()-bearing+math.Pi))
}

// Heading returns the true heading (bearing corrected for wind), and
// false if wind or tas is absent.
func (l *Leg) Heading() (efbmath.Angle, bool) {
	w, tas, ok := l.windAndTAS()
	if !ok {
		return efbmath.Angle{}, false
	}
	if l.heading == nil {
		h := efbmath.TrueHeadingRad(l.Bearing().Radians() + l.wca(w, tas))
		l.heading = &h
	}
	return *l.heading, true
}

// MH returns the magnetic heading: Heading minus the variation at From,
// and false if Heading is absent.
func (l *Leg) MH() (efbmath.Angle, bool) {
	h, ok := l.Heading()
	if !ok {
		return efbmath.Angle{}, false
	}
	if l.mh == nil {
		m := efbmath.MagneticHeadingRad(h.Radians() - l.variationRad())
		l.mh = &m
	}
	return *l.mh, true
}

// GS returns the ground speed (possibly non-positive, see ETE), and
// false if wind or tas is absent.
func (l *Leg) GS() (efbmath.Speed, bool) {
	w, tas, ok := l.windAndTAS()
	if !ok {
		return efbmath.Speed{}, false
	}
	if l.gs == nil {
		bearing := l.Bearing().Radians()
		wca := l.wca(w, tas)
		g := tas.Knots()*math.Cos(wca) - w.Speed.Knots()*math.Cos(w.Direction.Radians()-bearing+math.Pi)
		gs := efbmath.Knots(g)
		l.gs = &gs
	}
	return *l.gs, true
}

// ETE returns the estimated time enroute (distance / ground speed,
// rounded half-to-even), false if GS is absent or non-positive: a
// tailwind-reversal ground speed never aborts the route, it only makes
// this one leg's ete absent, surfacing as a missing value rather than
// an error.
func (l *Leg) ETE() (efbmath.Duration, bool) {
	gs, ok := l.GS()
	if !ok || gs.Knots() <= 0 {
		return efbmath.Duration{}, false
	}
	return l.Dist().Div(gs), true
}
