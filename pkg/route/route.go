// pkg/route/route.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"github.com/pearson-efb/flightplan/pkg/efbmath"
	"github.com/pearson-efb/flightplan/pkg/navdb"
	"github.com/pearson-efb/flightplan/pkg/util"
)

// Route is a fully resolved flight plan: an initial wind/speed/level and
// the non-empty ordered sequence of legs between consecutive fixes.
// Route.Legs is non-empty iff decoding succeeded; Resolve never returns
// a Route with fewer than one leg.
type Route struct {
	InitialWind  *efbmath.Wind
	InitialSpeed *efbmath.Speed
	InitialLevel *efbmath.VerticalDistance
	Legs         []*Leg
}

// TotalDistance sums Dist() across every leg.
func (r *Route) TotalDistance() efbmath.Length {
	var total efbmath.Length
	for _, l := range r.Legs {
		total = total.Add(l.Dist())
	}
	return total
}

// TotalETE sums ETE() across every leg that has one; a leg with an
// absent ete simply contributes nothing, it does not abort the sum.
func (r *Route) TotalETE() efbmath.Duration {
	var total efbmath.Duration
	for _, l := range r.Legs {
		if ete, ok := l.ETE(); ok {
			total = total.Add(ete)
		}
	}
	return total
}

// Resolve walks pre.Idents, resolving each against db with the
// previously resolved fix as lookup context (a terminal waypoint like
// DHN2 resolves against its airport, e.g. EDDH, rather than a
// like-named enroute fix), then builds the consecutive-pair legs. An
// unresolved ident aborts resolution atomically: no partial Route is
// ever returned.
func Resolve(pre PreRoute, db *navdb.Store, eh *util.ErrorLogger) (*Route, error) {
	fixes := make([]Fix, len(pre.Idents))
	var context *navdb.Record

	for i, ident := range pre.Idents {
		rec, ok := db.Lookup(ident, context)
		if !ok {
			dist1, dist2 := util.SelectInTwoEdits(ident, db.Idents(), nil, nil)
			return nil, &UnresolvedFix{Ident: ident, Suggestions: append(dist1, dist2...)}
		}
		fixes[i] = fixFromRecord(rec)
		context = &rec
	}

	r := &Route{
		InitialWind:  pre.Wind,
		InitialSpeed: pre.TAS,
		InitialLevel: pre.Level,
		Legs:         make([]*Leg, 0, len(fixes)-1),
	}

	for i := 0; i < len(fixes)-1; i++ {
		leg := &Leg{
			From:  fixes[i],
			To:    fixes[i+1],
			Level: pre.Level,
			Wind:  pre.Wind,
			TAS:   pre.TAS,
		}
		if gs, ok := leg.GS(); ok && gs.Knots() <= 0 {
			if eh != nil {
				eh.Error(ErrGroundSpeedNonPositive)
			}
		}
		r.Legs = append(r.Legs, leg)
	}

	return r, nil
}
