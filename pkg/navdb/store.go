// pkg/navdb/store.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdb

import (
	"iter"
	"maps"
)

// Store is a keyed collection of navigation Records. Because the same
// ident can legitimately appear more than once in a real-world database
// (an enroute fix and a terminal waypoint sharing a 5-char name, or the
// same waypoint repeated at two different airports), each ident maps to
// an ordered list of candidates rather than a single Record.
type Store struct {
	byIdent map[string][]Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byIdent: make(map[string][]Record)}
}

// Ingest adds records to the store. Re-ingesting the same (Kind,
// SubSection, Region, Airport, Ident) key overwrites the earlier
// candidate in place rather than appending a duplicate, so re-reading a
// navigation database file is idempotent.
func (s *Store) Ingest(records []Record) {
	for _, r := range records {
		s.put(r)
	}
}

func (s *Store) put(r Record) {
	candidates := s.byIdent[r.Ident]
	for i, c := range candidates {
		if c.Kind == r.Kind && c.SubSection == r.SubSection && c.Region == r.Region && c.Airport == r.Airport {
			candidates[i] = r
			return
		}
	}
	s.byIdent[r.Ident] = append(candidates, r)
}

// Lookup resolves ident to a single Record, given the context of the
// fix immediately preceding it in the route being decoded (nil if
// ident is the first fix). Resolution order, most specific first:
//
//  1. An Airport record matching ident.
//  2. A Terminal waypoint whose attached Airport matches context's
//     airport (context itself if it is an Airport, or context's
//     Airport field if it is a Terminal waypoint).
//  3. Any Enroute waypoint.
//  4. The first remaining candidate, in ingestion order, so resolution
//     is deterministic even when nothing above matches.
func (s *Store) Lookup(ident string, context *Record) (Record, bool) {
	candidates := s.byIdent[ident]
	if len(candidates) == 0 {
		return Record{}, false
	}

	for _, c := range candidates {
		if c.IsAirport() {
			return c, true
		}
	}

	if context != nil {
		contextAirport := context.Airport
		if context.IsAirport() {
			contextAirport = context.Ident
		}
		if contextAirport != "" {
			for _, c := range candidates {
				if !c.IsAirport() && c.SubSection == Terminal && c.Airport == contextAirport {
					return c, true
				}
			}
		}
	}

	for _, c := range candidates {
		if !c.IsAirport() && c.SubSection == Enroute {
			return c, true
		}
	}

	return candidates[0], true
}

// Idents returns every ident known to the store, in no particular
// order. route.Resolve uses this as the candidate pool for suggesting
// near-miss spellings on an unresolved fix.
func (s *Store) Idents() iter.Seq[string] {
	return maps.Keys(s.byIdent)
}
