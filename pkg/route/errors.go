// pkg/route/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGroundSpeedNonPositive is logged by Resolve, to its ErrorLogger when
// one is given, for each leg whose computed ground speed (Leg.GS) is zero
// or negative; it never aborts decoding, it only makes the affected leg's
// ete absent.
var ErrGroundSpeedNonPositive = errors.New("route: ground speed non-positive")

// ParseError reports the column at which a route-string token matched
// none of the route grammar's productions.
type ParseError struct {
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("route: column %d: %s", e.Column, e.Reason)
}

// UnresolvedFix reports an ident that the navigation database could not
// resolve at decode time. Decoding aborts without installing any
// partial route when this occurs. Suggestions lists known idents
// within two Levenshtein edits of Ident (closest first), a likely-typo
// hint an adapter may surface to the pilot; it is empty if nothing in
// the database is close.
type UnresolvedFix struct {
	Ident       string
	Suggestions []string
}

func (e *UnresolvedFix) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("route: unresolved fix %q", e.Ident)
	}
	return fmt.Sprintf("route: unresolved fix %q (did you mean %s?)", e.Ident, strings.Join(e.Suggestions, ", "))
}
