// pkg/planner/reserve.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import "github.com/pearson-efb/flightplan/pkg/efbmath"

// ReserveKind discriminates the Reserve tagged variant. The current
// core only implements Manual(duration); ReserveKind is kept as a tag
// (rather than Reserve just being a bare Duration) so a future reserve
// rule has somewhere to go without breaking the exported shape.
type ReserveKind int

const (
	// ManualReserve burns fuel at cruise flow for a fixed duration.
	ManualReserve ReserveKind = iota
)

// Reserve is the reserve-fuel rule a flight plan uses.
type Reserve struct {
	Kind     ReserveKind
	Duration efbmath.Duration
}

// Manual constructs a Reserve that burns cruise-flow fuel for d.
func Manual(d efbmath.Duration) Reserve {
	return Reserve{Kind: ManualReserve, Duration: d}
}
