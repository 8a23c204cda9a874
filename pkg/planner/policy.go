// pkg/planner/policy.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package planner

import "github.com/pearson-efb/flightplan/pkg/efbmath"

// FuelPolicyKind discriminates the FuelPolicy tagged variant.
type FuelPolicyKind int

const (
	// MinimumFuel loads exactly the computed minimum.
	MinimumFuel FuelPolicyKind = iota
	// MaximumFuel loads every tank to capacity.
	MaximumFuel
	// ManualFuel loads a caller-declared quantity; fails with
	// ErrBelowMinimumFuel if it is less than the computed minimum.
	ManualFuel
	// FuelAtLanding loads exactly enough so that the quantity remaining
	// after landing equals the declared quantity.
	FuelAtLanding
	// ExtraFuel loads the computed minimum plus a caller-declared extra.
	ExtraFuel
)

// FuelPolicy resolves the actual fuel loaded on ramp from the computed
// minimum and planner inputs. The Fuel field is meaningful for every
// kind except MinimumFuel.
type FuelPolicy struct {
	Kind FuelPolicyKind
	Fuel efbmath.Fuel
}

func NewMinimumFuelPolicy() FuelPolicy { return FuelPolicy{Kind: MinimumFuel} }
func NewMaximumFuelPolicy() FuelPolicy { return FuelPolicy{Kind: MaximumFuel} }

func NewManualFuelPolicy(f efbmath.Fuel) FuelPolicy {
	return FuelPolicy{Kind: ManualFuel, Fuel: f}
}

func NewFuelAtLandingPolicy(f efbmath.Fuel) FuelPolicy {
	return FuelPolicy{Kind: FuelAtLanding, Fuel: f}
}

func NewExtraFuelPolicy(f efbmath.Fuel) FuelPolicy {
	return FuelPolicy{Kind: ExtraFuel, Fuel: f}
}
