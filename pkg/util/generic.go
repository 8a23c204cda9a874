// pkg/util/generic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "slices"

// DuplicateSlice returns a newly-allocated slice that is a copy of the
// provided one. Used by the aircraft builder's Stations/Tanks/CGEnvelope
// snapshot accessors and by Build itself, so a built Aircraft never
// sees later builder mutations.
func DuplicateSlice[V any](s []V) []V {
	dupe := make([]V, len(s))
	copy(dupe, s)
	return dupe
}

// DeleteSliceElement deletes the i-th element of the given slice,
// returning the resulting slice. Used by the aircraft builder's
// StationsRemove/TanksRemove/CGEnvelopeRemove.
//
// Note that the provided slice s is modified!
func DeleteSliceElement[V any](s []V, i int) []V {
	if i < 0 || i >= len(s) {
		return s
	}
	return slices.Delete(s, i, i+1)
}
