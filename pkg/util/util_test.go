// pkg/util/util_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestStopShouting(t *testing.T) {
	input := "UNITED AIRLINES (North America)"
	expected := "United Airlines (North America)"
	ss := StopShouting(input)
	if ss != expected {
		t.Errorf("Got %q, expected %q", ss, expected)
	}
}

func TestSelectInTwoEdits(t *testing.T) {
	candidates := []string{"EDDH", "EDHH", "EDXX", "KORD"}
	dist1, dist2 := SelectInTwoEdits("EDDH", slices.Values(candidates), nil, nil)

	if !slices.Contains(dist1, "EDHH") {
		t.Errorf("expected EDHH (1 substitution edit) in dist1, got %v", dist1)
	}
	if !slices.Contains(dist2, "EDXX") {
		t.Errorf("expected EDXX (2 edits) in dist2, got %v", dist2)
	}
	if slices.Contains(dist1, "EDDH") || slices.Contains(dist2, "EDDH") {
		t.Error("the query string itself should never be suggested")
	}
	if slices.Contains(dist1, "KORD") || slices.Contains(dist2, "KORD") {
		t.Error("KORD is more than 2 edits from EDDH and should not be suggested")
	}
}
