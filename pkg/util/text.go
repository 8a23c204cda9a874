// pkg/util/text.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"iter"
	"unicode"
)

// StopShouting turns text of the form "UNITED AIRLINES" to "United Airlines".
// ARINC-424 name fields are conventionally all-uppercase; navdb uses this
// to present a more readable Record.Name.
func StopShouting(orig string) string {
	var s []rune
	wsLast := true
	for _, ch := range orig {
		if unicode.IsSpace(ch) {
			wsLast = true
		} else if unicode.IsLetter(ch) {
			if wsLast {
				wsLast = false
			} else {
				ch = unicode.ToLower(ch)
			}
		}
		s = append(s, ch)
	}
	return string(s)
}

// SelectInTwoEdits scans a sequence of candidate strings and returns those
// within one or two Levenshtein edits of str, partitioned by distance.
// route.Resolve uses this to suggest near-miss idents on an UnresolvedFix
// (e.g. a typo'd "EDHH" suggesting "EDDH").
// https://en.wikipedia.org/wiki/Levenshtein_distance
func SelectInTwoEdits(str string, seq iter.Seq[string], dist1, dist2 []string) ([]string, []string) {
	min := func(a, b int) int {
		if a < b {
			return a
		}
		return b
	}
	max := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}

	var cur, prev []int
	n := len(str)
	for str2 := range seq {
		if str == str2 {
			continue
		}

		n2 := len(str2)
		nmax := max(n, n2)

		if nmax >= len(cur) {
			cur = make([]int, nmax+1)
			prev = make([]int, nmax+1)
		}

		for i := range n2 + 1 {
			prev[i] = i
		}

		for y := 1; y <= n; y++ {
			cur[0] = y
			rowBest := y

			for x := 1; x <= n2; x++ {
				cost := 0
				if str[y-1] != str2[x-1] {
					cost = 1
				}

				cur[x] = min(prev[x-1]+cost, min(cur[x-1], prev[x])+1)

				if cur[x] < rowBest {
					rowBest = cur[x]
				}
			}

			if rowBest > 2 {
				continue
			}
			cur, prev = prev, cur
		}

		if prev[n2] == 1 {
			dist1 = append(dist1, str2)
		} else if prev[n2] == 2 {
			dist2 = append(dist2, str2)
		}
	}
	return dist1, dist2
}
