// pkg/route/decode.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pearson-efb/flightplan/pkg/efbmath"
)

// PreRoute is the unresolved result of tokenising a route string: an
// optional initial wind/TAS/level and the ordered list of fix idents,
// not yet looked up in a navigation database. The leg evaluator (leg.go)
// consumes a PreRoute together with a navdb.Store to produce a Route.
type PreRoute struct {
	Wind   *efbmath.Wind
	TAS    *efbmath.Speed
	Level  *efbmath.VerticalDistance
	Idents []string
}

var (
	windRE  = regexp.MustCompile(`^(?i)(\d{3})/?(\d{2})KT$`)
	speedRE = regexp.MustCompile(`^N(\d{4})$`)
	altRE   = regexp.MustCompile(`^A(\d{4})$`)
	flRE    = regexp.MustCompile(`^F(\d{3})$`)
	fixRE   = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,4}$`)
)

// Decode tokenises a route string per its grammar:
//
//	route := wind? speed? level? fix (fix)+
//
// wind/speed/level are order-independent prefix tokens that each occur
// at most once; once a token fails to match any of the three it and
// every token after it are taken as the (at-least-two) fix idents.
func Decode(text string) (PreRoute, error) {
	var pre PreRoute

	haveWind, haveSpeed, haveLevel := false, false, false
	inFixes := false

	for _, tok := range splitFields(text) {
		if !inFixes {
			switch {
			case windRE.MatchString(tok.text):
				if haveWind {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: "duplicate wind token"}
				}
				w, err := parseWind(tok.text)
				if err != nil {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: err.Error()}
				}
				pre.Wind = &w
				haveWind = true
				continue
			case speedRE.MatchString(tok.text):
				if haveSpeed {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: "duplicate speed token"}
				}
				s, err := parseSpeed(tok.text)
				if err != nil {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: err.Error()}
				}
				pre.TAS = &s
				haveSpeed = true
				continue
			case altRE.MatchString(tok.text) || flRE.MatchString(tok.text):
				if haveLevel {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: "duplicate level token"}
				}
				l, err := parseLevel(tok.text)
				if err != nil {
					return PreRoute{}, &ParseError{Column: tok.col, Reason: err.Error()}
				}
				pre.Level = &l
				haveLevel = true
				continue
			default:
				inFixes = true
			}
		}

		if !fixRE.MatchString(tok.text) {
			return PreRoute{}, &ParseError{Column: tok.col, Reason: "not a valid token"}
		}
		pre.Idents = append(pre.Idents, tok.text)
		inFixes = true
	}

	if len(pre.Idents) < 2 {
		return PreRoute{}, &ParseError{Column: 0, Reason: "route requires at least two fixes"}
	}

	return pre, nil
}

type field struct {
	text string
	col  int
}

// splitFields tokenises on whitespace while retaining each token's
// starting byte column for ParseError reporting.
func splitFields(s string) []field {
	var fields []field
	i := 0
	for i < len(s) {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && !isSpace(s[i]) {
			i++
		}
		fields = append(fields, field{text: s[start:i], col: start})
	}
	return fields
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

func parseWind(tok string) (efbmath.Wind, error) {
	m := windRE.FindStringSubmatch(strings.ToUpper(tok))
	dir, err := strconv.Atoi(m[1])
	if err != nil {
		return efbmath.Wind{}, err
	}
	spd, err := strconv.Atoi(m[2])
	if err != nil {
		return efbmath.Wind{}, err
	}
	return efbmath.NewWind(float64(dir), float64(spd)), nil
}

func parseSpeed(tok string) (efbmath.Speed, error) {
	m := speedRE.FindStringSubmatch(tok)
	kt, err := strconv.Atoi(m[1])
	if err != nil {
		return efbmath.Speed{}, err
	}
	return efbmath.Knots(float64(kt)), nil
}

func parseLevel(tok string) (efbmath.VerticalDistance, error) {
	if m := altRE.FindStringSubmatch(tok); m != nil {
		ft, err := strconv.Atoi(m[1])
		if err != nil {
			return efbmath.VerticalDistance{}, err
		}
		return efbmath.Altitude(float64(ft) * 10), nil
	}
	m := flRE.FindStringSubmatch(tok)
	hundreds, err := strconv.Atoi(m[1])
	if err != nil {
		return efbmath.VerticalDistance{}, err
	}
	return efbmath.FL(float64(hundreds)), nil
}
