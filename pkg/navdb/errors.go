// pkg/navdb/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package navdb

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel a ParseError wraps; ingestion never
// fails globally on it — malformed lines are logged and skipped.
var ErrMalformedRecord = errors.New("navdb: malformed ARINC-424 record")

// ParseError carries the line number of a fixed-width record that failed
// to parse. Column is set only for a line shorter than 132 columns, where
// it holds the line's length; it is 0 when a field fails to parse.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformedRecord }
