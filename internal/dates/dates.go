// Package dates normalizes the heterogeneous date strings found in the
// master file. Rows arrive with anything from bare ISO dates to full
// browser-style strings like
// "Thu Jan 30 2025 08:00:00 GMT-0500 (Eastern Standard Time)".
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseable is returned when no parsing strategy accepts the input.
var ErrUnparseable = errors.New("unparseable date")

// directLayouts are tried in order for as-is parsing.
var directLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"01/02/06",
	"January 2, 2006",
	"Jan 2, 2006",
}

// strategy is one step of the parsing chain. The chain stops at the first
// strategy that accepts the input.
type strategy struct {
	name  string
	parse func(raw string) (time.Time, bool)
}

var chain = []strategy{
	{"direct", parseDirect},
	{"cleaned-iso", parseCleanedISO},
	{"verbose-locale", parseVerboseLocale},
	{"cleaned-direct", parseCleanedDirect},
}

// Normalize parses a raw date string into a timestamp. It never panics;
// callers must treat an error as "cannot schedule this row".
func Normalize(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}
	for _, s := range chain {
		if t, ok := s.parse(raw); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
}

func parseDirect(raw string) (time.Time, bool) {
	return tryLayouts(raw)
}

// clean cuts a verbose locale string down to its parseable prefix: everything
// at and after the first "GMT" token goes, or failing that everything at and
// after the first "(".
func clean(raw string) string {
	if i := strings.Index(raw, "GMT"); i >= 0 {
		raw = raw[:i]
	} else if i := strings.Index(raw, "("); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}

func parseCleanedISO(raw string) (time.Time, bool) {
	s := clean(raw)
	if !strings.Contains(s, "T") {
		return time.Time{}, false
	}
	return tryLayouts(s)
}

// parseVerboseLocale handles "Thu Jan 30 2025 08:00:00": reassemble
// "<month> <day> <year>" from tokens 1-3, discarding weekday and time of day.
func parseVerboseLocale(raw string) (time.Time, bool) {
	tokens := strings.Fields(clean(raw))
	if len(tokens) < 4 {
		return time.Time{}, false
	}
	t, err := time.Parse("Jan 2 2006", strings.Join(tokens[1:4], " "))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseCleanedDirect(raw string) (time.Time, bool) {
	return tryLayouts(clean(raw))
}

func tryLayouts(s string) (time.Time, bool) {
	for _, layout := range directLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
