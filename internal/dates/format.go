package dates

import "time"

const (
	shortLayout = "01/02/06"
	longLayout  = "January 02, 2006"
)

// FormatRange renders the pass validity window as "MM/DD/YY" or
// "MM/DD/YY - MM/DD/YY", collapsing when start and end fall on the same day.
// Zero inputs render as the literal "Invalid Date" placeholder.
func FormatRange(start, end time.Time) string {
	return formatRange(start, end, shortLayout)
}

// FormatLongRange renders the window in long form for email bodies, e.g.
// "February 11, 2025" or "February 11, 2025 - February 13, 2025".
func FormatLongRange(start, end time.Time) string {
	return formatRange(start, end, longLayout)
}

// FormatLong renders a single date in long form.
func FormatLong(t time.Time) string {
	return t.Format(longLayout)
}

func formatRange(start, end time.Time, layout string) string {
	if start.IsZero() || end.IsZero() {
		return "Invalid Date"
	}
	s := start.Format(layout)
	e := end.Format(layout)
	// Equal-range collapsing compares the rendered date only, so times of
	// day on the same calendar day never produce a degenerate "X - X" range.
	if s == e {
		return s
	}
	return s + " - " + e
}
