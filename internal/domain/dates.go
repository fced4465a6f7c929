package domain

import "time"

// DayLayout is the wire format for every timestamp in the simulation.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD timestamp. The zero time is returned for
// empty or malformed input.
func ParseDay(s string) time.Time {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysBetween returns the signed number of calendar days from one timestamp
// to another.
func DaysBetween(from, to string) int {
	a := ParseDay(from)
	b := ParseDay(to)
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
