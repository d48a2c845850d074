package util

import (
	"strconv"
	"strings"
	"time"
)

// Date layouts accepted from upstream payloads. Day-first layouts are what
// the price service emits in query params and legacy labels.
const (
	LayoutISODate    = "2006-01-02"
	LayoutDayFirst   = "02-01-2006"
	LayoutDayFirstYY = "02-01-06"
)

// ParseTime tries RFC3339, RFC3339Nano, plain ISO date, and unix seconds.
// Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(LayoutISODate, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// ParseDateLabel parses a chart axis label. Fallback chain:
// ISO-8601 -> dd-mm-yyyy -> dd-mm-yy (two-digit year, 2000s). All results
// are UTC midnight for date-only layouts.
func ParseDateLabel(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := ParseTime(s); ok {
		return t.UTC(), true
	}
	if t, err := time.ParseInLocation(LayoutDayFirst, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(LayoutDayFirstYY, s, time.UTC); err == nil {
		// Two-digit years are always 2000s here, regardless of the
		// stdlib's 69/99 pivot.
		if t.Year() < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}

// FormatDayFirst renders a time as dd-mm-yyyy, the date format the upstream
// price service expects in query params.
func FormatDayFirst(t time.Time) string {
	return t.UTC().Format(LayoutDayFirst)
}
