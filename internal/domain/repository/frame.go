package repository

import "time"

// Frame is a dashboard timeframe code controlling how far back a series
// fetch reaches.
type Frame string

const (
	Frame7d  Frame = "7d"
	Frame15d Frame = "15d"
	Frame1m  Frame = "1m"
	Frame3m  Frame = "3m"
	Frame1y  Frame = "1y"
	Frame3y  Frame = "3y"
	FrameAll Frame = "all"
)

// Granularity is an aggregation bucket size.
type Granularity string

const (
	GranDay     Granularity = "day"
	GranWeek    Granularity = "week"
	GranMonth   Granularity = "month"
	GranQuarter Granularity = "quarter"
	GranYear    Granularity = "year"
	GranAll     Granularity = "all"
)

// IsValidFrame returns true if f is a supported timeframe code.
func IsValidFrame(f Frame) bool {
	switch f {
	case Frame7d, Frame15d, Frame1m, Frame3m, Frame1y, Frame3y, FrameAll:
		return true
	default:
		return false
	}
}

// DefaultFrame returns the default timeframe.
func DefaultFrame() Frame { return Frame1m }

// NormalizeFrame converts raw string to a valid frame (or default).
func NormalizeFrame(s string) Frame {
	if s == "" {
		return DefaultFrame()
	}
	f := Frame(s)
	if IsValidFrame(f) {
		return f
	}
	return DefaultFrame()
}

// IsValidGranularity returns true if g is a supported bucket size.
func IsValidGranularity(g Granularity) bool {
	switch g {
	case GranDay, GranWeek, GranMonth, GranQuarter, GranYear, GranAll:
		return true
	default:
		return false
	}
}

// NormalizeGranularity converts raw string to a valid granularity (or day).
func NormalizeGranularity(s string) Granularity {
	if s == "" {
		return GranDay
	}
	g := Granularity(s)
	if IsValidGranularity(g) {
		return g
	}
	return GranDay
}

// FrameWindow returns the lookback duration for a frame. FrameAll returns
// zero, meaning no lower bound.
func FrameWindow(f Frame) time.Duration {
	const day = 24 * time.Hour
	switch f {
	case Frame7d:
		return 7 * day
	case Frame15d:
		return 15 * day
	case Frame1m:
		return 30 * day
	case Frame3m:
		return 90 * day
	case Frame1y:
		return 365 * day
	case Frame3y:
		return 3 * 365 * day
	default:
		return 0
	}
}
