package model

import (
	"fmt"
	"strings"
	"time"
)

// Timeframe is a named chart window. Each timeframe maps to a bar interval and
// an approximate bar count; intraday timeframes use minute bars, everything
// else uses daily bars.
type Timeframe string

const (
	Timeframe1D  Timeframe = "1D"
	Timeframe1W  Timeframe = "1W"
	Timeframe1M  Timeframe = "1M"
	Timeframe3M  Timeframe = "3M"
	Timeframe6M  Timeframe = "6M"
	Timeframe1Y  Timeframe = "1Y"
	TimeframeYTD Timeframe = "YTD"
	TimeframeMax Timeframe = "MAX"
)

// Timeframes lists all supported chart windows in display order.
var Timeframes = []Timeframe{
	Timeframe1D, Timeframe1W, Timeframe1M, Timeframe3M,
	Timeframe6M, Timeframe1Y, TimeframeYTD, TimeframeMax,
}

// ParseTimeframe validates and normalizes a timeframe token.
// Returns an error for anything outside the supported set.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Timeframes {
		if tf == known {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unsupported timeframe %q", s)
}

// Intraday reports whether the timeframe uses minute-granularity bars.
func (t Timeframe) Intraday() bool {
	return t == Timeframe1D || t == Timeframe1W
}

// BarInterval returns the spacing between consecutive bars for the timeframe.
func (t Timeframe) BarInterval() time.Duration {
	switch t {
	case Timeframe1D:
		return 5 * time.Minute
	case Timeframe1W:
		return 30 * time.Minute
	default:
		return 24 * time.Hour
	}
}

// BarCount returns how many bars a chart for this timeframe should span,
// evaluated at the given time (YTD depends on the current date).
// Counts approximate trading sessions: one day is 78 five-minute bars
// (6.5 trading hours), one month is ~21 sessions, one year ~252.
func (t Timeframe) BarCount(now time.Time) int {
	switch t {
	case Timeframe1D:
		return 78
	case Timeframe1W:
		return 65
	case Timeframe1M:
		return 21
	case Timeframe3M:
		return 63
	case Timeframe6M:
		return 126
	case Timeframe1Y:
		return 252
	case TimeframeYTD:
		yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		days := int(now.Sub(yearStart).Hours() / 24)
		// Rough weekday ratio; at least one bar so January 1st still charts.
		sessions := days * 5 / 7
		if sessions < 1 {
			sessions = 1
		}
		if sessions > 252 {
			sessions = 252
		}
		return sessions
	case TimeframeMax:
		return 1260
	default:
		return 21
	}
}

// WindowStart returns the earliest bar timestamp the timeframe should include,
// evaluated at the given time.
func (t Timeframe) WindowStart(now time.Time) time.Time {
	switch t {
	case Timeframe1D:
		return now.AddDate(0, 0, -1)
	case Timeframe1W:
		return now.AddDate(0, 0, -7)
	case Timeframe1M:
		return now.AddDate(0, -1, 0)
	case Timeframe3M:
		return now.AddDate(0, -3, 0)
	case Timeframe6M:
		return now.AddDate(0, -6, 0)
	case Timeframe1Y:
		return now.AddDate(-1, 0, 0)
	case TimeframeYTD:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case TimeframeMax:
		return now.AddDate(-5, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
