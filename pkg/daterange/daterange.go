package daterange

import (
	"fmt"
	"time"
)

// Range is an inclusive [Start, End] window used by reports and bill queries.
type Range struct {
	Start time.Time
	End   time.Time
}

// Preset names accepted by reporting endpoints.
const (
	PresetToday       = "today"
	PresetYesterday   = "yesterday"
	PresetLast7Days   = "last7days"
	PresetLast30Days  = "last30days"
	PresetLast3Months = "last3months"
	PresetLast6Months = "last6months"
	PresetLastYear    = "lastyear"
)

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable millisecond of t's calendar day.
// Using the end of day keeps date filters inclusive of the end date itself.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// FromPreset resolves a named preset relative to now.
func FromPreset(preset string, now time.Time) (Range, error) {
	today := StartOfDay(now)

	switch preset {
	case PresetToday:
		return Range{Start: today, End: EndOfDay(now)}, nil
	case PresetYesterday:
		y := today.AddDate(0, 0, -1)
		return Range{Start: y, End: EndOfDay(y)}, nil
	case PresetLast7Days:
		return Range{Start: today.AddDate(0, 0, -6), End: EndOfDay(now)}, nil
	case PresetLast30Days:
		return Range{Start: today.AddDate(0, 0, -29), End: EndOfDay(now)}, nil
	case PresetLast3Months:
		return Range{Start: StartOfDay(today.AddDate(0, -3, 0)), End: EndOfDay(now)}, nil
	case PresetLast6Months:
		return Range{Start: StartOfDay(today.AddDate(0, -6, 0)), End: EndOfDay(now)}, nil
	case PresetLastYear:
		return Range{Start: StartOfDay(today.AddDate(-1, 0, 0)), End: EndOfDay(now)}, nil
	default:
		return Range{}, fmt.Errorf("unknown date range preset %q", preset)
	}
}

// Parse resolves a report window from either a preset name or an explicit
// startDate/endDate pair in YYYY-MM-DD form. Explicit dates win over the
// preset. With nothing supplied, the window defaults to today.
func Parse(preset, startDate, endDate string, now time.Time) (Range, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return Range{}, fmt.Errorf("startDate and endDate must be supplied together")
		}
		start, err := time.ParseInLocation("2006-01-02", startDate, now.Location())
		if err != nil {
			return Range{}, fmt.Errorf("invalid startDate %q", startDate)
		}
		end, err := time.ParseInLocation("2006-01-02", endDate, now.Location())
		if err != nil {
			return Range{}, fmt.Errorf("invalid endDate %q", endDate)
		}
		if end.Before(start) {
			return Range{}, fmt.Errorf("endDate precedes startDate")
		}
		return Range{Start: StartOfDay(start), End: EndOfDay(end)}, nil
	}

	if preset == "" {
		preset = PresetToday
	}
	return FromPreset(preset, now)
}
