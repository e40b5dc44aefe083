package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the date format used in configuration files and reports.
const DateLayout = "2006-01-02"

// daysPerYear is the ACT/365 Fixed denominator.
const daysPerYear = 365.0

// YearFraction returns the ACT/365F year fraction between two dates.
// It is negative when end is before start.
func YearFraction(start, end time.Time) float64 {
	return float64(DaysBetween(start, end)) / daysPerYear
}

// DaysBetween counts calendar days from start to end, ignoring time of day.
func DaysBetween(start, end time.Time) int {
	s := truncateToDay(start)
	e := truncateToDay(end)
	return int(e.Sub(s).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want %s): %w", value, DateLayout, err)
	}
	return t, nil
}

// AddYears adds whole years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
