// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/jackmart/promo-planner/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for plan dates and is also the
	// output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDay parses a plan date and normalizes it to midnight UTC so that
// same-day comparisons against calendar events are exact.
func ParseDay(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Day truncates a time to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OffsetDays returns the date offset by the given number of days.
func OffsetDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// SameDay returns true when both times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
