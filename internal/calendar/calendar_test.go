package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/jackmart/promo-planner/pkg/datetime"
)

func TestBoostsStackMultiplicatively(t *testing.T) {
	events := BuildYear(2025)

	tests := []struct {
		name     string
		day      time.Time
		expected float64
	}{
		// Singles Day (1.25) and the 11.11 twin date (1.08) share the day.
		{"Singles Day plus twin date", day(2025, time.November, 11), 1.25 * 1.08},
		// Christmas (1.20) lands on a payday (1.15).
		{"Christmas plus payday", day(2025, time.December, 25), 1.20 * 1.15},
		{"plain day", day(2025, time.January, 5), 1.0},
		{"payday only", day(2025, time.May, 25), 1.15},
		{"Ramadan daily boost", day(2025, time.March, 15), 1.25},
		{"Lebaran", day(2025, time.April, 2), 1.30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boost, _ := BoostFor(events, tt.day)
			if math.Abs(boost-tt.expected) > 1e-9 {
				t.Errorf("BoostFor(%s) = %v, expected %v", tt.day.Format(datetime.DateTimeLayout), boost, tt.expected)
			}
		})
	}
}

func TestBoostIsNotMaxTaking(t *testing.T) {
	events := BuildYear(2025)
	boost, _ := BoostFor(events, day(2025, time.November, 11))
	if boost <= 1.25 {
		t.Errorf("stacked boost %v should exceed the largest single event boost", boost)
	}
}

func TestFocusSetsConcatenate(t *testing.T) {
	events := BuildYear(2025)
	// Both events on 11.11 carry the All sentinel; concatenation keeps both
	// entries rather than deduplicating.
	_, focus := BoostFor(events, day(2025, time.November, 11))
	if len(focus) != 2 {
		t.Errorf("expected 2 concatenated focus entries, got %d (%v)", len(focus), focus)
	}
	for _, f := range focus {
		if f != FocusAll {
			t.Errorf("unexpected focus entry %q", f)
		}
	}
}

func TestRamadanFocusCategories(t *testing.T) {
	events := BuildYear(2025)
	_, focus := BoostFor(events, day(2025, time.March, 10))
	if !FocusIncludes(focus, "Sirup") {
		t.Errorf("expected Sirup in Ramadan focus set, got %v", focus)
	}
	if FocusIncludes(focus, "Soda") {
		t.Errorf("Soda should not be focused during Ramadan, got %v", focus)
	}
}

func TestFocusIncludes(t *testing.T) {
	tests := []struct {
		name     string
		focus    []string
		category string
		expected bool
	}{
		{"all sentinel", []string{FocusAll}, "Anything", true},
		{"explicit member", []string{"Cokelat", "Permen"}, "Permen", true},
		{"non-member", []string{"Cokelat", "Permen"}, "Soda", false},
		{"empty focus", nil, "Soda", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FocusIncludes(tt.focus, tt.category); got != tt.expected {
				t.Errorf("FocusIncludes(%v, %s) = %v, expected %v", tt.focus, tt.category, got, tt.expected)
			}
		})
	}
}

func TestChineseNewYearMoves(t *testing.T) {
	boost2025, _ := BoostFor(BuildYear(2025), day(2025, time.February, 1))
	if math.Abs(boost2025-1.12) > 1e-9 {
		t.Errorf("expected CNY on Feb 1 2025, boost = %v", boost2025)
	}
	boost2026, _ := BoostFor(BuildYear(2026), day(2026, time.February, 10))
	if math.Abs(boost2026-1.12) > 1e-9 {
		t.Errorf("expected CNY on Feb 10 2026, boost = %v", boost2026)
	}
}

func TestTwinDateClampsToMonthLength(t *testing.T) {
	events := BuildYear(2025)
	// No real Feb 30 etc.; months past 28 pin the twin date to the 28th.
	for _, e := range events {
		if e.Name == "12.12 Twin Date" && e.Day.Day() != 12 {
			t.Errorf("12.12 twin date on day %d", e.Day.Day())
		}
	}
	boost, _ := BoostFor(events, day(2025, time.December, 12))
	if math.Abs(boost-1.08) > 1e-9 {
		t.Errorf("expected twin date boost on Dec 12, got %v", boost)
	}
}

func TestBestUpcomingDay(t *testing.T) {
	// From Nov 1 the strongest day within 30 days is 11.11.
	got := BestUpcomingDay(day(2025, time.November, 1), 30)
	if !got.Equal(day(2025, time.November, 11)) {
		t.Errorf("BestUpcomingDay() = %s, expected 2025-11-11", got.Format(datetime.DateTimeLayout))
	}
}

func TestBestUpcomingDayTiesResolveEarliest(t *testing.T) {
	// A window with no events at all: every day scores 1.0 and the earliest
	// day wins.
	got := BestUpcomingDay(day(2025, time.January, 2), 20)
	if !got.Equal(day(2025, time.January, 2)) {
		t.Errorf("BestUpcomingDay() = %s, expected the start day", got.Format(datetime.DateTimeLayout))
	}
}

func TestSchoolHolidayBoosts(t *testing.T) {
	events := BuildYear(2025)
	boost, focus := BoostFor(events, day(2025, time.June, 12))
	if math.Abs(boost-1.08) > 1e-9 {
		t.Errorf("expected school holiday boost 1.08, got %v", boost)
	}
	if !FocusIncludes(focus, "Ice Cream") {
		t.Errorf("expected Ice Cream focused on school holiday, got %v", focus)
	}
}
