package datetime

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2025-11-11")
	if err != nil {
		t.Fatalf("ParseDay() returned error: %v", err)
	}
	expected := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("ParseDay() = %v, expected %v", got, expected)
	}
}

func TestParseDayInvalid(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{"wrong order", "11-11-2025"},
		{"not a date", "soon"},
		{"empty", ""},
		{"with time component", "2025-11-11T10:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDay(tt.dateStr); err == nil {
				t.Errorf("ParseDay(%q) expected error", tt.dateStr)
			}
		})
	}
}

func TestDayNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	in := time.Date(2025, time.June, 15, 23, 45, 12, 999, loc)
	got := Day(in)
	expected := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("Day() = %v, expected %v", got, expected)
	}
}

func TestOffsetDays(t *testing.T) {
	start := time.Date(2025, time.January, 30, 0, 0, 0, 0, time.UTC)
	got := OffsetDays(start, 3)
	expected := time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(expected) {
		t.Errorf("OffsetDays() = %v, expected %v", got, expected)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.June, 15, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Error("expected SameDay for two times on the same date")
	}
	if SameDay(a, c) {
		t.Error("expected different days for adjacent dates")
	}
}
