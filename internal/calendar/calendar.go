// Package calendar builds the promotional event calendar for a given year and
// answers what demand boost and focus categories apply on a specific day.
// Multiple events on the same day stack multiplicatively and their focus sets
// concatenate.
package calendar

import (
	"time"

	"github.com/jackmart/promo-planner/pkg/datetime"
)

// FocusAll is the sentinel focus entry meaning every category is in focus.
const FocusAll = "All"

// Event indicates a calendar event that boosts demand on one day.
type Event struct {
	Name  string
	Day   time.Time
	Boost float64
	Focus []string
}

// BuildYear assembles the full event calendar for a year: monthly paydays and
// twin dates, national holidays, the Ramadan/Lebaran window, and school
// holiday boosts.
func BuildYear(year int) []Event {
	var events []Event

	for m := time.January; m <= time.December; m++ {
		events = append(events, Event{
			Name:  "Payday",
			Day:   day(year, m, 25),
			Boost: 1.15,
			Focus: []string{FocusAll},
		})
	}

	for m := time.January; m <= time.December; m++ {
		d := int(m)
		if d > 28 {
			d = 28
		}
		events = append(events, Event{
			Name:  twinDateName(int(m)),
			Day:   day(year, m, d),
			Boost: 1.08,
			Focus: []string{FocusAll},
		})
	}

	cnyDay := 10
	if year == 2025 {
		cnyDay = 1
	}
	events = append(events,
		Event{Name: "New Year", Day: day(year, time.January, 1), Boost: 1.18, Focus: []string{FocusAll}},
		Event{Name: "Chinese New Year", Day: day(year, time.February, cnyDay), Boost: 1.12, Focus: []string{"Cokelat", "Ice Cream", "Permen"}},
		Event{Name: "Independence Day", Day: day(year, time.August, 17), Boost: 1.15, Focus: []string{FocusAll}},
		Event{Name: "Singles Day 11.11", Day: day(year, time.November, 11), Boost: 1.25, Focus: []string{FocusAll}},
		Event{Name: "Christmas", Day: day(year, time.December, 25), Boost: 1.20, Focus: []string{FocusAll}},
		Event{Name: "New Year's Eve", Day: day(year, time.December, 31), Boost: 1.12, Focus: []string{FocusAll}},
	)

	ramadanStart, ramadanEnd, lebaran := ramadanWindow(year)
	for d := ramadanStart; !d.After(ramadanEnd); d = d.AddDate(0, 0, 1) {
		events = append(events, Event{
			Name:  "Ramadan",
			Day:   d,
			Boost: 1.25,
			Focus: []string{"Sirup", "Teh", "Pasta", "Biskuit"},
		})
	}
	events = append(events,
		Event{Name: "Lebaran", Day: lebaran, Boost: 1.30, Focus: []string{FocusAll}},
		Event{Name: "Lebaran+1", Day: lebaran.AddDate(0, 0, 1), Boost: 1.25, Focus: []string{FocusAll}},
		Event{Name: "Lebaran+2", Day: lebaran.AddDate(0, 0, 2), Boost: 1.15, Focus: []string{FocusAll}},
	)

	schoolFocus := []string{"Ice Cream", "Nugget", "Keripik", "Permen", "Minuman Isotonik"}
	for _, m := range []time.Month{time.June, time.July} {
		for _, d := range []int{5, 12, 19, 26} {
			events = append(events, Event{
				Name:  "School Holiday Boost",
				Day:   day(year, m, d),
				Boost: 1.08,
				Focus: schoolFocus,
			})
		}
	}

	return events
}

// ramadanWindow returns the daily-boost window and the Lebaran date for a
// year. The window moves with the lunar calendar; years without a known
// mapping fall back to the 2025 layout.
func ramadanWindow(year int) (start, end, lebaran time.Time) {
	switch year {
	case 2025:
		return day(2025, time.March, 1), day(2025, time.April, 1), day(2025, time.April, 2)
	case 2026:
		return day(2026, time.April, 1), day(2026, time.May, 1), day(2026, time.May, 2)
	default:
		return day(year, time.March, 1), day(year, time.April, 1), day(year, time.April, 2)
	}
}

// BoostFor returns the combined multiplicative boost and the concatenated
// focus-category set for a day. A day with no events yields 1.0 and no focus.
func BoostFor(events []Event, d time.Time) (float64, []string) {
	boost := 1.0
	var focus []string
	for _, e := range events {
		if datetime.SameDay(e.Day, d) {
			boost *= e.Boost
			focus = append(focus, e.Focus...)
		}
	}
	return boost, focus
}

// EventsOn returns the names of the events active on a day.
func EventsOn(events []Event, d time.Time) []string {
	var names []string
	for _, e := range events {
		if datetime.SameDay(e.Day, d) {
			names = append(names, e.Name)
		}
	}
	return names
}

// FocusIncludes reports whether the focus set covers a category, either via
// the FocusAll sentinel or an explicit entry.
func FocusIncludes(focus []string, category string) bool {
	for _, f := range focus {
		if f == FocusAll || f == category {
			return true
		}
	}
	return false
}

// BestUpcomingDay scans the horizon starting at from and returns the day with
// the strongest combined boost; ties resolve to the earliest day.
func BestUpcomingDay(from time.Time, horizonDays int) time.Time {
	best := datetime.Day(from)
	bestBoost := 0.0
	eventsByYear := map[int][]Event{}
	for k := 0; k < horizonDays; k++ {
		d := datetime.Day(from).AddDate(0, 0, k)
		events, ok := eventsByYear[d.Year()]
		if !ok {
			events = BuildYear(d.Year())
			eventsByYear[d.Year()] = events
		}
		boost, _ := BoostFor(events, d)
		if boost > bestBoost {
			bestBoost = boost
			best = d
		}
	}
	return best
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func twinDateName(m int) string {
	return twinNames[m-1]
}

var twinNames = [12]string{
	"01.01 Twin Date", "02.02 Twin Date", "03.03 Twin Date", "04.04 Twin Date",
	"05.05 Twin Date", "06.06 Twin Date", "07.07 Twin Date", "08.08 Twin Date",
	"09.09 Twin Date", "10.10 Twin Date", "11.11 Twin Date", "12.12 Twin Date",
}
