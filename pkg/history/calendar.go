package history

import (
	"time"

	"tableflip.dev/mood/pkg/entry"
)

// Cell is one day of a month grid.
type Cell struct {
	Date    time.Time
	Key     string // YYYY-MM-DD
	InMonth bool
	Today   bool
	Entries []entry.Entry
}

// FirstOfMonth is the start of the first day of then's month, in then's
// location.
func FirstOfMonth(then time.Time) time.Time {
	return startOfDay(then.Year(), then.Month(), 1, then.Location())
}

func NextMonth(then time.Time) time.Time {
	return startOfDay(then.Year(), then.Month()+1, 1, then.Location())
}

func PrevMonth(then time.Time) time.Time {
	return startOfDay(then.Year(), then.Month()-1, 1, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// noon keeps day arithmetic clear of DST transitions, which happen at or
// near midnight.
func noon(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, loc)
}

// startOfDay is the first instant of the given date. When midnight is
// skipped by a DST change, time.Date lands on the previous day, so step
// forward until the date matches.
func startOfDay(year int, month time.Month, day int, loc *time.Location) time.Time {
	want := noon(year, month, day, loc)
	t := time.Date(want.Year(), want.Month(), want.Day(), 0, 0, 0, 0, loc)
	for t.Day() != want.Day() && t.Before(want) {
		t = t.Add(time.Hour)
	}
	return t
}

// CalendarDays lists every date from the Sunday on or before the first of
// anchor's month through the Saturday on or after its last day. The result
// is always whole weeks. Each day is noon local time.
func CalendarDays(anchor time.Time) []time.Time {
	year, month, loc := anchor.Year(), anchor.Month(), anchor.Location()
	lead := int(noon(year, month, 1, loc).Weekday())
	last := DaysIn(anchor)
	trail := int(time.Saturday - noon(year, month, last, loc).Weekday())

	days := make([]time.Time, 0, lead+last+trail)
	for d := 1 - lead; d <= last+trail; d++ {
		days = append(days, noon(year, month, d, loc))
	}
	return days
}

// Month builds the grid for anchor's month. Each cell carries the entries of
// that day that pass the mood filter; days without entries are kept so the
// grid stays rectangular. Entries are grouped by local day, so anchor should
// be in time.Local for the keys to line up.
func Month(anchor time.Time, entries []entry.Entry, moodID string, now time.Time) []Cell {
	byDay := GroupByDay(FilterByMood(entries, moodID))
	today := now.In(anchor.Location()).Format(entry.DayLayout)

	days := CalendarDays(anchor)
	cells := make([]Cell, 0, len(days))
	for _, d := range days {
		key := d.Format(entry.DayLayout)
		cells = append(cells, Cell{
			Date:    d,
			Key:     key,
			InMonth: d.Month() == anchor.Month(),
			Today:   key == today,
			Entries: byDay[key],
		})
	}
	return cells
}

// Weeks splits a grid into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}
