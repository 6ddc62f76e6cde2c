package history

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
)

func at(year int, month time.Month, day, hour int) entry.Timestamp {
	return entry.Timestamp{Time: time.Date(year, month, day, hour, 0, 0, 0, time.Local)}
}

func withMood(id int64, m mood.Mood, ts entry.Timestamp) entry.Entry {
	mm := m
	return entry.Entry{ID: id, Date: ts, Mood: &mm}
}

func ids(entries []entry.Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func sample() []entry.Entry {
	return []entry.Entry{
		withMood(5, mood.Happy, at(2024, time.March, 3, 9)),
		withMood(4, mood.Sad, at(2024, time.March, 2, 18)),
		{ID: 3, Date: at(2024, time.March, 2, 8), Note: "no mood"},
		withMood(2, mood.Happy, at(2024, time.March, 1, 12)),
		withMood(1, mood.Sad, at(2024, time.February, 29, 23)),
	}
}

func TestFilterByMoodAllIsIdentity(t *testing.T) {
	entries := sample()
	if diff := cmp.Diff(entries, FilterByMood(entries, mood.All)); diff != "" {
		t.Fatalf("all filter changed entries (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(entries, FilterByMood(entries, "")); diff != "" {
		t.Fatalf("empty filter changed entries (-want +got):\n%s", diff)
	}
}

func TestFilterByMoodPreservesOrder(t *testing.T) {
	got := ids(FilterByMood(sample(), "happy"))
	if diff := cmp.Diff([]int64{5, 2}, got); diff != "" {
		t.Fatalf("unexpected happy entries (-want +got):\n%s", diff)
	}
	if got := FilterByMood(sample(), "calm"); len(got) != 0 {
		t.Fatalf("expected no calm entries, got %v", ids(got))
	}
}

func TestScenarioSameDay(t *testing.T) {
	entries := []entry.Entry{
		withMood(1, mood.Happy, at(2024, time.March, 1, 9)),
		withMood(2, mood.Sad, at(2024, time.March, 1, 10)),
	}
	if got := ids(FilterByMood(entries, "sad")); !cmp.Equal(got, []int64{2}) {
		t.Fatalf("expected only the sad entry, got %v", got)
	}
	groups := GroupByDay(entries)
	if len(groups) != 1 {
		t.Fatalf("expected one day, got %d", len(groups))
	}
	if got := ids(groups["2024-03-01"]); !cmp.Equal(got, []int64{1, 2}) {
		t.Fatalf("expected both entries on 2024-03-01, got %v", got)
	}
}

func TestGroupByDayIdempotent(t *testing.T) {
	entries := sample()
	first := GroupByDay(entries)
	second := GroupByDay(entries)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("grouping not idempotent (-first +second):\n%s", diff)
	}
	if got := ids(first["2024-03-02"]); !cmp.Equal(got, []int64{4, 3}) {
		t.Fatalf("expected input order inside bucket, got %v", got)
	}
}

func TestCalendarDaysShape(t *testing.T) {
	checkCalendarShape(t, time.Local, 2023, 2026)
}

// These zones start daylight saving time at midnight, so that midnight does
// not exist on the switch day.
func TestCalendarDaysShapeMidnightDST(t *testing.T) {
	zones := map[string][2]int{
		"America/Santiago":  {2010, 2024},
		"America/Havana":    {2010, 2024},
		"Asia/Beirut":       {2010, 2024},
		"America/Sao_Paulo": {2010, 2019},
		// Apia skipped 2011-12-30 entirely.
		"Pacific/Apia": {2010, 2010},
	}
	for name, years := range zones {
		t.Run(name, func(t *testing.T) {
			loc, err := time.LoadLocation(name)
			if err != nil {
				t.Fatalf("load %s: %v", name, err)
			}
			checkCalendarShape(t, loc, years[0], years[1])
		})
	}
}

func TestStartOfDaySkippedMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := startOfDay(2024, time.September, 8, loc)
	if got.Day() != 8 || got.Hour() > 1 {
		t.Fatalf("expected the start of 2024-09-08, got %s", got)
	}
	anchor := time.Date(2024, time.September, 15, 12, 0, 0, 0, loc)
	cells := Month(anchor, nil, mood.All, anchor)
	for i, c := range cells {
		if c.Date.Weekday() != time.Weekday(i%7) {
			t.Fatalf("cell %s in column %d", c.Key, i%7)
		}
	}
	if last := cells[len(cells)-1].Key; last != "2024-10-05" {
		t.Fatalf("expected grid to end on Saturday 2024-10-05, got %s", last)
	}
}

func checkCalendarShape(t *testing.T, loc *time.Location, from, to int) {
	t.Helper()
	for year := from; year <= to; year++ {
		for m := time.January; m <= time.December; m++ {
			anchor := time.Date(year, m, 17, 15, 0, 0, 0, loc)
			if first := FirstOfMonth(anchor); first.Day() != 1 || first.Month() != m {
				t.Fatalf("%s: first of month is %s", anchor.Format("2006-01"), first)
			}
			if next := NextMonth(anchor); next.Day() != 1 {
				t.Fatalf("%s: next month starts %s", anchor.Format("2006-01"), next)
			}
			days := CalendarDays(anchor)
			if len(days)%7 != 0 {
				t.Fatalf("%s: length %d not a multiple of 7", anchor.Format("2006-01"), len(days))
			}
			if days[0].Weekday() != time.Sunday {
				t.Fatalf("%s: starts on %s", anchor.Format("2006-01"), days[0].Weekday())
			}
			if last := days[len(days)-1]; last.Weekday() != time.Saturday {
				t.Fatalf("%s: ends on %s", anchor.Format("2006-01"), last.Weekday())
			}
			seen := map[int]bool{}
			for i, d := range days {
				if i > 0 && d.Format(entry.DayLayout) == days[i-1].Format(entry.DayLayout) {
					t.Fatalf("%s: duplicate day %s", anchor.Format("2006-01"), d.Format(entry.DayLayout))
				}
				if d.Month() == m {
					seen[d.Day()] = true
				}
			}
			if len(seen) != DaysIn(anchor) {
				t.Fatalf("%s: covers %d of %d days", anchor.Format("2006-01"), len(seen), DaysIn(anchor))
			}
		}
	}
}

func TestCalendarDaysKnownMonths(t *testing.T) {
	// March 2024 starts on a Friday and ends on a Sunday: six weeks.
	days := CalendarDays(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	if len(days) != 42 {
		t.Fatalf("expected 42 days, got %d", len(days))
	}
	if got := days[0].Format(entry.DayLayout); got != "2024-02-25" {
		t.Fatalf("unexpected first day %s", got)
	}
	if got := days[41].Format(entry.DayLayout); got != "2024-04-06" {
		t.Fatalf("unexpected last day %s", got)
	}
	// February 2015 starts on a Sunday and has 28 days: four weeks.
	if got := len(CalendarDays(time.Date(2015, time.February, 10, 0, 0, 0, 0, time.UTC))); got != 28 {
		t.Fatalf("expected 28 days, got %d", got)
	}
}

func TestMonthKeepsEmptyCells(t *testing.T) {
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, time.March, 2, 10, 0, 0, 0, time.Local)
	cells := Month(anchor, sample(), "sad", now)
	if len(cells) != 42 {
		t.Fatalf("expected full grid, got %d", len(cells))
	}
	byKey := map[string]Cell{}
	for _, c := range cells {
		byKey[c.Key] = c
	}
	if got := ids(byKey["2024-03-02"].Entries); !cmp.Equal(got, []int64{4}) {
		t.Fatalf("expected filtered sad entry on 03-02, got %v", got)
	}
	if !byKey["2024-03-02"].Today {
		t.Fatalf("expected 03-02 to be today")
	}
	if len(byKey["2024-03-03"].Entries) != 0 {
		t.Fatalf("expected happy entry filtered out of 03-03")
	}
	if c := byKey["2024-02-29"]; c.InMonth || len(c.Entries) != 1 {
		t.Fatalf("expected leading February cell with its entry, got %+v", c)
	}
	if rows := Weeks(cells); len(rows) != 6 || len(rows[0]) != 7 {
		t.Fatalf("expected 6 rows of 7, got %d", len(rows))
	}
}

func TestSinceAndRecent(t *testing.T) {
	entries := sample()
	got := ids(Since(entries, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)))
	if !cmp.Equal(got, []int64{5, 4, 3}) {
		t.Fatalf("unexpected since result %v", got)
	}
	if got := ids(Recent(entries, 3)); !cmp.Equal(got, []int64{5, 4, 3}) {
		t.Fatalf("unexpected recent result %v", got)
	}
	if got := Recent(entries[:1], 3); len(got) != 1 {
		t.Fatalf("expected short list untouched")
	}
}

func TestMonthNavigation(t *testing.T) {
	jan31 := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)
	if got := NextMonth(jan31); got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("expected Feb 1, got %s", got)
	}
	if got := PrevMonth(jan31); got.Year() != 2023 || got.Month() != time.December {
		t.Fatalf("expected Dec 2023, got %s", got)
	}
	if DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)) != 29 {
		t.Fatalf("expected leap February")
	}
}
