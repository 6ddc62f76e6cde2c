// Package history derives list and calendar views from the entry list.
// Everything here is a pure function of its inputs.
package history

import (
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
)

// FilterByMood keeps entries whose mood id is moodID, preserving order.
// mood.All (or "") returns entries unchanged. Entries without a mood only
// match mood.All.
func FilterByMood(entries []entry.Entry, moodID string) []entry.Entry {
	if moodID == mood.All || moodID == "" {
		return entries
	}
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Mood != nil && e.Mood.ID == moodID {
			out = append(out, e)
		}
	}
	return out
}

// GroupByDay buckets entries by the local calendar day of their creation
// time, keyed YYYY-MM-DD. Order inside a bucket follows the input.
func GroupByDay(entries []entry.Entry) map[string][]entry.Entry {
	days := make(map[string][]entry.Entry)
	for _, e := range entries {
		key := e.Date.Day()
		days[key] = append(days[key], e)
	}
	return days
}

// Since keeps entries created at or after t.
func Since(entries []entry.Entry, t time.Time) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(t) {
			out = append(out, e)
		}
	}
	return out
}

// Recent returns at most n entries from the head of the list.
func Recent(entries []entry.Entry, n int) []entry.Entry {
	if n < 0 {
		n = 0
	}
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
