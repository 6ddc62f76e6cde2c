// Package entry holds the journal record and the factory that creates it.
package entry

import (
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/weather"
)

const (
	noNote     = "No note added"
	noteGlyph  = "📝"
	layoutLong = "Monday, January 2, 2006"
)

// Entry is one journal record. Entries are immutable once created; Mood and
// Weather are nil when absent and serialize as null.
type Entry struct {
	ID      int64             `json:"id"`
	Date    Timestamp         `json:"date"`
	Mood    *mood.Mood        `json:"mood"`
	Note    string            `json:"note"`
	Weather *weather.Snapshot `json:"weather"`
}

// MoodID is the id of the entry's mood, or "" when absent.
func (e Entry) MoodID() string {
	if e.Mood == nil {
		return ""
	}
	return e.Mood.ID
}

// Glyph is the mood emoji, or a note glyph when no mood was picked.
func (e Entry) Glyph() string {
	if e.Mood == nil || e.Mood.Emoji == "" {
		return noteGlyph
	}
	return e.Mood.Emoji
}

// Title is the long local date, e.g. "Friday, March 1, 2024".
func (e Entry) Title() string {
	return e.Date.Local().Format(layoutLong)
}

// NoteOrDefault is the note, or a placeholder when empty.
func (e Entry) NoteOrDefault() string {
	if e.Note == "" {
		return noNote
	}
	return e.Note
}

// WeatherLine is the weather summary, or "" when none was recorded.
func (e Entry) WeatherLine() string {
	if e.Weather == nil {
		return ""
	}
	return e.Weather.String()
}

// Clone returns a deep copy so callers can never share mood or weather
// values with the store.
func (e Entry) Clone() Entry {
	c := e
	if e.Mood != nil {
		m := *e.Mood
		c.Mood = &m
	}
	if e.Weather != nil {
		w := *e.Weather
		c.Weather = &w
	}
	return c
}

// CloneAll deep copies a list of entries.
func CloneAll(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i := range entries {
		out[i] = entries[i].Clone()
	}
	return out
}
