package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/weather"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateTrimsNoteAndCopiesWeather(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 30, 0, 123456789, time.UTC)
	f := NewFactory(fixedClock(now))
	w := &weather.Snapshot{Temperature: 12.5, Condition: "Rain", Description: "light rain", Icon: "10d", Location: "Oslo"}

	e := f.Create(mood.Calm, "  walked in the rain \n", w)
	w.Temperature = 99

	if e.Note != "walked in the rain" {
		t.Fatalf("expected trimmed note, got %q", e.Note)
	}
	if e.Weather == nil || e.Weather.Temperature != 12.5 {
		t.Fatalf("expected weather copied by value, got %+v", e.Weather)
	}
	if e.MoodID() != "calm" {
		t.Fatalf("expected calm, got %q", e.MoodID())
	}
	if e.ID != now.UnixMilli() {
		t.Fatalf("expected id %d, got %d", now.UnixMilli(), e.ID)
	}
	if e.Date.Nanosecond() != 123000000 {
		t.Fatalf("expected millisecond resolution, got %d ns", e.Date.Nanosecond())
	}
}

func TestCreateWithoutWeatherOrMood(t *testing.T) {
	f := NewFactory(nil)
	e := f.Create(mood.Mood{}, "", nil)
	if e.Mood != nil || e.Weather != nil {
		t.Fatalf("expected absent mood and weather, got %+v", e)
	}
	if e.Glyph() != noteGlyph {
		t.Fatalf("expected note glyph, got %q", e.Glyph())
	}
	if e.NoteOrDefault() != noNote {
		t.Fatalf("expected placeholder note, got %q", e.NoteOrDefault())
	}
}

func TestCreateIDsUniqueWithinMillisecond(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	f := NewFactory(fixedClock(now))
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		e := f.Create(mood.Happy, "", nil)
		if seen[e.ID] {
			t.Fatalf("duplicate id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestSeedAdvancesIDs(t *testing.T) {
	now := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	f := NewFactory(fixedClock(now))
	f.Seed([]Entry{{ID: now.UnixMilli() + 10}})
	if e := f.Create(mood.Sad, "", nil); e.ID != now.UnixMilli()+11 {
		t.Fatalf("expected id after seed, got %d", e.ID)
	}
}

func TestEntryJSONLayout(t *testing.T) {
	e := Entry{
		ID:   1709285400000,
		Date: Timestamp{Time: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)},
		Mood: &mood.Happy,
	}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(b)
	want := `{"id":1709285400000,"date":"2024-03-01T09:30:00.000Z","mood":{"id":"happy","label":"Happy","emoji":"😊"},"note":"","weather":null}`
	if got != want {
		t.Fatalf("unexpected json:\n got %s\nwant %s", got, want)
	}

	var back Entry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(e, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEntryUnmarshalBrowserRecord(t *testing.T) {
	raw := `{"id":1709285400000,"date":"2024-03-01T09:30:00.000Z","mood":null,"note":"hi",` +
		`"weather":{"temperature":21.5,"condition":"Clear","description":"clear sky","icon":"01d","location":"Lisbon"}}`
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.Mood != nil {
		t.Fatalf("expected null mood")
	}
	if got := e.WeatherLine(); got != "Clear, 21.5°C in Lisbon" {
		t.Fatalf("unexpected weather line %q", got)
	}
	if !strings.Contains(e.Title(), "2024") {
		t.Fatalf("expected year in title, got %q", e.Title())
	}
}

func TestCloneIsDeep(t *testing.T) {
	e := Entry{Mood: &mood.Mood{ID: "sad"}, Weather: &weather.Snapshot{Condition: "Snow"}}
	c := e.Clone()
	c.Mood.ID = "happy"
	c.Weather.Condition = "Clear"
	if e.Mood.ID != "sad" || e.Weather.Condition != "Snow" {
		t.Fatalf("clone shares state with original")
	}
}
