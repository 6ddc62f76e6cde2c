package mcp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
)

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)

func newTestService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Open(&store.Settings{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	n := 0
	a := &app.Service{
		Persistence: p,
		Now: func() time.Time {
			n++
			return testNow.Add(time.Duration(n) * time.Minute)
		},
	}
	svc := NewService(a)
	svc.Now = func() time.Time { return testNow.Add(time.Hour) }
	return svc
}

func seed(t *testing.T, svc *Service, moods ...string) {
	t.Helper()
	for i, m := range moods {
		if _, err := svc.LogMood(context.Background(), m, "note "+strconv.Itoa(i), false); err != nil {
			t.Fatalf("log %s: %v", m, err)
		}
	}
}

func TestLogMood(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.LogMood(context.Background(), "2", "  drizzle  ", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Entry.Mood != mood.Sad.ID || res.Entry.Note != "drizzle" || res.Entry.Emoji != mood.Sad.Emoji {
		t.Fatalf("unexpected entry %+v", res.Entry)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", res.Warnings)
	}
}

func TestLogMoodWeatherWarning(t *testing.T) {
	svc := newTestService(t)
	res, err := svc.LogMood(context.Background(), "calm", "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Entry.Weather != "" {
		t.Fatalf("expected no weather, got %q", res.Entry.Weather)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one weather warning, got %v", res.Warnings)
	}
}

func TestLogMoodRejects(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.LogMood(context.Background(), "bored", "", false); !errors.Is(err, mood.ErrUnknownMood) {
		t.Fatalf("expected unknown mood, got %v", err)
	}
	if _, err := svc.LogMood(context.Background(), "happy", strings.Repeat("a", MaxNote+1), false); err == nil {
		t.Fatalf("expected long note to be rejected")
	}
	if _, err := svc.LogMood(context.Background(), "happy", strings.Repeat("😊", MaxNote), false); err != nil {
		t.Fatalf("limit counts characters, not bytes: %v", err)
	}
	if _, err := NewService(nil).LogMood(context.Background(), "happy", "", false); !errors.Is(err, app.ErrNoPersistence) {
		t.Fatalf("expected no persistence, got %v", err)
	}
}

func TestListEntries(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "happy", "sad", "happy", "angry")

	all, err := svc.ListEntries(context.Background(), mood.All, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 4 || all[0].Mood != mood.Angry.ID {
		t.Fatalf("expected four entries newest first, got %+v", all)
	}

	happy, err := svc.ListEntries(context.Background(), "happy", "1d", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(happy) != 2 {
		t.Fatalf("expected two happy entries, got %d", len(happy))
	}

	limited, err := svc.ListEntries(context.Background(), mood.All, "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}

	if _, err := svc.ListEntries(context.Background(), mood.All, "soon", 0); err == nil {
		t.Fatalf("expected bad window to fail")
	}
}

func TestEntryByID(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "calm")
	all, _ := svc.ListEntries(context.Background(), mood.All, "", 0)
	id := strconv.FormatInt(all[0].ID, 10)

	dto, err := svc.EntryByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dto.Mood != mood.Calm.ID {
		t.Fatalf("unexpected entry %+v", dto)
	}
	if _, err := svc.EntryByID(context.Background(), "42"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.EntryByID(context.Background(), "abc"); err == nil {
		t.Fatalf("expected invalid id to fail")
	}
}

func TestCalendar(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "anxious")

	days, err := svc.Calendar(context.Background(), "2024-03", mood.All)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days)%7 != 0 {
		t.Fatalf("expected whole weeks, got %d days", len(days))
	}
	found := false
	for _, d := range days {
		if d.Date == "2024-03-10" {
			found = len(d.Entries) == 1 && d.InMonth
		}
	}
	if !found {
		t.Fatalf("expected entry on 2024-03-10")
	}

	if _, err := svc.Calendar(context.Background(), "March", mood.All); err == nil {
		t.Fatalf("expected bad month to fail")
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("", testNow)
	if err != nil || !got.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("unexpected default month %v %v", got, err)
	}
	got, err = ParseMonth("2023-7", testNow)
	if err != nil || got.Month() != time.July || got.Year() != 2023 {
		t.Fatalf("unexpected month %v %v", got, err)
	}
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "happy", "happy", "sad")

	counts, total, err := svc.Summary(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(counts) != len(mood.DefaultMoods()) {
		t.Fatalf("unexpected summary %v %d", counts, total)
	}
	if counts[0].Mood != mood.Happy.ID || counts[0].Count != 2 || counts[1].Count != 1 || counts[2].Count != 0 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func TestExport(t *testing.T) {
	svc := newTestService(t)
	seed(t, svc, "happy")

	text, err := svc.Export(context.Background(), "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(text, "Date,Mood,Weather,Temperature,Note\n") {
		t.Fatalf("unexpected export %q", text)
	}
	if _, err := svc.Export(context.Background(), "xml"); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestSpan(t *testing.T) {
	tests := map[string]string{
		"":    "all time",
		"1mo": "4w2d",
		"36h": "1d12h",
		"2w":  "2w",
	}
	for in, want := range tests {
		got, err := Span(in)
		if err != nil || got != want {
			t.Fatalf("Span(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Span("soon"); err == nil {
		t.Fatalf("expected bad window to fail")
	}
}

func TestNewServer(t *testing.T) {
	if NewServer(newTestService(t), "") == nil {
		t.Fatalf("expected server")
	}
}
