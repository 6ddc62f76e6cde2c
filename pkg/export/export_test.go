package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/weather"
)

func sample() []entry.Entry {
	happy, sad := mood.Happy, mood.Sad
	return []entry.Entry{
		{
			ID:      2,
			Date:    entry.Timestamp{Time: time.Date(2024, time.March, 2, 18, 0, 0, 0, time.UTC)},
			Mood:    &sad,
			Note:    `said "fine"`,
			Weather: &weather.Snapshot{Temperature: 21.5, Condition: "Clear", Location: "Lisbon"},
		},
		{
			ID:   1,
			Date: entry.Timestamp{Time: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)},
			Mood: &happy,
		},
		{
			ID:   0,
			Date: entry.Timestamp{Time: time.Date(2024, time.February, 28, 9, 0, 0, 0, time.UTC)},
		},
	}
}

func TestToDelimitedTextEmpty(t *testing.T) {
	if got := ToDelimitedText(nil); got != "Date,Mood,Weather,Temperature,Note\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCSVRows(t *testing.T) {
	b, err := CSV{Location: time.UTC}.Format(sample())
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := strings.Join([]string{
		`Date,Mood,Weather,Temperature,Note`,
		`"3/2/2024","Sad","Clear","21.5°C","said ""fine"""`,
		`"3/1/2024","Happy","Not recorded","N/A",""`,
		`"2/28/2024","Not specified","Not recorded","N/A",""`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("unexpected csv (-want +got):\n%s", diff)
	}
}

func TestCSVCustomLayout(t *testing.T) {
	b, _ := CSV{DateLayout: "2006-01-02", Location: time.UTC}.Format(sample()[:1])
	if !strings.Contains(string(b), `"2024-03-02","Sad"`) {
		t.Fatalf("expected ISO date column, got %q", b)
	}
}

func TestJSONMatchesRecordLayout(t *testing.T) {
	b, err := JSON{}.Format(sample())
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var back []entry.Entry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(sample(), back); diff != "" {
		t.Fatalf("json export mismatch (-want +got):\n%s", diff)
	}
	if empty, _ := (JSON{}).Format(nil); strings.TrimSpace(string(empty)) != "[]" {
		t.Fatalf("expected empty array, got %q", empty)
	}
}

func TestYAML(t *testing.T) {
	b, err := YAML{}.Format(sample())
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	var back []map[string]any
	if err := yaml.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 3 {
		t.Fatalf("expected 3 records, got %d", len(back))
	}
	if back[0]["date"] != "2024-03-02T18:00:00.000Z" {
		t.Fatalf("unexpected date %v", back[0]["date"])
	}
	m, ok := back[0]["mood"].(map[string]any)
	if !ok || m["id"] != "sad" {
		t.Fatalf("unexpected mood %v", back[0]["mood"])
	}
	if back[2]["mood"] != nil {
		t.Fatalf("expected null mood, got %v", back[2]["mood"])
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"", "CSV", "json", "yml"} {
		if _, err := ForName(name, ""); err != nil {
			t.Fatalf("ForName(%q): %v", name, err)
		}
	}
	if _, err := ForName("xml", ""); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
func TestFilename(t *testing.T) {
	if got := Filename(CSV{}); got != DefaultFilename {
		t.Fatalf("Filename(csv) = %q", got)
	}
	if got := Filename(YAML{}); got != "mood_journal_export.yaml" {
		t.Fatalf("Filename(yaml) = %q", got)
	}
}
