package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"tableflip.dev/mood/pkg/entry"
)

func init() {
	color.NoColor = true
}

func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MOOD_CONFIG_PATH", home)
	t.Setenv("MOOD_PATH", filepath.Join(home, "journal"))
	t.Setenv("MOOD_LOCATION_MODE", "off")
	t.Setenv("MOOD_WEATHER_API_KEY", "")
	t.Setenv("OPENWEATHER_API_KEY", "")
	return home
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("mood %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCommandsRegistered(t *testing.T) {
	cmd := New()
	var got []string
	for _, c := range cmd.Commands() {
		got = append(got, c.Name())
	}
	sort.Strings(got)
	want := []string{"completion", "export", "history", "info", "log", "mcp", "moods", "ui", "upgrade", "version"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected commands (-want +got):\n%s", diff)
	}
}

func TestLogThenHistory(t *testing.T) {
	setupEnv(t)

	out := run(t, "log", "happy", "finished", "the", "garden", "--no-weather")
	if !strings.Contains(out, "finished the garden") {
		t.Fatalf("expected saved entry:\n%s", out)
	}
	run(t, "add", "3", "--no-weather")

	out = run(t, "history", "--json")
	var got []entry.Entry
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 2 {
		t.Fatalf("expected two entries, got %d", len(got))
	}
	if got[0].MoodID() != "angry" || got[1].Note != "finished the garden" {
		t.Fatalf("unexpected history %+v", got)
	}

	out = run(t, "history", "--mood", "happy", "--compact")
	if !strings.Contains(out, "1 entry") || strings.Contains(out, "Angry") {
		t.Fatalf("unexpected filtered history:\n%s", out)
	}
}

func TestLogUnknownMood(t *testing.T) {
	setupEnv(t)
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"log", "ecstatic"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected unknown mood error")
	}
}

func TestExportToStdout(t *testing.T) {
	setupEnv(t)
	run(t, "log", "calm", "quiet", "evening", "--no-weather")

	out := run(t, "export", "--output", "-")
	if !strings.HasPrefix(out, "Date,Mood,Weather,Temperature,Note\n") || !strings.Contains(out, `"Calm","Not recorded","N/A","quiet evening"`) {
		t.Fatalf("unexpected export:\n%s", out)
	}
}

func TestVersionShort(t *testing.T) {
	out := run(t, "version", "--short")
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestHistoryBadWindow(t *testing.T) {
	setupEnv(t)
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"history", "--last", "forever"})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Fatalf("expected window error")
	}
}
