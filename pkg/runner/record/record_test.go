package record

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

func init() {
	color.NoColor = true
}

func newService(t *testing.T, dir string) *app.Service {
	t.Helper()
	p, err := store.Open(&store.Settings{Path: dir}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	now := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	return &app.Service{Persistence: p, Now: func() time.Time { return now }}
}

func TestRecordWithoutWeather(t *testing.T) {
	var out bytes.Buffer
	r := Record{
		Service:   newService(t, t.TempDir()),
		Mood:      mood.Calm,
		Note:      "tea and a book",
		NoWeather: true,
		Out:       &out,
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Entry saved", "Friday, March 1, 2024", "😌 Calm", "tea and a book"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "!") {
		t.Fatalf("expected no warning banner:\n%s", got)
	}
}

func TestRecordWeatherFailureStillSaves(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := newService(t, t.TempDir())
	svc.Locator = weather.StaticLocator{At: weather.Coordinates{Lat: 38.7, Lon: -9.1}}
	svc.Provider = weather.NewOpenWeather("key", srv.URL, srv.Client())

	var out bytes.Buffer
	r := Record{Service: svc, Mood: mood.Happy, Timeout: time.Second, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "! Failed to fetch weather data.") {
		t.Fatalf("expected weather banner:\n%s", out.String())
	}
	entries, _ := svc.Entries()
	if len(entries) != 1 || entries[0].Weather != nil {
		t.Fatalf("expected one entry without weather, got %+v", entries)
	}
}

func TestRecordJSONWithWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Lisbon","main":{"temp":21.5},"weather":[{"main":"Clear","description":"clear sky","icon":"01d"}]}`))
	}))
	defer srv.Close()

	svc := newService(t, t.TempDir())
	svc.Locator = weather.StaticLocator{}
	svc.Provider = weather.NewOpenWeather("key", srv.URL, srv.Client())

	var out bytes.Buffer
	r := Record{Service: svc, Mood: mood.Happy, Note: "sunny", JSON: true, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}

	var got result
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if got.Entry.Weather == nil || got.Entry.Weather.Location != "Lisbon" || len(got.Warnings) != 0 {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestRecordPersistenceWarning(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(base, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	var out bytes.Buffer
	r := Record{Service: newService(t, base), Mood: mood.Sad, NoWeather: true, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("persistence failure should not fail the command: %v", err)
	}
	if !strings.Contains(out.String(), "could not be saved to disk") {
		t.Fatalf("expected persistence banner:\n%s", out.String())
	}
}

func TestRecordNoService(t *testing.T) {
	r := Record{}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a service")
	}
}
