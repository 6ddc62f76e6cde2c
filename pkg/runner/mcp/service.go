// Package mcp exposes the mood journal over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/history"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
	"tableflip.dev/mood/pkg/weather"
)

// MaxNote bounds notes accepted from clients.
const MaxNote = 2000

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("entry not found")

// Service adapts the journal operations to transport-friendly shapes.
type Service struct {
	App *app.Service
	// WeatherTimeout bounds the lookup made by LogMood. Zero means no bound.
	WeatherTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// EntryDTO is a flattened projection of an entry.
type EntryDTO struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	Mood        string  `json:"mood,omitempty"`
	MoodLabel   string  `json:"moodLabel,omitempty"`
	Emoji       string  `json:"emoji"`
	Note        string  `json:"note,omitempty"`
	Weather     string  `json:"weather,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// DayDTO is one calendar cell.
type DayDTO struct {
	Date    string     `json:"date"`
	InMonth bool       `json:"inMonth"`
	Today   bool       `json:"today"`
	Entries []EntryDTO `json:"entries,omitempty"`
}

// MoodCount is the number of entries carrying a mood.
type MoodCount struct {
	Mood  string `json:"mood"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// LogResult is the outcome of LogMood.
type LogResult struct {
	Entry    EntryDTO `json:"entry"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// refresh rereads the journal so entries written by other processes are
// visible to long running servers.
func (s *Service) refresh(ctx context.Context) ([]entry.Entry, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	return s.App.Load(ctx)
}

// ToDTO flattens e.
func ToDTO(e entry.Entry) EntryDTO {
	dto := EntryDTO{
		ID:    e.ID,
		Date:  e.Date.Format(time.RFC3339),
		Day:   e.Date.Day(),
		Emoji: e.Glyph(),
		Note:  e.Note,
	}
	if e.Mood != nil {
		dto.Mood = e.Mood.ID
		dto.MoodLabel = e.Mood.Label
	}
	if e.Weather != nil {
		dto.Weather = e.WeatherLine()
		dto.Temperature = e.Weather.Temperature
	}
	return dto
}

func toDTOs(entries []entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToDTO(e))
	}
	return out
}

// LogMood records a new entry. Weather failures and persistence failures
// are reported as warnings alongside the entry.
func (s *Service) LogMood(ctx context.Context, alias, note string, withWeather bool) (*LogResult, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	m, err := mood.ForAlias(alias)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(note) > MaxNote {
		return nil, fmt.Errorf("note is longer than %d characters", MaxNote)
	}
	if _, err := s.refresh(ctx); err != nil {
		return nil, err
	}

	res := &LogResult{}
	var snap *weather.Snapshot
	if withWeather {
		wctx := ctx
		if s.WeatherTimeout > 0 {
			var cancel context.CancelFunc
			wctx, cancel = context.WithTimeout(ctx, s.WeatherTimeout)
			defer cancel()
		}
		snap, err = s.App.Weather(wctx)
		if err != nil {
			res.Warnings = append(res.Warnings, app.Banner(err))
		}
	}

	e, _, err := s.App.Record(ctx, m, note, snap)
	if err != nil {
		if e.ID == 0 {
			return nil, err
		}
		res.Warnings = append(res.Warnings, app.Banner(err))
	}
	res.Entry = ToDTO(e)
	return res, nil
}

// ListEntries returns entries newest first, filtered by mood and window.
// A limit of zero or less returns every match.
func (s *Service) ListEntries(ctx context.Context, moodID, window string, limit int) ([]EntryDTO, error) {
	if _, err := s.refresh(ctx); err != nil {
		return nil, err
	}
	d, err := timeutil.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	list, err := s.App.History(moodID, timeutil.Since(s.now(), d))
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		list = history.Recent(list, limit)
	}
	return toDTOs(list), nil
}

// EntryByID finds a single entry.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid entry id %q", id)
	}
	all, err := s.refresh(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.ID == n {
			dto := ToDTO(e)
			return &dto, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// ParseMonth accepts YYYY-MM or YYYY-M. Empty means the current month.
func ParseMonth(v string, now time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return history.FirstOfMonth(now.Local()), nil
	}
	for _, layout := range []string{"2006-01", "2006-1"} {
		if t, err := time.Parse(layout, v); err == nil {
			return history.FirstOfMonth(time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, time.Local)), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", v)
}

// Calendar returns the month grid for month (YYYY-MM).
func (s *Service) Calendar(ctx context.Context, month, moodID string) ([]DayDTO, error) {
	anchor, err := ParseMonth(month, s.now())
	if err != nil {
		return nil, err
	}
	if _, err := s.refresh(ctx); err != nil {
		return nil, err
	}
	cells, err := s.App.Calendar(anchor, moodID)
	if err != nil {
		return nil, err
	}
	days := make([]DayDTO, 0, len(cells))
	for _, c := range cells {
		d := DayDTO{Date: c.Key, InMonth: c.InMonth, Today: c.Today}
		if len(c.Entries) > 0 {
			d.Entries = toDTOs(c.Entries)
		}
		days = append(days, d)
	}
	return days, nil
}

// Span normalizes a window such as "1mo" to its week/day/hour form, or
// "all time" when window is empty.
func Span(window string) (string, error) {
	d, err := timeutil.ParseWindow(window)
	if err != nil {
		return "", err
	}
	return timeutil.FormatWindow(d), nil
}

// Summary counts entries per mood within window, in selector order.
func (s *Service) Summary(ctx context.Context, window string) ([]MoodCount, int, error) {
	list, err := s.ListEntries(ctx, mood.All, window, 0)
	if err != nil {
		return nil, 0, err
	}
	counts := map[string]int{}
	for _, e := range list {
		counts[e.Mood]++
	}
	out := make([]MoodCount, 0, len(mood.DefaultMoods()))
	for _, m := range mood.DefaultMoods() {
		out = append(out, MoodCount{Mood: m.ID, Label: m.Label, Emoji: m.Emoji, Count: counts[m.ID]})
	}
	return out, len(list), nil
}

// Export renders the journal in format.
func (s *Service) Export(ctx context.Context, format string) (string, error) {
	if _, err := s.refresh(ctx); err != nil {
		return "", err
	}
	b, err := s.App.Export(format)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
