// Package app wires the store, the entry factory and the weather lookup
// into the operations shared by the CLI and the interactive UI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/export"
	"tableflip.dev/mood/pkg/history"
	"tableflip.dev/mood/pkg/logging"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

var ErrNoPersistence = errors.New("app: no persistence configured")

// Banner is the warning shown to the user for a non-fatal error returned by
// Weather or Record.
func Banner(err error) string {
	if errors.Is(err, store.ErrPersistence) {
		return "Your entry is kept for this session but could not be saved to disk."
	}
	return weather.Message(err)
}

// Service provides the journal operations. Persistence is required; a nil
// Locator or Provider disables weather.
type Service struct {
	Persistence store.Persistence
	Factory     *entry.Factory
	Locator     weather.Locator
	Provider    weather.Provider
	Logger      *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// DateLayout is the CSV date layout.
	DateLayout string
}

func (s *Service) log() *zap.Logger {
	return logging.OrNop(s.Logger)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) factory() *entry.Factory {
	if s.Factory == nil {
		s.Factory = entry.NewFactory(s.Now)
	}
	return s.Factory
}

// Load reads the journal from disk. It never fails: a missing or corrupt
// record is an empty history.
func (s *Service) Load(ctx context.Context) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	entries := s.Persistence.Load(ctx)
	s.factory().Seed(entries)
	return entries, nil
}

// Entries is the current in-memory journal, newest first.
func (s *Service) Entries() ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Entries(), nil
}

// Weather locates and fetches current conditions. On failure the snapshot
// is nil and the error is a *weather.LocationError, *weather.NetworkError or
// *weather.ParseError; callers carry on without weather.
func (s *Service) Weather(ctx context.Context) (*weather.Snapshot, error) {
	snap, err := weather.Lookup(ctx, s.Locator, s.Provider)
	if err != nil {
		s.log().Warn("weather unavailable", zap.Error(err))
		return nil, err
	}
	s.log().Debug("weather", zap.String("condition", snap.Condition), zap.Float64("temperature", snap.Temperature))
	return &snap, nil
}

// Record creates an entry and appends it to the journal. A non-nil error
// with a non-zero entry is a persistence warning: the entry is in memory
// but may not be on disk.
func (s *Service) Record(ctx context.Context, m mood.Mood, note string, w *weather.Snapshot) (entry.Entry, []entry.Entry, error) {
	if s.Persistence == nil {
		return entry.Entry{}, nil, ErrNoPersistence
	}
	s.factory().Seed(s.Persistence.Entries())
	e := s.factory().Create(m, note, w)
	list, err := s.Persistence.Append(ctx, e)
	if err != nil {
		s.log().Warn("entry not persisted", zap.Int64("id", e.ID), zap.Error(err))
		return e, list, err
	}
	return e, list, nil
}

// History lists entries matching moodID created at or after since (zero
// since means all time).
func (s *Service) History(moodID string, since time.Time) ([]entry.Entry, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	id, err := mood.ParseFilter(moodID)
	if err != nil {
		return nil, err
	}
	list := history.FilterByMood(all, id)
	if !since.IsZero() {
		list = history.Since(list, since)
	}
	return list, nil
}

// Calendar builds the month grid around anchor.
func (s *Service) Calendar(anchor time.Time, moodID string) ([]history.Cell, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	id, err := mood.ParseFilter(moodID)
	if err != nil {
		return nil, err
	}
	return history.Month(anchor.Local(), all, id, s.now().Local()), nil
}

// Export renders the whole journal, newest first, in the named format.
func (s *Service) Export(format string) ([]byte, error) {
	all, err := s.Entries()
	if err != nil {
		return nil, err
	}
	f, err := export.ForName(format, s.DateLayout)
	if err != nil {
		return nil, err
	}
	b, err := f.Format(all)
	if err != nil {
		return nil, fmt.Errorf("app: export: %w", err)
	}
	return b, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
