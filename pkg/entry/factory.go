package entry

import (
	"strings"
	"sync"
	"time"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/weather"
)

// Factory stamps new entries. Ids are creation milliseconds, bumped forward
// when two entries are created within the same millisecond.
type Factory struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewFactory returns a Factory reading time from now, or time.Now when nil.
func NewFactory(now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{now: now}
}

// Create builds an entry. A zero mood and a nil snapshot are recorded as absent.
func (f *Factory) Create(m mood.Mood, note string, w *weather.Snapshot) Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now().Truncate(time.Millisecond)
	id := now.UnixMilli()
	if id <= f.last {
		id = f.last + 1
	}
	f.last = id

	e := Entry{
		ID:   id,
		Date: Timestamp{Time: now},
		Note: strings.TrimSpace(note),
	}
	if !m.IsZero() {
		mm := m
		e.Mood = &mm
	}
	if w != nil {
		ww := *w
		e.Weather = &ww
	}
	return e
}

// Seed makes later ids strictly greater than every id in entries, so
// entries created after a reload never collide with persisted ones.
func (f *Factory) Seed(entries []Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range entries {
		if e.ID > f.last {
			f.last = e.ID
		}
	}
}
