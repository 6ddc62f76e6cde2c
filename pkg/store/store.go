// Package store persists the journal as a single JSON record on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/logging"
)

// RecordKey names the record holding every entry.
const RecordKey = "moodEntries"

const tempDir = ".tmp"

// ErrPersistence matches every PersistenceError.
var ErrPersistence = errors.New("store: persistence failed")

// PersistenceError reports a failed read or write of the record. It is a
// warning: the in-memory list is always up to date.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, RecordKey, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// Persistence is the entry store contract. It is append-only.
type Persistence interface {
	// Load re-reads the record. Missing or corrupt records load as empty.
	Load(ctx context.Context) []entry.Entry
	// Append prepends e, persists the whole list and returns it. A non-nil
	// error is a *PersistenceError; the returned list is still valid.
	Append(ctx context.Context, e entry.Entry) ([]entry.Entry, error)
	// Entries is a copy of the in-memory list, newest first.
	Entries() []entry.Entry
	// Watch reports rewrites of the record until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv. A nil cfg loads the default
// configuration.
func Open(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			Transform: func(string) []string { return []string{} },
			TempDir:   filepath.Join(basePath, tempDir),
			// No cache: another mood process may rewrite the record.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      logging.OrNop(log).Named("store"),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger

	mu      sync.Mutex
	loaded  bool
	entries []entry.Entry
}

// RecordPath is the file holding the journal for cfg.
func RecordPath(cfg Config) string {
	return filepath.Join(cfg.BasePath(), RecordKey)
}

func (p *persistence) recordPath() string {
	return filepath.Join(p.basePath, RecordKey)
}

func (p *persistence) read() []entry.Entry {
	val, err := p.d.Read(RecordKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.log.Warn("read failed, starting with empty history", zap.Error(&PersistenceError{Op: "read", Err: err}))
		}
		return []entry.Entry{}
	}
	var list []entry.Entry
	if err := json.Unmarshal(val, &list); err != nil {
		p.log.Warn("record is corrupt, starting with empty history", zap.Error(&PersistenceError{Op: "decode", Err: err}))
		return []entry.Entry{}
	}
	if list == nil {
		list = []entry.Entry{}
	}
	return list
}

func (p *persistence) Load(_ context.Context) []entry.Entry {
	return p.reload()
}

// reload replaces the in-memory list with the record on disk. The read and
// the assignment happen under mu so a concurrent Append is never lost.
func (p *persistence) reload() []entry.Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = p.read()
	p.loaded = true
	return entry.CloneAll(p.entries)
}

func (p *persistence) Entries() []entry.Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoaded()
	return entry.CloneAll(p.entries)
}

// ensureLoaded must be called with mu held.
func (p *persistence) ensureLoaded() {
	if !p.loaded {
		p.entries = p.read()
		p.loaded = true
	}
}

func (p *persistence) Append(_ context.Context, e entry.Entry) ([]entry.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoaded()

	next := make([]entry.Entry, 0, len(p.entries)+1)
	next = append(next, e.Clone())
	next = append(next, p.entries...)
	p.entries = next

	out := entry.CloneAll(next)
	data, err := json.Marshal(next)
	if err != nil {
		return out, &PersistenceError{Op: "encode", Err: err}
	}
	if err := p.d.Write(RecordKey, data); err != nil {
		perr := &PersistenceError{Op: "write", Err: err}
		p.log.Warn("entry kept in memory only", zap.Int64("id", e.ID), zap.Error(perr))
		return out, perr
	}
	p.log.Debug("appended entry", zap.Int64("id", e.ID), zap.Int("count", len(next)))
	return out, nil
}
