package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventReloaded means the record changed on disk and the in-memory list
	// was re-read from it.
	EventReloaded EventType = iota
	// EventWatchError means the watcher hit an error; callers should reload.
	EventWatchError
)

// Event is emitted by Persistence.Watch.
type Event struct {
	Type  EventType
	Count int
}

// Watch streams change events until ctx is cancelled. The channel is closed
// once ctx is done or the watcher stops.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 8)
	record := filepath.Clean(p.recordPath())

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("watcher close", zap.Error(err))
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is busy; the next event reloads anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		pending := make(chan struct{}, 1)
		mark := func() {
			select {
			case pending <- struct{}{}:
			default:
			}
		}

		reload := func() {
			send(Event{Type: EventReloaded, Count: len(p.reload())})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-pending:
				reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("watch error", zap.Error(err))
				send(Event{Type: EventWatchError})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != record {
					continue
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(mark)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of filesystem activity into a single
// callback after delay.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.timer != nil {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		t.timer = nil
		stopped := t.stopped
		t.mu.Unlock()
		if !stopped {
			fn()
		}
	})
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
