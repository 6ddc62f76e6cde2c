package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

type errMsg struct{ err error }

type entriesLoadedMsg struct{ entries []entry.Entry }

// weatherMsg carries the token of the request that produced it. Results
// for any token other than the model's current one are dropped.
type weatherMsg struct {
	token int
	snap  *weather.Snapshot
	err   error
}

type toastExpiredMsg struct{ token int }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func loadEntriesCmd(ctx context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := svc.Load(ctx)
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{entries}
	}
}

func fetchWeatherCmd(ctx context.Context, svc *app.Service, opts Options, token int) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		if opts.WeatherTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.WeatherTimeout)
			defer cancel()
		}
		snap, err := svc.Weather(ctx)
		return weatherMsg{token: token, snap: snap, err: err}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
