package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/mood/pkg/app"
)

// Run starts the UI and blocks until the user quits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m := New(svc, opts)
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.stopWatch()
	}
	return err
}
