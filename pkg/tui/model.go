// Package tui is the full-screen interactive mood journal.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/export"
	"tableflip.dev/mood/pkg/history"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

type screen int

const (
	screenEntry screen = iota
	screenHistory
)

type layout int

const (
	layoutList layout = iota
	layoutCalendar
)

type weatherState int

const (
	weatherLoading weatherState = iota
	weatherReady
	weatherFailed
	weatherOff
)

const (
	recentCount     = 3
	defaultPageSize = 5
	noteWidth       = 60
	toastDuration   = 2 * time.Second
)

// Options configures the UI.
type Options struct {
	// NoWeather skips the location and weather lookup.
	NoWeather bool
	// WeatherTimeout bounds the lookup. Zero means no bound.
	WeatherTimeout time.Duration
	// ExportDir is where the export key writes. Defaults to the working
	// directory.
	ExportDir string
	// ExportFormat defaults to csv.
	ExportFormat string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model contains UI state
type Model struct {
	svc   *app.Service
	ctx   context.Context
	opts  Options
	theme Theme

	screen  screen
	layout  layout
	editing bool

	moods    []mood.Mood
	selected int // -1 when no mood is picked
	input    textinput.Model

	entries []entry.Entry

	weather      *weather.Snapshot
	weatherState weatherState
	weatherToken int

	filter int // 0 is all, otherwise 1 + index into moods
	month  time.Time
	offset int

	banner     string
	toast      string
	toastToken int
	status     string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
	quitting    bool

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "What's on your mind? (optional)"
	ti.CharLimit = 2000
	ti.Prompt = ""

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		opts:     opts,
		theme:    DefaultTheme(),
		moods:    mood.DefaultMoods(),
		selected: -1,
		input:    ti,
	}
	m.month = history.FirstOfMonth(m.now())
	if opts.NoWeather {
		m.weatherState = weatherOff
	} else {
		m.weatherToken = 1
		m.weatherState = weatherLoading
	}
	return m
}

func (m *Model) now() time.Time {
	if m.opts.Now != nil {
		return m.opts.Now()
	}
	return time.Now()
}

// Init loads the journal, asks for the weather once and starts watching
// the record for changes by other mood processes.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadEntriesCmd(m.ctx, m.svc), startWatchCmd(m.ctx, m.svc)}
	if m.weatherState == weatherLoading {
		cmds = append(cmds, fetchWeatherCmd(m.ctx, m.svc, m.opts, m.weatherToken))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.banner = msg.err.Error()
	case entriesLoadedMsg:
		m.entries = msg.entries
		m.clampOffset()
	case weatherMsg:
		if msg.token != m.weatherToken {
			break
		}
		if msg.err != nil {
			m.weather = nil
			m.weatherState = weatherFailed
			m.banner = app.Banner(msg.err)
			break
		}
		m.weather = msg.snap
		m.weatherState = weatherReady
	case toastExpiredMsg:
		if msg.token == m.toastToken {
			m.toast = ""
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "Not watching for changes: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.reload()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if !m.quitting && m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case tea.KeyPressMsg:
		m.handleKey(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

// reload re-reads the record after another process rewrote it.
func (m *Model) reload() {
	if m.svc == nil {
		return
	}
	entries, err := m.svc.Load(m.ctx)
	if err != nil {
		m.banner = err.Error()
		return
	}
	m.entries = entries
	m.clampOffset()
	m.status = "Journal reloaded"
}

func (m *Model) handleKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quit(cmds)
		return
	}

	if m.editing {
		switch key {
		case "enter":
			m.save(cmds)
		case "esc":
			m.editing = false
			m.input.Blur()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			*cmds = append(*cmds, cmd)
		}
		return
	}

	switch key {
	case "q":
		m.quit(cmds)
		return
	case "tab":
		if m.screen == screenEntry {
			m.screen = screenHistory
		} else {
			m.screen = screenEntry
		}
		m.status = ""
		return
	case "x", "esc":
		if m.banner != "" {
			m.banner = ""
			return
		}
	}

	switch m.screen {
	case screenEntry:
		m.handleEntryKey(key, cmds)
	case screenHistory:
		m.handleHistoryKey(key, cmds)
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.quitting = true
	m.stopWatch()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) handleEntryKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "left", "h":
		if m.selected <= 0 {
			m.selected = len(m.moods) - 1
		} else {
			m.selected--
		}
	case "right", "l":
		m.selected = (m.selected + 1) % len(m.moods)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if i := int(key[0] - '1'); i < len(m.moods) {
			m.selected = i
		}
	case "i", "n":
		if m.selected < 0 {
			m.status = "Pick a mood first"
			return
		}
		m.editing = true
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	case "enter", "s":
		m.save(cmds)
	case "w":
		if m.weatherState == weatherOff || m.weatherState == weatherLoading {
			return
		}
		m.weatherToken++
		m.weatherState = weatherLoading
		m.weather = nil
		*cmds = append(*cmds, fetchWeatherCmd(m.ctx, m.svc, m.opts, m.weatherToken))
	case "v":
		m.screen = screenHistory
	}
}

func (m *Model) save(cmds *[]tea.Cmd) {
	if m.selected < 0 {
		m.status = "Pick a mood first"
		return
	}
	if m.svc == nil {
		m.banner = app.ErrNoPersistence.Error()
		return
	}
	var snap *weather.Snapshot
	if m.weatherState == weatherReady {
		snap = m.weather
	}
	_, list, err := m.svc.Record(m.ctx, m.moods[m.selected], m.input.Value(), snap)
	if err != nil {
		if list == nil {
			m.banner = err.Error()
			return
		}
		m.banner = app.Banner(err)
	}
	m.entries = list
	m.selected = -1
	m.editing = false
	m.input.Reset()
	m.input.Blur()
	m.status = ""
	*cmds = append(*cmds, m.showToast("Entry saved!"))
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastToken++
	m.toast = text
	token := m.toastToken
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{token: token}
	})
}

func (m *Model) handleHistoryKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case "c":
		if m.layout == layoutList {
			m.layout = layoutCalendar
		} else {
			m.layout = layoutList
		}
	case "f":
		m.filter = (m.filter + 1) % (len(m.moods) + 1)
		m.offset = 0
	case "F":
		m.filter = (m.filter + len(m.moods)) % (len(m.moods) + 1)
		m.offset = 0
	case "[", "p":
		m.month = history.PrevMonth(m.month)
	case "]", "n":
		m.month = history.NextMonth(m.month)
	case "t":
		m.month = history.FirstOfMonth(m.now())
	case "j", "down":
		m.offset++
		m.clampOffset()
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	case "e":
		m.export(cmds)
	}
}

func (m *Model) export(cmds *[]tea.Cmd) {
	if m.svc == nil {
		m.banner = app.ErrNoPersistence.Error()
		return
	}
	b, err := m.svc.Export(m.opts.ExportFormat)
	if err != nil {
		m.banner = err.Error()
		return
	}
	f, err := export.ForName(m.opts.ExportFormat, "")
	if err != nil {
		m.banner = err.Error()
		return
	}
	dir := m.opts.ExportDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, export.Filename(f))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		m.banner = fmt.Sprintf("Export failed: %v", err)
		return
	}
	*cmds = append(*cmds, m.showToast("Exported to "+path))
}

func (m *Model) filterID() string {
	if m.filter == 0 {
		return mood.All
	}
	return m.moods[m.filter-1].ID
}

func (m *Model) filtered() []entry.Entry {
	return history.FilterByMood(m.entries, m.filterID())
}

func (m *Model) pageSize() int {
	if m.termHeight == 0 {
		return defaultPageSize
	}
	// A card is about five lines tall; leave room for header and footer.
	n := (m.termHeight - 8) / 5
	if n < 1 {
		n = 1
	}
	return n
}

func (m *Model) clampOffset() {
	last := len(m.filtered()) - m.pageSize()
	if last < 0 {
		last = 0
	}
	if m.offset > last {
		m.offset = last
	}
}

// View renders the active screen with the banner, toast and key help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.banner != "" {
		b.WriteString(m.theme.Banner.Render("! " + m.banner + "  (x to dismiss)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.screen {
	case screenEntry:
		b.WriteString(m.renderEntryScreen())
	case screenHistory:
		b.WriteString(m.renderHistoryScreen())
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Toast.Render(m.toast))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"Entry", "History"}
	parts := []string{m.theme.Header.Render("Mood Journal"), " "}
	for i, t := range tabs {
		if screen(i) == m.screen {
			parts = append(parts, m.theme.ActiveTab.Render(t))
		} else {
			parts = append(parts, m.theme.Tab.Render(t))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderEntryScreen() string {
	var b strings.Builder
	b.WriteString(m.theme.Section.Render("How are you feeling today?"))
	b.WriteString("\n\n")

	moods := make([]string, 0, len(m.moods))
	for i, md := range m.moods {
		label := fmt.Sprintf("%d %s %s", i+1, md.Emoji, md.Label)
		if i == m.selected {
			moods = append(moods, m.theme.SelectedMood.Render("["+label+"]"))
		} else {
			moods = append(moods, m.theme.Mood.Render(" "+label+" "))
		}
	}
	b.WriteString(strings.Join(moods, " "))
	b.WriteString("\n\n")

	b.WriteString(m.renderWeather())
	b.WriteString("\n\n")

	if m.selected >= 0 {
		b.WriteString("Note: ")
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.theme.Faint.Render("Pick a mood to add a note."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.theme.Section.Render("Recent Entries"))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(m.theme.Faint.Render("No entries yet. Add your first mood entry above!"))
		return b.String()
	}
	for _, e := range history.Recent(m.entries, recentCount) {
		b.WriteString(m.renderCard(e))
		b.WriteString("\n")
	}
	if len(m.entries) > recentCount {
		b.WriteString(m.theme.Faint.Render(fmt.Sprintf("v: view all %d entries", len(m.entries))))
	}
	return b.String()
}

func (m Model) renderWeather() string {
	switch m.weatherState {
	case weatherLoading:
		return m.theme.Faint.Render("Fetching weather…")
	case weatherReady:
		if m.weather == nil {
			return ""
		}
		line := "Weather: " + m.weather.String()
		if m.weather.Description != "" {
			line += " (" + m.weather.Description + ")"
		}
		return line
	case weatherFailed:
		return m.theme.Faint.Render("Weather unavailable, w to retry")
	default:
		return m.theme.Faint.Render("Weather off")
	}
}

func (m Model) renderCard(e entry.Entry) string {
	title := e.Title() + "  " + e.Glyph()
	lines := []string{m.theme.CardTitle.Render(title) + m.theme.Faint.Render(" · "+humanize.RelTime(e.Date.Time, m.now(), "ago", "from now"))}
	if w := e.WeatherLine(); w != "" {
		lines = append(lines, m.theme.Faint.Render(w))
	}
	lines = append(lines, wordwrap.String(e.NoteOrDefault(), noteWidth))
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

func (m Model) renderHistoryScreen() string {
	var b strings.Builder
	b.WriteString(m.theme.Section.Render("Mood History"))

	filter := "All"
	if m.filter > 0 {
		filter = m.moods[m.filter-1].String()
	}
	view := "List"
	if m.layout == layoutCalendar {
		view = "Calendar"
	}
	b.WriteString(m.theme.Faint.Render(fmt.Sprintf("  view: %s · filter: %s", view, filter)))
	b.WriteString("\n\n")

	if m.layout == layoutCalendar {
		cells := history.Month(m.month, m.entries, m.filterID(), m.now())
		b.WriteString(renderCalendar(m.month, cells, m.theme.Calendar))
		return b.String()
	}

	list := m.filtered()
	if len(list) == 0 {
		b.WriteString(m.theme.Faint.Render("No entries found with the selected filter."))
		return b.String()
	}
	end := m.offset + m.pageSize()
	if end > len(list) {
		end = len(list)
	}
	for _, e := range list[m.offset:end] {
		b.WriteString(m.renderCard(e))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Faint.Render(fmt.Sprintf("%d-%d of %d", m.offset+1, end, len(list))))
	return b.String()
}

func (m Model) renderFooter() string {
	var help string
	switch {
	case m.editing:
		help = "enter save · esc done"
	case m.screen == screenEntry:
		help = "←/→ or 1-5 mood · i note · enter save · w weather · tab history · q quit"
	case m.layout == layoutCalendar:
		help = "c list · [/] month · t today · f filter · e export · tab entry · q quit"
	default:
		help = "c calendar · j/k scroll · f filter · e export · tab entry · q quit"
	}
	if m.status != "" {
		help = m.status + " · " + help
	}
	return m.theme.Footer.Render(help)
}
