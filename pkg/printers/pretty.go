package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
)

const noteWidth = 72

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out    io.Writer
	ShowID bool
	// Now anchors relative times; defaults to time.Now.
	Now func() time.Time
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now == nil {
		return time.Now()
	}
	return pp.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Banner prints a non-blocking warning line.
func (pp *PrettyPrint) Banner(msg string) {
	if msg == "" {
		return
	}
	w := color.New(color.FgYellow)
	_, _ = w.Fprintf(pp.out(), "! %s\n", msg)
}

// Empty prints the placeholder used when a list has nothing to show.
func (pp *PrettyPrint) Empty(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", msg)
}

// Entry prints one entry as a card: date, mood, weather and note.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	if pp.ShowID {
		_, _ = y.Fprintf(pp.out(), "%d ", e.ID)
	}
	_, _ = b.Fprint(pp.out(), e.Title())
	_, _ = f.Fprintf(pp.out(), " · %s", humanize.RelTime(e.Date.Time, pp.now(), "ago", "from now"))
	label := ""
	if e.Mood != nil {
		label = " " + e.Mood.Label
	}
	_, _ = fmt.Fprintf(pp.out(), "  %s%s\n", e.Glyph(), label)

	if line := e.WeatherLine(); line != "" {
		_, _ = f.Fprintf(pp.out(), "  %s\n", line)
	}
	note := wordwrap.String(e.NoteOrDefault(), noteWidth)
	for _, l := range strings.Split(note, "\n") {
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", l)
	}
	pp.NewLine()
}

// Entries prints entries as cards, in the order given.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		pp.Empty("No entries found with the selected filter.")
		return
	}
	for _, e := range entries {
		pp.Entry(e)
	}
}

// Table prints one row per entry.
func (pp *PrettyPrint) Table(entries ...entry.Entry) {
	if len(entries) == 0 {
		pp.Empty("No entries found with the selected filter.")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.Wrap = true
	for _, e := range entries {
		label := ""
		if e.Mood != nil {
			label = e.Mood.Label
		}
		row := []interface{}{e.Date.Local().Format("2006-01-02 15:04"), e.Glyph(), label, e.WeatherLine(), e.Note}
		if pp.ShowID {
			row = append([]interface{}{e.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Moods prints the mood legend.
func (pp *PrettyPrint) Moods(moods []mood.Mood) {
	b := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Key"), b.Sprint("Mood"), b.Sprint("Id"))
	for i, m := range moods {
		tbl.AddRow(i+1, m.String(), m.ID)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
