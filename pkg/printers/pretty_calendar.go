package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/mood/pkg/history"
)

const cellWidth = 6

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Calendar prints a month grid. Each cell shows the day number and the glyph
// of the first entry that day, with a count when there are more.
func (pp *PrettyPrint) Calendar(anchor time.Time, cells []history.Cell) {
	width := cellWidth * 7
	title := anchor.Format("January 2006")
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	tf := color.New(color.Bold)
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), title)

	h := color.New(color.Faint)
	for _, d := range weekdays {
		_, _ = h.Fprint(pp.out(), pad(d, cellWidth))
	}
	pp.NewLine()

	outside := color.New(color.Faint)
	plain := color.New()
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)

	for _, week := range history.Weeks(cells) {
		for _, c := range week {
			printer := plain
			switch {
			case c.Today:
				printer = today
			case !c.InMonth:
				printer = outside
			}
			_, _ = printer.Fprint(pp.out(), fmt.Sprintf("%2d", c.Date.Day()))
			_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", cellWidth-2))
		}
		pp.NewLine()
		for _, c := range week {
			_, _ = fmt.Fprint(pp.out(), pad(cellGlyphs(c), cellWidth))
		}
		pp.NewLine()
	}
	pp.NewLine()
}

func cellGlyphs(c history.Cell) string {
	switch n := len(c.Entries); n {
	case 0:
		return ""
	case 1:
		return c.Entries[0].Glyph()
	default:
		return fmt.Sprintf("%s+%d", c.Entries[0].Glyph(), n-1)
	}
}

// pad right-pads s to width terminal cells.
func pad(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
