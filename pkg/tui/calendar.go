package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/mood/pkg/history"
)

const calendarCell = 6

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderCalendar draws a month grid: a day-number line and a glyph line per
// week.
func renderCalendar(anchor time.Time, cells []history.Cell, th CalendarTheme) string {
	var lines []string
	title := anchor.Format("January 2006")
	lines = append(lines, th.Title.Render(center(title, calendarCell*7)))

	var header strings.Builder
	for _, d := range weekdayNames {
		header.WriteString(th.Weekday.Render(padCell(d)))
	}
	lines = append(lines, header.String())

	for _, week := range history.Weeks(cells) {
		var days, glyphs strings.Builder
		for _, c := range week {
			style := th.Day
			if !c.InMonth {
				style = th.Outside
			}
			if c.Today {
				style = th.Today
			}
			days.WriteString(style.Render(padCell(fmt.Sprintf("%2d", c.Date.Day()))))
			glyphs.WriteString(padCell(cellGlyph(c)))
		}
		lines = append(lines, days.String(), glyphs.String())
	}
	return strings.Join(lines, "\n")
}

func cellGlyph(c history.Cell) string {
	switch len(c.Entries) {
	case 0:
		return ""
	case 1:
		return c.Entries[0].Glyph()
	default:
		return fmt.Sprintf("%s+%d", c.Entries[0].Glyph(), len(c.Entries)-1)
	}
}

func padCell(s string) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= calendarCell {
		return s
	}
	return s + strings.Repeat(" ", calendarCell-w)
}

func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}
