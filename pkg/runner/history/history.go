// Package history implements mood history.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/app"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/printers"
)

type History struct {
	Service *app.Service

	Mood string
	// Since is zero for all history.
	Since    time.Time
	Window   string
	Calendar bool
	// On is the month shown by the calendar.
	On      time.Time
	Compact bool

	JSON   bool
	ShowID bool
	Out    io.Writer
}

func (h *History) out() io.Writer {
	if h.Out == nil {
		return color.Output
	}
	return h.Out
}

func (h *History) Do(ctx context.Context) error {
	if h.Service == nil {
		return errors.New("can not get history, no persistence")
	}
	if h.Calendar {
		return h.calendar()
	}

	list, err := h.Service.History(h.Mood, h.Since)
	if err != nil {
		return err
	}

	if h.JSON {
		if list == nil {
			list = []entry.Entry{}
		}
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(h.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: h.out(), ShowID: h.ShowID, Now: h.Service.Now}
	pp.NewLine()
	pp.TitleWithCount(h.title(), len(list))
	pp.NewLine()
	if h.Compact {
		pp.Table(list...)
		return nil
	}
	pp.Entries(list...)
	return nil
}

func (h *History) title() string {
	title := "Mood History"
	id, _ := mood.ParseFilter(h.Mood)
	if id != mood.All {
		if m, err := mood.ForAlias(id); err == nil {
			title += " · " + m.String()
		}
	}
	if h.Window != "" {
		title += " · last " + h.Window
	}
	return title
}

type calendarDay struct {
	Date    string        `json:"date"`
	InMonth bool          `json:"inMonth"`
	Today   bool          `json:"today"`
	Entries []entry.Entry `json:"entries"`
}

func (h *History) calendar() error {
	anchor := h.On
	if anchor.IsZero() {
		anchor = time.Now()
	}
	cells, err := h.Service.Calendar(anchor, h.Mood)
	if err != nil {
		return err
	}

	if h.JSON {
		days := make([]calendarDay, 0, len(cells))
		for _, c := range cells {
			es := c.Entries
			if es == nil {
				es = []entry.Entry{}
			}
			days = append(days, calendarDay{Date: c.Key, InMonth: c.InMonth, Today: c.Today, Entries: es})
		}
		b, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(h.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: h.out(), ShowID: h.ShowID, Now: h.Service.Now}
	pp.NewLine()
	pp.Calendar(anchor, cells)
	return nil
}
