// Package record implements mood log.
package record

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
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

type Record struct {
	Service *app.Service

	Mood mood.Mood
	Note string

	NoWeather bool
	// Timeout bounds the location and weather lookup. Zero means no bound
	// beyond ctx.
	Timeout time.Duration

	JSON   bool
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

type result struct {
	Entry    entry.Entry `json:"entry"`
	Warnings []string    `json:"warnings,omitempty"`
}

func (r *Record) out() io.Writer {
	if r.Out == nil {
		return color.Output
	}
	return r.Out
}

func (r *Record) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("can not record, no persistence")
	}

	var warnings []string
	var snap *weather.Snapshot
	if !r.NoWeather {
		wctx, cancel := r.weatherContext(ctx)
		var err error
		snap, err = r.Service.Weather(wctx)
		cancel()
		if err != nil {
			warnings = append(warnings, app.Banner(err))
		}
	}

	e, _, err := r.Service.Record(ctx, r.Mood, r.Note, snap)
	if err != nil {
		if !errors.Is(err, store.ErrPersistence) {
			return err
		}
		warnings = append(warnings, app.Banner(err))
	}

	if r.JSON {
		b, err := json.MarshalIndent(result{Entry: e, Warnings: warnings}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(r.out(), string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: r.out(), ShowID: r.ShowID, Now: r.Service.Now}
	pp.NewLine()
	for _, w := range warnings {
		pp.Banner(w)
	}
	pp.Title("Entry saved")
	pp.Entry(e)
	return nil
}

func (r *Record) weatherContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.Timeout)
}
