// Package info reports where mood reads its configuration and journal.
package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/weather"
)

type Info struct {
	Config      *store.Settings
	Persistence store.Persistence

	JSON bool
	Out  io.Writer
}

type report struct {
	ConfigPathEnv string          `json:"configPathEnv,omitempty"`
	Settings      *store.Settings `json:"settings"`
	RecordPath    string          `json:"recordPath"`
	Entries       int             `json:"entries"`
	WeatherKey    bool            `json:"weatherKey"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	r := report{
		ConfigPathEnv: os.Getenv("MOOD_CONFIG_PATH"),
		Settings:      n.Config,
		RecordPath:    store.RecordPath(n.Config),
		Entries:       len(n.Persistence.Load(ctx)),
		WeatherKey:    n.Config.WeatherAPIKey != "",
	}

	if n.JSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if r.ConfigPathEnv != "" {
		tbl.AddRow(bold.Sprint("MOOD_CONFIG_PATH"), r.ConfigPathEnv)
	} else {
		tbl.AddRow(bold.Sprint("MOOD_CONFIG_PATH"), "not set")
	}
	configFile := r.Settings.ConfigFile
	if configFile == "" {
		configFile = "none, using defaults"
	}
	tbl.AddRow(bold.Sprint("Config file"), configFile)
	tbl.AddRow(bold.Sprint("Journal"), r.RecordPath)
	tbl.AddRow(bold.Sprint("Entries"), r.Entries)
	tbl.AddRow(bold.Sprint("Location"), location(r.Settings))
	if r.WeatherKey {
		tbl.AddRow(bold.Sprint("Weather"), r.Settings.WeatherBaseURL)
	} else {
		tbl.AddRow(bold.Sprint("Weather"), "no API key, entries are saved without weather")
	}

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

func location(cfg *store.Settings) string {
	switch cfg.LocationMode {
	case store.LocationOff, store.LocationIP:
		return cfg.LocationMode
	}
	if !cfg.HasCoordinates() {
		return "not configured"
	}
	return weather.Coordinates{Lat: *cfg.Lat, Lon: *cfg.Lon}.String()
}
