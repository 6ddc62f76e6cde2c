// Package export serializes the journal for use outside mood.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/weather"
)

const (
	// DefaultFilename is the name of the exported file.
	DefaultFilename = "mood_journal_export.csv"
	// DefaultDateLayout is the short date used in the Date column.
	DefaultDateLayout = "1/2/2006"

	header        = "Date,Mood,Weather,Temperature,Note"
	noMood        = "Not specified"
	noWeather     = "Not recorded"
	noTemperature = "N/A"
)

// Formatter renders a list of entries. Entries are written in the order
// given; nothing re-sorts them.
type Formatter interface {
	Format(entries []entry.Entry) ([]byte, error)
	// Extension is the file extension, without the dot.
	Extension() string
}

// Formats lists the names accepted by ForName.
func Formats() []string {
	return []string{"csv", "json", "yaml"}
}

// ForName returns the formatter for name. dateLayout only applies to csv.
func ForName(name, dateLayout string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return CSV{DateLayout: dateLayout}, nil
	case "json":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("export: unknown format %q, expected one of %s", name, strings.Join(Formats(), ", "))
	}
}

// Filename is the default export file name for f.
func Filename(f Formatter) string {
	return strings.TrimSuffix(DefaultFilename, ".csv") + "." + f.Extension()
}

// ToDelimitedText renders entries as CSV with the default date layout.
func ToDelimitedText(entries []entry.Entry) string {
	b, _ := CSV{}.Format(entries)
	return string(b)
}

// CSV writes a header row and one row per entry. Every field is quoted and
// embedded quotes are doubled.
type CSV struct {
	DateLayout string
	// Location for the Date column; time.Local when nil.
	Location *time.Location
}

func (c CSV) Extension() string { return "csv" }

func (c CSV) Format(entries []entry.Entry) ([]byte, error) {
	layout := c.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	for _, e := range entries {
		moodLabel, condition, temp := noMood, noWeather, noTemperature
		if e.Mood != nil {
			moodLabel = e.Mood.Label
		}
		if e.Weather != nil {
			condition = e.Weather.Condition
			temp = weather.FormatTemperature(e.Weather.Temperature)
		}
		fields := []string{e.Date.In(loc).Format(layout), moodLabel, condition, temp, e.Note}
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(quote(f))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// JSON writes the entries in the persisted record layout.
type JSON struct{}

func (JSON) Extension() string { return "json" }

func (JSON) Format(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: json: %w", err)
	}
	return append(b, '\n'), nil
}

// YAML writes the same fields as JSON.
type YAML struct{}

func (YAML) Extension() string { return "yaml" }

type yamlRecord struct {
	ID      int64             `yaml:"id"`
	Date    string            `yaml:"date"`
	Mood    *mood.Mood        `yaml:"mood"`
	Note    string            `yaml:"note"`
	Weather *weather.Snapshot `yaml:"weather"`
}

func (YAML) Format(entries []entry.Entry) ([]byte, error) {
	records := make([]yamlRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, yamlRecord{
			ID:      e.ID,
			Date:    e.Date.String(),
			Mood:    e.Mood,
			Note:    e.Note,
			Weather: e.Weather,
		})
	}
	b, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("export: yaml: %w", err)
	}
	return b, nil
}
