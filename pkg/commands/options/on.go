package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/history"
)

var monthLayouts = []string{
	"2006-1",
	"2006-01",
	"1/2006",
	"January 2006",
	"Jan 2006",
}

// OnOptions anchors the calendar on a month.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a month, example: --on="2024-3" or --on="March 2024".`)
}

// GetOn returns the first of the requested month in local time, or the
// first of the current month when --on is not set.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	s := strings.TrimSpace(o.OnString)
	if s == "" {
		return history.FirstOfMonth(now), nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return history.FirstOfMonth(time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, now.Location())), nil
		}
	}
	return time.Time{}, fmt.Errorf("options: unrecognized month %q", o.OnString)
}
