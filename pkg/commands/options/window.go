package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

// WindowOptions limits history to a trailing window.
type WindowOptions struct {
	Last string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", "",
		Wrap80(`Only show entries from the trailing window, example: --last=36h, --last=2w or --last=1mo.`))
}

// Since is the start of the window, or the zero time for all history.
func (o *WindowOptions) Since(now time.Time) (time.Time, error) {
	d, err := timeutil.ParseWindow(o.Last)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.Since(now, d), nil
}
