package options

import (
	"github.com/spf13/cobra"
)

// HistoryOptions pick the history layout.
type HistoryOptions struct {
	Calendar bool
	Compact  bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().BoolVarP(&o.Calendar, "calendar", "c", false,
		"Show a month calendar instead of a list.")
	cmd.Flags().BoolVar(&o.Compact, "compact", false,
		"Show one line per entry.")
}
