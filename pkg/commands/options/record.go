package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions
type RecordOptions struct {
	NoWeather bool
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().BoolVar(&o.NoWeather, "no-weather", false,
		"Do not look up the current weather.")
}
