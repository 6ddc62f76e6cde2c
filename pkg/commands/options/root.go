package options

import (
	"github.com/spf13/cobra"
)

// RootOptions are shared by every subcommand.
type RootOptions struct {
	Verbose bool
	LogFile string
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output to stderr.")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "",
		Wrap80("Write logs to this file instead of stderr. The ui command logs nowhere unless this is set."))
}
