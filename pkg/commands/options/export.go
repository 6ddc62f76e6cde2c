package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/export"
)

// ExportOptions
type ExportOptions struct {
	Format string
	Output string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "csv",
		"Export format. One of "+strings.Join(export.Formats(), ", ")+".")
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		Wrap80(`File to write. Defaults to mood_journal_export with the format's extension in the working directory. Use "-" for stdout.`))
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return export.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}
