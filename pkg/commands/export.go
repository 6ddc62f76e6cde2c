package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole journal.",
		Example: `
mood export
mood export --format json --output journal.json
mood export -f yaml -o -
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			e := export.Export{
				Service: s.svc,
				Format:  eo.Format,
				Output:  eo.Output,
				JSON:    output.JSON,
				Out:     outFor(cmd),
				Logger:  s.log,
			}
			err = e.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
