package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive journal.",
		Example: `
mood ui
mood ui --no-weather
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return errors.New("mood ui needs a terminal, try mood history instead")
			}
			s, err := openSession(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(cmd.Context(), s.svc, tui.Options{
				NoWeather:      ro.NoWeather,
				WeatherTimeout: s.cfg.WeatherTimeout,
				ExportFormat:   eo.Format,
			})
		},
	}

	options.AddRecordArgs(cmd, ro)
	cmd.Flags().StringVarP(&eo.Format, "format", "f", "csv",
		"Format written by the export key.")

	topLevel.AddCommand(cmd)
}
