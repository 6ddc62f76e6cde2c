package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where the journal is stored.",
		Example: `
mood info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			i := info.Info{
				Config:      s.cfg,
				Persistence: s.svc.Persistence,
				JSON:        output.JSON,
				Out:         outFor(cmd),
			}
			err = i.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
