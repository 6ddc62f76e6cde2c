package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "moods",
		Aliases: []string{"key"},
		Short:   "Print the moods that can be logged.",
		Example: `
mood moods
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := moods.Moods{JSON: output.JSON, Out: outFor(cmd)}
			err := m.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
