package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	root   = &options.RootOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mood",
		Short: options.Wrap80("Keep a mood journal on the command line."),
		Long: options.Wrap80("Keep a mood journal on the command line. Pick a mood, add a note, and mood " +
			"records the weather where you are. Browse entries as a list or a month calendar and export them."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddRootArgs(cmd, root)
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addHistory(topLevel)
	addExport(topLevel)
	addMoods(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
