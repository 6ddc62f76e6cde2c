package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	wo := &options.WindowOptions{}
	ho := &options.HistoryOptions{}
	on := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"get", "ls"},
		Short:   "Show past entries, newest first.",
		Example: `
mood history
mood history --mood happy --last 2w
mood history --calendar --on 2024-3
mood history --compact --show-id
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			since, err := wo.Since(now)
			if err != nil {
				return output.HandleError(err)
			}
			anchor, err := on.GetOn(now)
			if err != nil {
				return output.HandleError(err)
			}

			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			h := history.History{
				Service:  s.svc,
				Mood:     mo.Mood,
				Since:    since,
				Window:   wo.Last,
				Calendar: ho.Calendar,
				On:       anchor,
				Compact:  ho.Compact,
				JSON:     output.JSON,
				ShowID:   io.ShowID,
				Out:      outFor(cmd),
			}
			err = h.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddMoodArgs(cmd, mo)
	options.AddWindowArgs(cmd, wo)
	options.AddHistoryArgs(cmd, ho)
	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
