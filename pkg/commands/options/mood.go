package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/mood"
)

// MoodOptions filters by mood.
type MoodOptions struct {
	Mood string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", mood.All,
		"Only show entries with this mood: "+strings.Join(append([]string{mood.All}, mood.IDs()...), ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return MoodCompletions(toComplete, true), cobra.ShellCompDirectiveNoFileComp
	})
}

// MoodCompletions lists mood ids with the given prefix.
func MoodCompletions(toComplete string, withAll bool) []string {
	ids := mood.IDs()
	if withAll {
		ids = append([]string{mood.All}, ids...)
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.HasPrefix(id, strings.ToLower(toComplete)) {
			out = append(out, id)
		}
	}
	return out
}
