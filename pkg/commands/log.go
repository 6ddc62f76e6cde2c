package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/prompt"
	"tableflip.dev/mood/pkg/runner/record"
)

func addLog(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Record how you are feeling, with an optional note.\n\n")
	long.WriteString("Moods and aliases:\n")
	for i, m := range mood.DefaultMoods() {
		long.WriteString(fmt.Sprintf("%s: %s, %s, %d\n", m.Emoji, m.ID, m.Label, i+1))
	}
	long.WriteString("\nWithout a mood, mood log asks for one.")

	var (
		picked mood.Mood
		note   string
	)

	cmd := &cobra.Command{
		Use:     "log [mood] [note...]",
		Aliases: []string{"add"},
		Short:   "Log a mood entry.",
		Long:    long.String(),
		Example: `
mood log happy finished the garden
mood add 4 "long walk by the river"
mood log --no-weather sad
mood log
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return options.MoodCompletions(toComplete, false), cobra.ShellCompDirectiveNoFileComp
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			var err error
			picked, err = mood.ForAlias(args[0])
			if err != nil {
				return err
			}
			note = strings.Join(args[1:], " ")
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return nil
			}
			if !isatty.IsTerminal(stdinFd(cmd)) && !isatty.IsCygwinTerminal(stdinFd(cmd)) {
				return errors.New("a mood is required when not running in a terminal")
			}
			p := prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			var err error
			if picked, err = p.Mood(); err != nil {
				return err
			}
			note, err = p.Note()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			r := record.Record{
				Service:   s.svc,
				Mood:      picked,
				Note:      note,
				NoWeather: ro.NoWeather,
				Timeout:   s.cfg.WeatherTimeout,
				JSON:      output.JSON,
				ShowID:    io.ShowID,
				Out:       outFor(cmd),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func stdinFd(cmd *cobra.Command) uintptr {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}
