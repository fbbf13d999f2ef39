package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/complete"
)

func addToggle(topLevel *cobra.Command) {
	ids := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <task id>...",
		Aliases: []string{"done", "complete"},
		Short:   "Mark a task done, or open again",
		Example: `
dayplan toggle 1710460800000
`,
		Args: func(_ *cobra.Command, args []string) error {
			return ids.ParseIDs(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			c := complete.Complete{
				IDs:     ids.IDs,
				Planner: s.Planner,
			}
			return output.HandleError(c.Do(context.Background()))
		},
		ValidArgsFunction: taskIDCompletions,
	}

	topLevel.AddCommand(cmd)
}
