package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	ids := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <task id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Example: `
dayplan rm 1710460800000
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

			r := remove.Remove{
				IDs:     ids.IDs,
				Planner: s.Planner,
			}
			return output.HandleError(r.Do(context.Background()))
		},
		ValidArgsFunction: taskIDCompletions,
	}

	topLevel.AddCommand(cmd)
}
