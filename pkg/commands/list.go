package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/get"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ids := &options.IDOptions{}
	output := &options.OutputOptions{}
	var all bool
	var next string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List the tasks of a day",
		Example: `
dayplan list
dayplan list --on=3/15 --show-id
dayplan list --next=2w
dayplan list --all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()

			span := 0
			if cmd.Flags().Changed("next") {
				if span, _, err = timeutil.ParseSpan(next); err != nil {
					return output.HandleError(err)
				}
			}

			g := get.Get{
				On:      on,
				All:     all,
				Span:    span,
				ShowID:  ids.ShowID,
				Planner: s.Planner,
			}
			if output.JSON {
				res, err := g.Collect(context.Background())
				if err != nil {
					return output.HandleError(err)
				}
				flat := make([]task.Task, 0)
				for _, day := range res.Days {
					flat = append(flat, res.Tasks[day]...)
				}
				return output.PrintJSON(flat)
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, ids)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&all, "all", false, "List every day that has tasks.")
	cmd.Flags().StringVar(&next, "next", "", `List the days with tasks in a span starting at --on, example: --next="1w2d".`)
	topLevel.AddCommand(cmd)
}
