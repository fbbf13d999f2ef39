package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ids := &options.IDOptions{}
	output := &options.OutputOptions{}
	var message string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Example: `
dayplan add buy milk
dayplan add --on=2024-3-15 call the bank
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			message = strings.Join(args, " ")
			return nil
		},
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

			if output.JSON {
				s.Planner.SelectDate(on)
				t, ok := s.Planner.AddTask(message)
				if !ok {
					return output.HandleError(add.ErrEmpty)
				}
				return output.PrintJSON(t)
			}

			a := add.Add{
				Message: message,
				On:      on,
				ShowID:  ids.ShowID,
				Planner: s.Planner,
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, ids)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
