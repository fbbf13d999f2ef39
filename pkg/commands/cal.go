package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Print a month, marking today and days with tasks",
		Example: `
dayplan cal
dayplan cal --month=2024-02
dayplan cal --on=2024-3-15
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			month, _, err := mo.GetMonth()
			if err != nil {
				return err
			}
			s, err := openSession(false)
			if err != nil {
				return err
			}
			defer s.Close()

			c := cal.Cal{
				Month:    month,
				Selected: on,
				Planner:  s.Planner,
			}
			return c.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddMonthArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
