package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/dayplan/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
dayplan ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(true)
			if err != nil {
				return err
			}
			defer s.Close()
			return teaui.Run(s.Planner)
		},
	}

	topLevel.AddCommand(cmd)
}
