package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where tasks are kept and how many there are",
		Example: `
dayplan info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(false)
			if err != nil {
				return err
			}
			defer s.Close()

			n := info.Info{
				Config:  s.Config,
				Planner: s.Planner,
			}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
