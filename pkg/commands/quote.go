package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	quotes "tableflip.dev/dayplan/pkg/quote"
	"tableflip.dev/dayplan/pkg/runner/quote"
)

func addQuote(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote",
		Example: `
dayplan quote
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := quotes.New(nil, nil)
			if output.JSON {
				return output.PrintJSON(p.PickRandom())
			}
			q := quote.Quote{Provider: p}
			return q.Do(context.Background())
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
