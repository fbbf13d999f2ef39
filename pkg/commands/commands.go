package commands

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/dayplan/pkg/runner/get"
	teaui "tableflip.dev/dayplan/pkg/runner/tea"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("A to-do list for each day, with a calendar and a quote to get going."),
		Long: `dayplan keeps a to-do list per calendar day.

Run without arguments in a terminal to open the interactive planner; when
output is redirected, today's list is printed instead.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if termenv.EnvNoColor() {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			s, err := openSession(interactive)
			if err != nil {
				return err
			}
			defer s.Close()
			if interactive {
				return teaui.Run(s.Planner)
			}
			g := get.Get{Planner: s.Planner}
			return g.Do(context.Background())
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("path", "", "Directory holding the task slot (default ~/.dayplan.db).")
	flags.String("key", "", "Name of the task slot inside --path (default todos).")
	flags.String("log-level", "", "Log level: debug, info, warn or error.")
	flags.String("log-file", "", "Write logs to this file.")
	flags.Bool("ephemeral", false, "Keep tasks in memory only; nothing is read from or written to --path.")
	_ = viper.BindPFlag("path", flags.Lookup("path"))
	_ = viper.BindPFlag("key", flags.Lookup("key"))
	_ = viper.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("ephemeral", flags.Lookup("ephemeral"))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addList(topLevel)
	addToggle(topLevel)
	addRemove(topLevel)
	addCal(topLevel)
	addQuote(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
