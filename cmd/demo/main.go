// Command demo fills the configured slot with a week of sample tasks.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/todo"
)

var sample = []struct {
	offset int
	text   string
	done   bool
}{
	{offset: -2, text: "Renew library books", done: true},
	{offset: -1, text: "Water the plants", done: true},
	{offset: -1, text: "Email the landlord"},
	{offset: 0, text: "Buy milk"},
	{offset: 0, text: "Call mom", done: true},
	{offset: 0, text: "Finish the quarterly report"},
	{offset: 1, text: "Dentist at 10"},
	{offset: 3, text: "Book train tickets"},
	{offset: 5, text: "Dinner with Sam"},
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "demo"})

	n, err := run(os.Args[1:], nil, logger, time.Now())
	if err != nil {
		logger.Fatal("demo", "err", err)
	}
	fmt.Printf("%d tasks in the slot\n", n)
}

// run seeds the slot named by cfg, or by the loaded config when cfg is nil,
// and returns how many tasks it holds afterwards.
func run(args []string, cfg store.Config, logger *log.Logger, now time.Time) (int, error) {
	flags := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	reset := flags.Bool("reset", false, "Erase the slot before seeding.")
	if err := flags.Parse(args); err != nil {
		return 0, err
	}

	slot, err := store.Load(cfg, store.WithLogger(logger))
	if err != nil {
		return 0, err
	}
	if *reset {
		if err := slot.Clear(); err != nil {
			return 0, err
		}
		logger.Info("slot cleared")
	}
	tasks := todo.New(slot, todo.WithLogger(logger))

	today := task.Today(now)
	for _, s := range sample {
		t, ok := tasks.Add(s.text, today.AddDays(s.offset))
		if !ok {
			continue
		}
		if s.done {
			tasks.Toggle(t.ID)
		}
	}
	return tasks.Len(), nil
}
