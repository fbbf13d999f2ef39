// Package info provides the runner logic for describing where tasks live.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
)

type Info struct {
	Config  store.Config
	Planner *app.Planner

	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYPLAN_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "DAYPLAN_CONFIG_PATH found on env, using", override)
	} else {
		fmt.Fprintln(out, "DAYPLAN_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		cfg, err := store.LoadConfig()
		if err != nil {
			return err
		}
		n.Config = cfg
	}
	fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	fmt.Fprintln(out, "Config.key: ", n.Config.Key())

	if n.Planner == nil {
		return errors.New("can not describe tasks, no planner")
	}

	days := make(map[string]int)
	var order []string
	open := 0
	all := n.Planner.AllTasks()
	for _, t := range all {
		k := t.Day.String()
		if _, ok := days[k]; !ok {
			order = append(order, k)
		}
		days[k]++
		if !t.Completed {
			open++
		}
	}
	fmt.Fprintf(out, "Tasks: %d (%d open)\n", len(all), open)
	fmt.Fprintf(out, "Days:\n")
	if len(order) == 0 {
		fmt.Fprintf(out, "  %s\n", "no days")
	}
	for _, k := range order {
		fmt.Fprintf(out, "  %s  %d\n", k, days[k])
	}
	return nil
}
