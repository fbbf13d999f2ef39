// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Complete flips the completion flag of each id and prints the affected days.
type Complete struct {
	IDs []int64

	Planner *app.Planner
	Printer *printers.PrettyPrint
}

// Do executes the toggle for the configured ids. Unknown ids are reported
// but do not fail the command.
func (n *Complete) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not complete, no planner")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowID = true

	for _, id := range n.IDs {
		if _, ok := n.Planner.Task(id); !ok {
			pp.Missing(id)
			continue
		}
		n.Planner.ToggleTask(id)
		t, _ := n.Planner.Task(id)
		pp.Title(t.Day.String())
		pp.Tasks(n.Planner.TasksOn(t.Day)...)
	}
	return nil
}
