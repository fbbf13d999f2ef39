// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Remove deletes each id and prints what is left on the affected days.
type Remove struct {
	IDs []int64

	Planner *app.Planner
	Printer *printers.PrettyPrint
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not remove, no planner")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowID = true

	for _, id := range n.IDs {
		t, ok := n.Planner.Task(id)
		if !ok {
			pp.Missing(id)
			continue
		}
		n.Planner.DeleteTask(id)
		remaining := n.Planner.TasksOn(t.Day)
		pp.TitleWithCount(t.Day.String(), len(remaining))
		pp.Tasks(remaining...)
	}
	return nil
}
