// Package add provides the runner logic for adding tasks.
package add

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/task"
)

// Add files a task under a day and prints that day's list.
type Add struct {
	Message string
	On      task.Day
	ShowID  bool

	Planner *app.Planner
	Printer *printers.PrettyPrint
}

// ErrEmpty is returned when the message is blank.
var ErrEmpty = errors.New("add: task text is empty")

// Do adds the task. Unlike the interactive views, the CLI reports a blank
// message instead of ignoring it.
func (n *Add) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not add, no planner")
	}
	if !n.On.IsZero() {
		n.Planner.SelectDate(n.On)
	}
	if _, ok := n.Planner.AddTask(n.Message); !ok {
		return ErrEmpty
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowID = n.ShowID
	tasks := n.Planner.Tasks()
	pp.TitleWithCount(n.Planner.Selected().String(), len(tasks))
	pp.Tasks(tasks...)
	return nil
}
