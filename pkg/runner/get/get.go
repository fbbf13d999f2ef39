// Package get provides the runner logic for listing tasks.
package get

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/task"
)

// Get lists the tasks of one day, of a span of days, or of every day.
type Get struct {
	On     task.Day
	All    bool
	ShowID bool
	// Span lists this many days starting at On. Days without tasks are
	// left out.
	Span int

	Planner *app.Planner
	Printer *printers.PrettyPrint
}

// Result is what Get found, grouped by day in order of first appearance.
type Result struct {
	Days  []task.Day
	Tasks map[task.Day][]task.Task
}

// Collect gathers the tasks without printing.
func (n *Get) Collect(ctx context.Context) (*Result, error) {
	if n.Planner == nil {
		return nil, errors.New("can not get, no planner")
	}
	res := &Result{Tasks: make(map[task.Day][]task.Task)}
	day := n.On
	if day.IsZero() {
		day = n.Planner.Selected()
	}
	switch {
	case n.All:
	case n.Span > 1:
		for i := range n.Span {
			d := day.AddDays(i)
			if tasks := n.Planner.TasksOn(d); len(tasks) > 0 {
				res.Days = append(res.Days, d)
				res.Tasks[d] = tasks
			}
		}
		return res, nil
	default:
		res.Days = []task.Day{day}
		res.Tasks[day] = n.Planner.TasksOn(day)
		return res, nil
	}
	for _, t := range n.Planner.AllTasks() {
		if _, ok := res.Tasks[t.Day]; !ok {
			res.Days = append(res.Days, t.Day)
		}
		res.Tasks[t.Day] = append(res.Tasks[t.Day], t)
	}
	return res, nil
}

func (n *Get) Do(ctx context.Context) error {
	res, err := n.Collect(ctx)
	if err != nil {
		return err
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.ShowID = n.ShowID
	if len(res.Days) == 0 {
		pp.Tasks()
		return nil
	}
	for _, day := range res.Days {
		tasks := res.Tasks[day]
		pp.TitleWithCount(day.String(), len(tasks))
		pp.Tasks(tasks...)
	}
	return nil
}
