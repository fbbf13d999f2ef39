// Package cal provides the runner logic for printing a month.
package cal

import (
	"context"
	"errors"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/task"
)

// Cal prints the calendar for a month with the selected day marked.
type Cal struct {
	Month    calendar.Month
	Selected task.Day

	Planner *app.Planner
	Printer *printers.PrettyPrint
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Planner == nil {
		return errors.New("can not show calendar, no planner")
	}
	if !n.Selected.IsZero() {
		n.Planner.SelectDate(n.Selected)
	}
	if n.Month != (calendar.Month{}) {
		n.Planner.ShowMonth(n.Month)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Month(n.Planner.MonthLabel(), n.Planner.Grid(), n.Planner.Counts())
	return nil
}
