package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/todo"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a grid of cells under a centered label. Days with open tasks
// are bold, days whose tasks are all done are plain, today is underlined and
// the selected day is reversed.
func (pp *PrettyPrint) Month(label string, cells []calendar.Cell, counts map[int]todo.DayCount) {
	tf := color.New(color.FgWhite, color.Italic)
	mid := max((width-len(label))/2, 0)
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), label)

	h := color.New(color.Faint, color.Bold)
	_, _ = h.Fprintln(pp.out(), calendar.Header)

	prev := color.New(color.Faint, color.FgWhite)
	for i, c := range cells {
		printer := prev
		if !c.PrevMonth {
			printer = dayPrinter(c, counts[c.Day])
		}
		_, _ = printer.Fprintf(pp.out(), "%2d", c.Day)

		switch {
		case i == len(cells)-1:
			_, _ = fmt.Fprint(pp.out(), "\n")
		case i%7 == 6:
			_, _ = fmt.Fprint(pp.out(), "\n")
		default:
			_, _ = fmt.Fprint(pp.out(), " ")
		}
	}
	pp.NewLine()
}

func dayPrinter(c calendar.Cell, count todo.DayCount) *color.Color {
	attrs := []color.Attribute{color.FgWhite}
	switch {
	case count.Open > 0:
		attrs = []color.Attribute{color.FgHiWhite, color.Bold}
	case count.Total == 0:
		attrs = append(attrs, color.Faint)
	}
	if c.Today {
		attrs = append(attrs, color.Underline)
	}
	if c.Selected {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...)
}
