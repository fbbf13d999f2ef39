package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dayplan/pkg/quote"
	"tableflip.dev/dayplan/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
	Width  int
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = " "
	if pp.Width > 0 {
		tbl.MaxColWidth = uint(pp.Width)
		tbl.Wrap = true
	}
	for _, t := range tasks {
		text := t.Text
		if t.Completed {
			text = done.Sprint(text)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(strconv.FormatInt(t.ID, 10)), t.Mark(), text)
		} else {
			tbl.AddRow(t.Mark(), text)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) Quote(q quote.Quote) {
	width := pp.Width
	if width <= 0 {
		width = 60
	}
	i := color.New(color.Italic)
	f := color.New(color.Faint)
	_, _ = i.Fprintln(pp.out(), wordwrap.String(q.Text, width))
	if q.Author != "" {
		_, _ = f.Fprintf(pp.out(), "%s- %s\n", strings.Repeat(" ", 2), q.Author)
	}
}

// Missing reports an id that matched nothing.
func (pp *PrettyPrint) Missing(id int64) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), "no task %d\n", id)
}
