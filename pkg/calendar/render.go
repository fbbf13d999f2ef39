package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Header is the weekday row, Sunday first.
const Header = "Su Mo Tu We Th Fr Sa"

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	PrevStyle     lipgloss.Style
	DayStyle      lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	prev := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	day := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	entry := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	return Options{
		HeaderStyle:   header,
		PrevStyle:     prev,
		DayStyle:      day,
		EntryStyle:    entry,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowHeader:    true,
	}
}

// Render draws cells seven to a row. Days of the current month listed in
// marked are drawn with EntryStyle.
func Render(cells []Cell, marked map[int]bool, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}

	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		row := make([]string, 0, end-start)
		for _, c := range cells[start:end] {
			row = append(row, renderCell(c, marked[c.Day] && !c.PrevMonth, opts))
		}
		lines = append(lines, strings.Join(row, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(c Cell, hasEntry bool, opts Options) string {
	text := fmt.Sprintf("%2d", c.Day)
	if c.PrevMonth {
		return opts.PrevStyle.Render(text)
	}

	style := opts.DayStyle
	if hasEntry {
		style = opts.EntryStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.Selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
