package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/tui/theme"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
	focusCalendar
	focusCount
)

func (f focusArea) String() string {
	switch f {
	case focusInput:
		return "input"
	case focusList:
		return "tasks"
	case focusCalendar:
		return "calendar"
	default:
		return ""
	}
}

const (
	minQuoteWidth = 24
	calendarWidth = 22
)

// Model renders the planner and forwards key presses to it. It holds no task
// state of its own beyond a snapshot refreshed on planner events.
type Model struct {
	planner *app.Planner
	theme   theme.Theme
	calOpts calendar.Options

	input  textinput.Model
	focus  focusArea
	cursor int
	tasks  []task.Task
	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the planner.
func New(p *app.Planner) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Prompt = "+ "
	ti.Focus()

	m := &Model{
		planner: p,
		theme:   theme.Default(),
		calOpts: calendar.DefaultOptions(),
		input:   ti,
		focus:   focusInput,
	}
	p.Subscribe(func(app.Event) { m.refresh() })
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(max(m.rightWidth()-6, 10))
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return tea.Quit
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusList:
		m.handleListKey(key)
	case focusCalendar:
		m.handleCalendarKey(key)
	}
	if key == "q" {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		if _, ok := m.planner.AddTask(m.input.Value()); ok {
			m.input.Reset()
			m.cursor = len(m.tasks) - 1
			m.status = ""
		}
		return nil
	case "esc":
		return m.setFocus(focusList)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleListKey(key string) {
	switch key {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.tasks) - 1
		m.clampCursor()
	case "space", " ", "x", "enter":
		if t, ok := m.current(); ok {
			m.planner.ToggleTask(t.ID)
		}
	case "d", "delete", "backspace":
		if t, ok := m.current(); ok {
			m.planner.DeleteTask(t.ID)
			m.status = fmt.Sprintf("deleted %q", t.Text)
		}
	}
}

func (m *Model) handleCalendarKey(key string) {
	selected := m.planner.Selected()
	switch key {
	case "h", "left":
		m.planner.SelectDate(selected.AddDays(-1))
	case "l", "right":
		m.planner.SelectDate(selected.AddDays(1))
	case "k", "up":
		m.planner.SelectDate(selected.AddDays(-7))
	case "j", "down":
		m.planner.SelectDate(selected.AddDays(7))
	case "[", "p", "pgup":
		m.planner.NavigateMonth(-1)
	case "]", "n", "pgdown":
		m.planner.NavigateMonth(1)
	case "t":
		m.planner.GoToday()
	case "enter":
		m.planner.SelectDay(m.targetDay())
	}
}

// targetDay keeps the selected day of month when the shown month differs
// from the selection, clamped to the shown month's length.
func (m *Model) targetDay() int {
	month := m.planner.Month()
	return min(m.planner.Selected().Day, calendar.DaysIn(month.Year, month.Month))
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) refresh() {
	m.tasks = m.planner.Tasks()
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) current() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) rightWidth() int {
	if m.termWidth == 0 {
		return 56
	}
	return max(m.termWidth-calendarWidth-8, minQuoteWidth)
}

// View implements tea.Model.
func (m *Model) View() string {
	left := m.frame(focusCalendar).Render(m.calendarView())
	right := m.frame(focusList).Width(m.rightWidth()).Render(m.tasksView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	sections := []string{m.quoteView(), body, m.footerView()}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) frame(area focusArea) lipgloss.Style {
	if m.focus == area || (area == focusList && m.focus == focusInput) {
		return m.theme.Panel.FocusedFrame
	}
	return m.theme.Panel.Frame
}

func (m *Model) quoteView() string {
	q := m.planner.Quote()
	width := max(m.termWidth-4, minQuoteWidth)
	if m.termWidth == 0 {
		width = 72
	}
	lines := []string{m.theme.Quote.Text.Render(wordwrap.String(q.Text, width))}
	if q.Author != "" {
		lines = append(lines, m.theme.Quote.Author.Render("- "+q.Author))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m *Model) calendarView() string {
	title := m.theme.Panel.Title.Render(m.planner.MonthLabel())
	grid := calendar.Render(m.planner.Grid(), m.planner.Marked(), m.calOpts)
	return lipgloss.JoinVertical(lipgloss.Left, title, grid)
}

func (m *Model) tasksView() string {
	selected := m.planner.Selected()
	title := m.theme.Panel.Title.Render(selected.Time(nil).Format("Monday, January 2, 2006"))

	var rows []string
	if len(m.tasks) == 0 {
		rows = append(rows, m.theme.Task.Empty.Render("nothing planned"))
	}
	for i, t := range m.tasks {
		prefix := "  "
		if m.focus == focusList && i == m.cursor {
			prefix = m.theme.Task.Cursor.Render("→ ")
		}
		style := m.theme.Task.Open
		box := "[ ]"
		if t.Completed {
			style = m.theme.Task.Done
			box = "[x]"
		}
		rows = append(rows, prefix+box+" "+style.Render(t.Text))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n"), "", m.input.View())
}

func (m *Model) footerView() string {
	var help string
	switch m.focus {
	case focusInput:
		help = "enter add · tab tasks · esc tasks · ctrl+c quit"
	case focusList:
		help = "j/k move · space toggle · d delete · tab calendar · q quit"
	case focusCalendar:
		help = "h/j/k/l day · [/] month · t today · tab input · q quit"
	}
	parts := []string{m.theme.Footer.Key.Render(m.focus.String()), m.theme.Footer.Help.Render(help)}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "  "))
}

// Run launches the Bubble Tea UI.
func Run(p *app.Planner) error {
	prog := tea.NewProgram(New(p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
