package teaui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/quote"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/todo"
)

func newTestModel(t *testing.T) (*Model, *app.Planner) {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, time.March, 15, 8, 0, 0, 0, time.Local) }
	p := app.New(
		todo.New(store.NewMemory(nil), todo.WithClock(clock)),
		calendar.New(calendar.WithClock(clock)),
		quote.New([]quote.Quote{{Text: "Keep going.", Author: "Tester"}}, rand.NewPCG(1, 1)),
	)
	m := New(p)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, p
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "tab":
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		m.Update(msg)
	}
}

func addTask(m *Model, text string) {
	m.input.SetValue(text)
	press(m, "enter")
}

func TestEnterAddsToSelectedDay(t *testing.T) {
	m, p := newTestModel(t)
	addTask(m, "Buy milk")

	got := p.Tasks()
	if len(got) != 1 || got[0].Text != "Buy milk" {
		t.Fatalf("tasks = %+v", got)
	}
	if got[0].Day != (task.Day{Year: 2024, Month: time.March, Day: 15}) {
		t.Fatalf("filed under %v", got[0].Day)
	}
	if m.input.Value() != "" {
		t.Fatalf("input not cleared: %q", m.input.Value())
	}
}

func TestEnterKeepsBlankInput(t *testing.T) {
	m, p := newTestModel(t)
	addTask(m, "   ")
	if len(p.AllTasks()) != 0 {
		t.Fatalf("blank input added a task")
	}
	if m.input.Value() != "   " {
		t.Fatalf("blank input should be left for correction, got %q", m.input.Value())
	}
}

func TestListToggleAndDelete(t *testing.T) {
	m, p := newTestModel(t)
	addTask(m, "first")
	addTask(m, "second")

	press(m, "tab")
	if m.focus != focusList {
		t.Fatalf("focus = %v", m.focus)
	}
	press(m, "k", "x")
	if got := p.Tasks(); !got[0].Completed || got[1].Completed {
		t.Fatalf("expected only the first task completed: %+v", got)
	}

	press(m, "j", "d")
	got := p.Tasks()
	if len(got) != 1 || got[0].Text != "first" {
		t.Fatalf("after delete: %+v", got)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor not clamped: %d", m.cursor)
	}

	press(m, "d", "d")
	if len(p.Tasks()) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestCalendarKeys(t *testing.T) {
	m, p := newTestModel(t)
	press(m, "tab", "tab")
	if m.focus != focusCalendar {
		t.Fatalf("focus = %v", m.focus)
	}

	press(m, "l", "j")
	if want := (task.Day{Year: 2024, Month: time.March, Day: 23}); p.Selected() != want {
		t.Fatalf("selected %v, want %v", p.Selected(), want)
	}

	press(m, "]")
	if p.MonthLabel() != "April 2024" {
		t.Fatalf("label %q", p.MonthLabel())
	}
	if p.Selected().Month != time.March {
		t.Fatalf("month navigation changed the selection to %v", p.Selected())
	}

	press(m, "enter")
	if want := (task.Day{Year: 2024, Month: time.April, Day: 23}); p.Selected() != want {
		t.Fatalf("enter selected %v, want %v", p.Selected(), want)
	}

	press(m, "t")
	if p.Selected() != p.Today() || p.MonthLabel() != "March 2024" {
		t.Fatalf("today key left %v / %s", p.Selected(), p.MonthLabel())
	}
}

func TestSelectingDayFiltersList(t *testing.T) {
	m, _ := newTestModel(t)
	addTask(m, "on the 15th")

	press(m, "tab", "tab", "l")
	if len(m.tasks) != 0 {
		t.Fatalf("16th shows %+v", m.tasks)
	}
	press(m, "h")
	if len(m.tasks) != 1 {
		t.Fatalf("15th shows %+v", m.tasks)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := newTestModel(t)

	// q is text while typing.
	press(m, "q")
	if m.input.Value() != "q" {
		t.Fatalf("expected q in the input, got %q", m.input.Value())
	}

	press(m, "tab")
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewRendersPanels(t *testing.T) {
	m, _ := newTestModel(t)
	addTask(m, "Buy milk")

	view := stripANSI(m.View())
	for _, want := range []string{
		"Keep going.",
		"- Tester",
		"March 2024",
		calendar.Header,
		"Friday, March 15, 2024",
		"[ ] Buy milk",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewEmptyDay(t *testing.T) {
	m, _ := newTestModel(t)
	if view := stripANSI(m.View()); !strings.Contains(view, "nothing planned") {
		t.Fatalf("expected empty marker:\n%s", view)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
