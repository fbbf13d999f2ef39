// Package app binds the task store, the calendar and the quote into the
// planner the views drive. Views call the gesture methods and re-render on
// Subscribe events; they never touch the store or calendar directly.
package app

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/quote"
	"tableflip.dev/dayplan/pkg/task"
	"tableflip.dev/dayplan/pkg/todo"
)

// EventKind names what a view has to redraw.
type EventKind int

const (
	TasksChanged EventKind = iota
	DaySelected
	MonthChanged
)

// Event is delivered to subscribers after every state change.
type Event struct {
	Kind     EventKind
	Change   todo.Change
	Selected task.Day
	Month    calendar.Month
}

// Planner owns the per-day task list and the calendar selection.
type Planner struct {
	tasks  *todo.Store
	cal    *calendar.Model
	quote  quote.Quote
	logger *log.Logger

	subscribers []func(Event)
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger for gesture tracing.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// New wires a planner. The quote is picked once, here.
func New(tasks *todo.Store, cal *calendar.Model, quotes *quote.Provider, opts ...Option) *Planner {
	if tasks == nil {
		tasks = todo.New(nil)
	}
	if cal == nil {
		cal = calendar.New()
	}
	if quotes == nil {
		quotes = quote.New(nil, nil)
	}
	p := &Planner{
		tasks:  tasks,
		cal:    cal,
		quote:  quotes.PickRandom(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	tasks.OnChange(func(c todo.Change) {
		p.publish(Event{Kind: TasksChanged, Change: c})
	})
	cal.OnChange(func(ev calendar.Event) {
		kind := DaySelected
		if ev.Kind == calendar.Navigated {
			kind = MonthChanged
		}
		p.publish(Event{Kind: kind})
	})
	return p
}

// Subscribe registers fn for every change.
func (p *Planner) Subscribe(fn func(Event)) {
	if fn != nil {
		p.subscribers = append(p.subscribers, fn)
	}
}

// AddTask files text under the selected day. Blank text is ignored.
func (p *Planner) AddTask(text string) (task.Task, bool) {
	t, ok := p.tasks.Add(text, p.cal.Selected())
	if ok {
		p.logger.Debug("add", "id", t.ID, "day", t.Day)
	}
	return t, ok
}

// DeleteTask removes a task. Unknown ids are ignored.
func (p *Planner) DeleteTask(id int64) {
	p.logger.Debug("delete", "id", id)
	p.tasks.Remove(id)
}

// ToggleTask flips a task's completion. Unknown ids are ignored.
func (p *Planner) ToggleTask(id int64) {
	p.logger.Debug("toggle", "id", id)
	p.tasks.Toggle(id)
}

// SelectDay selects a day of the month currently shown.
func (p *Planner) SelectDay(day int) {
	nav := p.cal.Navigation()
	p.cal.SelectDay(nav.Year, nav.Month, day)
}

// SelectDate selects any date and shows its month, for callers that jump
// directly (e.g. --on flags or day-by-day movement).
func (p *Planner) SelectDate(d task.Day) {
	p.ShowMonth(calendar.MonthOf(d))
	p.cal.SelectDay(d.Year, d.Month, d.Day)
}

// ShowMonth navigates the calendar to m; the selected day stays.
func (p *Planner) ShowMonth(m calendar.Month) {
	if nav := p.cal.Navigation(); nav != m {
		p.cal.Navigate(monthsBetween(nav, m))
	}
}

// NavigateMonth moves the calendar; the selected day stays.
func (p *Planner) NavigateMonth(delta int) {
	p.cal.Navigate(delta)
}

// GoToday selects today and shows its month.
func (p *Planner) GoToday() {
	p.cal.GoToday()
}

// Tasks lists the tasks of the selected day in insertion order.
func (p *Planner) Tasks() []task.Task {
	return slices.Collect(p.tasks.ForDay(p.cal.Selected()))
}

// TasksOn lists the tasks filed under d.
func (p *Planner) TasksOn(d task.Day) []task.Task {
	return slices.Collect(p.tasks.ForDay(d))
}

// Task looks up a task by id.
func (p *Planner) Task(id int64) (task.Task, bool) {
	return p.tasks.Get(id)
}

// AllTasks lists every task in insertion order.
func (p *Planner) AllTasks() []task.Task {
	return p.tasks.All()
}

// Grid is the calendar of the month shown.
func (p *Planner) Grid() []calendar.Cell {
	return p.cal.Cells()
}

// Marked reports which days of the month shown have tasks.
func (p *Planner) Marked() map[int]bool {
	nav := p.cal.Navigation()
	marked := make(map[int]bool)
	for day, c := range p.tasks.Counts(nav.Year, nav.Month) {
		marked[day] = c.Total > 0
	}
	return marked
}

// Counts returns per-day task counts for the month shown.
func (p *Planner) Counts() map[int]todo.DayCount {
	nav := p.cal.Navigation()
	return p.tasks.Counts(nav.Year, nav.Month)
}

// MonthLabel renders the month shown.
func (p *Planner) MonthLabel() string {
	return p.cal.Label()
}

// Month is the month shown.
func (p *Planner) Month() calendar.Month {
	return p.cal.Navigation()
}

// Selected is the day whose tasks are listed.
func (p *Planner) Selected() task.Day {
	return p.cal.Selected()
}

// Today is the wall-clock date.
func (p *Planner) Today() task.Day {
	return p.cal.Today()
}

// Quote is the quote picked at startup.
func (p *Planner) Quote() quote.Quote {
	return p.quote
}

func (p *Planner) publish(ev Event) {
	ev.Selected = p.cal.Selected()
	ev.Month = p.cal.Navigation()
	for _, fn := range p.subscribers {
		fn(ev)
	}
}

func monthsBetween(from, to calendar.Month) int {
	return (to.Year-from.Year)*12 + int(to.Month-from.Month)
}

