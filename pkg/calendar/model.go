// Package calendar computes month grids and tracks which month is shown and
// which day is selected.
package calendar

import (
	"time"

	"tableflip.dev/dayplan/pkg/task"
)

// DefaultLabelFormat renders the navigation month as "March 2024".
const DefaultLabelFormat = "January 2006"

// Month is a year and month with no day.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month d falls in.
func MonthOf(d task.Day) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Add moves m by delta whole months, rolling over year boundaries.
func (m Month) Add(delta int) Month {
	t := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether d falls in m.
func (m Month) Contains(d task.Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

func (m Month) String() string {
	return m.Format(DefaultLabelFormat)
}

// Format renders m with a time layout.
func (m Month) Format(layout string) string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(layout)
}

// ParseMonth reads "2006-01", "2006-1" or "January 2006".
func ParseMonth(v string) (Month, bool) {
	for _, layout := range []string{"2006-01", "2006-1", DefaultLabelFormat} {
		if t, err := time.Parse(layout, v); err == nil {
			return Month{Year: t.Year(), Month: t.Month()}, true
		}
	}
	return Month{}, false
}

// Cell is one square of a month grid.
type Cell struct {
	Day       int
	PrevMonth bool
	Today     bool
	Selected  bool
}

// DaysIn returns the number of days in the month, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the weekday of the first of the month, Sunday being 0.
func Weekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// EventKind names what changed on the Model.
type EventKind int

const (
	Navigated EventKind = iota
	Selected
)

// Event is delivered to observers after the Model changes.
type Event struct {
	Kind     EventKind
	Month    Month
	Selected task.Day
}

// Model holds the navigation month and the selected day. The two move
// independently: navigating never changes the selection and selecting never
// changes the navigation month.
type Model struct {
	nav         Month
	selected    task.Day
	now         func() time.Time
	labelFormat string
	observers   []func(Event)
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLabelFormat sets the time layout used by Label.
func WithLabelFormat(layout string) Option {
	return func(m *Model) {
		if layout != "" {
			m.labelFormat = layout
		}
	}
}

// New returns a Model showing and selecting today.
func New(opts ...Option) *Model {
	m := &Model{
		now:         time.Now,
		labelFormat: DefaultLabelFormat,
	}
	for _, opt := range opts {
		opt(m)
	}
	today := m.Today()
	m.selected = today
	m.nav = MonthOf(today)
	return m
}

// OnChange registers fn to run after navigation or selection changes.
func (m *Model) OnChange(fn func(Event)) {
	if fn != nil {
		m.observers = append(m.observers, fn)
	}
}

// Today is the wall-clock date, read on every call.
func (m *Model) Today() task.Day {
	return task.Today(m.now())
}

// Selected is the day whose tasks are shown.
func (m *Model) Selected() task.Day {
	return m.selected
}

// Navigation is the month the grid displays.
func (m *Model) Navigation() Month {
	return m.nav
}

// Label renders the navigation month.
func (m *Model) Label() string {
	return m.nav.Format(m.labelFormat)
}

// Cells is the grid of the navigation month.
func (m *Model) Cells() []Cell {
	return m.Grid(m.nav.Year, m.nav.Month)
}

// Grid lays out a month: the trailing days of the previous month needed to
// reach the first weekday, followed by every day of the month. The last week
// is not padded.
func (m *Model) Grid(year int, month time.Month) []Cell {
	lead := int(Weekday(year, month))
	days := DaysIn(year, month)
	cells := make([]Cell, 0, lead+days)

	prevLast := DaysIn(year, month-1)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, Cell{Day: prevLast - i, PrevMonth: true})
	}

	today := m.Today()
	current := Month{Year: year, Month: month}
	for d := 1; d <= days; d++ {
		day := task.Day{Year: current.Year, Month: current.Month, Day: d}
		cells = append(cells, Cell{
			Day:      d,
			Today:    day == today,
			Selected: day == m.selected,
		})
	}
	return cells
}

// Navigate moves the displayed month by delta months.
func (m *Model) Navigate(delta int) {
	if delta == 0 {
		return
	}
	m.nav = m.nav.Add(delta)
	m.notify(Navigated)
}

// SelectDay selects a date. Dates that do not exist (February 30) are
// ignored.
func (m *Model) SelectDay(year int, month time.Month, day int) {
	if month < time.January || month > time.December || day < 1 || day > DaysIn(year, month) {
		return
	}
	m.selected = task.Day{Year: year, Month: month, Day: day}
	m.notify(Selected)
}

// GoToday selects today and shows its month.
func (m *Model) GoToday() {
	today := m.Today()
	m.selected = today
	m.nav = MonthOf(today)
	m.notify(Selected)
}

func (m *Model) notify(kind EventKind) {
	ev := Event{Kind: kind, Month: m.nav, Selected: m.selected}
	for _, fn := range m.observers {
		fn(ev)
	}
}
