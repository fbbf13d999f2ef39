// Package todo keeps the ordered task collection and persists it after every
// change.
package todo

import (
	"io"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

// ChangeKind names the mutation that produced a Change.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Toggled
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Toggled:
		return "toggled"
	default:
		return "unknown"
	}
}

// Change is delivered to observers after a mutation has been persisted.
type Change struct {
	Kind ChangeKind
	Task task.Task
}

// DayCount summarizes the tasks filed under one day.
type DayCount struct {
	Total int
	Open  int
}

// Store is the in-memory task collection in insertion order. It is not safe
// for concurrent use; callers drive it from a single event loop.
type Store struct {
	tasks     []task.Task
	gateway   store.Gateway
	ids       idGenerator
	logger    *log.Logger
	observers []func(Change)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to seed task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.ids.now = now
		}
	}
}

// WithLogger sets the logger for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New loads the collection from gw.
func New(gw store.Gateway, opts ...Option) *Store {
	if gw == nil {
		gw = store.NewMemory(nil)
	}
	s := &Store{
		gateway: gw,
		ids:     idGenerator{now: time.Now},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = gw.Load()
	for _, t := range s.tasks {
		s.ids.observe(t.ID)
	}
	return s
}

// OnChange registers fn to run after every persisted mutation.
func (s *Store) OnChange(fn func(Change)) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// Add appends a new open task for day. Text that is empty after trimming is
// ignored and reported with ok == false.
func (s *Store) Add(text string, day task.Day) (t task.Task, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || day.IsZero() {
		return task.Task{}, false
	}
	t = task.New(s.ids.next(), text, day)
	s.tasks = append(s.tasks, t)
	s.commit(Change{Kind: Added, Task: t})
	return t, true
}

// Remove deletes the task with id. Unknown ids are ignored.
func (s *Store) Remove(id int64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	removed := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.commit(Change{Kind: Removed, Task: removed})
}

// Toggle flips the completion flag of the task with id. Unknown ids are
// ignored.
func (s *Store) Toggle(id int64) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.commit(Change{Kind: Toggled, Task: s.tasks[i]})
}

// ForDay yields the tasks filed under day in insertion order. The sequence
// reads the collection when it is ranged over, so it can be reused after
// further mutations.
func (s *Store) ForDay(day task.Day) iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for _, t := range s.tasks {
			if !t.On(day) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Get returns the task with id.
func (s *Store) Get(id int64) (task.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, false
	}
	return s.tasks[i], true
}

// All returns a copy of the collection.
func (s *Store) All() []task.Task {
	return slices.Clone(s.tasks)
}

// Len is the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Counts returns per-day totals for the given month, keyed by day of month.
func (s *Store) Counts(year int, month time.Month) map[int]DayCount {
	counts := make(map[int]DayCount)
	for _, t := range s.tasks {
		if t.Day.Year != year || t.Day.Month != month {
			continue
		}
		c := counts[t.Day.Day]
		c.Total++
		if !t.Completed {
			c.Open++
		}
		counts[t.Day.Day] = c
	}
	return counts
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool { return t.ID == id })
}

// commit saves the full snapshot and notifies observers. A failed save is
// logged; the in-memory state stays authoritative.
func (s *Store) commit(c Change) {
	if err := s.gateway.Save(s.tasks); err != nil {
		s.logger.Warn("todo: save failed", "change", c.Kind, "id", c.Task.ID, "err", err)
	}
	for _, fn := range s.observers {
		fn(c)
	}
}
