// Package task holds the task record and the day it is filed under.
package task

import (
	"strings"
)

// Task is one to-do entry.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Day       Day    `json:"date"`
}

// New returns an open task with trimmed text.
func New(id int64, text string, day Day) Task {
	return Task{
		ID:   id,
		Text: strings.TrimSpace(text),
		Day:  day,
	}
}

// Valid reports whether t could have been created through the store: it
// needs an id, some text and an owning day.
func (t Task) Valid() bool {
	return t.ID != 0 && strings.TrimSpace(t.Text) != "" && !t.Day.IsZero()
}

// On reports whether t is filed under day.
func (t Task) On(day Day) bool {
	return t.Day.Equal(day)
}

// Mark is the checkbox glyph for t.
func (t Task) Mark() string {
	if t.Completed {
		return "✓"
	}
	return "•"
}

func (t Task) String() string {
	return t.Mark() + " " + t.Text
}
