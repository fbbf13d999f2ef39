package store

import (
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/task"
)

// Memory is an in-process Gateway. It stores the serialized form so a Load
// after Save behaves like a reload.
type Memory struct {
	data   []byte
	saves  int
	logger *log.Logger
}

// NewMemory returns an empty Memory gateway, optionally seeded with a raw
// slot value.
func NewMemory(raw []byte) *Memory {
	return &Memory{data: raw, logger: log.New(io.Discard)}
}

func (m *Memory) Load() []task.Task {
	return decode(m.data, m.logger)
}

func (m *Memory) Save(tasks []task.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

// Raw returns the last saved slot value.
func (m *Memory) Raw() []byte {
	return m.data
}

// Saves counts Save calls.
func (m *Memory) Saves() int {
	return m.saves
}
