// Package store persists the task collection to a single durable slot.
package store

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/task"
)

// Gateway loads and saves the whole task collection. It neither owns nor
// caches the tasks it is handed.
type Gateway interface {
	// Load returns the stored tasks. Missing or malformed data yields an
	// empty slice.
	Load() []task.Task
	// Save replaces the stored collection with tasks.
	Save(tasks []task.Task) error
}

func encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return json.Marshal(tasks)
}

// decode parses a slot value. Records that could not have been created by the
// store are dropped, as are repeated ids after their first occurrence.
func decode(data []byte, logger *log.Logger) []task.Task {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if len(data) == 0 {
		return []task.Task{}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("store: slot is not a task list, starting empty", "err", err)
		return []task.Task{}
	}
	seen := make(map[int64]struct{}, len(raw))
	tasks := make([]task.Task, 0, len(raw))
	for i, r := range raw {
		var t task.Task
		if err := json.Unmarshal(r, &t); err != nil {
			logger.Warn("store: skipping unreadable task", "index", i, "err", err)
			continue
		}
		if !t.Valid() {
			logger.Warn("store: skipping invalid task", "index", i, "id", t.ID)
			continue
		}
		if _, dup := seen[t.ID]; dup {
			logger.Warn("store: skipping duplicate task id", "id", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks
}
