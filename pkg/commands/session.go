package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/calendar"
	"tableflip.dev/dayplan/pkg/quote"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/todo"
)

// session is everything one command invocation needs.
type session struct {
	Config  *store.FileConfig
	Planner *app.Planner
	Logger  *log.Logger

	closeLog func() error
}

// openSession loads config and the slot and wires a planner. interactive
// keeps log output off the terminal unless a log file is configured. An
// ephemeral config keeps tasks in memory and never touches the slot.
func openSession(interactive bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg, interactive)
	if err != nil {
		return nil, err
	}

	var gw store.Gateway
	if cfg.Ephemeral {
		gw = store.NewMemory(nil)
	} else {
		slot, err := store.Load(cfg, store.WithLogger(logger))
		if err != nil {
			_ = closeLog()
			return nil, err
		}
		gw = slot
	}

	tasks := todo.New(gw, todo.WithLogger(logger))
	cal := calendar.New(calendar.WithLabelFormat(cfg.LabelFormat))
	planner := app.New(tasks, cal, quote.New(nil, nil), app.WithLogger(logger))

	logger.Debug("session opened", "path", cfg.BasePath(), "key", cfg.Key(), "tasks", tasks.Len())
	return &session{
		Config:   cfg,
		Planner:  planner,
		Logger:   logger,
		closeLog: closeLog,
	}, nil
}

func (s *session) Close() {
	if s.closeLog != nil {
		_ = s.closeLog()
	}
}

func newLogger(cfg *store.FileConfig, interactive bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	case interactive:
		w = io.Discard
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "dayplan",
		ReportTimestamp: cfg.LogFile != "",
	})
	return logger, closer, nil
}
