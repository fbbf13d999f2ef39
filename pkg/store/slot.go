package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/dayplan/pkg/task"
)

// Slot is a Gateway backed by one diskv key.
type Slot struct {
	d      *diskv.Diskv
	key    string
	logger *log.Logger
}

// Option configures a Slot.
type Option func(*Slot)

// WithLogger sets the logger used for silently handled failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Slot) {
		if l != nil {
			s.logger = l
		}
	}
}

// Load creates a Slot for the configured base path and key.
func Load(cfg Config, opts ...Option) (*Slot, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	key := cfg.Key()
	if key == "" {
		key = DefaultKey
	}

	s := &Slot{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		key:    key,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Slot) Load() []task.Task {
	if !s.d.Has(s.key) {
		return []task.Task{}
	}
	data, err := s.d.Read(s.key)
	if err != nil {
		s.logger.Warn("store: read slot", "key", s.key, "err", err)
		return []task.Task{}
	}
	return decode(data, s.logger)
}

func (s *Slot) Save(tasks []task.Task) error {
	data, err := encode(tasks)
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := s.d.Write(s.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", s.key, err)
	}
	s.logger.Debug("store: saved", "key", s.key, "tasks", len(tasks))
	return nil
}

// Clear erases the slot.
func (s *Slot) Clear() error {
	if !s.d.Has(s.key) {
		return nil
	}
	return s.d.Erase(s.key)
}

// The slot key is a plain file name directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
