package commands

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	return cmd.Execute()
}

func loadSlot(t *testing.T, dir string) []task.Task {
	t.Helper()
	slot, err := store.Load(&store.FileConfig{Path: dir})
	if err != nil {
		t.Fatalf("load slot: %v", err)
	}
	return slot.Load()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestSubcommands(t *testing.T) {
	cmd := New()
	want := []string{"ui", "add", "list", "toggle", "rm", "cal", "quote", "info", "version", "completion"}
	for _, name := range want {
		c, _, err := cmd.Find([]string{name})
		if err != nil || c == cmd {
			t.Fatalf("missing subcommand %q", name)
		}
	}
	for _, alias := range []string{"done", "complete", "delete", "ls"} {
		if c, _, err := cmd.Find([]string{alias}); err != nil || c == cmd {
			t.Fatalf("missing alias %q", alias)
		}
	}
}

func TestAddToggleRemove(t *testing.T) {
	color.NoColor = true
	t.Setenv("DAYPLAN_CONFIG_PATH", "")
	dir := t.TempDir()

	if err := run(t, dir, "add", "--on=2024-03-15", "Buy", "milk"); err != nil {
		t.Fatalf("add: %v", err)
	}
	tasks := loadSlot(t, dir)
	if len(tasks) != 1 {
		t.Fatalf("want 1 task, got %d", len(tasks))
	}
	got := tasks[0]
	if got.Text != "Buy milk" || got.Completed {
		t.Fatalf("task = %+v", got)
	}
	if want := (task.Day{Year: 2024, Month: time.March, Day: 15}); got.Day != want {
		t.Fatalf("day = %v, want %v", got.Day, want)
	}

	// ids work across days, not only on today.
	if err := run(t, dir, "toggle", formatID(got.ID)); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if tasks := loadSlot(t, dir); !tasks[0].Completed {
		t.Fatalf("task not completed after toggle")
	}

	if err := run(t, dir, "rm", formatID(got.ID)); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if tasks := loadSlot(t, dir); len(tasks) != 0 {
		t.Fatalf("want no tasks after rm, got %d", len(tasks))
	}
}

func TestAddRejectsBlank(t *testing.T) {
	t.Setenv("DAYPLAN_CONFIG_PATH", "")
	dir := t.TempDir()
	if err := run(t, dir, "add", "   "); err == nil {
		t.Fatalf("expected error for blank task")
	}
	if tasks := loadSlot(t, dir); len(tasks) != 0 {
		t.Fatalf("blank add stored %d tasks", len(tasks))
	}
}

func TestBadOnDate(t *testing.T) {
	if err := run(t, t.TempDir(), "list", "--on=someday"); err == nil {
		t.Fatalf("expected error for bad --on")
	}
}

func TestEphemeralLeavesPathEmpty(t *testing.T) {
	color.NoColor = true
	t.Setenv("DAYPLAN_CONFIG_PATH", "")
	base := t.TempDir()
	dir := filepath.Join(base, "slot")

	if err := run(t, dir, "--ephemeral", "add", "x"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("ephemeral run created %s: %v", dir, err)
	}

	// Without the flag the same command persists.
	if err := run(t, dir, "add", "x"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if tasks := loadSlot(t, dir); len(tasks) != 1 {
		t.Fatalf("want 1 stored task, got %d", len(tasks))
	}
}
