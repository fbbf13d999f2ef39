package todo

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

var (
	march15 = task.Day{Year: 2024, Month: time.March, Day: 15}
	march16 = task.Day{Year: 2024, Month: time.March, Day: 16}
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	gw := store.NewMemory(nil)
	s := New(gw, WithClock(fixedClock(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))))
	return s, gw
}

func TestAddThenForDay(t *testing.T) {
	tests := []string{"Buy milk", "  padded  ", "한국어 할일", "x"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			s, _ := newTestStore(t)
			added, ok := s.Add(text, march15)
			if !ok {
				t.Fatalf("expected %q to be accepted", text)
			}
			got := slices.Collect(s.ForDay(march15))
			if len(got) != 1 {
				t.Fatalf("expected exactly one task, got %+v", got)
			}
			if got[0] != added {
				t.Fatalf("ForDay returned %+v, want %+v", got[0], added)
			}
			if got[0].Completed {
				t.Fatalf("new task should be open")
			}
			if other := slices.Collect(s.ForDay(march16)); len(other) != 0 {
				t.Fatalf("task leaked into another day: %+v", other)
			}
		})
	}
}

func TestAddRejectsBlankText(t *testing.T) {
	s, gw := newTestStore(t)
	for _, text := range []string{"", "   ", "\t\n"} {
		if _, ok := s.Add(text, march15); ok {
			t.Fatalf("expected %q to be rejected", text)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d tasks", s.Len())
	}
	if gw.Saves() != 0 {
		t.Fatalf("rejected adds must not persist, got %d saves", gw.Saves())
	}
}

func TestIDsAreUniqueWithinOneMillisecond(t *testing.T) {
	s, _ := newTestStore(t)
	seen := make(map[int64]struct{})
	for i := 0; i < 1000; i++ {
		tk, ok := s.Add("task", march15)
		if !ok {
			t.Fatalf("add %d rejected", i)
		}
		if _, dup := seen[tk.ID]; dup {
			t.Fatalf("duplicate id %d at add %d", tk.ID, i)
		}
		seen[tk.ID] = struct{}{}
	}
}

func TestIDsContinueAfterLoadedData(t *testing.T) {
	gw := store.NewMemory([]byte(`[{"id":99999999999999,"text":"future","completed":false,"date":"2024-03-15"}]`))
	s := New(gw, WithClock(fixedClock(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))))
	tk, _ := s.Add("next", march15)
	if tk.ID != 99999999999999+1 {
		t.Fatalf("expected id after the largest loaded id, got %d", tk.ID)
	}
}

func TestRemove(t *testing.T) {
	s, gw := newTestStore(t)
	a, _ := s.Add("a", march15)
	b, _ := s.Add("b", march16)
	c, _ := s.Add("c", march15)

	s.Remove(a.ID)
	for _, day := range []task.Day{march15, march16} {
		for tk := range s.ForDay(day) {
			if tk.ID == a.ID {
				t.Fatalf("removed task still visible on %v", day)
			}
		}
	}
	got := slices.Collect(s.ForDay(march15))
	if len(got) != 1 || got[0].ID != c.ID {
		t.Fatalf("unexpected tasks after remove: %+v", got)
	}
	if _, ok := s.Get(b.ID); !ok {
		t.Fatalf("unrelated task removed")
	}

	saves := gw.Saves()
	s.Remove(a.ID)
	if gw.Saves() != saves {
		t.Fatalf("removing an unknown id must not persist")
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	tk, _ := s.Add("a", march15)

	s.Toggle(tk.ID)
	got, _ := s.Get(tk.ID)
	if !got.Completed {
		t.Fatalf("expected completed after one toggle")
	}
	s.Toggle(tk.ID)
	got, _ = s.Get(tk.ID)
	if got.Completed {
		t.Fatalf("expected open after two toggles")
	}

	s.Toggle(12345)
	if s.Len() != 1 {
		t.Fatalf("toggling an unknown id changed the store")
	}
}

func TestForDayKeepsInsertionOrderAndRestarts(t *testing.T) {
	s, _ := newTestStore(t)
	s.Add("first", march15)
	s.Add("other day", march16)
	s.Add("second", march15)

	seq := s.ForDay(march15)
	texts := func() []string {
		var out []string
		for tk := range seq {
			out = append(out, tk.Text)
		}
		return out
	}
	if got := texts(); !slices.Equal(got, []string{"first", "second"}) {
		t.Fatalf("unexpected order %v", got)
	}
	s.Add("third", march15)
	if got := texts(); !slices.Equal(got, []string{"first", "second", "third"}) {
		t.Fatalf("view did not restart over current state: %v", got)
	}
}

func TestPersistsEveryMutation(t *testing.T) {
	s, gw := newTestStore(t)
	tk, _ := s.Add("a", march15)
	s.Toggle(tk.ID)
	s.Remove(tk.ID)
	if gw.Saves() != 3 {
		t.Fatalf("expected 3 saves, got %d", gw.Saves())
	}

	s.Add("kept", march16)
	reloaded := New(gw)
	got := reloaded.All()
	if len(got) != 1 || got[0].Text != "kept" || got[0].Day != march16 {
		t.Fatalf("reload mismatch: %+v", got)
	}
}

type failingGateway struct {
	store.Memory
}

func (f *failingGateway) Save([]task.Task) error {
	return errors.New("disk full")
}

func TestSaveFailureIsSilent(t *testing.T) {
	s := New(&failingGateway{})
	var changes []Change
	s.OnChange(func(c Change) { changes = append(changes, c) })

	tk, ok := s.Add("a", march15)
	if !ok {
		t.Fatalf("add should succeed in memory even when saving fails")
	}
	s.Toggle(tk.ID)
	if got, _ := s.Get(tk.ID); !got.Completed {
		t.Fatalf("toggle lost after failed save")
	}
	if len(changes) != 2 {
		t.Fatalf("observers should still run, got %d changes", len(changes))
	}
}

func TestObserversSeeChanges(t *testing.T) {
	s, _ := newTestStore(t)
	var kinds []ChangeKind
	s.OnChange(func(c Change) { kinds = append(kinds, c.Kind) })

	tk, _ := s.Add("a", march15)
	s.Add("   ", march15)
	s.Toggle(tk.ID)
	s.Remove(tk.ID)
	s.Remove(tk.ID)

	want := []ChangeKind{Added, Toggled, Removed}
	if !slices.Equal(kinds, want) {
		t.Fatalf("got changes %v, want %v", kinds, want)
	}
}

func TestCounts(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("a", march15)
	s.Add("b", march15)
	s.Add("c", march16)
	s.Add("d", task.Day{Year: 2024, Month: time.April, Day: 15})
	s.Toggle(a.ID)

	counts := s.Counts(2024, time.March)
	if counts[15] != (DayCount{Total: 2, Open: 1}) {
		t.Fatalf("march 15 = %+v", counts[15])
	}
	if counts[16] != (DayCount{Total: 1, Open: 1}) {
		t.Fatalf("march 16 = %+v", counts[16])
	}
	if len(counts) != 2 {
		t.Fatalf("expected two days with tasks, got %v", counts)
	}
}

func TestBuyMilkScenario(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add("Buy milk", march15)
	got := slices.Collect(s.ForDay(march15))
	if len(got) != 1 || got[0].Text != "Buy milk" || got[0].Completed {
		t.Fatalf("after add: %+v", got)
	}
	id := got[0].ID

	s.Toggle(id)
	got = slices.Collect(s.ForDay(march15))
	if len(got) != 1 || !got[0].Completed {
		t.Fatalf("after toggle: %+v", got)
	}

	s.Remove(id)
	if got = slices.Collect(s.ForDay(march15)); len(got) != 0 {
		t.Fatalf("after remove: %+v", got)
	}
}

func TestLegacyDatesLandOnLocalDay(t *testing.T) {
	prev := time.Local
	time.Local = time.FixedZone("KST", 9*60*60)
	t.Cleanup(func() { time.Local = prev })

	// The browser widget stores toISOString() of local midnight, which east
	// of UTC falls on the previous UTC date.
	gw := store.NewMemory([]byte(`[{"id":1710428400000,"text":"Buy milk","completed":false,"date":"2024-03-14T15:00:00.000Z"}]`))
	s := New(gw)
	got := slices.Collect(s.ForDay(march15))
	if len(got) != 1 || got[0].Text != "Buy milk" {
		t.Fatalf("ForDay(%v) = %+v", march15, got)
	}

	s.Add("Call mom", march15)
	if raw := string(gw.Raw()); strings.Count(raw, `"date":"2024-03-14T15:00:00.000Z"`) != 2 {
		t.Fatalf("saved dates not in browser form: %s", raw)
	}
}
