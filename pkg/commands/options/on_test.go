package options

import (
	"testing"
	"time"

	"tableflip.dev/dayplan/pkg/task"
)

func TestGetOn(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local) }
	tests := []struct {
		in   string
		want task.Day
	}{
		{in: "", want: task.Day{Year: 2024, Month: time.March, Day: 15}},
		{in: "2020-2-28", want: task.Day{Year: 2020, Month: time.February, Day: 28}},
		{in: "2020-02-29", want: task.Day{Year: 2020, Month: time.February, Day: 29}},
		{in: "12/24", want: task.Day{Year: 2024, Month: time.December, Day: 24}},
	}
	for _, tt := range tests {
		o := &OnOptions{OnString: tt.in, Now: now}
		got, err := o.GetOn()
		if err != nil {
			t.Fatalf("GetOn(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("GetOn(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	o := &OnOptions{OnString: "next week", Now: now}
	if _, err := o.GetOn(); err == nil {
		t.Fatalf("expected error for unparsable date")
	}
}

func TestParseIDs(t *testing.T) {
	o := &IDOptions{}
	if err := o.ParseIDs([]string{"1710460800000", " 42 "}); err != nil {
		t.Fatalf("ParseIDs: %v", err)
	}
	if len(o.IDs) != 2 || o.IDs[0] != 1710460800000 || o.IDs[1] != 42 {
		t.Fatalf("ids = %v", o.IDs)
	}
	if err := o.ParseIDs(nil); err == nil {
		t.Fatalf("expected error without ids")
	}
	if err := o.ParseIDs([]string{"abc"}); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
}
