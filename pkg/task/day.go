package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOLoose = "2006-1-2"

	// layoutUTCMillis matches Date.prototype.toISOString.
	layoutUTCMillis = "2006-01-02T15:04:05.000Z07:00"
)

// Day is a calendar date with no time-of-day component. It is the bucket a
// task is filed under.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay builds a Day, normalizing out-of-range values the way time.Date does
// (e.g. March 0 becomes the last day of February).
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the local calendar date of now.
func Today(now time.Time) Day {
	return DayOf(now.Local())
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Equal reports whether both days name the same date.
func (d Day) Equal(o Day) bool {
	return d == o
}

// Before reports whether d is earlier than o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// AddDays moves d by n days, crossing month and year boundaries.
func (d Day) AddDays(n int) Day {
	return NewDay(d.Year, d.Month, d.Day+n)
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week d falls on.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time(time.UTC).Format(layoutISO)
}

// ParseDay reads a date from either a bare date (2006-01-02, 2006-1-2) or a
// full RFC 3339 date-time. A date-time names an instant, so its day is the
// local calendar date of that instant.
func ParseDay(v string) (Day, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Day{}, fmt.Errorf("task: empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return DayOf(t.In(time.Local)), nil
	}
	for _, layout := range []string{layoutISO, layoutISOLoose} {
		if t, err := time.Parse(layout, v); err == nil {
			return DayOf(t), nil
		}
	}
	return Day{}, fmt.Errorf("task: unrecognized date %q", v)
}

// MarshalJSON writes local midnight of d as a UTC date-time with
// millisecond precision, the form the browser widget stores.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time(time.Local).UTC().Format(layoutUTCMillis))
}

// UnmarshalJSON accepts any form ParseDay does.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
