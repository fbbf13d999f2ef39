package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/task"
)

const (
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command works on.
type OnOptions struct {
	OnString string

	// Now is the clock used for "today" and for year-less dates.
	Now func() time.Time
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28". Defaults to today.`)
}

func (o *OnOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// GetOn returns the requested day, today when none was given.
func (o *OnOptions) GetOn() (task.Day, error) {
	now := o.now()
	if o.OnString == "" {
		return task.Today(now), nil
	}
	if d, err := task.ParseDay(o.OnString); err == nil {
		return d, nil
	}
	// Let the year be the same.
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return task.Day{}, err
	}
	return task.Day{Year: now.Year(), Month: t.Month(), Day: t.Day()}, nil
}
