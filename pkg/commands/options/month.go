package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/calendar"
)

// MonthOptions picks the month a calendar command shows.
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month="2024-02" or --month="February 2024".`)
}

// GetMonth returns the requested month; ok is false when none was given.
func (o *MonthOptions) GetMonth() (m calendar.Month, ok bool, err error) {
	if o.MonthString == "" {
		return calendar.Month{}, false, nil
	}
	m, ok = calendar.ParseMonth(o.MonthString)
	if !ok {
		return calendar.Month{}, false, fmt.Errorf("unrecognized month %q", o.MonthString)
	}
	return m, true, nil
}
