package options

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions holds the task ids a command acts on and whether to print ids.
type IDOptions struct {
	ShowID bool
	IDs    []int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}

// ParseIDs reads one or more task ids from args.
func (o *IDOptions) ParseIDs(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a task id")
	}
	o.IDs = o.IDs[:0]
	for _, a := range args {
		id, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", a)
		}
		o.IDs = append(o.IDs, id)
	}
	return nil
}
