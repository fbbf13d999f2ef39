// Package quote provides the runner logic for printing a quote.
package quote

import (
	"context"

	"tableflip.dev/dayplan/pkg/printers"
	quotes "tableflip.dev/dayplan/pkg/quote"
)

// Quote prints one random quote.
type Quote struct {
	Provider *quotes.Provider
	Printer  *printers.PrettyPrint
}

func (n *Quote) Do(ctx context.Context) error {
	p := n.Provider
	if p == nil {
		p = quotes.New(nil, nil)
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Quote(p.PickRandom())
	return nil
}
