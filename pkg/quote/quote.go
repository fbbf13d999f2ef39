// Package quote picks a motivational quote.
package quote

import (
	"math/rand/v2"
)

// Quote is a line of text and who said it.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (q Quote) String() string {
	if q.Author == "" {
		return q.Text
	}
	return q.Text + " - " + q.Author
}

// Defaults is the built-in list.
var Defaults = []Quote{
	{Text: "Time is the most valuable asset you have. How you use it decides your future.", Author: "Brian Tracy"},
	{Text: "Never put off till tomorrow what you can do today.", Author: "Benjamin Franklin"},
	{Text: "Small progress made every day adds up to big change.", Author: "Robert Collier"},
	{Text: "The secret of success is simple: get a little better every day.", Author: "Robert Brown"},
	{Text: "Time is the most costly thing to spend.", Author: "Theophrastus"},
}

// Provider picks uniformly from a fixed list.
type Provider struct {
	quotes []Quote
	intn   func(n int) int
}

// New returns a Provider over quotes, or Defaults when quotes is empty. A nil
// source uses the global generator.
func New(quotes []Quote, src rand.Source) *Provider {
	if len(quotes) == 0 {
		quotes = Defaults
	}
	p := &Provider{quotes: append([]Quote(nil), quotes...), intn: rand.IntN}
	if src != nil {
		p.intn = rand.New(src).IntN
	}
	return p
}

// PickRandom returns one quote.
func (p *Provider) PickRandom() Quote {
	return p.quotes[p.intn(len(p.quotes))]
}

// Len is the size of the list.
func (p *Provider) Len() int {
	return len(p.quotes)
}
