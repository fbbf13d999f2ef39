package quote

import (
	"math/rand/v2"
	"testing"
)

func TestPickRandomCoversList(t *testing.T) {
	p := New(nil, rand.NewPCG(1, 2))
	seen := make(map[Quote]int)
	for i := 0; i < 5000; i++ {
		seen[p.PickRandom()]++
	}
	if len(seen) != len(Defaults) {
		t.Fatalf("expected every quote to be picked, saw %d of %d", len(seen), len(Defaults))
	}
	for q, n := range seen {
		// 1000 expected per quote; anything far off means the pick is not uniform.
		if n < 800 || n > 1200 {
			t.Fatalf("quote %q picked %d times", q.Author, n)
		}
	}
}

func TestPickRandomIsDeterministicForSeed(t *testing.T) {
	a := New(nil, rand.NewPCG(7, 7))
	b := New(nil, rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		if a.PickRandom() != b.PickRandom() {
			t.Fatalf("same seed diverged at pick %d", i)
		}
	}
}

func TestCustomList(t *testing.T) {
	only := Quote{Text: "Ship it.", Author: "Someone"}
	p := New([]Quote{only}, nil)
	if p.Len() != 1 || p.PickRandom() != only {
		t.Fatalf("expected the single custom quote")
	}
	if only.String() != "Ship it. - Someone" {
		t.Fatalf("unexpected string %q", only.String())
	}
}
