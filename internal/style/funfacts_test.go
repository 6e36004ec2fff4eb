// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"context"
	"strings"
	"testing"
)

func TestFunFactsEmptyCorpusSkipsBackend(t *testing.T) {
	gen := &fakeGenerator{reply: "should never be used"}

	facts, err := FunFacts(context.Background(), gen, "   \n ")
	if err != nil {
		t.Fatalf("FunFacts: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("expected no facts, got %v", facts)
	}
	if gen.calls != 0 {
		t.Errorf("backend called %d times for empty corpus", gen.calls)
	}
}

func TestFunFactsParsesLines(t *testing.T) {
	gen := &fakeGenerator{reply: "- You love semicolons\n• Ellipses everywhere...\n\n  Plain observation\t"}

	facts, err := FunFacts(context.Background(), gen, "corpus")
	if err != nil {
		t.Fatalf("FunFacts: %v", err)
	}
	want := []string{"You love semicolons", "Ellipses everywhere...", "Plain observation"}
	if len(facts) != len(want) {
		t.Fatalf("got %d facts %v, want %d", len(facts), facts, len(want))
	}
	for i := range want {
		if facts[i] != want[i] {
			t.Errorf("fact[%d] = %q, want %q", i, facts[i], want[i])
		}
	}
}

func TestParseFunFactsTruncatesLongLines(t *testing.T) {
	raw := "short one\n" + strings.Repeat("x", maxFactLength+80) + "\nanother short"
	facts := ParseFunFacts(raw)
	if len(facts) != 3 {
		t.Fatalf("got %d facts, want 3 (long lines kept): %v", len(facts), facts)
	}
	if len(facts[1]) != maxFactLength {
		t.Errorf("long fact length = %d, want truncation to %d", len(facts[1]), maxFactLength)
	}
	if facts[0] != "short one" || facts[2] != "another short" {
		t.Errorf("short facts altered: %v", facts)
	}
}

func TestParseFunFactsCap(t *testing.T) {
	raw := strings.TrimSpace(strings.Repeat("a fact\n", maxFunFacts+5))
	if got := len(ParseFunFacts(raw)); got != maxFunFacts {
		t.Errorf("got %d facts, want cap %d", got, maxFunFacts)
	}
}
