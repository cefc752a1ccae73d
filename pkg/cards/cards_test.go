// Package cards tests for deck expansion.
package cards

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// -----------------------------------------------------------------------------
// Expand Tests
// -----------------------------------------------------------------------------

func TestExpand_AppliesWeights(t *testing.T) {
	entries := []Entry{
		{Label: "Fn1", Weight: 3},
		{Label: "Fn2", Weight: 1},
	}

	deck := Expand(entries, 0)

	want := Deck{
		{Label: "Fn1"},
		{Label: "Fn1"},
		{Label: "Fn1"},
		{Label: "Fn2"},
	}
	if diff := cmp.Diff(want, deck); diff != "" {
		t.Errorf("deck mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand_SizeIsSumOfWeightsPlusWildcards(t *testing.T) {
	entries := []Entry{
		{Label: "a", Weight: 2},
		{Label: "b", Weight: 5},
		{Label: "c", Weight: 1},
	}

	deck := Expand(entries, 4)

	if got, want := len(deck), 2+5+1+4; got != want {
		t.Errorf("expected deck of %d cards, got %d", want, got)
	}
}

func TestExpand_WildcardsAppendedLast(t *testing.T) {
	deck := Expand([]Entry{{Label: "x", Weight: 2}}, 3)

	for i := 0; i < 2; i++ {
		if deck[i].Wildcard {
			t.Errorf("card %d should not be a wildcard", i)
		}
	}
	for i := 2; i < 5; i++ {
		if !deck[i].Wildcard {
			t.Errorf("card %d should be a wildcard", i)
		}
		if deck[i].Label != WildcardLabel {
			t.Errorf("wildcard %d has label %q, want %q", i, deck[i].Label, WildcardLabel)
		}
	}
}

func TestExpand_Deterministic(t *testing.T) {
	entries := []Entry{
		{Label: "map", Weight: 3},
		{Label: "filter", Weight: 2},
		{Label: "reduce", Weight: 4},
	}

	first := Expand(entries, 5)
	second := Expand(entries, 5)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("expansion is not deterministic (-first +second):\n%s", diff)
	}
}

func TestExpand_Empty(t *testing.T) {
	deck := Expand(nil, 0)
	if deck == nil {
		t.Fatal("expected a non-nil deck for empty input")
	}
	if len(deck) != 0 {
		t.Errorf("expected zero cards, got %d", len(deck))
	}
}

func TestExpand_OnlyWildcards(t *testing.T) {
	deck := Expand(nil, 2)
	if len(deck) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(deck))
	}
	for i, card := range deck {
		if !card.Wildcard {
			t.Errorf("card %d should be a wildcard", i)
		}
	}
}

// -----------------------------------------------------------------------------
// Instance Helpers
// -----------------------------------------------------------------------------

func TestInstance_Blank(t *testing.T) {
	tests := []struct {
		name string
		inst Instance
		want bool
	}{
		{"zero value", Instance{}, true},
		{"labelled", Instance{Label: "Fn1"}, false},
		{"wildcard", Instance{Label: WildcardLabel, Wildcard: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.Blank(); got != tt.want {
				t.Errorf("Blank() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlanks(t *testing.T) {
	blanks := Blanks(3)
	if len(blanks) != 3 {
		t.Fatalf("expected 3 blanks, got %d", len(blanks))
	}
	for i, b := range blanks {
		if !b.Blank() {
			t.Errorf("instance %d is not blank", i)
		}
	}
}

func TestTotalWeight(t *testing.T) {
	entries := []Entry{{Label: "a", Weight: 2}, {Label: "b", Weight: 7}}
	if got := TotalWeight(entries); got != 9 {
		t.Errorf("TotalWeight = %d, want 9", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Errorf("TotalWeight(nil) = %d, want 0", got)
	}
}
