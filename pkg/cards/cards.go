// Package cards defines the card data model and deck expansion.
// A deck is built deterministically from weighted CSV entries so that
// repeated runs on identical input produce identical output.
package cards

// WildcardLabel is the face text printed on wildcard cards.
const WildcardLabel = "*"

// Entry is one parsed CSV row: a card label and how many copies of that
// card belong in the deck. Immutable once read.
type Entry struct {
	// Label is the text to appear on the card.
	Label string

	// Weight is the number of copies of this card in the deck. Always >= 1.
	Weight int
}

// Instance is a single physical card in a deck.
type Instance struct {
	// Label is the face text. Empty for blank filler cards.
	Label string

	// Wildcard marks the card as a wildcard face.
	Wildcard bool
}

// Deck is an ordered sequence of card instances.
type Deck []Instance

// Blank returns true if the instance is a blank filler card, used to pad
// the shorter side of a double-sided deck.
func (i Instance) Blank() bool {
	return !i.Wildcard && i.Label == ""
}

// Expand builds a deck from weighted entries: each entry is repeated
// Weight times in input order, then wildcards wildcard instances are
// appended. No shuffling takes place; expansion is order-preserving and
// deterministic.
//
// The returned deck is never nil, so an empty CSV still yields a valid
// (zero-card) deck.
func Expand(entries []Entry, wildcards int) Deck {
	total := wildcards
	for _, e := range entries {
		total += e.Weight
	}

	deck := make(Deck, 0, total)
	for _, e := range entries {
		for n := 0; n < e.Weight; n++ {
			deck = append(deck, Instance{Label: e.Label})
		}
	}
	return append(deck, Wildcards(wildcards)...)
}

// Wildcards returns n wildcard instances.
func Wildcards(n int) Deck {
	deck := make(Deck, 0, n)
	for i := 0; i < n; i++ {
		deck = append(deck, Instance{Label: WildcardLabel, Wildcard: true})
	}
	return deck
}

// Blanks returns n blank filler instances.
func Blanks(n int) Deck {
	return make(Deck, n)
}

// TotalWeight sums the weights of all entries.
func TotalWeight(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Weight
	}
	return total
}
