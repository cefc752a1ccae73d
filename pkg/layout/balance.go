// Package layout turns expanded card decks into a print-ready page plan:
// balancing front/back decks for double-sided printing, partitioning cards
// into fixed 4x7 page grids, and mirroring back pages so fronts and backs
// line up after the sheet is flipped along its long edge.
//
// All layout computation is pure and deterministic.
package layout

import "github.com/codeclub/cccards/pkg/cards"

// Pair holds the balanced front and back decks of a print run.
// A nil Back means single-sided output.
type Pair struct {
	Front cards.Deck
	Back  cards.Deck
}

// DoubleSided returns true if the pair has a back deck.
func (p Pair) DoubleSided() bool {
	return p.Back != nil
}

// Balance equalizes front and back deck lengths and appends wildcards so
// that every wildcard position on the front has a wildcard at the identical
// position on the back ("wild on both sides"). Front and back must be
// weighted-only decks; wildcards are placed here, not by the caller, so
// their positions can be coordinated across sides.
//
// Single-sided mode (back == nil): wildcards are appended to the front and
// no balancing takes place.
//
// Double-sided mode: the shorter deck is padded with blank filler cards up
// to the longer deck's length, then the wildcards are appended to both
// sides at the same offset. Real entries are never dropped.
func Balance(front, back cards.Deck, wildcards int) Pair {
	if back == nil {
		return Pair{Front: append(front, cards.Wildcards(wildcards)...)}
	}

	n := len(front)
	if len(back) > n {
		n = len(back)
	}

	front = append(front, cards.Blanks(n-len(front))...)
	back = append(back, cards.Blanks(n-len(back))...)

	return Pair{
		Front: append(front, cards.Wildcards(wildcards)...),
		Back:  append(back, cards.Wildcards(wildcards)...),
	}
}
