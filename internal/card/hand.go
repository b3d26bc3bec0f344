package card

import "strings"

// Hand is the ordered sequence of ranks dealt to one participant in
// the current round. Suits never matter to blackjack math.
type Hand []Rank

// Add appends a card to the hand.
func (h *Hand) Add(r Rank) {
	*h = append(*h, r)
}

// Clear empties the hand in place.
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Total returns the best hand total not exceeding 21 where possible,
// counting aces as 11 unless that busts. soft reports whether an ace
// is still counted as 11.
func (h Hand) Total() (total int, soft bool) {
	aces := 0
	for _, r := range h {
		total += r.Value()
		if r == RankA {
			aces++
		}
	}

	// Demote aces from 11 to 1 until the hand no longer busts
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}

// IsPair reports whether the hand is exactly two cards of equal value.
// K-Q counts as a pair of tens: split eligibility follows value, not
// the printed symbol.
func (h Hand) IsPair() bool {
	return len(h) == 2 && h[0].Value() == h[1].Value()
}

// PairValue returns the shared card value of a pair, or 0 if the hand
// is not a pair.
func (h Hand) PairValue() int {
	if !h.IsPair() {
		return 0
	}
	return h[0].Value()
}

func (h Hand) String() string {
	if len(h) == 0 {
		return "-"
	}
	names := make([]string, len(h))
	for i, r := range h {
		names[i] = r.String()
	}
	return strings.Join(names, " ")
}
