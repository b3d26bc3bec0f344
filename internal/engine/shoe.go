// Package engine implements the advisor's counting and probability
// core: the shoe composition model, the Hi-Lo tracker and the
// one-card-draw probability calculations.
package engine

import (
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/apperrors"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

const (
	// MinDecks and MaxDecks bound the shoe size a casino actually uses.
	MinDecks = 1
	MaxDecks = 8

	cardsPerDeck  = 52
	copiesPerRank = 4
)

// Shoe tracks the remaining count of every rank symbol across N decks.
// J, Q and K are tracked as separate symbols, so the ten-value group
// holds 16 cards per deck in aggregate.
type Shoe struct {
	numDecks  int
	remaining map[card.Rank]int
}

// NewShoe creates a shoe with numDecks full decks. The deck count is
// the only hard-validated input in the engine.
func NewShoe(numDecks int) (*Shoe, error) {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return nil, apperrors.ErrBadDeckCount
	}
	s := &Shoe{remaining: make(map[card.Rank]int, len(card.AllRanks))}
	s.mustReset(numDecks)
	return s, nil
}

// Reset reinitializes the shoe to numDecks full decks.
func (s *Shoe) Reset(numDecks int) error {
	if numDecks < MinDecks || numDecks > MaxDecks {
		return apperrors.ErrBadDeckCount
	}
	s.mustReset(numDecks)
	return nil
}

func (s *Shoe) mustReset(numDecks int) {
	s.numDecks = numDecks
	for _, r := range card.AllRanks {
		s.remaining[r] = copiesPerRank * numDecks
	}
}

// RemoveCard marks one card of the given rank as seen. Removing a rank
// whose count is already zero clamps at zero and reports
// apperrors.ErrShoeExhausted: the user may have mis-entered a card and
// the engine must stay usable.
func (s *Shoe) RemoveCard(r card.Rank) error {
	if s.remaining[r] == 0 {
		return apperrors.ErrShoeExhausted
	}
	s.remaining[r]--
	return nil
}

// RemainingCount returns how many cards of the rank are left.
func (s *Shoe) RemainingCount(r card.Rank) int {
	return s.remaining[r]
}

// RemainingTotal returns how many cards are left across all ranks.
func (s *Shoe) RemainingTotal() int {
	total := 0
	for _, count := range s.remaining {
		total += count
	}
	return total
}

// RemainingDecks estimates the number of undealt decks.
func (s *Shoe) RemainingDecks() float64 {
	return float64(s.RemainingTotal()) / cardsPerDeck
}

// NumDecks returns the configured deck count.
func (s *Shoe) NumDecks() int {
	return s.numDecks
}
