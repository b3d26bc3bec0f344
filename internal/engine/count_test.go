package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

func newCountedShoe(t *testing.T, numDecks int) (*Shoe, *CountTracker) {
	t.Helper()
	shoe, err := NewShoe(numDecks)
	require.NoError(t, err)
	return shoe, NewCountTracker(shoe)
}

// observeAndRemove keeps the tracker aligned with the shoe the way the
// session facade does.
func observeAndRemove(t *testing.T, shoe *Shoe, ct *CountTracker, ranks ...card.Rank) {
	t.Helper()
	for _, r := range ranks {
		_ = shoe.RemoveCard(r)
		ct.Observe(r)
	}
}

func TestCountTracker_RunningCount(t *testing.T) {
	t.Parallel()

	shoe, ct := newCountedShoe(t, 1)

	// One card of each value class: 2,3,4,5,6 (+1 each), 7,8,9 (0),
	// 10 and A (-1 each) nets +3
	observeAndRemove(t, shoe, ct,
		card.Rank2, card.Rank3, card.Rank4, card.Rank5, card.Rank6,
		card.Rank7, card.Rank8, card.Rank9, card.Rank10, card.RankA)

	assert.Equal(t, 3, ct.RunningCount())
}

func TestCountTracker_TrueCount(t *testing.T) {
	t.Parallel()

	shoe, ct := newCountedShoe(t, 2)

	// Leave exactly one deck, then set the running count to +4:
	// true count = 4 / 1 deck
	for i := 0; i < 52; i++ {
		_ = shoe.RemoveCard(card.AllRanks[i%13])
	}
	ct.running = 4

	assert.InDelta(t, 4.0, ct.TrueCount(), 0.01)
}

func TestCountTracker_TrueCountRounding(t *testing.T) {
	t.Parallel()

	_, ct := newCountedShoe(t, 2)
	ct.running = 1

	// 2 decks remaining: 1/2 = 0.5 exactly, one decimal
	assert.InDelta(t, 0.5, ct.TrueCount(), 0.001)
}

func TestCountTracker_TrueCountDenominatorFloor(t *testing.T) {
	t.Parallel()

	shoe, ct := newCountedShoe(t, 1)

	// Drain the shoe down to two cards: remaining decks would be
	// 2/52, but the denominator is floored at half a deck
	for i := 0; i < 50; i++ {
		_ = shoe.RemoveCard(card.AllRanks[i%13])
	}
	ct.running = 5

	require.Less(t, shoe.RemainingDecks(), trueCountDeckFloor)
	assert.InDelta(t, 10.0, ct.TrueCount(), 0.01)
}

func TestCountTracker_ResetShoe(t *testing.T) {
	t.Parallel()

	shoe, ct := newCountedShoe(t, 1)
	observeAndRemove(t, shoe, ct, card.Rank2, card.Rank5)
	require.Equal(t, 2, ct.RunningCount())

	ct.ResetShoe()
	assert.Equal(t, 0, ct.RunningCount())
	assert.Equal(t, 0.0, ct.TrueCount())
}
