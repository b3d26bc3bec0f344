package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_Total(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		hand      Hand
		wantTotal int
		wantSoft  bool
	}{
		{
			name:      "hard total without aces",
			hand:      Hand{Rank10, Rank6},
			wantTotal: 16,
			wantSoft:  false,
		},
		{
			name:      "soft total with ace as 11",
			hand:      Hand{RankA, Rank6},
			wantTotal: 17,
			wantSoft:  true,
		},
		{
			name:      "ace demoted to avoid bust",
			hand:      Hand{RankA, Rank6, Rank9},
			wantTotal: 16,
			wantSoft:  false,
		},
		{
			name:      "two aces one demoted",
			hand:      Hand{RankA, RankA},
			wantTotal: 12,
			wantSoft:  true,
		},
		{
			name:      "two aces both demoted",
			hand:      Hand{RankA, RankA, Rank10},
			wantTotal: 12,
			wantSoft:  false,
		},
		{
			name:      "blackjack",
			hand:      Hand{RankA, RankK},
			wantTotal: 21,
			wantSoft:  true,
		},
		{
			name:      "busted hand",
			hand:      Hand{Rank10, Rank9, Rank5},
			wantTotal: 24,
			wantSoft:  false,
		},
		{
			name:      "empty hand",
			hand:      Hand{},
			wantTotal: 0,
			wantSoft:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total, soft := tt.hand.Total()
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantSoft, soft)
		})
	}
}

func TestHand_IsPair(t *testing.T) {
	t.Parallel()

	assert.True(t, Hand{Rank8, Rank8}.IsPair())
	assert.True(t, Hand{RankA, RankA}.IsPair())
	// Pair eligibility follows value, not the printed symbol
	assert.True(t, Hand{RankK, RankQ}.IsPair())
	assert.True(t, Hand{Rank10, RankJ}.IsPair())

	assert.False(t, Hand{Rank8, Rank9}.IsPair())
	assert.False(t, Hand{Rank8}.IsPair())
	assert.False(t, Hand{Rank8, Rank8, Rank8}.IsPair())
	assert.False(t, Hand{RankA, Rank10}.IsPair())
}

func TestHand_PairValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Hand{RankK, Rank10}.PairValue())
	assert.Equal(t, 11, Hand{RankA, RankA}.PairValue())
	assert.Equal(t, 8, Hand{Rank8, Rank8}.PairValue())
	assert.Equal(t, 0, Hand{Rank8, Rank9}.PairValue())
}

func TestHand_AddClear(t *testing.T) {
	t.Parallel()

	var h Hand
	h.Add(Rank5)
	h.Add(RankK)
	assert.Equal(t, "5 K", h.String())

	h.Clear()
	assert.Empty(t, h)
	assert.Equal(t, "-", h.String())
}
