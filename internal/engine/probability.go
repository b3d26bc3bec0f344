package engine

import (
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/apperrors"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

// BustProbability returns the exact probability that drawing one more
// card from the shoe busts a hand with the given total.
//
// A soft hand can never bust on the immediate next card: the ace still
// counted as 11 absorbs any draw, so the probability is 0. A total
// over 21 (or below a two-card minimum) is a caller error, not a valid
// query. An empty shoe yields apperrors.ErrInsufficientShoe; callers
// must treat that as "cannot estimate", not as 0% risk.
func BustProbability(currentTotal int, isSoft bool, shoe *Shoe) (float64, error) {
	if currentTotal > 21 || currentTotal < 2 {
		return 0, apperrors.ErrInvalidHand
	}

	total := shoe.RemainingTotal()
	if total == 0 {
		return 0, apperrors.ErrInsufficientShoe
	}

	if isSoft {
		return 0, nil
	}

	bustCards := 0
	for _, r := range card.AllRanks {
		// An ace drawn into a hard hand counts as 1
		value := r.Value()
		if r == card.RankA {
			value = 1
		}
		if currentTotal+value > 21 {
			bustCards += shoe.RemainingCount(r)
		}
	}

	return float64(bustCards) / float64(total), nil
}

// RankDrawProbability returns the chance that the next card drawn from
// the shoe has the given rank.
func RankDrawProbability(r card.Rank, shoe *Shoe) (float64, error) {
	total := shoe.RemainingTotal()
	if total == 0 {
		return 0, apperrors.ErrInsufficientShoe
	}
	return float64(shoe.RemainingCount(r)) / float64(total), nil
}

// EdgeEstimate converts a true count into a rough player-edge hint
// (the common half-percent-per-point heuristic, off a half-percent
// house edge). Purely advisory: it never feeds back into the
// table-driven recommendation.
func EdgeEstimate(trueCount float64) float64 {
	return -0.005 + 0.005*trueCount
}
