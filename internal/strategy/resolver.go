package strategy

import (
	"errors"
	"fmt"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/apperrors"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/engine"
)

const (
	// DefaultMaxResplits allows up to four hands from one starting pair.
	DefaultMaxResplits = 3

	// DefaultBustWarnThreshold is the bust probability above which a
	// hit/double recommendation carries a warning.
	DefaultBustWarnThreshold = 0.5

	// insuranceTrueCount is the Hi-Lo index for taking insurance.
	insuranceTrueCount = 3.0
)

// Input bundles everything the resolver needs for one decision.
type Input struct {
	Hand      card.Hand
	DealerUp  card.Rank
	HasDealer bool
	TrueCount float64

	// SplitCountSoFar suppresses further splits once the table's
	// re-split cap is reached.
	SplitCountSoFar int
	MaxResplits     int

	// IsFirstDecision is true only on the player's first two cards,
	// before any hit. Gates surrender.
	IsFirstDecision bool

	BustWarnThreshold float64
}

// Recommendation is the resolver's structured answer.
type Recommendation struct {
	Action      Action
	Explanation string

	// Deviation is true when the count overrode the base table.
	Deviation bool

	// Bust probability annotation for hit/double recommendations.
	// BustKnown is false when the shoe is too depleted to estimate.
	BustProbability float64
	BustKnown       bool
	BustWarning     bool

	// InsuranceAdvised is a purely advisory flag when the dealer
	// shows an ace in a rich count.
	InsuranceAdvised bool
}

// Resolve classifies the hand, looks up the base action, applies at
// most one count deviation and attaches the bust-risk annotation. It
// never mutates the shoe.
func Resolve(in Input, shoe *engine.Shoe) (*Recommendation, error) {
	if len(in.Hand) == 0 {
		return nil, apperrors.ErrInvalidHand
	}
	if !in.HasDealer {
		return nil, apperrors.ErrMissingDealerUpcard
	}

	total, soft := in.Hand.Total()
	if total > 21 {
		return nil, apperrors.ErrInvalidHand
	}

	maxResplits := in.MaxResplits
	if maxResplits <= 0 {
		maxResplits = DefaultMaxResplits
	}
	warnThreshold := in.BustWarnThreshold
	if warnThreshold <= 0 {
		warnThreshold = DefaultBustWarnThreshold
	}

	canDouble := len(in.Hand) == 2
	canSurrender := in.IsFirstDecision && len(in.Hand) == 2
	dealerValue := in.DealerUp.Value()

	key := classify(in.Hand, total, soft, in.SplitCountSoFar, maxResplits, dealerValue)

	action, ok := baseAction(key)
	if !ok {
		return nil, fmt.Errorf("no strategy entry for %s %d vs %d: %w",
			key.Class, key.Player, key.Dealer, apperrors.ErrInvalidHand)
	}
	// The table doubles where the rules no longer allow it; fall back
	// to hit, as the printed charts do
	if action == ActionDouble && !canDouble {
		action = ActionHit
	}

	rec := &Recommendation{Action: action}

	if dev, ok := findDeviation(key, in.TrueCount, canDouble, canSurrender); ok {
		rec.Action = dev.Action
		rec.Deviation = true
	}

	rec.Explanation = explain(rec, key, total, in.TrueCount)
	rec.InsuranceAdvised = in.DealerUp == card.RankA && in.TrueCount >= insuranceTrueCount

	if rec.Action == ActionHit || rec.Action == ActionDouble {
		prob, err := engine.BustProbability(total, soft, shoe)
		switch {
		case err == nil:
			rec.BustProbability = prob
			rec.BustKnown = true
			rec.BustWarning = prob > warnThreshold
		case errors.Is(err, apperrors.ErrInsufficientShoe):
			// Cannot estimate; leave the annotation off
		default:
			return nil, err
		}
	}

	return rec, nil
}

// classify picks the table key for the hand. Pairs stop being pairs
// once the re-split cap is reached and fall back to their hard or soft
// total.
func classify(hand card.Hand, total int, soft bool, splitsSoFar, maxResplits, dealerValue int) TableKey {
	if hand.IsPair() && splitsSoFar < maxResplits {
		return TableKey{Class: ClassPair, Player: hand.PairValue(), Dealer: dealerValue}
	}
	if soft {
		return TableKey{Class: ClassSoft, Player: total, Dealer: dealerValue}
	}
	return TableKey{Class: ClassHard, Player: total, Dealer: dealerValue}
}

func explain(rec *Recommendation, key TableKey, total int, trueCount float64) string {
	player := fmt.Sprintf("%s %d", key.Class, total)
	if key.Class == ClassPair {
		player = fmt.Sprintf("pair of %ds", key.Player)
	}

	dealer := fmt.Sprintf("%d", key.Dealer)
	if key.Dealer == 11 {
		dealer = "A"
	}

	if rec.Deviation {
		return fmt.Sprintf("%s with %s vs %s, deviating at true count %.1f", rec.Action, player, dealer, trueCount)
	}
	return fmt.Sprintf("%s with %s vs %s per basic strategy", rec.Action, player, dealer)
}
