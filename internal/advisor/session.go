// Package advisor exposes the engine to the shell as one session
// object: every card observation, reset and recommendation request
// goes through here, keeping the shoe and the count in lockstep.
package advisor

import (
	"sync"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/engine"
	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/strategy"
)

// Zone 定义卡牌去向
type Zone int

const (
	ZonePlayer Zone = iota
	ZoneDealer
	ZoneWasted
)

func (z Zone) String() string {
	switch z {
	case ZonePlayer:
		return "player"
	case ZoneDealer:
		return "dealer"
	case ZoneWasted:
		return "wasted"
	}
	return "?"
}

// Options carries the table rules the resolver needs.
type Options struct {
	MaxResplits       int
	BustWarnThreshold float64
}

// CountSnapshot is the read-only view returned by Counts.
type CountSnapshot struct {
	RunningCount   int
	TrueCount      float64
	RemainingTotal int
	RemainingDecks float64
}

// Session owns one shoe's worth of advisor state. There is no global
// instance: independent sessions never share cards or counts. All
// methods take the session lock, so a shell may call in from more than
// one goroutine.
type Session struct {
	mu sync.Mutex

	opts  Options
	shoe  *engine.Shoe
	count *engine.CountTracker

	player card.Hand
	dealer card.Hand
	wasted int
}

// NewSession creates a session over a fresh shoe of numDecks decks.
func NewSession(numDecks int, opts Options) (*Session, error) {
	shoe, err := engine.NewShoe(numDecks)
	if err != nil {
		return nil, err
	}

	if opts.MaxResplits <= 0 {
		opts.MaxResplits = strategy.DefaultMaxResplits
	}
	if opts.BustWarnThreshold <= 0 {
		opts.BustWarnThreshold = strategy.DefaultBustWarnThreshold
	}

	return &Session{
		opts:  opts,
		shoe:  shoe,
		count: engine.NewCountTracker(shoe),
	}, nil
}

// RegisterCard records one seen card. Every zone depletes the shoe and
// moves the count; the zone only decides which hand the card joins.
// The first dealer card becomes the up-card. The returned error is the
// non-fatal exhaustion warning when the rank was already depleted.
func (s *Session) RegisterCard(r card.Rank, zone Zone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	warn := s.shoe.RemoveCard(r)
	s.count.Observe(r)

	switch zone {
	case ZonePlayer:
		s.player.Add(r)
	case ZoneDealer:
		s.dealer.Add(r)
	case ZoneWasted:
		s.wasted++
	}

	return warn
}

// NextHand moves the table's cards to the wasted pile and clears both
// hands. The shoe and the count persist; calling it twice in a row is
// a no-op the second time.
func (s *Session) NextHand() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wasted += len(s.player) + len(s.dealer)
	s.player.Clear()
	s.dealer.Clear()
}

// NewShoe performs a full reshuffle: shoe, count, hands and wasted
// pile all reset. numDecks of 0 keeps the current deck count.
func (s *Session) NewShoe(numDecks int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if numDecks == 0 {
		numDecks = s.shoe.NumDecks()
	}
	if err := s.shoe.Reset(numDecks); err != nil {
		return err
	}

	s.count.ResetShoe()
	s.player.Clear()
	s.dealer.Clear()
	s.wasted = 0
	return nil
}

// Recommend resolves the optimal action for the current player hand
// against the dealer up-card. State is never mutated, so a rejected
// request leaves the session untouched.
func (s *Session) Recommend(splitCountSoFar int, isFirstDecision bool) (*strategy.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := strategy.Input{
		Hand:              s.player,
		TrueCount:         s.count.TrueCount(),
		SplitCountSoFar:   splitCountSoFar,
		MaxResplits:       s.opts.MaxResplits,
		IsFirstDecision:   isFirstDecision,
		BustWarnThreshold: s.opts.BustWarnThreshold,
	}
	if len(s.dealer) > 0 {
		in.DealerUp = s.dealer[0]
		in.HasDealer = true
	}

	return strategy.Resolve(in, s.shoe)
}

// Counts returns a snapshot of the counting state.
func (s *Session) Counts() CountSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CountSnapshot{
		RunningCount:   s.count.RunningCount(),
		TrueCount:      s.count.TrueCount(),
		RemainingTotal: s.shoe.RemainingTotal(),
		RemainingDecks: s.shoe.RemainingDecks(),
	}
}

// EdgeEstimate returns the advisory player-edge hint for the current
// true count.
func (s *Session) EdgeEstimate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.EdgeEstimate(s.count.TrueCount())
}

// PlayerHand returns a copy of the player's current hand.
func (s *Session) PlayerHand() card.Hand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(card.Hand(nil), s.player...)
}

// DealerHand returns a copy of the dealer's current hand.
func (s *Session) DealerHand() card.Hand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(card.Hand(nil), s.dealer...)
}

// DealerUpcard returns the dealer's up-card if one has been entered.
func (s *Session) DealerUpcard() (card.Rank, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dealer) == 0 {
		return 0, false
	}
	return s.dealer[0], true
}

// RemainingCount returns how many cards of the rank are left in the
// shoe, for the tracking grid.
func (s *Session) RemainingCount(r card.Rank) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shoe.RemainingCount(r)
}

// WastedCount returns how many cards have left play outside the
// current hands.
func (s *Session) WastedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wasted
}

// NumDecks returns the configured deck count.
func (s *Session) NumDecks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shoe.NumDecks()
}
