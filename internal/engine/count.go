package engine

import (
	"math"

	"github.com/KeivanMoridZadeh/BlackjackAssistance/internal/card"
)

// trueCountDeckFloor prevents the true count from blowing up when the
// shoe is nearly exhausted.
const trueCountDeckFloor = 0.5

// CountTracker maintains the Hi-Lo running count for one shoe. It must
// observe exactly the cards removed from the shoe; Session couples the
// two behind a single RegisterCard entry point so they cannot drift.
type CountTracker struct {
	running int
	shoe    *Shoe
}

// NewCountTracker creates a tracker reading deck estimates from shoe.
func NewCountTracker(shoe *Shoe) *CountTracker {
	return &CountTracker{shoe: shoe}
}

// Observe adds the Hi-Lo tag of a seen card to the running count.
func (ct *CountTracker) Observe(r card.Rank) {
	ct.running += r.HiLoTag()
}

// RunningCount returns the cumulative Hi-Lo sum since the last
// reshuffle. It persists across hands within a shoe.
func (ct *CountTracker) RunningCount() int {
	return ct.running
}

// TrueCount returns the running count normalized by the estimated
// decks remaining, rounded to one decimal. The denominator is floored
// at half a deck.
func (ct *CountTracker) TrueCount() float64 {
	decks := math.Max(ct.shoe.RemainingDecks(), trueCountDeckFloor)
	return math.Round(float64(ct.running)/decks*10) / 10
}

// ResetShoe zeroes the running count. Called only on a physical
// reshuffle, never between hands.
func (ct *CountTracker) ResetShoe() {
	ct.running = 0
}
