package strategy

import "math"

// Direction states which side of the threshold triggers a deviation.
type Direction int

const (
	AtOrAbove Direction = iota
	AtOrBelow
)

// Deviation is a count-conditioned override of the base action for one
// table situation.
type Deviation struct {
	Key       TableKey
	Threshold float64
	Direction Direction
	Action    Action
}

// matches reports whether the deviation applies to the situation at
// the given true count.
func (d Deviation) matches(key TableKey, trueCount float64) bool {
	if d.Key != key {
		return false
	}
	if d.Direction == AtOrAbove {
		return trueCount >= d.Threshold
	}
	return trueCount <= d.Threshold
}

// deviations lists the Hi-Lo strategy departures, following the
// classic index plays. When several could apply to one situation the
// tightest (closest-to-zero) threshold wins; ties fall back to
// declaration order, so the outcome is deterministic either way.
var deviations = []Deviation{
	// Standing deviations
	{Key: TableKey{ClassHard, 16, 10}, Threshold: 0, Direction: AtOrAbove, Action: ActionStand},
	{Key: TableKey{ClassHard, 15, 10}, Threshold: 4, Direction: AtOrAbove, Action: ActionStand},
	{Key: TableKey{ClassHard, 12, 3}, Threshold: 2, Direction: AtOrAbove, Action: ActionStand},
	{Key: TableKey{ClassHard, 12, 2}, Threshold: 3, Direction: AtOrAbove, Action: ActionStand},

	// Double-down deviations
	{Key: TableKey{ClassHard, 11, 11}, Threshold: 1, Direction: AtOrAbove, Action: ActionDouble},
	{Key: TableKey{ClassHard, 10, 11}, Threshold: 4, Direction: AtOrAbove, Action: ActionDouble},
	{Key: TableKey{ClassHard, 9, 2}, Threshold: 1, Direction: AtOrAbove, Action: ActionDouble},

	// Split tens only in a deeply negative shoe
	{Key: TableKey{ClassPair, 10, 5}, Threshold: -4, Direction: AtOrBelow, Action: ActionSplit},
	{Key: TableKey{ClassPair, 10, 6}, Threshold: -4, Direction: AtOrBelow, Action: ActionSplit},

	// Surrender deviations, only on the first two cards
	{Key: TableKey{ClassHard, 15, 10}, Threshold: -1, Direction: AtOrBelow, Action: ActionSurrender},
	{Key: TableKey{ClassHard, 14, 10}, Threshold: -2, Direction: AtOrBelow, Action: ActionSurrender},
	{Key: TableKey{ClassHard, 13, 10}, Threshold: -3, Direction: AtOrBelow, Action: ActionSurrender},
}

// findDeviation returns the deviation that applies to the situation,
// if any. Deviations demanding an ineligible action (double or
// surrender when the hand no longer allows it) are skipped rather than
// downgraded.
func findDeviation(key TableKey, trueCount float64, canDouble, canSurrender bool) (Deviation, bool) {
	var best Deviation
	found := false

	for _, d := range deviations {
		if !d.matches(key, trueCount) {
			continue
		}
		if d.Action == ActionDouble && !canDouble {
			continue
		}
		if d.Action == ActionSurrender && !canSurrender {
			continue
		}
		if !found || math.Abs(d.Threshold) < math.Abs(best.Threshold) {
			best = d
			found = true
		}
	}

	return best, found
}
