package strategy

import "fmt"

// Dealer up-card values run 2..11, with the ace as 11.
const (
	minDealerValue = 2
	maxDealerValue = 11
)

// baseTable is the closed basic-strategy table: every reachable
// (class, player, dealer) key resolves to exactly one action. Built
// once at package init and validated for completeness.
var baseTable = map[TableKey]Action{}

func init() {
	buildHardRows()
	buildSoftRows()
	buildPairRows()
	if err := validateTable(); err != nil {
		panic(err)
	}
}

// setRow fills one player row across all dealer up-cards.
func setRow(class HandClass, player int, pick func(dealer int) Action) {
	for dealer := minDealerValue; dealer <= maxDealerValue; dealer++ {
		baseTable[TableKey{Class: class, Player: player, Dealer: dealer}] = pick(dealer)
	}
}

func buildHardRows() {
	// 17-21: always stand
	for total := 17; total <= 21; total++ {
		setRow(ClassHard, total, func(int) Action { return ActionStand })
	}
	// 13-16: stand against 2-6, hit against 7-A
	for total := 13; total <= 16; total++ {
		setRow(ClassHard, total, func(d int) Action {
			if d < 7 {
				return ActionStand
			}
			return ActionHit
		})
	}
	// 12: stand against 4-6, hit against 2-3 and 7-A
	setRow(ClassHard, 12, func(d int) Action {
		if d >= 4 && d < 7 {
			return ActionStand
		}
		return ActionHit
	})
	// 11: always double
	setRow(ClassHard, 11, func(int) Action { return ActionDouble })
	// 10: double against 2-9, hit against 10 and A
	setRow(ClassHard, 10, func(d int) Action {
		if d < 10 {
			return ActionDouble
		}
		return ActionHit
	})
	// 9: double against 3-6, hit otherwise
	setRow(ClassHard, 9, func(d int) Action {
		if d >= 3 && d < 7 {
			return ActionDouble
		}
		return ActionHit
	})
	// 4-8: always hit
	for total := 4; total <= 8; total++ {
		setRow(ClassHard, total, func(int) Action { return ActionHit })
	}
}

func buildSoftRows() {
	// Soft 12 is only reachable as a split-capped pair of aces
	setRow(ClassSoft, 12, func(int) Action { return ActionHit })
	// Soft 13-14: double against 5-6, hit otherwise
	for total := 13; total <= 14; total++ {
		setRow(ClassSoft, total, func(d int) Action {
			if d >= 5 && d < 7 {
				return ActionDouble
			}
			return ActionHit
		})
	}
	// Soft 15-16: double against 4-6, hit otherwise
	for total := 15; total <= 16; total++ {
		setRow(ClassSoft, total, func(d int) Action {
			if d >= 4 && d < 7 {
				return ActionDouble
			}
			return ActionHit
		})
	}
	// Soft 17: double against 3-6, hit otherwise
	setRow(ClassSoft, 17, func(d int) Action {
		if d >= 3 && d < 7 {
			return ActionDouble
		}
		return ActionHit
	})
	// Soft 18: stand against 2-8, hit against 9-A
	setRow(ClassSoft, 18, func(d int) Action {
		if d < 9 {
			return ActionStand
		}
		return ActionHit
	})
	// Soft 19-21: always stand
	for total := 19; total <= 21; total++ {
		setRow(ClassSoft, total, func(int) Action { return ActionStand })
	}
}

func buildPairRows() {
	// Aces: always split
	setRow(ClassPair, 11, func(int) Action { return ActionSplit })
	// Tens: never split
	setRow(ClassPair, 10, func(int) Action { return ActionStand })
	// Nines: split against 2-6 and 8-9, stand against 7, 10, A
	setRow(ClassPair, 9, func(d int) Action {
		if d < 7 || d == 8 || d == 9 {
			return ActionSplit
		}
		return ActionStand
	})
	// Eights: always split
	setRow(ClassPair, 8, func(int) Action { return ActionSplit })
	// Sevens: split against 2-7, hit against 8-A
	setRow(ClassPair, 7, func(d int) Action {
		if d < 8 {
			return ActionSplit
		}
		return ActionHit
	})
	// Sixes: split against 2-6, hit against 7-A
	setRow(ClassPair, 6, func(d int) Action {
		if d < 7 {
			return ActionSplit
		}
		return ActionHit
	})
	// Fives: play as a hard 10, never split
	setRow(ClassPair, 5, func(d int) Action {
		if d < 10 {
			return ActionDouble
		}
		return ActionHit
	})
	// Fours: split against 5-6 only
	setRow(ClassPair, 4, func(d int) Action {
		if d == 5 || d == 6 {
			return ActionSplit
		}
		return ActionHit
	})
	// Twos and threes: split against 2-7, hit against 8-A
	for value := 2; value <= 3; value++ {
		setRow(ClassPair, value, func(d int) Action {
			if d < 8 {
				return ActionSplit
			}
			return ActionHit
		})
	}
}

// validateTable checks that every reachable key resolves. Hard totals
// run 4-21 (2-3 require aces and those hands are soft), soft totals
// 12-21, pair values 2-11.
func validateTable() error {
	ranges := []struct {
		class    HandClass
		min, max int
	}{
		{ClassHard, 4, 21},
		{ClassSoft, 12, 21},
		{ClassPair, 2, 11},
	}

	for _, rng := range ranges {
		for player := rng.min; player <= rng.max; player++ {
			for dealer := minDealerValue; dealer <= maxDealerValue; dealer++ {
				key := TableKey{Class: rng.class, Player: player, Dealer: dealer}
				if _, ok := baseTable[key]; !ok {
					return fmt.Errorf("strategy table is missing %s %d vs %d", rng.class, player, dealer)
				}
			}
		}
	}
	return nil
}

// baseAction looks up the base action for a key. The table is closed,
// so a miss means the caller built an unreachable key.
func baseAction(key TableKey) (Action, bool) {
	action, ok := baseTable[key]
	return action, ok
}
