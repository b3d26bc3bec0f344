// Package strategy resolves the recommended blackjack action from the
// base basic-strategy tables plus count-conditioned deviations.
package strategy

// Action 定义推荐动作
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSplit
	ActionSurrender
)

// actionNames 动作字符串映射表
var actionNames = map[Action]string{
	ActionHit:       "Hit",
	ActionStand:     "Stand",
	ActionDouble:    "Double Down",
	ActionSplit:     "Split",
	ActionSurrender: "Surrender",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "?"
}

// HandClass classifies a hand for table lookup.
type HandClass int

const (
	ClassHard HandClass = iota
	ClassSoft
	ClassPair
)

func (c HandClass) String() string {
	switch c {
	case ClassHard:
		return "hard"
	case ClassSoft:
		return "soft"
	case ClassPair:
		return "pair"
	}
	return "?"
}

// TableKey addresses one cell of the strategy table. Player holds the
// hand total for hard/soft hands and the shared card value (ace as 11)
// for pairs. Dealer holds the up-card value, 2..11.
type TableKey struct {
	Class  HandClass
	Player int
	Dealer int
}
