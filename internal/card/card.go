package card

import (
	"fmt"
	"strings"
)

// Suit 定义花色
type Suit int

// Rank 定义点数
type Rank int

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Diamond: "♦",
	Heart:   "♥",
	Spade:   "♠",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// suitFromSymbol 用于识别输入中的花色后缀
var suitFromSymbol = map[string]Suit{
	"C": Club, "♣": Club,
	"D": Diamond, "♦": Diamond,
	"H": Heart, "♥": Heart,
	"S": Spade, "♠": Spade,
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
)

// AllRanks lists the 13 rank symbols in ascending order.
var AllRanks = []Rank{
	Rank2, Rank3, Rank4, Rank5, Rank6, Rank7,
	Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA,
}

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:  "2",
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// nameToRank 用于快速查找字符串对应的 Rank
var nameToRank = map[string]Rank{
	"2": Rank2, "3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
	"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10, "T": Rank10,
	"J": RankJ, "Q": RankQ, "K": RankK, "A": RankA,
}

// RankFromString parses a rank symbol ("2".."10", "J", "Q", "K", "A").
// "T" is accepted as an alias for 10, and a trailing suit letter or
// symbol ("AH", "10♠") is tolerated: suits never matter to the math.
func RankFromString(s string) (Rank, error) {
	rank, _, err := ParseCard(s)
	return rank, err
}

// ParseCard parses a card entry with an optional suit suffix, the way
// table cards are usually written ("AS", "10♥"). When no suit is given
// the returned Suit defaults to Club.
func ParseCard(s string) (Rank, Suit, error) {
	symbol := strings.ToUpper(strings.TrimSpace(s))

	suit := Club
	if runes := []rune(symbol); len(runes) >= 2 {
		if parsed, ok := suitFromSymbol[string(runes[len(runes)-1])]; ok {
			suit = parsed
			symbol = string(runes[:len(runes)-1])
		}
	}

	if rank, ok := nameToRank[symbol]; ok {
		return rank, suit, nil
	}
	return 0, suit, fmt.Errorf("无法识别的点数: %q", s)
}

// Value returns the blackjack value of the rank. Face cards count as
// 10, the Ace as 11 (demotion to 1 is a hand-level concern).
func (r Rank) Value() int {
	switch {
	case r == RankA:
		return 11
	case r >= Rank10:
		return 10
	default:
		return int(r)
	}
}

// HiLoTag returns the Hi-Lo counting tag: +1 for 2-6, 0 for 7-9,
// -1 for tens and aces.
func (r Rank) HiLoTag() int {
	switch {
	case r <= Rank6:
		return +1
	case r <= Rank9:
		return 0
	default:
		return -1
	}
}
