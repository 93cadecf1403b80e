package poker

import (
	"fmt"
	"strings"
)

// HandCategory is the class of a five-card hand, ordered weakest first.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
	"Royal Flush",
}

func (c HandCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// HandRank is the comparable strength of a five-card hand: a category plus a
// tie-break vector of rank indices compared lexicographically.
//
// Tie-break contents by category:
//
//	FourOfAKind          [quad, kicker]
//	FullHouse            [trips, pair]
//	Flush, HighCard      five ranks, descending
//	Straight (and flush) [high card], the wheel is Five high
//	ThreeOfAKind         [trips, kicker, kicker]
//	TwoPair              [high pair, low pair, kicker]
//	OnePair              [pair, kicker, kicker, kicker]
type HandRank struct {
	category HandCategory
	tieBreak [5]Rank
	n        uint8
}

func newHandRank(category HandCategory, tieBreak ...Rank) HandRank {
	hr := HandRank{category: category, n: uint8(len(tieBreak))}
	copy(hr.tieBreak[:], tieBreak)
	return hr
}

// Category returns the hand category.
func (hr HandRank) Category() HandCategory { return hr.category }

// TieBreak returns a copy of the tie-break vector.
func (hr HandRank) TieBreak() []Rank {
	return append([]Rank(nil), hr.tieBreak[:hr.n]...)
}

// Compare returns -1, 0 or +1 as hr is weaker than, equal to or stronger than
// other.
func (hr HandRank) Compare(other HandRank) int {
	if hr.category != other.category {
		if hr.category < other.category {
			return -1
		}
		return 1
	}
	n := min(hr.n, other.n)
	for i := range n {
		if hr.tieBreak[i] != other.tieBreak[i] {
			if hr.tieBreak[i] < other.tieBreak[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case hr.n < other.n:
		return -1
	case hr.n > other.n:
		return 1
	}
	return 0
}

// Beats reports whether hr is strictly stronger than other.
func (hr HandRank) Beats(other HandRank) bool { return hr.Compare(other) > 0 }

// Ties reports whether hr and other split.
func (hr HandRank) Ties(other HandRank) bool { return hr.Compare(other) == 0 }

// String describes the hand, e.g. "Two Pair, Aces and Kings".
func (hr HandRank) String() string {
	tb := hr.tieBreak
	if hr.n == 0 {
		return hr.category.String()
	}
	switch hr.category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", hr.category, tb[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", tb[0].plural())
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", tb[0].plural(), tb[1].plural())
	case Flush:
		return fmt.Sprintf("Flush, %s high", tb[0].Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", tb[0].plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", tb[0].plural(), tb[1].plural())
	case OnePair:
		return fmt.Sprintf("Pair of %s", tb[0].plural())
	case HighCard:
		return fmt.Sprintf("High Card, %s", tb[0].Name())
	}
	return hr.category.String()
}

// Short returns the category followed by the tie-break ranks, e.g.
// "Two Pair [A K Q]".
func (hr HandRank) Short() string {
	parts := make([]string, hr.n)
	for i := range hr.n {
		parts[i] = hr.tieBreak[i].String()
	}
	return fmt.Sprintf("%s [%s]", hr.category, strings.Join(parts, " "))
}
