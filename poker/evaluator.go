package poker

import (
	"fmt"
	"slices"
)

// Evaluate returns the best five-card HandRank that can be made from 5, 6 or 7
// distinct cards.
func Evaluate(cards []Card) (HandRank, error) {
	hr, _, err := BestHand(cards)
	return hr, err
}

// BestHand is like Evaluate but also returns the five cards that make the hand,
// ordered as they appear in the input.
func BestHand(cards []Card) (HandRank, [5]Card, error) {
	var best [5]Card
	if len(cards) < 5 || len(cards) > 7 {
		return HandRank{}, best, fmt.Errorf("%w: need 5 to 7 cards, got %d", ErrInvalidHand, len(cards))
	}
	var seen uint64
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, best, fmt.Errorf("%w: card out of range", ErrInvalidHand)
		}
		bit := uint64(1) << c.Index()
		if seen&bit != 0 {
			return HandRank{}, best, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen |= bit
	}

	var (
		bestRank HandRank
		found    bool
		hand     [5]Card
	)
	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						hand = [5]Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						hr := evaluateFive(hand)
						if !found || hr.Compare(bestRank) > 0 {
							bestRank, best, found = hr, hand, true
						}
					}
				}
			}
		}
	}
	return bestRank, best, nil
}

// Compare evaluates two card sets and compares them. It returns -1, 0 or +1 as
// a is weaker than, equal to or stronger than b.
func Compare(a, b []Card) (int, error) {
	ra, err := Evaluate(a)
	if err != nil {
		return 0, err
	}
	rb, err := Evaluate(b)
	if err != nil {
		return 0, err
	}
	return ra.Compare(rb), nil
}

type rankGroup struct {
	rank  Rank
	count int
}

func evaluateFive(hand [5]Card) HandRank {
	var counts [NumRanks]int
	flush := true
	for i, c := range hand {
		counts[c.rank]++
		if i > 0 && c.suit != hand[0].suit {
			flush = false
		}
	}

	// Groups ordered by size, then by rank, so for every non-straight
	// category the group ranks are exactly the tie-break vector.
	groups := make([]rankGroup, 0, 5)
	for r := Ace; ; r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
		if r == Two {
			break
		}
	}
	slices.SortStableFunc(groups, func(x, y rankGroup) int {
		return y.count - x.count
	})

	high, straight := straightHigh(groups)

	ranks := make([]Rank, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}

	switch {
	case flush && straight && high == Ace:
		return newHandRank(RoyalFlush, Ace)
	case flush && straight:
		return newHandRank(StraightFlush, high)
	case groups[0].count == 4:
		return newHandRank(FourOfAKind, ranks...)
	case groups[0].count == 3 && groups[1].count == 2:
		return newHandRank(FullHouse, ranks...)
	case flush:
		return newHandRank(Flush, ranks...)
	case straight:
		return newHandRank(Straight, high)
	case groups[0].count == 3:
		return newHandRank(ThreeOfAKind, ranks...)
	case groups[0].count == 2 && groups[1].count == 2:
		return newHandRank(TwoPair, ranks...)
	case groups[0].count == 2:
		return newHandRank(OnePair, ranks...)
	}
	return newHandRank(HighCard, ranks...)
}

// straightHigh reports whether five distinct ranks (descending) form a
// straight and returns its high card. The wheel A-2-3-4-5 is Five high.
func straightHigh(groups []rankGroup) (Rank, bool) {
	if len(groups) != 5 {
		return 0, false
	}
	if groups[0].rank-groups[4].rank == 4 {
		return groups[0].rank, true
	}
	if groups[0].rank == Ace && groups[1].rank == Five && groups[4].rank == Two {
		return Five, true
	}
	return 0, false
}
