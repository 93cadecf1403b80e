package analysis

import (
	ph "github.com/paulhankin/poker"

	"github.com/lox/pokermentor/poker"
)

// The table-driven evaluator scores seven cards without building a tie-break
// vector, which makes it the right tool for equity sampling. Higher scores
// are stronger hands. poker.Evaluate stays the reference for showdowns.

var phSuits = [poker.NumSuits]ph.Suit{
	poker.Clubs:    ph.Club,
	poker.Diamonds: ph.Diamond,
	poker.Hearts:   ph.Heart,
	poker.Spades:   ph.Spade,
}

// phCards maps every card index to the library's card value.
var phCards = func() [poker.DeckSize]ph.Card {
	var out [poker.DeckSize]ph.Card
	for suit := range poker.Suit(poker.NumSuits) {
		for rank := range poker.Rank(poker.NumRanks) {
			// The library numbers ranks 1..13 with the ace low.
			r := ph.Rank(rank + 2)
			if rank == poker.Ace {
				r = ph.Rank(1)
			}
			c, err := ph.MakeCard(phSuits[suit], r)
			if err != nil {
				panic(err)
			}
			out[poker.NewCard(rank, suit).Index()] = c
		}
	}
	return out
}()

func toPH(c poker.Card) ph.Card { return phCards[c.Index()] }

// score7 scores hole cards plus a complete five-card board.
func score7(hole [2]poker.Card, board []poker.Card) int16 {
	var hand [7]ph.Card
	hand[0], hand[1] = toPH(hole[0]), toPH(hole[1])
	for i, c := range board[:5] {
		hand[2+i] = toPH(c)
	}
	return ph.Eval7(&hand)
}

// Describe returns the library's description of the best hand in cards.
func Describe(cards []poker.Card) (string, error) {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toPH(c)
	}
	return ph.Describe(pcs)
}
