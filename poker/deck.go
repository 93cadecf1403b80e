package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = NumRanks * NumSuits

// Deck is an ordered sequence of undealt cards. Cards are dealt from the front
// and never returned until Reset.
type Deck struct {
	cards   []Card
	next    int
	rng     *rand.Rand
	stacked bool
}

// NewDeck creates all 52 cards and shuffles them with rng. A nil rng uses the
// global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
	return d
}

// NewDeckFromCards creates a stacked deck that deals cards in the given order.
// It is used to replay hands and to script tests.
func NewDeckFromCards(cards []Card) (*Deck, error) {
	if len(cards) > DeckSize {
		return nil, fmt.Errorf("%w: %d cards exceeds a full deck", ErrInvalidHand, len(cards))
	}
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: card out of range", ErrInvalidHand)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidHand, c)
		}
		seen[c] = true
	}
	return &Deck{cards: append([]Card(nil), cards...), stacked: true}, nil
}

// Shuffle returns every card to the deck and applies a Fisher-Yates shuffle.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards. If fewer than n remain the deck
// is left untouched and ErrInsufficientCards is returned.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: cannot deal %d cards", ErrInsufficientCards, n)
	}
	if n > d.Remaining() {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrInsufficientCards, n, d.Remaining())
	}
	out := make([]Card, n)
	copy(out, d.cards[d.next:d.next+n])
	d.next += n
	return out, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Reset returns all dealt cards. Shuffled decks are reshuffled; stacked decks
// go back to their original order.
func (d *Deck) Reset() {
	if d.stacked {
		d.next = 0
		return
	}
	d.Shuffle()
}
