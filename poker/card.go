package poker

import (
	"strings"
	"unicode"
)

// Rank is a card rank indexed 0 (Two) through 12 (Ace).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = 13

const rankChars = "23456789TJQKA"

var rankNames = [NumRanks]string{
	"Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

var rankPlurals = [NumRanks]string{
	"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights",
	"Nines", "Tens", "Jacks", "Queens", "Kings", "Aces",
}

// String returns the single character form used in card notation.
func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return rankChars[r : r+1]
}

// Name returns the rank as an English word, e.g. "Queen".
func (r Rank) Name() string {
	if r >= NumRanks {
		return "Unknown"
	}
	return rankNames[r]
}

func (r Rank) plural() string {
	if r >= NumRanks {
		return "Unknown"
	}
	return rankPlurals[r]
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool { return r < NumRanks }

// ParseRank parses a single rank character such as 'A' or 'T'.
func ParseRank(c rune) (Rank, bool) {
	i := strings.IndexRune(rankChars, unicode.ToUpper(c))
	if i < 0 {
		return 0, false
	}
	return Rank(i), true
}

// Suit is one of the four card suits. Suits carry no ordering in hand
// comparison.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

var (
	suitGlyphs  = [NumSuits]string{"♣", "♦", "♥", "♠"}
	suitLetters = [NumSuits]string{"c", "d", "h", "s"}
	suitNames   = [NumSuits]string{"Clubs", "Diamonds", "Hearts", "Spades"}
)

// String returns the suit glyph.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitGlyphs[s]
}

// Letter returns the ASCII suit letter (c, d, h or s).
func (s Suit) Letter() string {
	if s >= NumSuits {
		return "?"
	}
	return suitLetters[s]
}

// Name returns the suit name, e.g. "Spades".
func (s Suit) Name() string {
	if s >= NumSuits {
		return "Unknown"
	}
	return suitNames[s]
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool { return s == Diamonds || s == Hearts }

// ParseSuit accepts either a suit glyph or an ASCII suit letter.
func ParseSuit(c rune) (Suit, bool) {
	switch c {
	case 'c', 'C', '♣', '♧':
		return Clubs, true
	case 'd', 'D', '♦', '♢':
		return Diamonds, true
	case 'h', 'H', '♥', '♡':
		return Hearts, true
	case 's', 'S', '♠', '♤':
		return Spades, true
	}
	return 0, false
}

// Card is an immutable playing card. Two cards are equal when their rank and
// suit are equal, so Card can be compared with == and used as a map key.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Index returns a dense index in [0, 52), suit-major.
func (c Card) Index() int { return int(c.suit)*NumRanks + int(c.rank) }

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool { return c.rank < NumRanks && c.suit < NumSuits }

// String returns the rank character followed by the suit glyph, e.g. "A♠".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// ASCII returns the rank character followed by the suit letter, e.g. "As".
func (c Card) ASCII() string {
	return c.rank.String() + c.suit.Letter()
}

// ParseCard parses a two-symbol card such as "As", "Td" or "K♥".
func ParseCard(s string) (Card, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 2 {
		return Card{}, &ParseError{Input: s, Reason: "card must be a rank followed by a suit"}
	}
	rank, ok := ParseRank(runes[0])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: "unknown rank " + string(runes[0])}
	}
	suit, ok := ParseSuit(runes[1])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: "unknown suit " + string(runes[1])}
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards. Whitespace and commas between cards are
// ignored, so "AsKd", "A♠ K♦" and "As,Kd" are equivalent.
func ParseCards(s string) ([]Card, error) {
	var runes []rune
	for _, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		runes = append(runes, r)
	}
	if len(runes)%2 != 0 {
		return nil, &ParseError{Input: s, Reason: "odd number of card symbols"}
	}
	cards := make([]Card, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		c, err := ParseCard(string(runes[i : i+2]))
		if err != nil {
			return nil, &ParseError{Input: s, Reason: err.(*ParseError).Reason}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. It is intended for
// tests and fixed tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with a single space.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
