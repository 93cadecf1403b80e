package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCards is returned when a deal asks for more cards than
	// remain in the deck.
	ErrInsufficientCards = errors.New("insufficient cards in deck")

	// ErrInvalidHand is returned when a hand has the wrong number of cards or
	// repeats a card.
	ErrInvalidHand = errors.New("invalid hand")

	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("parse error")
)

// ParseError describes text that could not be parsed as cards or short-hand
// notation.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
