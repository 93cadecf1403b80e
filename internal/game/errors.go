package game

import "errors"

var (
	// ErrInvalidStreetTransition is returned when a street operation is
	// called out of order, e.g. DealTurn before DealFlop.
	ErrInvalidStreetTransition = errors.New("invalid street transition")

	// ErrNotFound is returned when a player id is not seated at the table.
	ErrNotFound = errors.New("player not found")

	// ErrHandComplete is returned when an action arrives after the hand has
	// been decided.
	ErrHandComplete = errors.New("hand is complete")

	// ErrInvalidAction is returned for unknown actions and for actions taken
	// before the blinds are posted.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInsufficientChips is returned under StackPolicyReject when a debit
	// exceeds a player's stack.
	ErrInsufficientChips = errors.New("insufficient chips")

	// ErrInvalidPlayers is returned by New unless given exactly two distinct,
	// non-empty player ids.
	ErrInvalidPlayers = errors.New("invalid players")
)
