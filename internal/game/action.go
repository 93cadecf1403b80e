package game

import (
	"fmt"
	"strings"
)

// Action is a player decision.
type Action uint8

const (
	Fold Action = iota
	Check
	Call
	Raise
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	}
	return "unknown"
}

// ParseAction accepts an action name, case-insensitively. "bet" is an alias
// for raise.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "check", "x", "k":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "raise", "bet", "r", "b":
		return Raise, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// ActionRecord is one applied action. Paid is what actually left the stack,
// which can be less than requested when a player goes all in.
type ActionRecord struct {
	Player PlayerID
	Street Street
	Action Action
	Amount int // requested raise-to level, zero otherwise
	Paid   int
}

func (r ActionRecord) String() string {
	switch r.Action {
	case Raise:
		return fmt.Sprintf("%s raises to %d", r.Player, r.Amount)
	case Call:
		return fmt.Sprintf("%s calls %d", r.Player, r.Paid)
	}
	return fmt.Sprintf("%s %ss", r.Player, r.Action)
}
