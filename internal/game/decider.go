package game

import (
	"fmt"

	"github.com/lox/pokermentor/poker"
)

// View is the read-only state a player sees when deciding. Only the acting
// player's hole cards are included.
type View struct {
	Player        PlayerID
	Opponent      PlayerID
	Seat          int
	Hole          [2]poker.Card
	Community     []poker.Card
	Street        Street
	Pot           int
	CurrentBet    int
	Committed     int
	ToCall        int
	Stack         int
	OpponentStack int
	SmallBlind    int
	BigBlind      int
	History       []ActionRecord
}

// CanCheck reports whether the player owes nothing.
func (v View) CanCheck() bool { return v.ToCall == 0 }

// Decider chooses an action for a player. For Raise the amount is the new
// bet level for the street; for other actions it is ignored.
// Deciders receive an immutable View and must not retain it.
type Decider interface {
	Decide(view View, player PlayerID) (Action, int)
}

// DeciderFunc adapts a function to the Decider interface.
type DeciderFunc func(view View, player PlayerID) (Action, int)

// Decide calls f.
func (f DeciderFunc) Decide(view View, player PlayerID) (Action, int) {
	return f(view, player)
}

// ViewFor builds the decision view for a player.
func (s *State) ViewFor(p PlayerID) (View, error) {
	seat, err := s.seat(p)
	if err != nil {
		return View{}, err
	}
	other := 1 - seat
	toCall := max(0, s.currentBet-s.committed[seat])
	return View{
		Player:        p,
		Opponent:      s.players[other],
		Seat:          seat,
		Hole:          s.hole[seat],
		Community:     s.Community(),
		Street:        s.phase.street(),
		Pot:           s.pot,
		CurrentBet:    s.currentBet,
		Committed:     s.committed[seat],
		ToCall:        min(toCall, s.stacks[seat]),
		Stack:         s.stacks[seat],
		OpponentStack: s.stacks[other],
		SmallBlind:    s.cfg.smallBlind,
		BigBlind:      s.cfg.bigBlind,
		History:       s.Actions(),
	}, nil
}

// Decide asks d for p's action and applies it.
func (s *State) Decide(p PlayerID, d Decider) (ActionRecord, error) {
	view, err := s.ViewFor(p)
	if err != nil {
		return ActionRecord{}, err
	}
	action, amount := d.Decide(view, p)
	if err := s.ApplyAction(p, action, amount); err != nil {
		return ActionRecord{}, fmt.Errorf("%s decided %s: %w", p, action, err)
	}
	return s.actions[len(s.actions)-1], nil
}
