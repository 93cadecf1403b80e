// Package session runs heads-up games between users and computer opponents.
// A Manager holds one session per user; calls for the same user are
// serialized and different users proceed in parallel.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/poker"
)

// Session is one user's table.
type Session struct {
	mu sync.Mutex

	id      uuid.UUID
	user    string
	hero    game.PlayerID
	villain game.PlayerID
	bot     bot.Bot
	state   *game.State

	created     time.Time
	lastActive  time.Time
	handStarted time.Time
	closed      bool
}

// Snapshot is a copy of a session as the user may see it.
type Snapshot struct {
	ID       uuid.UUID
	User     string
	Opponent string
	Hand     int
	Phase    game.Phase
	View     game.View
	// OpponentHole is set once the opponent's cards were shown down.
	OpponentHole *[2]poker.Card
	Result       *game.Result
	Created      time.Time
	LastActive   time.Time
}

// TurnResult describes everything that happened in response to one user
// action.
type TurnResult struct {
	Hero     game.ActionRecord
	Opponent *game.ActionRecord // nil when the hero's action ended the hand
	Dealt    []poker.Card       // community cards dealt this turn
	Result   *game.Result       // set once the hand is complete
	Record   *history.Record
	Review   *analysis.Review
	Snapshot Snapshot
}

// Complete reports whether the turn finished the hand.
func (t TurnResult) Complete() bool { return t.Result != nil }

func (s *Session) inProgress() bool {
	p := s.state.Phase()
	return p != game.PhaseCreated && p != game.PhaseComplete
}

// snapshot must be called with s.mu held.
func (s *Session) snapshot() Snapshot {
	view, _ := s.state.ViewFor(s.hero)
	snap := Snapshot{
		ID:         s.id,
		User:       s.user,
		Opponent:   s.bot.Kind(),
		Hand:       s.state.HandNumber(),
		Phase:      s.state.Phase(),
		View:       view,
		Created:    s.created,
		LastActive: s.lastActive,
	}
	if res, ok := s.state.Result(); ok {
		snap.Result = res
		if h, shown := res.Hands[s.villain]; shown {
			hole := h.Hole
			snap.OpponentHole = &hole
		}
	}
	return snap
}
