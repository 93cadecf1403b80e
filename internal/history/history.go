// Package history keeps completed hands in memory, per user.
package history

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/poker"
)

// DefaultLimit is the number of hands kept per user when no limit is given.
const DefaultLimit = 100

// ErrIncomplete is returned when recording a hand that has not finished.
var ErrIncomplete = errors.New("hand is not complete")

// Record is one completed hand as seen by the user.
type Record struct {
	ID          uuid.UUID
	User        string
	Hero        game.PlayerID
	Villain     game.PlayerID
	Seat        int    // hero's seat; 0 posts the small blind
	Opponent    string // opponent kind
	Hand        int
	Hole        map[game.PlayerID][2]poker.Card
	Board       []poker.Card
	Actions     []game.ActionRecord
	Pot         int
	Winners     []game.PlayerID
	Payouts     map[game.PlayerID]int
	Showdown    bool
	HeroRank    *poker.HandRank       // nil unless the hero reached showdown
	Net         int                   // hero chips won minus chips put in
	Stacks      map[game.PlayerID]int // before the blinds
	Contributed map[game.PlayerID]int // blinds included
	SmallBlind  int
	BigBlind    int
	StartedAt   time.Time
	EndedAt     time.Time
}

// HeroWon reports whether the hero won or split the pot.
func (r Record) HeroWon() bool {
	for _, w := range r.Winners {
		if w == r.Hero {
			return true
		}
	}
	return false
}

// HeroActions returns the hero's actions in order.
func (r Record) HeroActions() []game.ActionRecord {
	var out []game.ActionRecord
	for _, a := range r.Actions {
		if a.Player == r.Hero {
			out = append(out, a)
		}
	}
	return out
}

// Store holds up to limit records per user, newest last.
type Store struct {
	clock quartz.Clock
	limit int

	mu    sync.RWMutex
	users map[string][]Record
}

// NewStore creates a store. A non-positive limit uses DefaultLimit and a nil
// clock uses the real clock.
func NewStore(limit int, clock quartz.Clock) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Store{
		clock: clock,
		limit: limit,
		users: make(map[string][]Record),
	}
}

// Record captures a completed hand from the state and stores it.
func (s *Store) Record(user, opponent string, hero game.PlayerID, st *game.State, startedAt time.Time) (Record, error) {
	rec, err := NewRecord(user, opponent, hero, st, startedAt, s.clock.Now())
	if err != nil {
		return Record{}, err
	}
	s.Add(rec)
	return rec, nil
}

// NewRecord captures a completed hand from the hero's point of view.
func NewRecord(user, opponent string, hero game.PlayerID, st *game.State, startedAt, endedAt time.Time) (Record, error) {
	res, ok := st.Result()
	if !ok {
		return Record{}, ErrIncomplete
	}
	villain, err := st.Opponent(hero)
	if err != nil {
		return Record{}, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("generating hand id: %w", err)
	}

	rec := Record{
		ID:          id,
		User:        user,
		Hero:        hero,
		Villain:     villain,
		Opponent:    opponent,
		Hand:        st.HandNumber(),
		Hole:        make(map[game.PlayerID][2]poker.Card, 2),
		Board:       append([]poker.Card(nil), res.Board...),
		Actions:     st.Actions(),
		Pot:         res.Pot,
		Winners:     append([]game.PlayerID(nil), res.Winners...),
		Payouts:     make(map[game.PlayerID]int, len(res.Payouts)),
		Stacks:      make(map[game.PlayerID]int, 2),
		Contributed: make(map[game.PlayerID]int, 2),
		Showdown:    res.Showdown,
		StartedAt:   startedAt,
		EndedAt:     endedAt,
	}
	rec.SmallBlind, rec.BigBlind = st.Blinds()
	for i, p := range st.Players() {
		if p == hero {
			rec.Seat = i
		}
		hole, _ := st.HoleCards(p)
		rec.Hole[p] = hole
		stack, _ := st.Stack(p)
		paid, _ := st.Contributed(p)
		rec.Stacks[p] = stack + paid - res.Payouts[p]
		rec.Contributed[p] = paid
	}
	for p, amt := range res.Payouts {
		rec.Payouts[p] = amt
	}
	if h, ok := res.Hands[hero]; ok {
		rank := h.Rank
		rec.HeroRank = &rank
	}
	rec.Net = res.Payouts[hero] - rec.Contributed[hero]
	return rec, nil
}

// Add stores a record, dropping the user's oldest once over the limit.
func (s *Store) Add(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := append(s.users[rec.User], rec)
	if len(recs) > s.limit {
		recs = append([]Record(nil), recs[len(recs)-s.limit:]...)
	}
	s.users[rec.User] = recs
}

// Recent returns up to n of the user's records, newest first. n <= 0
// returns all of them.
func (s *Store) Recent(user string, n int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.users[user]
	if n <= 0 || n > len(recs) {
		n = len(recs)
	}
	out := make([]Record, 0, n)
	for i := len(recs) - 1; i >= len(recs)-n; i-- {
		out = append(out, recs[i])
	}
	return out
}

// Get finds a record by id.
func (s *Store) Get(user string, id uuid.UUID) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.users[user] {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Count returns how many records are held for the user.
func (s *Store) Count(user string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users[user])
}

// Forget drops every record for the user.
func (s *Store) Forget(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, user)
}
