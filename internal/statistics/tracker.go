package statistics

import (
	"sync"

	"github.com/lox/pokermentor/internal/history"
)

// Tracker keeps Statistics per user. It is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	users map[string]*Statistics
}

func NewTracker() *Tracker {
	return &Tracker{users: make(map[string]*Statistics)}
}

// Record adds a completed hand to the record's user.
func (t *Tracker) Record(rec history.Record) {
	t.Add(rec.User, FromRecord(rec))
}

// Add adds a hand result for user.
func (t *Tracker) Add(user string, result HandResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.users[user]
	if !ok {
		s = &Statistics{}
		t.users[user] = s
	}
	s.Add(result)
}

// Snapshot returns a copy of the user's statistics, or false if the user has
// played no hands.
func (t *Tracker) Snapshot(user string) (Statistics, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.users[user]
	if !ok {
		return Statistics{}, false
	}
	out := *s
	out.Values = append([]float64(nil), s.Values...)
	if s.BestHand != nil {
		best := *s.BestHand
		out.BestHand = &best
	}
	return out, true
}

// Reset clears the user's statistics.
func (t *Tracker) Reset(user string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.users, user)
}
