package history

import (
	"strings"
	"time"

	"github.com/lox/pokermentor/internal/fileutil"
	"github.com/lox/pokermentor/internal/handid"
	"github.com/lox/pokermentor/poker"
)

// Entry is the exported form of a Record.
type Entry struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Opponent  string    `json:"opponent"`
	Hand      int       `json:"hand"`
	Seat      int       `json:"seat"`
	Hole      string    `json:"hole"`
	Villain   string    `json:"villain_hole,omitempty"`
	Board     string    `json:"board"`
	Actions   []string  `json:"actions"`
	Pot       int       `json:"pot"`
	Net       int       `json:"net"`
	BigBlind  int       `json:"big_blind"`
	Showdown  bool      `json:"showdown"`
	Made      string    `json:"made,omitempty"`
	Won       bool      `json:"won"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Entry converts the record for export. The opponent's cards are only
// included when they were shown down.
func (r Record) Entry() Entry {
	e := Entry{
		ID:        handid.Encode(r.ID),
		User:      r.User,
		Opponent:  r.Opponent,
		Hand:      r.Hand,
		Seat:      r.Seat,
		Hole:      formatHole(r.Hole[r.Hero]),
		Board:     formatCards(r.Board),
		Actions:   make([]string, 0, len(r.Actions)),
		Pot:       r.Pot,
		Net:       r.Net,
		BigBlind:  r.BigBlind,
		Showdown:  r.Showdown,
		Won:       r.HeroWon(),
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
	}
	if r.Showdown {
		e.Villain = formatHole(r.Hole[r.Villain])
	}
	if r.HeroRank != nil {
		e.Made = r.HeroRank.String()
	}
	for _, a := range r.Actions {
		e.Actions = append(e.Actions, a.Street.String()+": "+a.String())
	}
	return e
}

func formatHole(hole [2]poker.Card) string {
	return formatCards(hole[:])
}

func formatCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.ASCII())
	}
	return b.String()
}

// Export writes the user's records, oldest first, as JSON lines.
func (s *Store) Export(user, filename string) (int, error) {
	recs := s.Recent(user, 0)
	entries := make([]Entry, len(recs))
	for i, rec := range recs {
		entries[len(recs)-1-i] = rec.Entry()
	}
	if err := fileutil.WriteJSONLines(filename, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
