package game

import (
	"fmt"

	"github.com/lox/pokermentor/poker"
)

// HandResult is one player's shown hand.
type HandResult struct {
	Hole [2]poker.Card
	Rank poker.HandRank
	Best [5]poker.Card
}

// Result is the outcome of a completed hand. Hands is empty when the hand
// ended on a fold.
type Result struct {
	Pot      int
	Board    []poker.Card
	Winners  []PlayerID
	Payouts  map[PlayerID]int
	Hands    map[PlayerID]HandResult
	Showdown bool
}

// IsWinner reports whether p won or split the pot.
func (r *Result) IsWinner(p PlayerID) bool {
	for _, w := range r.Winners {
		if w == p {
			return true
		}
	}
	return false
}

// Split reports whether the pot was shared.
func (r *Result) Split() bool { return len(r.Winners) > 1 }

// Showdown evaluates both hands against the full board and awards the pot.
// Equal hands split it evenly, with any odd chip going to the lower seat.
// Calling it again returns the same result without paying out twice.
func (s *State) Showdown() (*Result, error) {
	if s.result != nil {
		return s.result, nil
	}
	if s.phase != PhaseRiver || len(s.community) != 5 {
		return nil, fmt.Errorf("%w: showdown requires the river (phase %s, board %d)",
			ErrInvalidStreetTransition, s.phase, len(s.community))
	}

	res := &Result{
		Pot:      s.pot,
		Board:    s.Community(),
		Payouts:  make(map[PlayerID]int, 2),
		Hands:    make(map[PlayerID]HandResult, 2),
		Showdown: true,
	}

	var (
		best    poker.HandRank
		winners []int
	)
	for seat, p := range s.players {
		if s.folded[seat] {
			continue
		}
		cards := append(s.hole[seat][:], s.community...)
		rank, five, err := poker.BestHand(cards)
		if err != nil {
			return nil, fmt.Errorf("evaluating %s: %w", p, err)
		}
		res.Hands[p] = HandResult{Hole: s.hole[seat], Rank: rank, Best: five}

		switch {
		case winners == nil || rank.Beats(best):
			best = rank
			winners = []int{seat}
		case rank.Ties(best):
			winners = append(winners, seat)
		}
	}

	s.award(res, winners)
	s.logger.Info("Showdown", "winners", res.Winners, "hand", best, "pot", res.Pot)
	return res, nil
}

func (s *State) awardUncontested(seat int) {
	res := &Result{
		Pot:     s.pot,
		Board:   s.Community(),
		Payouts: make(map[PlayerID]int, 1),
		Hands:   map[PlayerID]HandResult{},
	}
	s.award(res, []int{seat})
	s.logger.Debug("Pot awarded uncontested", "winner", s.players[seat], "pot", res.Pot)
}

// award pays the pot to the winning seats, which must be in seat order.
func (s *State) award(res *Result, winners []int) {
	share := s.pot / len(winners)
	odd := s.pot % len(winners)
	for i, seat := range winners {
		amount := share
		if i == 0 {
			amount += odd
		}
		s.stacks[seat] += amount
		res.Winners = append(res.Winners, s.players[seat])
		res.Payouts[s.players[seat]] = amount
	}
	s.pot = 0
	s.phase = PhaseComplete
	s.result = res
}
