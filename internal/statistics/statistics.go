package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/poker"
)

// HandResult is one completed hand from the user's point of view.
type HandResult struct {
	Net            int     // chips won minus chips put in
	NetBB          float64 // Net in big blinds
	Seat           int     // 0 posts the small blind, 1 the big blind
	Won            bool    // won or split the pot
	WentToShowdown bool
	FinalPotSize   int
	VPIP           bool // put chips in preflop beyond the blind
	PFR            bool // raised preflop
	Aggressive     int  // raises
	Passive        int  // calls
	Made           *poker.HandRank
}

// FromRecord derives a HandResult from a recorded hand.
func FromRecord(rec history.Record) HandResult {
	r := HandResult{
		Net:            rec.Net,
		Won:            rec.HeroWon(),
		WentToShowdown: rec.Showdown,
		FinalPotSize:   rec.Pot,
		Seat:           rec.Seat,
		Made:           rec.HeroRank,
	}
	if rec.BigBlind > 0 {
		r.NetBB = float64(rec.Net) / float64(rec.BigBlind)
	}
	for _, a := range rec.HeroActions() {
		switch a.Action {
		case game.Raise:
			r.Aggressive++
			if a.Street == game.Preflop {
				r.PFR = true
				r.VPIP = true
			}
		case game.Call:
			r.Passive++
			if a.Street == game.Preflop && a.Paid > 0 {
				r.VPIP = true
			}
		}
	}
	return r
}

// PositionStats tracks results for one seat.
type PositionStats struct {
	Hands  int
	SumBB  float64
	SumBB2 float64
}

// Statistics accumulates a user's results and tendencies.
type Statistics struct {
	Hands    int
	Wins     int
	NetChips int
	SumBB    float64
	SumBB2   float64   // Sum of squares for variance calculation
	Values   []float64 // Every NetBB, for median and percentiles

	ShowdownWins    int     // Hands won at showdown
	NonShowdownWins int     // Hands won when the opponent folded
	ShowdownBB      float64 // BB from showdown hands, wins and losses
	NonShowdownBB   float64 // BB from hands ending on a fold
	AllBB           float64 // Total BB for the ledger check

	PositionResults [2]PositionStats

	VPIPHands  int
	PFRHands   int
	Aggressive int
	Passive    int

	MaxPotChips int
	BestHand    *poker.HandRank
}

// Add incorporates a hand.
func (s *Statistics) Add(result HandResult) {
	netBB := result.NetBB
	s.Hands++
	s.NetChips += result.Net
	s.SumBB += netBB
	s.SumBB2 += netBB * netBB
	s.Values = append(s.Values, netBB)

	if result.Won {
		s.Wins++
		if result.WentToShowdown {
			s.ShowdownWins++
		} else {
			s.NonShowdownWins++
		}
	}
	if result.WentToShowdown {
		s.ShowdownBB += netBB
	} else {
		s.NonShowdownBB += netBB
	}
	s.AllBB += netBB

	if result.Seat == 0 || result.Seat == 1 {
		ps := &s.PositionResults[result.Seat]
		ps.Hands++
		ps.SumBB += netBB
		ps.SumBB2 += netBB * netBB
	}

	if result.VPIP {
		s.VPIPHands++
	}
	if result.PFR {
		s.PFRHands++
	}
	s.Aggressive += result.Aggressive
	s.Passive += result.Passive

	if result.FinalPotSize > s.MaxPotChips {
		s.MaxPotChips = result.FinalPotSize
	}
	if result.Made != nil && (s.BestHand == nil || result.Made.Beats(*s.BestHand)) {
		best := *result.Made
		s.BestHand = &best
	}
}

// Mean returns the average result in big blinds per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.SumBB / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumBB2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// BBPer100 returns the win rate in big blinds per hundred hands.
func (s *Statistics) BBPer100() float64 { return s.Mean() * 100 }

func (s *Statistics) ratio(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// WinRate returns the fraction of hands won or split.
func (s *Statistics) WinRate() float64 { return s.ratio(s.Wins) }

// VPIP returns the fraction of hands where chips went in voluntarily preflop.
func (s *Statistics) VPIP() float64 { return s.ratio(s.VPIPHands) }

// PFR returns the fraction of hands raised preflop.
func (s *Statistics) PFR() float64 { return s.ratio(s.PFRHands) }

// AggressionFactor returns raises per call. With no calls it returns the
// raise count.
func (s *Statistics) AggressionFactor() float64 {
	if s.Passive == 0 {
		return float64(s.Aggressive)
	}
	return float64(s.Aggressive) / float64(s.Passive)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PositionMean returns the mean result for a seat.
func (s *Statistics) PositionMean(seat int) float64 {
	if seat < 0 || seat > 1 {
		return 0
	}
	ps := s.PositionResults[seat]
	if ps.Hands == 0 {
		return 0
	}
	return ps.SumBB / float64(ps.Hands)
}

// IsLedgerBalanced checks if the accounting is consistent
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.AllBB-s.ShowdownBB-s.NonShowdownBB) <= 1e-6
}

// Validate checks the counters agree with each other.
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllBB=%.6f, ShowdownBB=%.6f, NonShowdownBB=%.6f",
			s.AllBB, s.ShowdownBB, s.NonShowdownBB)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}
	if s.ShowdownWins+s.NonShowdownWins != s.Wins {
		return fmt.Errorf("showdown wins (%d) plus non-showdown wins (%d) do not match wins (%d)",
			s.ShowdownWins, s.NonShowdownWins, s.Wins)
	}
	if s.Wins > s.Hands {
		return fmt.Errorf("total wins (%d) exceeds total hands (%d)", s.Wins, s.Hands)
	}
	if s.PFRHands > s.VPIPHands {
		return fmt.Errorf("PFR hands (%d) exceed VPIP hands (%d)", s.PFRHands, s.VPIPHands)
	}
	if n := s.PositionResults[0].Hands + s.PositionResults[1].Hands; n != s.Hands {
		return fmt.Errorf("position hands total (%d) does not match total hands (%d)", n, s.Hands)
	}
	return nil
}
