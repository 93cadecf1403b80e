package analysis

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/pokermentor/poker"
)

// PostflopReport is the coaching summary once the flop is out.
type PostflopReport struct {
	Hole            [2]poker.Card
	Board           []poker.Card
	Made            poker.HandRank
	Best            [5]poker.Card
	Equity          Equity
	Recommendations []string
}

// AnalyzePostflop evaluates the made hand and estimates equity against a
// random hand. The board must hold 3, 4 or 5 cards.
func AnalyzePostflop(ctx context.Context, hole [2]poker.Card, board []poker.Card, samples int, rng *rand.Rand) (PostflopReport, error) {
	if len(board) < 3 || len(board) > 5 {
		return PostflopReport{}, fmt.Errorf("%w: postflop board needs 3 to 5 cards, got %d", poker.ErrInvalidHand, len(board))
	}
	made, best, err := poker.BestHand(append(hole[:], board...))
	if err != nil {
		return PostflopReport{}, err
	}
	eq, err := EstimateEquity(ctx, hole, board, samples, rng)
	if err != nil {
		return PostflopReport{}, err
	}

	r := PostflopReport{
		Hole:   hole,
		Board:  append([]poker.Card(nil), board...),
		Made:   made,
		Best:   best,
		Equity: eq,
	}

	e := eq.Equity()
	switch {
	case e >= 0.70:
		r.Recommendations = append(r.Recommendations, "Strong equity: bet or raise for value.")
	case e >= 0.50:
		r.Recommendations = append(r.Recommendations, "Ahead of a random hand: bet or call.")
	case e >= 0.30:
		r.Recommendations = append(r.Recommendations, "Marginal equity: check and call only small bets.")
	default:
		r.Recommendations = append(r.Recommendations, "Weak equity: check and fold to pressure.")
	}

	switch len(board) {
	case 3:
		r.Recommendations = append(r.Recommendations, "Two cards to come, so draws carry extra weight.")
	case 4:
		r.Recommendations = append(r.Recommendations, "One card to come; make draws pay a fair price.")
	case 5:
		r.Recommendations = append(r.Recommendations, "No cards to come; value bet strong hands and bluff-catch carefully.")
	}
	return r, nil
}

// MadeHandStrength scores the hand made with the board on the same 0..1
// scale as HandStrength. It returns zero before the flop.
func MadeHandStrength(hole [2]poker.Card, board []poker.Card) float64 {
	if len(board) < 3 {
		return 0
	}
	hr, err := poker.Evaluate(append(hole[:], board...))
	if err != nil {
		return 0
	}
	switch hr.Category() {
	case poker.HighCard:
		return 0.1
	case poker.OnePair:
		return 0.45 + float64(hr.TieBreak()[0])/poker.NumRanks*0.2
	case poker.TwoPair:
		return 0.72
	case poker.ThreeOfAKind:
		return 0.8
	case poker.Straight, poker.Flush:
		return 0.88
	}
	return 0.95
}
