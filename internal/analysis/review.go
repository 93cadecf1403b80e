package analysis

import (
	"fmt"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/poker"
)

// Review grades the hero's play in a completed hand.
type Review struct {
	Rating    int // 1..10
	Mistakes  []string
	GoodPlays []string
}

const baseRating = 7

// ReviewHand rates a completed hand from 1 to 10. It starts at 7, loses a
// point per mistake and gains one per good play. Raising weak holdings and
// folding strong ones are mistakes; raising strong holdings is a good play.
func ReviewHand(rec history.Record) Review {
	var r Review
	hole := rec.Hole[rec.Hero]
	for _, a := range rec.HeroActions() {
		strength := strengthAt(hole, rec.Board, a.Street)
		switch {
		case a.Action == game.Raise && strength < 0.4:
			r.Mistakes = append(r.Mistakes,
				fmt.Sprintf("Raised on the %s with a weak hand (strength %.2f).", a.Street, strength))
		case a.Action == game.Fold && strength > 0.7:
			r.Mistakes = append(r.Mistakes,
				fmt.Sprintf("Folded a strong hand on the %s (strength %.2f).", a.Street, strength))
		case a.Action == game.Raise && strength > 0.6:
			r.GoodPlays = append(r.GoodPlays,
				fmt.Sprintf("Raised for value on the %s (strength %.2f).", a.Street, strength))
		}
	}
	r.Rating = min(10, max(1, baseRating-len(r.Mistakes)+len(r.GoodPlays)))
	return r
}

// strengthAt scores the hole cards with the board as it stood on street.
func strengthAt(hole [2]poker.Card, board []poker.Card, street game.Street) float64 {
	visible := 0
	switch street {
	case game.Flop:
		visible = 3
	case game.Turn:
		visible = 4
	case game.River, game.Showdown:
		visible = 5
	}
	if visible == 0 || len(board) < visible {
		return HandStrength(poker.StartingHandOf(hole[0], hole[1]))
	}
	return MadeHandStrength(hole, board[:visible])
}
