package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/poker"
)

// TAGBot is a Tight Aggressive bot: it folds the bottom of its range and
// raises the top of it.
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewTAGBot creates a new TAGBot instance
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	return &TAGBot{rng: rng, logger: logger}
}

func (t *TAGBot) Kind() string     { return "tag" }
func (t *TAGBot) Profile() Profile { return profileOf("tag") }

func (t *TAGBot) Decide(v game.View, _ game.PlayerID) (game.Action, int) {
	strength := max(tagStrength(poker.StartingHandOf(v.Hole[0], v.Hole[1])), madeHandStrength(v))

	var (
		action game.Action
		amount int
	)
	switch {
	case strength < 0.4:
		action, amount = foldOrCheck(v)
	case strength > 0.7:
		action = game.Raise
		if v.CurrentBet == 0 {
			amount = 3 * v.BigBlind
		} else {
			amount = int(float64(v.CurrentBet) * 2.5)
		}
	default:
		action, amount = checkOrCall(v)
	}
	logDecision(t.logger, v, action, amount, strength)
	return action, amount
}

func tagStrength(h poker.StartingHand) float64 {
	hi := float64(h.High) / poker.NumRanks
	switch {
	case h.Pair():
		return 0.5 + hi*0.5
	case h.Suited:
		return 0.3 + hi*0.3 + (1-float64(h.Gap())*0.1)*0.2
	}
	return 0.2 + hi*0.3
}
