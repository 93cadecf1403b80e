package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/internal/game"
)

// LAGBot raises most of the time regardless of its cards.
type LAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewLAGBot creates a new LAGBot instance
func NewLAGBot(rng *rand.Rand, logger *log.Logger) *LAGBot {
	return &LAGBot{rng: rng, logger: logger}
}

func (l *LAGBot) Kind() string     { return "lag" }
func (l *LAGBot) Profile() Profile { return profileOf("lag") }

func (l *LAGBot) Decide(v game.View, _ game.PlayerID) (game.Action, int) {
	action, amount := checkOrCall(v)
	if l.rng.Float64() < 0.7 {
		action = game.Raise
		if v.CurrentBet == 0 {
			amount = 2 * v.BigBlind
		} else {
			amount = 2 * v.CurrentBet
		}
	}
	logDecision(l.logger, v, action, amount, 0)
	return action, amount
}
