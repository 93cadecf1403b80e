package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/poker"
)

// NitBot waits for big pairs and close suited cards and raises only with
// those.
type NitBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewNitBot creates a new NitBot instance
func NewNitBot(rng *rand.Rand, logger *log.Logger) *NitBot {
	return &NitBot{rng: rng, logger: logger}
}

func (n *NitBot) Kind() string     { return "nit" }
func (n *NitBot) Profile() Profile { return profileOf("nit") }

func (n *NitBot) Decide(v game.View, _ game.PlayerID) (game.Action, int) {
	strength := max(nitStrength(poker.StartingHandOf(v.Hole[0], v.Hole[1])), madeHandStrength(v))

	var (
		action game.Action
		amount int
	)
	switch {
	case strength < 0.3:
		action, amount = foldOrCheck(v)
	case strength < 0.6:
		action, amount = checkOrCall(v)
	default:
		action, amount = game.Raise, max(3*v.BigBlind, 2*v.CurrentBet)
	}
	logDecision(n.logger, v, action, amount, strength)
	return action, amount
}

func nitStrength(h poker.StartingHand) float64 {
	switch {
	case h.Pair() && h.High >= poker.Jack:
		return 0.9
	case h.Suited && h.Gap() <= 2:
		return 0.7
	case h.High >= poker.Jack:
		return 0.5
	}
	return 0.2
}
