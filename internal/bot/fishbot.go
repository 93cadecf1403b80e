package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/poker"
)

// FishBot plays almost any two cards and calls far too often. It only lets
// go of hands made of two small cards, and then not always.
type FishBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewFishBot creates a new FishBot instance
func NewFishBot(rng *rand.Rand, logger *log.Logger) *FishBot {
	return &FishBot{rng: rng, logger: logger}
}

func (f *FishBot) Kind() string     { return "fish" }
func (f *FishBot) Profile() Profile { return profileOf("fish") }

func (f *FishBot) Decide(v game.View, _ game.PlayerID) (game.Action, int) {
	action, amount := f.decide(v)
	logDecision(f.logger, v, action, amount, 0)
	return action, amount
}

func (f *FishBot) decide(v game.View) (game.Action, int) {
	small := v.Hole[0].Rank() <= poker.Seven && v.Hole[1].Rank() <= poker.Seven
	if small && f.rng.Float64() < 0.7 {
		return foldOrCheck(v)
	}
	if f.rng.Float64() < 0.8 {
		return checkOrCall(v)
	}
	return game.Raise, max(v.BigBlind, int(float64(v.CurrentBet)*1.5))
}
