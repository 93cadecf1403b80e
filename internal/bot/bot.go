// Package bot provides the computer opponents a user plays against. Each
// opponent is a game.Decider chosen by name.
package bot

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/poker"
)

// ErrUnknownKind is returned for an opponent name that is not registered.
var ErrUnknownKind = errors.New("unknown opponent kind")

// Profile summarises an opponent's style on a 0..1 scale.
type Profile struct {
	Aggression float64
	Tightness  float64
}

// Bot is a named opponent.
type Bot interface {
	game.Decider
	Kind() string
	Profile() Profile
}

type entry struct {
	description string
	profile     Profile
	build       func(rng *rand.Rand, logger *log.Logger) Bot
}

var registry = map[string]entry{
	"fish": {
		description: "Loose-passive player who calls too much and rarely folds",
		profile:     Profile{Aggression: 0.2, Tightness: 0.3},
		build:       func(rng *rand.Rand, logger *log.Logger) Bot { return NewFishBot(rng, logger) },
	},
	"nit": {
		description: "Very tight player who only continues with strong hands",
		profile:     Profile{Aggression: 0.4, Tightness: 0.9},
		build:       func(rng *rand.Rand, logger *log.Logger) Bot { return NewNitBot(rng, logger) },
	},
	"tag": {
		description: "Tight-aggressive player with a solid, selective range",
		profile:     Profile{Aggression: 0.7, Tightness: 0.7},
		build:       func(rng *rand.Rand, logger *log.Logger) Bot { return NewTAGBot(rng, logger) },
	},
	"lag": {
		description: "Loose-aggressive player who bets and raises frequently",
		profile:     Profile{Aggression: 0.8, Tightness: 0.3},
		build:       func(rng *rand.Rand, logger *log.Logger) Bot { return NewLAGBot(rng, logger) },
	},
}

var kinds = []string{"fish", "nit", "tag", "lag"}

// New builds an opponent by kind. A nil logger discards output.
func New(kind string, rng *rand.Rand, logger *log.Logger) (Bot, error) {
	e, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if rng == nil {
		return nil, fmt.Errorf("opponent %q needs an rng", kind)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return e.build(rng, logger.WithPrefix(kind)), nil
}

// Kinds lists the registered opponent names in a stable order.
func Kinds() []string {
	return append([]string(nil), kinds...)
}

// Describe returns a one-line description of an opponent kind.
func Describe(kind string) (string, error) {
	e, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.description, nil
}

// Valid reports whether kind is registered.
func Valid(kind string) bool {
	_, ok := registry[kind]
	return ok
}

func profileOf(kind string) Profile { return registry[kind].profile }

// checkOrCall is the passive continue: check when free, otherwise call.
func checkOrCall(v game.View) (game.Action, int) {
	if v.CanCheck() {
		return game.Check, 0
	}
	return game.Call, 0
}

// foldOrCheck gives up the hand unless it costs nothing to continue.
func foldOrCheck(v game.View) (game.Action, int) {
	if v.CanCheck() {
		return game.Check, 0
	}
	return game.Fold, 0
}

func madeHandStrength(v game.View) float64 {
	return analysis.MadeHandStrength(v.Hole, v.Community)
}

func logDecision(logger *log.Logger, v game.View, action game.Action, amount int, strength float64) {
	logger.Debug("Decision",
		"hole", poker.FormatCards(v.Hole[:]),
		"street", v.Street,
		"to_call", v.ToCall,
		"strength", fmt.Sprintf("%.2f", strength),
		"action", action,
		"amount", amount)
}
