package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokermentor/poker"
)

const (
	DefaultSmallBlind    = 1
	DefaultBigBlind      = 2
	DefaultStartingStack = 100
)

// StackPolicy decides what happens when a player owes more than they hold.
type StackPolicy uint8

const (
	// StackPolicyAllIn clamps the debit to the remaining stack.
	StackPolicyAllIn StackPolicy = iota
	// StackPolicyReject fails the operation with ErrInsufficientChips and
	// leaves the state unchanged.
	StackPolicyReject
)

func (p StackPolicy) String() string {
	if p == StackPolicyReject {
		return "reject"
	}
	return "all-in"
}

// ParseStackPolicy parses "all-in" or "reject".
func ParseStackPolicy(s string) (StackPolicy, error) {
	switch s {
	case "all-in", "allin", "":
		return StackPolicyAllIn, nil
	case "reject":
		return StackPolicyReject, nil
	}
	return 0, fmt.Errorf("unknown stack policy %q", s)
}

// Option configures a State during creation.
type Option func(*config)

type config struct {
	rng           *rand.Rand
	smallBlind    int
	bigBlind      int
	startingStack int
	stacks        []int
	newDeck       func() *poker.Deck
	logger        *log.Logger
	policy        StackPolicy
}

func defaultConfig() config {
	return config{
		smallBlind:    DefaultSmallBlind,
		bigBlind:      DefaultBigBlind,
		startingStack: DefaultStartingStack,
		policy:        StackPolicyAllIn,
	}
}

// WithRNG sets the random source used to shuffle each new deck.
func WithRNG(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithBlinds sets the small and big blind. Default is 1/2.
func WithBlinds(small, big int) Option {
	return func(c *config) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithStartingStack sets the same stack for both players. Default is 100.
func WithStartingStack(chips int) Option {
	return func(c *config) {
		c.startingStack = chips
		c.stacks = nil
	}
}

// WithStacks sets individual stacks in seat order.
func WithStacks(stacks ...int) Option {
	return func(c *config) {
		c.stacks = stacks
	}
}

// WithDeck supplies the deck for every new hand. Use it to replay a hand or
// to script a board in tests.
func WithDeck(newDeck func() *poker.Deck) Option {
	return func(c *config) {
		c.newDeck = newDeck
	}
}

// WithLogger sets the logger. Default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithStackPolicy sets the policy for debits larger than a stack.
func WithStackPolicy(policy StackPolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

func (c *config) validate() error {
	if c.smallBlind < 0 || c.bigBlind <= 0 || c.smallBlind > c.bigBlind {
		return fmt.Errorf("invalid blinds %d/%d", c.smallBlind, c.bigBlind)
	}
	if c.stacks != nil && len(c.stacks) != 2 {
		return fmt.Errorf("need 2 stacks, got %d", len(c.stacks))
	}
	for _, s := range c.stacks {
		if s < 0 {
			return fmt.Errorf("negative stack %d", s)
		}
	}
	if c.startingStack < 0 {
		return fmt.Errorf("negative starting stack %d", c.startingStack)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return nil
}
