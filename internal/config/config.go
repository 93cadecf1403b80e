// Package config loads the HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/internal/session"
)

// DefaultEquitySamples is the Monte Carlo sample count when none is set.
const DefaultEquitySamples = 10000

// Config is the complete configuration. Every block is optional.
type Config struct {
	LogLevel string `hcl:"log_level,optional"`
	Seed     int64  `hcl:"seed,optional"`

	Table    *TableSettings    `hcl:"table,block"`
	Session  *SessionSettings  `hcl:"session,block"`
	Analysis *AnalysisSettings `hcl:"analysis,block"`
}

// TableSettings describes the blinds and stacks.
type TableSettings struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	StackPolicy   string `hcl:"stack_policy,optional"`
}

// SessionSettings controls session lifetime and history.
type SessionSettings struct {
	DefaultOpponent string `hcl:"default_opponent,optional"`
	// IdleTimeout is a Go duration such as "30m". "0s" disables eviction.
	IdleTimeout  string `hcl:"idle_timeout,optional"`
	HistoryLimit int    `hcl:"history_limit,optional"`
}

// AnalysisSettings controls hand analysis.
type AnalysisSettings struct {
	EquitySamples int `hcl:"equity_samples,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Table: &TableSettings{
			SmallBlind:    game.DefaultSmallBlind,
			BigBlind:      game.DefaultBigBlind,
			StartingStack: game.DefaultStartingStack,
			StackPolicy:   game.StackPolicyAllIn.String(),
		},
		Session: &SessionSettings{
			DefaultOpponent: "fish",
			IdleTimeout:     "30m",
			HistoryLimit:    history.DefaultLimit,
		},
		Analysis: &AnalysisSettings{
			EquitySamples: DefaultEquitySamples,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.Table.SmallBlind == 0 && c.Table.BigBlind == 0 {
		c.Table.SmallBlind = defaults.Table.SmallBlind
		c.Table.BigBlind = defaults.Table.BigBlind
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = defaults.Table.StartingStack
	}
	if c.Table.StackPolicy == "" {
		c.Table.StackPolicy = defaults.Table.StackPolicy
	}

	if c.Session == nil {
		c.Session = defaults.Session
	}
	if c.Session.DefaultOpponent == "" {
		c.Session.DefaultOpponent = defaults.Session.DefaultOpponent
	}
	if c.Session.IdleTimeout == "" {
		c.Session.IdleTimeout = defaults.Session.IdleTimeout
	}
	if c.Session.HistoryLimit == 0 {
		c.Session.HistoryLimit = defaults.Session.HistoryLimit
	}

	if c.Analysis == nil {
		c.Analysis = defaults.Analysis
	}
	if c.Analysis.EquitySamples == 0 {
		c.Analysis.EquitySamples = defaults.Analysis.EquitySamples
	}
}

// Validate checks every setting. It expects defaults to have been applied.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	t := c.Table
	if t.BigBlind <= 0 {
		return fmt.Errorf("big blind must be positive")
	}
	if t.SmallBlind < 0 || t.SmallBlind > t.BigBlind {
		return fmt.Errorf("small blind must be between 0 and the big blind, got %d/%d", t.SmallBlind, t.BigBlind)
	}
	if t.StartingStack < t.BigBlind {
		return fmt.Errorf("starting stack %d cannot cover the big blind %d", t.StartingStack, t.BigBlind)
	}
	if _, err := game.ParseStackPolicy(t.StackPolicy); err != nil {
		return err
	}

	s := c.Session
	if !bot.Valid(s.DefaultOpponent) {
		return fmt.Errorf("default opponent: %w: %q", bot.ErrUnknownKind, s.DefaultOpponent)
	}
	if d, err := time.ParseDuration(s.IdleTimeout); err != nil {
		return fmt.Errorf("invalid idle timeout %q: %w", s.IdleTimeout, err)
	} else if d < 0 {
		return fmt.Errorf("idle timeout cannot be negative")
	}
	if s.HistoryLimit < 0 {
		return fmt.Errorf("history limit cannot be negative")
	}

	if c.Analysis.EquitySamples <= 0 {
		return fmt.Errorf("equity samples must be positive")
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SessionConfig converts the table and session blocks for the session
// manager. The config must be valid.
func (c *Config) SessionConfig() (session.Config, error) {
	policy, err := game.ParseStackPolicy(c.Table.StackPolicy)
	if err != nil {
		return session.Config{}, err
	}
	idle, err := time.ParseDuration(c.Session.IdleTimeout)
	if err != nil {
		return session.Config{}, fmt.Errorf("invalid idle timeout %q: %w", c.Session.IdleTimeout, err)
	}
	return session.Config{
		SmallBlind:      c.Table.SmallBlind,
		BigBlind:        c.Table.BigBlind,
		StartingStack:   c.Table.StartingStack,
		StackPolicy:     policy,
		DefaultOpponent: c.Session.DefaultOpponent,
		IdleTimeout:     idle,
		Seed:            c.Seed,
	}, nil
}
