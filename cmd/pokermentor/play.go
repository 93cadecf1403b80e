package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/display"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/internal/phh"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/internal/session"
)

type PlayCmd struct {
	Opponent string `short:"o" help:"Opponent style (fish|nit|tag|lag); defaults to the config file"`
	Name     string `short:"n" default:"you" help:"Your player name"`
	Plain    bool   `help:"Line-by-line output instead of the full-screen interface"`
	LogFile  string `default:"pokermentor.log" help:"Where the full-screen interface writes its log"`
	Export   string `type:"path" help:"Write the hands you played to this file on exit (.phhs for Poker Hand History, otherwise JSON lines)"`
}

func (c *PlayCmd) Validate() error {
	if c.Opponent != "" && !bot.Valid(c.Opponent) {
		return fmt.Errorf("%w: %q (choose from %v)", bot.ErrUnknownKind, c.Opponent, bot.Kinds())
	}
	return nil
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	logFile := os.Stderr
	if !c.Plain {
		// The full-screen interface owns the terminal.
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}()
		logFile = f
	}
	logger := newLogger(cfg, logFile)

	sc, err := cfg.SessionConfig()
	if err != nil {
		return err
	}
	seed := randutil.Resolve(sc.Seed)
	sc.Seed = seed
	mgr, err := session.NewManager(sc,
		session.WithLogger(logger),
		session.WithHistory(history.NewStore(cfg.Session.HistoryLimit, nil)),
	)
	if err != nil {
		return err
	}
	logger.Info("Starting play", "opponent", c.Opponent, "seed", seed)

	ctrl := display.NewController(mgr, c.Name, c.Opponent, cfg.Analysis.EquitySamples,
		randutil.New(seed+1), display.DefaultStyles())

	ctx, stop := signalContext()
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return mgr.Run(ctx)
	})
	eg.Go(func() error {
		defer cancel()
		if c.Plain {
			return display.RunPlain(ctx, ctrl, os.Stdin, os.Stdout, logger)
		}
		return display.RunTUI(ctx, ctrl, logger)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if c.Export != "" && mgr.History().Count(c.Name) > 0 {
		n, err := c.export(mgr.History())
		if err != nil {
			return fmt.Errorf("failed to export history: %w", err)
		}
		fmt.Printf("Exported %d hands to %s\n", n, c.Export)
	}
	if s, ok := mgr.Statistics().Snapshot(c.Name); ok {
		fmt.Printf("Played %d hands, %+d chips (%.1f bb/100)\n", s.Hands, s.NetChips, s.BBPer100())
	}
	return nil
}

func (c *PlayCmd) export(store *history.Store) (int, error) {
	if !phh.IsPHHFile(c.Export) {
		return store.Export(c.Name, c.Export)
	}
	recs := store.Recent(c.Name, 0)
	slices.Reverse(recs)
	return len(recs), phh.WriteFile(c.Export, recs)
}
