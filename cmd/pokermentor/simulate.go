package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lox/pokermentor/internal/display"
	"github.com/lox/pokermentor/internal/simulator"
)

type SimulateCmd struct {
	Hands      int           `default:"10000" help:"Number of deals; each is played from both seats"`
	Hero       string        `default:"tag" help:"Opponent style whose results are reported"`
	Opponent   string        `default:"fish" help:"Opponent style it plays against"`
	Workers    int           `help:"Parallel workers (0 uses every CPU)"`
	Timeout    time.Duration `help:"Give up after this long (0 for no limit)"`
	WriteStats string        `type:"path" help:"Also write the results as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sim, err := simulator.New(simulator.Config{
		Hands:         c.Hands,
		Hero:          c.Hero,
		Opponent:      c.Opponent,
		Seed:          cfg.Seed,
		Workers:       workers,
		SmallBlind:    cfg.Table.SmallBlind,
		BigBlind:      cfg.Table.BigBlind,
		StartingStack: cfg.Table.StartingStack,
		Logger:        logger.WithPrefix("simulate"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	logger.Info("Starting simulation", "hands", c.Hands, "hero", c.Hero, "opponent", c.Opponent, "workers", workers, "seed", sim.Seed())
	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation finished", "duration", time.Since(start).Round(time.Millisecond))

	if c.WriteStats != "" {
		report := simulator.NewReport(stats, c.Hero, c.Opponent, sim.Seed(), time.Now())
		if err := simulator.WriteReport(c.WriteStats, report); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
		logger.Info("Wrote stats", "file", c.WriteStats)
	}

	fmt.Println(display.DefaultStyles().Header.Render(" Simulation results "))
	return simulator.WriteSummary(os.Stdout, stats, c.Hero, c.Opponent)
}
