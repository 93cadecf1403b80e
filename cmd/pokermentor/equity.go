package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/display"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/poker"
)

type EquityCmd struct {
	Hole    string `arg:"" help:"Two hole cards, e.g. AsKd"`
	Board   string `short:"b" help:"Zero to five community cards"`
	Samples int    `short:"s" help:"Monte Carlo samples (0 uses the config file)"`
}

func (c *EquityCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	samples := c.Samples
	if samples <= 0 {
		samples = cfg.Analysis.EquitySamples
	}
	ctx, stop := signalContext()
	defer stop()
	return c.run(ctx, os.Stdout, samples, randutil.Resolve(cfg.Seed))
}

func (c *EquityCmd) run(ctx context.Context, w io.Writer, samples int, seed int64) error {
	hole, err := parseHole(c.Hole)
	if err != nil {
		return err
	}
	var board []poker.Card
	if c.Board != "" {
		if board, err = poker.ParseCards(c.Board); err != nil {
			return err
		}
	}

	start := time.Now()
	eq, err := analysis.EstimateEquity(ctx, hole, board, samples, randutil.New(seed))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	styles := display.DefaultStyles()
	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf(" %s vs a random hand ", styles.Cards(hole[:]))))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(board) > 0 {
		fmt.Fprintf(tw, "Board:\t%s\n", styles.Cards(board))
	}
	fmt.Fprintf(tw, "Equity:\t%s\n", styles.Success.Render(fmt.Sprintf("%.2f%%", eq.Equity()*100)))
	fmt.Fprintf(tw, "Win:\t%.2f%%\n", eq.Win()*100)
	fmt.Fprintf(tw, "Tie:\t%.2f%%\n", eq.Tie()*100)
	fmt.Fprintf(tw, "Lose:\t%.2f%%\n", eq.Loss()*100)
	fmt.Fprintf(tw, "Samples:\t%d in %s\n", eq.Samples, elapsed.Round(time.Millisecond))
	return tw.Flush()
}
