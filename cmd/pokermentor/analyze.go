package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/display"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/poker"
)

type AnalyzeCmd struct {
	Hand     string `arg:"" help:"Starting hand such as AKs, QJo or 99, or two cards such as AsKd"`
	Board    string `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Position string `short:"p" default:"middle" enum:"early,middle,late,blinds" help:"Table position for preflop advice"`
	Samples  int    `short:"s" help:"Monte Carlo samples (0 uses the config file)"`
}

func (c *AnalyzeCmd) Run(g *Globals) error {
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

func (c *AnalyzeCmd) run(ctx context.Context, w io.Writer, samples int, seed int64) error {
	styles := display.DefaultStyles()

	if c.Board == "" {
		hand, err := parseStartingHand(c.Hand)
		if err != nil {
			return err
		}
		pos, err := analysis.ParsePosition(c.Position)
		if err != nil {
			return err
		}
		r, err := analysis.AnalyzePreflop(hand, pos)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf(" %s from %s position ", r.Hand, r.Position)))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Strength:\t%.2f (base %.2f)\n", r.Strength, r.BaseStrength)
		fmt.Fprintf(tw, "Category:\t%s\n", r.Category)
		fmt.Fprintf(tw, "Type:\t%s\n", r.Bucket)
		fmt.Fprintf(tw, "Better than:\t%.0f%% of starting hands\n", r.Percentile*100)
		if err := tw.Flush(); err != nil {
			return err
		}
		return writeRecommendations(w, styles, r.Recommendations)
	}

	hole, err := parseHole(c.Hand)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return err
	}
	r, err := analysis.AnalyzePostflop(ctx, hole, board, samples, randutil.New(seed))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Header.Render(" Postflop analysis "))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Hole:\t%s\n", styles.Cards(hole[:]))
	fmt.Fprintf(tw, "Board:\t%s\n", styles.Cards(board))
	fmt.Fprintf(tw, "Made hand:\t%s %s\n", r.Made, styles.Cards(r.Best[:]))
	fmt.Fprintf(tw, "Equity:\t%.1f%% (win %.1f%%, tie %.1f%%) over %d samples\n",
		r.Equity.Equity()*100, r.Equity.Win()*100, r.Equity.Tie()*100, r.Equity.Samples)
	if err := tw.Flush(); err != nil {
		return err
	}
	return writeRecommendations(w, styles, r.Recommendations)
}

func writeRecommendations(w io.Writer, styles *display.Styles, recs []string) error {
	if len(recs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, styles.HandInfo.Render("Advice:")); err != nil {
		return err
	}
	for _, rec := range recs {
		if _, err := fmt.Fprintf(w, "  • %s\n", rec); err != nil {
			return err
		}
	}
	return nil
}

// parseStartingHand accepts notation ("AKs") or two concrete cards ("AsKd").
func parseStartingHand(s string) (poker.StartingHand, error) {
	if h, err := poker.ParseStartingHand(s); err == nil {
		return h, nil
	}
	hole, err := parseHole(s)
	if err != nil {
		return poker.StartingHand{}, fmt.Errorf("hand %q is neither notation like AKs nor two cards: %w", s, err)
	}
	return poker.StartingHandOf(hole[0], hole[1]), nil
}

// parseHole parses exactly two distinct cards.
func parseHole(s string) ([2]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return [2]poker.Card{}, err
	}
	if len(cards) != 2 {
		return [2]poker.Card{}, fmt.Errorf("%w: need two hole cards, got %d", poker.ErrInvalidHand, len(cards))
	}
	if cards[0] == cards[1] {
		return [2]poker.Card{}, fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidHand, cards[0])
	}
	return [2]poker.Card{cards[0], cards[1]}, nil
}
