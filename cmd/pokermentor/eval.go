package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/display"
	"github.com/lox/pokermentor/poker"
)

type EvalCmd struct {
	Cards   string `arg:"" help:"Five to seven cards, e.g. 'AsAh KdKcQd2h3s'"`
	Compare string `help:"A second set of cards to compare against"`
}

func (c *EvalCmd) Run(g *Globals) error {
	if _, err := g.load(); err != nil {
		return err
	}
	return c.run(os.Stdout)
}

func (c *EvalCmd) run(w io.Writer) error {
	styles := display.DefaultStyles()
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	rank, best, err := poker.BestHand(cards)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Cards:\t%s\n", styles.Cards(cards))
	fmt.Fprintf(tw, "Hand:\t%s\n", styles.HandInfo.Render(rank.String()))
	fmt.Fprintf(tw, "Best five:\t%s\n", styles.Cards(best[:]))
	if desc, err := analysis.Describe(cards); err == nil {
		fmt.Fprintf(tw, "Fast evaluator:\t%s\n", desc)
	}

	if c.Compare != "" {
		other, err := poker.ParseCards(c.Compare)
		if err != nil {
			return err
		}
		otherRank, err := poker.Evaluate(other)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "Against:\t%s (%s)\n", styles.Cards(other), otherRank)
		var verdict string
		switch rank.Compare(otherRank) {
		case 1:
			verdict = styles.Success.Render("first hand wins")
		case -1:
			verdict = styles.Error.Render("second hand wins")
		default:
			verdict = styles.Warning.Render("split pot")
		}
		fmt.Fprintf(tw, "Result:\t%s\n", verdict)
	}
	return tw.Flush()
}
