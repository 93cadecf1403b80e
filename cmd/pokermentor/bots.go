package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/randutil"
)

type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *BotsCmd) run(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAGGRESSION\tTIGHTNESS\tDESCRIPTION")
	for _, kind := range bot.Kinds() {
		desc, err := bot.Describe(kind)
		if err != nil {
			return err
		}
		b, err := bot.New(kind, randutil.New(1), nil)
		if err != nil {
			return err
		}
		p := b.Profile()
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%s\n", kind, p.Aggression, p.Tightness, desc)
	}
	return tw.Flush()
}
