// Package simulator plays computer opponents against each other to measure
// how a strategy performs over many hands.
package simulator

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokermentor/internal/bot"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Hands         int
	Hero          string // opponent kind whose results are measured
	Opponent      string
	Seed          int64
	Workers       int
	SmallBlind    int
	BigBlind      int
	StartingStack int
	Logger        *log.Logger
}

// Simulator runs heads-up hands between two opponent kinds.
type Simulator struct {
	config Config
}

// New validates the configuration and creates a simulator.
func New(config Config) (*Simulator, error) {
	if config.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", config.Hands)
	}
	for _, kind := range []string{config.Hero, config.Opponent} {
		if !bot.Valid(kind) {
			return nil, fmt.Errorf("%w: %q", bot.ErrUnknownKind, kind)
		}
	}
	if config.SmallBlind == 0 && config.BigBlind == 0 {
		config.SmallBlind, config.BigBlind = game.DefaultSmallBlind, game.DefaultBigBlind
	}
	if config.StartingStack == 0 {
		config.StartingStack = game.DefaultStartingStack
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	config.Seed = randutil.Resolve(config.Seed)
	return &Simulator{config: config}, nil
}

// Seed returns the resolved seed, for replaying a run.
func (s *Simulator) Seed() int64 { return s.config.Seed }

// Run plays every hand twice, once from each seat with the same deck, and
// returns the hero's statistics. Hands run on the configured number of
// workers; results are added in hand order so runs with equal seeds match.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([][2]statistics.HandResult, s.config.Hands)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for hand := range s.config.Hands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			handSeed := s.config.Seed + int64(hand)
			for seat := range 2 {
				r, err := s.playHand(handSeed, seat)
				if err != nil {
					return fmt.Errorf("hand %d (seed %d, seat %d): %w", hand+1, handSeed, seat, err)
				}
				results[hand][seat] = r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, pair := range results {
		stats.Add(pair[0])
		stats.Add(pair[1])
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	s.config.Logger.Debug("Simulation complete", "hands", stats.Hands, "bb_per_100", stats.BBPer100())
	return stats, nil
}

// playHand plays one hand with the hero in the given seat. The deck depends
// only on handSeed so both seats see the same cards.
func (s *Simulator) playHand(handSeed int64, heroSeat int) (statistics.HandResult, error) {
	hero := game.PlayerID("hero")
	villain := game.PlayerID("villain")
	players := []game.PlayerID{hero, villain}
	if heroSeat == 1 {
		players[0], players[1] = villain, hero
	}

	st, err := game.New(players,
		game.WithRNG(randutil.New(handSeed)),
		game.WithBlinds(s.config.SmallBlind, s.config.BigBlind),
		game.WithStartingStack(s.config.StartingStack),
	)
	if err != nil {
		return statistics.HandResult{}, err
	}

	botRNG := randutil.New(handSeed ^ int64(heroSeat+1))
	heroBot, err := bot.New(s.config.Hero, randutil.Child(botRNG), nil)
	if err != nil {
		return statistics.HandResult{}, err
	}
	villainBot, err := bot.New(s.config.Opponent, randutil.Child(botRNG), nil)
	if err != nil {
		return statistics.HandResult{}, err
	}

	started := time.Now()
	if _, err := game.PlayHand(st, map[game.PlayerID]game.Decider{hero: heroBot, villain: villainBot}); err != nil {
		return statistics.HandResult{}, err
	}
	rec, err := history.NewRecord(s.config.Hero, s.config.Opponent, hero, st, started, time.Now())
	if err != nil {
		return statistics.HandResult{}, err
	}
	return statistics.FromRecord(rec), nil
}

// WriteSummary writes a report of a finished simulation.
func WriteSummary(w io.Writer, stats *statistics.Statistics, hero, opponent string) error {
	low, high := stats.ConfidenceInterval95()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "=== %s vs %s ===\n", hero, opponent)
	fmt.Fprintf(tw, "Hands played:\t%d\n", stats.Hands)
	fmt.Fprintf(tw, "Win rate:\t%.2f bb/100\n", stats.BBPer100())
	fmt.Fprintf(tw, "Mean:\t%.4f bb/hand\n", stats.Mean())
	fmt.Fprintf(tw, "Median:\t%.4f bb/hand\n", stats.Median())
	fmt.Fprintf(tw, "Std dev:\t%.4f bb\n", stats.StdDev())
	fmt.Fprintf(tw, "95%% CI:\t[%.4f, %.4f] bb/hand\n", low, high)
	fmt.Fprintf(tw, "Percentiles:\tP5=%.2f P25=%.2f P75=%.2f P95=%.2f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(tw, "\n=== Profit source ===\n")
	fmt.Fprintf(tw, "Pots won:\t%d (%d at showdown, %d uncontested)\n", stats.Wins, stats.ShowdownWins, stats.NonShowdownWins)
	fmt.Fprintf(tw, "Showdown:\t%.2f bb/hand\n", stats.ShowdownBB/float64(stats.Hands))
	fmt.Fprintf(tw, "Non-showdown:\t%.2f bb/hand\n", stats.NonShowdownBB/float64(stats.Hands))

	fmt.Fprintf(tw, "\n=== Tendencies ===\n")
	fmt.Fprintf(tw, "VPIP / PFR:\t%.1f%% / %.1f%%\n", stats.VPIP()*100, stats.PFR()*100)
	fmt.Fprintf(tw, "Aggression:\t%.2f\n", stats.AggressionFactor())
	fmt.Fprintf(tw, "Biggest pot:\t%d chips\n", stats.MaxPotChips)
	if stats.BestHand != nil {
		fmt.Fprintf(tw, "Best hand:\t%s\n", stats.BestHand)
	}

	fmt.Fprintf(tw, "\n=== Position ===\n")
	for seat, name := range []string{"Small blind", "Big blind"} {
		if ps := stats.PositionResults[seat]; ps.Hands > 0 {
			fmt.Fprintf(tw, "%s:\t%d hands, %.3f bb/hand\n", name, ps.Hands, stats.PositionMean(seat))
		}
	}
	return tw.Flush()
}
