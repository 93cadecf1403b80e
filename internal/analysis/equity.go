package analysis

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/poker"
)

// ErrNoSamples is returned when an equity estimate is asked for zero samples.
var ErrNoSamples = errors.New("sample count must be positive")

// Equity is the outcome of a Monte Carlo run against one random hand.
type Equity struct {
	Samples int
	Wins    int
	Ties    int
	Losses  int
}

// Win returns the fraction of samples won outright.
func (e Equity) Win() float64 { return e.frac(e.Wins) }

// Tie returns the fraction of samples split.
func (e Equity) Tie() float64 { return e.frac(e.Ties) }

// Loss returns the fraction of samples lost.
func (e Equity) Loss() float64 { return e.frac(e.Losses) }

// Equity returns the pot share: wins plus half of ties.
func (e Equity) Equity() float64 {
	if e.Samples == 0 {
		return 0
	}
	return (float64(e.Wins) + float64(e.Ties)/2) / float64(e.Samples)
}

func (e Equity) frac(n int) float64 {
	if e.Samples == 0 {
		return 0
	}
	return float64(n) / float64(e.Samples)
}

func (e *Equity) add(o Equity) {
	e.Samples += o.Samples
	e.Wins += o.Wins
	e.Ties += o.Ties
	e.Losses += o.Losses
}

// cardSet is a bitset over card indices.
type cardSet uint64

func (cs *cardSet) add(c poker.Card)          { *cs |= 1 << c.Index() }
func (cs cardSet) contains(c poker.Card) bool { return cs&(1<<c.Index()) != 0 }

// EstimateEquity deals the opponent a random hand and runs out the board
// samples times, split across workers. The rng only seeds the workers, so a
// fixed seed gives a repeatable estimate.
func EstimateEquity(ctx context.Context, hole [2]poker.Card, board []poker.Card, samples int, rng *rand.Rand) (Equity, error) {
	if samples <= 0 {
		return Equity{}, ErrNoSamples
	}
	switch len(board) {
	case 0, 3, 4, 5:
	default:
		return Equity{}, fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", poker.ErrInvalidHand, len(board))
	}

	var used cardSet
	for _, c := range append(hole[:], board...) {
		if !c.Valid() {
			return Equity{}, fmt.Errorf("%w: card out of range", poker.ErrInvalidHand)
		}
		if used.contains(c) {
			return Equity{}, fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidHand, c)
		}
		used.add(c)
	}

	var available []poker.Card
	for suit := range poker.Suit(poker.NumSuits) {
		for rank := range poker.Rank(poker.NumRanks) {
			if c := poker.NewCard(rank, suit); !used.contains(c) {
				available = append(available, c)
			}
		}
	}

	workers := min(runtime.NumCPU(), 8, samples)
	perWorker := samples / workers
	remainder := samples % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan Equity, workers)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}
		// Each worker owns its generator; rand.Rand is not safe to share.
		workerRNG := randutil.Child(rng)
		g.Go(func() error {
			res, err := runEquityWorker(ctx, hole, board, available, n, workerRNG)
			if err != nil {
				return err
			}
			results <- res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Equity{}, err
	}
	close(results)

	var total Equity
	for r := range results {
		total.add(r)
	}
	return total, nil
}

func runEquityWorker(ctx context.Context, hole [2]poker.Card, board, available []poker.Card, n int, rng *rand.Rand) (Equity, error) {
	deck := append([]poker.Card(nil), available...)
	need := 2 + 5 - len(board)
	full := make([]poker.Card, 5)
	copy(full, board)

	var res Equity
	for i := range n {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Equity{}, err
			}
		}
		// Partial Fisher-Yates: the first need cards become the sample.
		for j := range need {
			k := j + rng.IntN(len(deck)-j)
			deck[j], deck[k] = deck[k], deck[j]
		}
		opp := [2]poker.Card{deck[0], deck[1]}
		copy(full[len(board):], deck[2:need])

		hero, villain := score7(hole, full), score7(opp, full)
		switch {
		case hero > villain:
			res.Wins++
		case hero == villain:
			res.Ties++
		default:
			res.Losses++
		}
		res.Samples++
	}
	return res, nil
}
