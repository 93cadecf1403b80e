package display

import (
	"context"
	"errors"
	"fmt"
	"maps"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/pokermentor/internal/analysis"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/handid"
	"github.com/lox/pokermentor/internal/session"
	"github.com/lox/pokermentor/poker"
)

// ErrQuit is returned by Execute when the user asked to leave or the session
// is gone.
var ErrQuit = errors.New("quit")

// Controller turns commands into session calls and renders the outcome as
// log lines. Both front ends share it.
type Controller struct {
	mgr     *session.Manager
	user    string
	kind    string
	samples int
	rng     *rand.Rand
	styles  *Styles
}

// NewController builds a controller for one user. samples sets the equity
// estimate used by hints.
func NewController(mgr *session.Manager, user, kind string, samples int, rng *rand.Rand, styles *Styles) *Controller {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Controller{
		mgr:     mgr,
		user:    user,
		kind:    kind,
		samples: samples,
		rng:     rng,
		styles:  styles,
	}
}

// Start opens the session and describes the first hand.
func (c *Controller) Start() ([]string, error) {
	snap, err := c.mgr.Create(c.user, c.kind)
	if err != nil {
		return nil, err
	}
	c.kind = snap.Opponent
	lines := []string{c.styles.Header.Render(fmt.Sprintf("Heads-up against %s", snap.Opponent))}
	return append(lines, c.handLines(snap)...), nil
}

// Close ends the session.
func (c *Controller) Close() error {
	err := c.mgr.End(c.user)
	if errors.Is(err, game.ErrNotFound) {
		return nil
	}
	return err
}

// Status summarises the table on one line.
func (c *Controller) Status() string {
	snap, err := c.mgr.State(c.user)
	if err != nil {
		return c.styles.Error.Render("No active session")
	}
	return c.statusLine(snap)
}

// Complete reports whether the current hand is over.
func (c *Controller) Complete() bool {
	snap, err := c.mgr.State(c.user)
	return err == nil && snap.Phase == game.PhaseComplete
}

// Execute runs one command. Errors the user can correct are rendered as log
// lines; ErrQuit means the caller should stop.
func (c *Controller) Execute(ctx context.Context, cmd Command) []string {
	lines, err := c.execute(ctx, cmd)
	if err != nil {
		if err == ErrQuit {
			return lines
		}
		if errors.Is(err, ErrQuit) {
			return append(lines, c.styles.Warning.Render("Your session has expired"))
		}
		lines = append(lines, c.styles.Error.Render("Error: "+err.Error()))
	}
	return lines
}

// Done reports whether the session has ended.
func (c *Controller) Done() bool {
	_, err := c.mgr.State(c.user)
	return errors.Is(err, game.ErrNotFound)
}

func (c *Controller) execute(ctx context.Context, cmd Command) ([]string, error) {
	switch cmd.Kind {
	case CmdQuit:
		return nil, ErrQuit
	case CmdHelp:
		return strings.Split(helpText, "\n"), nil
	case CmdStats:
		return c.statsLines(), nil
	case CmdHistory:
		return c.historyLines(), nil
	case CmdHint:
		return c.hintLines(ctx)
	case CmdContinue, CmdNext:
		snap, err := c.mgr.State(c.user)
		if err != nil {
			return nil, c.sessionErr(err)
		}
		if snap.Phase != game.PhaseComplete {
			if cmd.Kind == CmdNext {
				return nil, session.ErrHandInProgress
			}
			return []string{c.statusLine(snap)}, nil
		}
		snap, err = c.mgr.NextHand(c.user)
		if err != nil {
			return nil, c.sessionErr(err)
		}
		return c.handLines(snap), nil
	case CmdAllIn:
		snap, err := c.mgr.State(c.user)
		if err != nil {
			return nil, c.sessionErr(err)
		}
		return c.act(game.Raise, snap.View.Committed+snap.View.Stack)
	case CmdAction:
		return c.act(cmd.Action, cmd.Amount)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCommand, cmd.Kind)
}

func (c *Controller) sessionErr(err error) error {
	if errors.Is(err, game.ErrNotFound) {
		return fmt.Errorf("%w: session expired", ErrQuit)
	}
	return err
}

func (c *Controller) act(action game.Action, amount int) ([]string, error) {
	tr, err := c.mgr.ProcessAction(c.user, action, amount)
	if err != nil {
		return nil, c.sessionErr(err)
	}

	lines := []string{c.describeAction(tr.Hero)}
	if tr.Opponent != nil {
		lines = append(lines, c.describeAction(*tr.Opponent))
	}
	if len(tr.Dealt) > 0 {
		street := tr.Snapshot.View.Street
		lines = append(lines, c.styles.HandInfo.Render(fmt.Sprintf("%s: %s", titleCase(street.String()), c.styles.Cards(tr.Snapshot.View.Community))))
	}
	if tr.Complete() {
		lines = append(lines, c.resultLines(tr)...)
	}
	return lines, nil
}

func (c *Controller) describeAction(rec game.ActionRecord) string {
	if string(rec.Player) != c.user {
		return c.styles.Actions.Render(rec.String())
	}
	switch rec.Action {
	case game.Raise:
		return fmt.Sprintf("You raise to %d", rec.Amount)
	case game.Call:
		return fmt.Sprintf("You call %d", rec.Paid)
	}
	return "You " + rec.Action.String()
}

func (c *Controller) resultLines(tr session.TurnResult) []string {
	res := tr.Result
	var lines []string
	if res.Showdown {
		for _, p := range slices.Sorted(maps.Keys(res.Hands)) {
			h := res.Hands[p]
			who := string(p) + " shows"
			if string(p) == c.user {
				who = "You show"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s", who, c.styles.Cards(h.Hole[:]), h.Rank))
		}
	}

	switch {
	case res.Split():
		lines = append(lines, c.styles.Warning.Render(fmt.Sprintf("Split pot of %d", res.Pot)))
	case res.IsWinner(game.PlayerID(c.user)):
		lines = append(lines, c.styles.Success.Render(fmt.Sprintf("You win %d", res.Pot)))
	default:
		lines = append(lines, c.styles.Error.Render(fmt.Sprintf("%s wins %d", res.Winners[0], res.Pot)))
	}

	if tr.Review != nil {
		lines = append(lines, c.styles.Info.Render(fmt.Sprintf("Hand rating: %d/10", tr.Review.Rating)))
		for _, m := range tr.Review.Mistakes {
			lines = append(lines, c.styles.Warning.Render("  - "+m))
		}
		for _, g := range tr.Review.GoodPlays {
			lines = append(lines, c.styles.Success.Render("  + "+g))
		}
	}
	return append(lines, c.styles.Help.Render("Press Enter for the next hand"))
}

func seatName(seat int) string {
	if seat == 0 {
		return "small blind"
	}
	return "big blind"
}

func (c *Controller) handLines(snap session.Snapshot) []string {
	v := snap.View
	return []string{
		c.styles.Header.Render(fmt.Sprintf("Hand #%d", snap.Hand)),
		c.styles.HandInfo.Render(fmt.Sprintf("You are in the %s with %s", seatName(v.Seat), c.styles.Cards(v.Hole[:]))),
		c.statusLine(snap),
	}
}

func (c *Controller) statusLine(snap session.Snapshot) string {
	v := snap.View
	board := "-"
	if len(v.Community) > 0 {
		board = c.styles.Cards(v.Community)
	}
	return fmt.Sprintf("Hole: %s  Board: %s  Pot: %d  Stack: %d  Opponent: %d  To call: %d",
		c.styles.Cards(v.Hole[:]), board, v.Pot, v.Stack, v.OpponentStack, v.ToCall)
}

func (c *Controller) hintLines(ctx context.Context) ([]string, error) {
	snap, err := c.mgr.State(c.user)
	if err != nil {
		return nil, c.sessionErr(err)
	}
	v := snap.View
	if len(v.Community) == 0 {
		pos := analysis.PositionBlinds
		if v.Seat == 0 {
			pos = analysis.PositionLate
		}
		r, err := analysis.AnalyzePreflop(poker.StartingHandOf(v.Hole[0], v.Hole[1]), pos)
		if err != nil {
			return nil, err
		}
		lines := []string{c.styles.HandInfo.Render(fmt.Sprintf("%s: strength %.2f (%s), top %.0f%% of hands",
			r.Hand, r.Strength, r.Category, (1-r.Percentile)*100))}
		for _, rec := range r.Recommendations {
			lines = append(lines, "  "+rec)
		}
		return lines, nil
	}

	r, err := analysis.AnalyzePostflop(ctx, v.Hole, v.Community, c.samples, c.rng)
	if err != nil {
		return nil, err
	}
	lines := []string{c.styles.HandInfo.Render(fmt.Sprintf("%s, equity %.1f%% against a random hand",
		r.Made, r.Equity.Equity()*100))}
	if v.ToCall > 0 {
		odds := float64(v.ToCall) / float64(v.Pot+v.ToCall)
		lines = append(lines, fmt.Sprintf("  Pot odds: %.1f%% needed to call %d", odds*100, v.ToCall))
	}
	for _, rec := range r.Recommendations {
		lines = append(lines, "  "+rec)
	}
	return lines, nil
}

func (c *Controller) statsLines() []string {
	s, ok := c.mgr.Statistics().Snapshot(c.user)
	if !ok {
		return []string{"No hands played yet"}
	}
	lines := []string{
		c.styles.Header.Render("Session statistics"),
		fmt.Sprintf("Hands: %d  Won: %d (%.0f%%)  Net: %+d chips  %.1f bb/100",
			s.Hands, s.Wins, s.WinRate()*100, s.NetChips, s.BBPer100()),
		fmt.Sprintf("VPIP: %.0f%%  PFR: %.0f%%  Aggression: %.2f",
			s.VPIP()*100, s.PFR()*100, s.AggressionFactor()),
		fmt.Sprintf("Showdown wins: %d  Uncontested wins: %d  Biggest pot: %d",
			s.ShowdownWins, s.NonShowdownWins, s.MaxPotChips),
	}
	if s.BestHand != nil {
		lines = append(lines, fmt.Sprintf("Best hand: %s", s.BestHand))
	}
	return lines
}

func (c *Controller) historyLines() []string {
	recs := c.mgr.History().Recent(c.user, 5)
	if len(recs) == 0 {
		return []string{"No hands played yet"}
	}
	lines := []string{c.styles.Header.Render("Recent hands")}
	for _, rec := range recs {
		review := analysis.ReviewHand(rec)
		lines = append(lines, fmt.Sprintf("#%d vs %s: %s on %s, %+d chips, rated %d/10 %s",
			rec.Hand, rec.Opponent, c.styles.Cards(holeSlice(rec.Hole[rec.Hero])), c.styles.Cards(rec.Board), rec.Net, review.Rating,
			c.styles.Info.Render("["+handid.Short(rec.ID)+"]")))
	}
	return lines
}

func holeSlice(h [2]poker.Card) []poker.Card { return h[:] }

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
