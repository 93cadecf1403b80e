package phh

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokermentor/internal/fileutil"
	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/handid"
	"github.com/lox/pokermentor/internal/history"
	"github.com/lox/pokermentor/poker"
)

// Extensions that select PHH output when exporting.
const (
	Ext      = ".phh"
	ExtMulti = ".phhs"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeAll writes hands as a .phhs file, each under a numbered table.
func EncodeAll(w io.Writer, hands []*HandHistory) error {
	for i, hand := range hands {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "[%d]\n", i+1); err != nil {
			return err
		}
		if err := Encode(w, hand); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile atomically writes records, oldest first, to filename.
func WriteFile(filename string, recs []history.Record) error {
	if len(recs) == 0 {
		return errors.New("phh: no hands to write")
	}
	hands := make([]*HandHistory, len(recs))
	for i, rec := range recs {
		hands[i] = FromRecord(rec)
	}
	return fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		return EncodeAll(w, hands)
	})
}

// IsPHHFile reports whether filename has a PHH extension.
func IsPHHFile(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, Ext) || strings.HasSuffix(lower, ExtMulti)
}

// FormatAction converts a recorded action to a PHH action string. p1 posts
// the small blind.
func FormatAction(seat int, a game.ActionRecord) string {
	player := fmt.Sprintf("p%d", seat+1)
	switch a.Action {
	case game.Fold:
		return player + " f"
	case game.Check, game.Call:
		return player + " cc"
	case game.Raise:
		return fmt.Sprintf("%s cbr %d", player, a.Amount)
	default:
		return fmt.Sprintf("# %s %s %d", player, a.Action, a.Amount)
	}
}

func cards(cs ...poker.Card) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.ASCII())
	}
	return b.String()
}

// FromRecord builds the PHH form of a recorded hand. Board cards are dealt
// before the first action on their street, and any left over (after an all
// in) are dealt before the showdown.
func FromRecord(rec history.Record) *HandHistory {
	seats := [2]game.PlayerID{rec.Hero, rec.Villain}
	if rec.Seat == 1 {
		seats = [2]game.PlayerID{rec.Villain, rec.Hero}
	}
	seatOf := map[game.PlayerID]int{seats[0]: 0, seats[1]: 1}

	hand := &HandHistory{
		Variant:           "NT",
		Antes:             []int{0, 0},
		BlindsOrStraddles: []int{rec.SmallBlind, rec.BigBlind},
		MinBet:            rec.BigBlind,
		HandID:            handid.Encode(rec.ID),
		Event:             fmt.Sprintf("%s vs %s, hand %d", rec.User, rec.Opponent, rec.Hand),
		Timestamp:         rec.StartedAt,
	}
	for i, p := range seats {
		hand.Players = append(hand.Players, string(p))
		start := rec.Stacks[p]
		hand.StartingStacks = append(hand.StartingStacks, start)
		hand.Winnings = append(hand.Winnings, rec.Payouts[p])
		hand.FinishingStacks = append(hand.FinishingStacks, start-rec.Contributed[p]+rec.Payouts[p])
		hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", i+1, cards(rec.Hole[p][:]...)))
	}

	dealt := 0
	deal := func(upTo game.Street) {
		for dealt < len(rec.Board) {
			var n int
			switch {
			case dealt == 0 && upTo >= game.Flop:
				n = 3
			case dealt == 3 && upTo >= game.Turn, dealt == 4 && upTo >= game.River:
				n = 1
			default:
				return
			}
			hand.Actions = append(hand.Actions, "d db "+cards(rec.Board[dealt:dealt+n]...))
			dealt += n
		}
	}
	for _, a := range rec.Actions {
		deal(a.Street)
		hand.Actions = append(hand.Actions, FormatAction(seatOf[a.Player], a))
	}
	if rec.Showdown {
		deal(game.River)
		for i, p := range seats {
			hand.Actions = append(hand.Actions, fmt.Sprintf("p%d sm %s", i+1, cards(rec.Hole[p][:]...)))
		}
	}

	if !rec.StartedAt.IsZero() {
		t := rec.StartedAt.UTC()
		hand.Time = t.Format("15:04:05")
		hand.TimeZone = "UTC"
		hand.Day, hand.Month, hand.Year = t.Day(), int(t.Month()), t.Year()
	}
	return hand
}
