package bot

import (
	"errors"
	"slices"
	"testing"

	"github.com/lox/pokermentor/internal/game"
	"github.com/lox/pokermentor/internal/randutil"
	"github.com/lox/pokermentor/poker"
)

func testView(hole, board string, currentBet, toCall int) game.View {
	h := poker.MustParseCards(hole)
	var community []poker.Card
	if board != "" {
		community = poker.MustParseCards(board)
	}
	street := game.Preflop
	switch len(community) {
	case 3:
		street = game.Flop
	case 4:
		street = game.Turn
	case 5:
		street = game.River
	}
	return game.View{
		Player:     "bot",
		Hole:       [2]poker.Card{h[0], h[1]},
		Community:  community,
		Street:     street,
		CurrentBet: currentBet,
		ToCall:     toCall,
		Stack:      100,
		SmallBlind: 1,
		BigBlind:   2,
	}
}

func mustBot(t *testing.T, kind string, seed int64) Bot {
	t.Helper()
	b, err := New(kind, randutil.New(seed), nil)
	if err != nil {
		t.Fatalf("New(%q): %v", kind, err)
	}
	return b
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	if got := Kinds(); !slices.Equal(got, []string{"fish", "nit", "tag", "lag"}) {
		t.Errorf("Kinds() = %v", got)
	}
	for _, kind := range Kinds() {
		b := mustBot(t, kind, 1)
		if b.Kind() != kind {
			t.Errorf("New(%q).Kind() = %q", kind, b.Kind())
		}
		if desc, err := Describe(kind); err != nil || desc == "" {
			t.Errorf("Describe(%q) = %q, %v", kind, desc, err)
		}
	}

	if _, err := New("shark", randutil.New(1), nil); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New(shark) err = %v, want ErrUnknownKind", err)
	}
	if _, err := Describe("shark"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Describe(shark) err = %v", err)
	}
	if p := mustBot(t, "nit", 1).Profile(); p.Tightness != 0.9 || p.Aggression != 0.4 {
		t.Errorf("nit profile = %+v", p)
	}
}

func TestNitBot(t *testing.T) {
	t.Parallel()
	nit := mustBot(t, "nit", 2)
	tests := []struct {
		name       string
		hole       string
		board      string
		currentBet int
		toCall     int
		action     game.Action
		amount     int
	}{
		{"premium pair raises", "As Ah", "", 2, 1, game.Raise, 6},
		{"raise doubles a big bet", "Ks Kh", "", 10, 8, game.Raise, 20},
		{"suited connector raises", "8s 7s", "", 2, 1, game.Raise, 6},
		{"broadway calls", "Kd 4c", "", 2, 1, game.Call, 0},
		{"trash folds to a bet", "7d 2c", "", 2, 1, game.Fold, 0},
		{"trash checks when free", "7d 2c", "", 2, 0, game.Check, 0},
		{"full house raises postflop", "7d 2c", "7s 7h 2d", 0, 0, game.Raise, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, amount := nit.Decide(testView(tt.hole, tt.board, tt.currentBet, tt.toCall), "bot")
			if action != tt.action || amount != tt.amount {
				t.Errorf("Decide = %s %d, want %s %d", action, amount, tt.action, tt.amount)
			}
		})
	}
}

func TestTAGBot(t *testing.T) {
	t.Parallel()
	tag := mustBot(t, "tag", 3)
	tests := []struct {
		name       string
		hole       string
		currentBet int
		toCall     int
		action     game.Action
		amount     int
	}{
		{"aces raise the big blind", "As Ah", 2, 1, game.Raise, 5},
		{"aces open an unraised pot", "As Ah", 0, 0, game.Raise, 6},
		{"king queen offsuit calls", "Kd Qc", 2, 1, game.Call, 0},
		{"seven deuce folds", "7d 2c", 2, 1, game.Fold, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, amount := tag.Decide(testView(tt.hole, "", tt.currentBet, tt.toCall), "bot")
			if action != tt.action || amount != tt.amount {
				t.Errorf("Decide = %s %d, want %s %d", action, amount, tt.action, tt.amount)
			}
		})
	}
}

func TestTAGStrength(t *testing.T) {
	t.Parallel()
	aa, _ := poker.ParseStartingHand("AA")
	if got := tagStrength(aa); got < 0.96 || got > 0.97 {
		t.Errorf("tagStrength(AA) = %.3f", got)
	}
	suited, _ := poker.ParseStartingHand("AKs")
	off, _ := poker.ParseStartingHand("AKo")
	if tagStrength(suited) <= tagStrength(off) {
		t.Error("suited should score above offsuit")
	}
}

func TestFishBotFoldsSmallCardsMostly(t *testing.T) {
	t.Parallel()
	fish := mustBot(t, "fish", 4)
	const n = 2000
	var folds int
	for range n {
		if a, _ := fish.Decide(testView("7d 2c", "", 2, 1), "bot"); a == game.Fold {
			folds++
		}
	}
	if rate := float64(folds) / n; rate < 0.62 || rate > 0.78 {
		t.Errorf("fold rate with small cards = %.2f, want about 0.7", rate)
	}

	for range n {
		a, amount := fish.Decide(testView("Ad 9c", "", 2, 1), "bot")
		switch a {
		case game.Fold:
			t.Fatal("fish folded a big card")
		case game.Raise:
			if amount != 3 {
				t.Fatalf("fish raise to %d, want 3", amount)
			}
		}
	}
}

func TestLAGBotRaisesOften(t *testing.T) {
	t.Parallel()
	lag := mustBot(t, "lag", 5)
	const n = 2000
	var raises int
	for range n {
		a, amount := lag.Decide(testView("7d 2c", "", 0, 0), "bot")
		switch a {
		case game.Raise:
			raises++
			if amount != 4 {
				t.Fatalf("open raise to %d, want 4", amount)
			}
		case game.Check:
		default:
			t.Fatalf("unexpected action %s when checking is free", a)
		}
	}
	if rate := float64(raises) / n; rate < 0.62 || rate > 0.78 {
		t.Errorf("raise rate = %.2f, want about 0.7", rate)
	}
}

// Every bot can drive full hands through the state machine.
func TestBotsPlayHands(t *testing.T) {
	t.Parallel()
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			s, err := game.New([]game.PlayerID{"hero", "villain"}, game.WithRNG(randutil.New(6)))
			if err != nil {
				t.Fatal(err)
			}
			deciders := map[game.PlayerID]game.Decider{
				"hero":    mustBot(t, "tag", 7),
				"villain": mustBot(t, kind, 8),
			}
			for range 50 {
				s.Rebuy()
				if _, err := game.PlayHand(s, deciders); err != nil {
					t.Fatal(err)
				}
			}
		})
	}
}
