package poker

import (
	"errors"
	rand "math/rand/v2"
	"slices"
	"testing"
)

func mustEval(t *testing.T, s string) HandRank {
	t.Helper()
	hr, err := Evaluate(MustParseCards(s))
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", s, err)
	}
	return hr
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category HandCategory
		tieBreak []Rank
	}{
		{"royal flush", "As Ks Qs Js Ts", RoyalFlush, []Rank{Ace}},
		{"straight flush", "9h 8h 7h 6h 5h", StraightFlush, []Rank{Nine}},
		{"steel wheel", "Ad 2d 3d 4d 5d", StraightFlush, []Rank{Five}},
		{"quads", "7c 7d 7h 7s Kd", FourOfAKind, []Rank{Seven, King}},
		{"full house", "Tc Td Th 4s 4d", FullHouse, []Rank{Ten, Four}},
		{"flush", "Kc 9c 7c 4c 2c", Flush, []Rank{King, Nine, Seven, Four, Two}},
		{"straight", "9c 8d 7h 6s 5d", Straight, []Rank{Nine}},
		{"broadway", "Ac Kd Qh Js Td", Straight, []Rank{Ace}},
		{"wheel", "Ac 2d 3h 4s 5d", Straight, []Rank{Five}},
		{"trips", "Qc Qd Qh 9s 3d", ThreeOfAKind, []Rank{Queen, Nine, Three}},
		{"two pair", "Jc Jd 5h 5s Ad", TwoPair, []Rank{Jack, Five, Ace}},
		{"one pair", "8c 8d Ah 6s 3d", OnePair, []Rank{Eight, Ace, Six, Three}},
		{"high card", "Ac Jd 8h 6s 3d", HighCard, []Rank{Ace, Jack, Eight, Six, Three}},
		{"no wraparound straight", "Qc Kd Ah 2s 3d", HighCard, []Rank{Ace, King, Queen, Three, Two}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hr := mustEval(t, tt.cards)
			if hr.Category() != tt.category {
				t.Errorf("category = %s, want %s", hr.Category(), tt.category)
			}
			if !slices.Equal(hr.TieBreak(), tt.tieBreak) {
				t.Errorf("tie-break = %v, want %v", hr.TieBreak(), tt.tieBreak)
			}
		})
	}
}

func TestWheelOrdering(t *testing.T) {
	t.Parallel()
	wheel := mustEval(t, "Ac 2d 3h 4s 5d")
	sixHigh := mustEval(t, "2c 3d 4h 5s 6d")
	aceHigh := mustEval(t, "Ac Kd Qh Js 9d")
	trips := mustEval(t, "Ac Ad Ah Ks Qd")

	if !sixHigh.Beats(wheel) {
		t.Error("six-high straight should beat the wheel")
	}
	if !wheel.Beats(aceHigh) {
		t.Error("wheel should beat ace-high")
	}
	if !wheel.Beats(trips) {
		t.Error("wheel should beat three of a kind")
	}
}

func TestCategoryPrecedence(t *testing.T) {
	t.Parallel()
	fullHouse := mustEval(t, "2c 2d 2h 3s 3d")
	flush := mustEval(t, "Ac Kc Qc Jc 9c")
	straight := mustEval(t, "Ac Kd Qh Js Td")

	if !fullHouse.Beats(flush) {
		t.Error("full house should beat flush")
	}
	if !flush.Beats(straight) {
		t.Error("flush should beat straight")
	}
	if !fullHouse.Beats(straight) {
		t.Error("full house should beat straight")
	}
}

func TestEvaluateSevenCards(t *testing.T) {
	t.Parallel()
	// Pocket aces on a double-paired board play aces up with a queen kicker.
	hr := mustEval(t, "As Ah Kd Kc Qd 2h 3s")
	if hr.Category() != TwoPair {
		t.Fatalf("category = %s, want Two Pair", hr.Category())
	}
	if want := []Rank{Ace, King, Queen}; !slices.Equal(hr.TieBreak(), want) {
		t.Errorf("tie-break = %v, want %v", hr.TieBreak(), want)
	}

	hr, best, err := BestHand(MustParseCards("2c 7d Ks Qs Js Ts 9s"))
	if err != nil {
		t.Fatal(err)
	}
	if hr.Category() != StraightFlush || hr.TieBreak()[0] != King {
		t.Errorf("got %s, want king-high straight flush", hr.Short())
	}
	for _, c := range best {
		if c.Suit() != Spades {
			t.Errorf("best hand includes off-suit card %s", c)
		}
	}
}

func TestEvaluateTies(t *testing.T) {
	t.Parallel()
	board := "Ks Qs Js Ts 9s"
	a := mustEval(t, "2c 3d "+board)
	b := mustEval(t, "4h 5h "+board)
	if !a.Ties(b) {
		t.Errorf("board straight flush should tie: %s vs %s", a.Short(), b.Short())
	}

	// Kicker decides between otherwise equal pairs.
	c := mustEval(t, "8c 8d Ah 6s 3d")
	d := mustEval(t, "8h 8s Ac 5s 3c")
	if !c.Beats(d) {
		t.Error("pair of eights with six kicker should beat five kicker")
	}
}

func TestEvaluateInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"too few":   "As Kd Qh Jc",
		"too many":  "As Kd Qh Jc Tc 9c 8c 7c",
		"duplicate": "As As Qh Jc Tc",
	}
	for name, cards := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Evaluate(MustParseCards(cards))
			if !errors.Is(err, ErrInvalidHand) {
				t.Errorf("err = %v, want ErrInvalidHand", err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	got, err := Compare(MustParseCards("Ac Ad Kh Ks 2d"), MustParseCards("Qc Qd Qh 3s 2c"))
	if err != nil {
		t.Fatal(err)
	}
	if got != -1 {
		t.Errorf("two pair vs trips = %d, want -1", got)
	}
}

// Every random five-card hand lands in exactly one category and Compare is
// antisymmetric.
func TestEvaluateRandomHandsConsistent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(11, 13))
	for range 2000 {
		d := NewDeck(rng)
		a, _ := d.Deal(5)
		b, _ := d.Deal(5)
		ra, err := Evaluate(a)
		if err != nil {
			t.Fatal(err)
		}
		rb, _ := Evaluate(b)
		if ra.Category() > RoyalFlush {
			t.Fatalf("category out of range: %d", ra.Category())
		}
		if ra.Compare(rb) != -rb.Compare(ra) {
			t.Fatalf("Compare not antisymmetric for %v / %v", a, b)
		}
		if ra.Compare(ra) != 0 {
			t.Fatalf("hand does not tie itself: %v", a)
		}
	}
}

func TestHandRankString(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"As Ah Kd Kc Qd":    "Two Pair, Aces and Kings",
		"Tc Td Th 4s 4d":    "Full House, Tens full of Fours",
		"Ac 2d 3h 4s 5d":    "Straight, Five high",
		"As Ks Qs Js Ts":    "Royal Flush",
		"6c 6d Ah 9s 3d":    "Pair of Sixes",
		"Ac Jd 8h 6s 3d":    "High Card, Ace",
		"Kc 9c 7c 4c 2c":    "Flush, King high",
		"7c 7d 7h 7s Kd":    "Four of a Kind, Sevens",
		"9h 8h 7h 6h 5h 2c": "Straight Flush, Nine high",
	}
	for cards, want := range tests {
		if got := mustEval(t, cards).String(); got != want {
			t.Errorf("%s: String() = %q, want %q", cards, got, want)
		}
	}
}
