package poker

import (
	"errors"
	rand "math/rand/v2"
	"testing"
)

func TestNewDeckHasAllCards(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewPCG(1, 2)))
	if d.Remaining() != DeckSize {
		t.Fatalf("Remaining() = %d, want %d", d.Remaining(), DeckSize)
	}
	cards, err := d.Deal(DeckSize)
	if err != nil {
		t.Fatalf("Deal(52): %v", err)
	}
	seen := make(map[Card]bool)
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("got %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	a, _ := NewDeck(rand.New(rand.NewPCG(42, 7))).Deal(10)
	b, _ := NewDeck(rand.New(rand.NewPCG(42, 7))).Deal(10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("decks with the same seed diverged at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestDealInsufficientLeavesDeckUnchanged(t *testing.T) {
	t.Parallel()
	d := NewDeck(rand.New(rand.NewPCG(3, 3)))
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("Deal(50): %v", err)
	}

	_, err := d.Deal(3)
	if !errors.Is(err, ErrInsufficientCards) {
		t.Fatalf("Deal(3) with 2 remaining: err = %v, want ErrInsufficientCards", err)
	}
	if d.Remaining() != 2 {
		t.Errorf("Remaining() = %d after failed deal, want 2", d.Remaining())
	}

	last, err := d.Deal(2)
	if err != nil || len(last) != 2 {
		t.Fatalf("Deal(2) = %v, %v", last, err)
	}
	if _, err := d.Deal(1); !errors.Is(err, ErrInsufficientCards) {
		t.Errorf("Deal(1) on empty deck: err = %v", err)
	}
}

func TestDealNegative(t *testing.T) {
	t.Parallel()
	d := NewDeck(nil)
	if _, err := d.Deal(-1); err == nil {
		t.Error("Deal(-1) should fail")
	}
	if d.Remaining() != DeckSize {
		t.Errorf("Remaining() = %d, want %d", d.Remaining(), DeckSize)
	}
}

func TestStackedDeck(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("As Kd Qh")
	d, err := NewDeckFromCards(cards)
	if err != nil {
		t.Fatalf("NewDeckFromCards: %v", err)
	}
	got, _ := d.Deal(2)
	if got[0] != cards[0] || got[1] != cards[1] {
		t.Errorf("stacked deck dealt %v, want %v", got, cards[:2])
	}
	d.Reset()
	if d.Remaining() != 3 {
		t.Errorf("Remaining() after Reset = %d, want 3", d.Remaining())
	}
	again, _ := d.Deal(3)
	for i := range cards {
		if again[i] != cards[i] {
			t.Errorf("stacked deck order changed after Reset: %v", again)
		}
	}

	if _, err := NewDeckFromCards(MustParseCards("As As")); !errors.Is(err, ErrInvalidHand) {
		t.Errorf("duplicate cards: err = %v, want ErrInvalidHand", err)
	}
}

func TestDealReturnsCopy(t *testing.T) {
	t.Parallel()
	d, _ := NewDeckFromCards(MustParseCards("As Kd Qh"))
	got, _ := d.Deal(1)
	got[0] = NewCard(Two, Clubs)
	d.Reset()
	again, _ := d.Deal(1)
	if again[0] != NewCard(Ace, Spades) {
		t.Errorf("mutating dealt slice changed the deck: %v", again[0])
	}
}
