package poker

import (
	"errors"
	"testing"
)

func TestParseStartingHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  StartingHand
		pair  bool
		str   string
	}{
		{"99", StartingHand{High: Nine, Low: Nine}, true, "99"},
		{"AA", StartingHand{High: Ace, Low: Ace}, true, "AA"},
		{"AKs", StartingHand{High: Ace, Low: King, Suited: true}, false, "AKs"},
		{"QJo", StartingHand{High: Queen, Low: Jack}, false, "QJo"},
		{"KAs", StartingHand{High: Ace, Low: King, Suited: true}, false, "AKs"},
		{"T9o", StartingHand{High: Ten, Low: Nine}, false, "T9o"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStartingHand(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Pair() != tt.pair {
				t.Errorf("Pair() = %v, want %v", got.Pair(), tt.pair)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}
		})
	}
}

func TestParseStartingHandInvalid(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"", "A", "AK", "AKx", "AKS", "99s", "akS", "XYo", "AKso", "1Ks"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStartingHand(input)
			if err == nil {
				t.Fatalf("ParseStartingHand(%q) should fail", input)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error %v should match ErrParse", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Input != input {
				t.Errorf("error should be *ParseError carrying the input, got %#v", err)
			}
		})
	}
}

func TestStartingHandCards(t *testing.T) {
	t.Parallel()
	tests := map[string][2]Card{
		"99":  {NewCard(Nine, Hearts), NewCard(Nine, Diamonds)},
		"AKs": {NewCard(Ace, Hearts), NewCard(King, Hearts)},
		"QJo": {NewCard(Queen, Hearts), NewCard(Jack, Diamonds)},
	}
	for notation, want := range tests {
		h, err := ParseStartingHand(notation)
		if err != nil {
			t.Fatal(err)
		}
		if got := h.Cards(); got != want {
			t.Errorf("%s.Cards() = %v, want %v", notation, got, want)
		}
		if back := StartingHandOf(want[0], want[1]); back != h {
			t.Errorf("StartingHandOf(%v) = %v, want %v", want, back, h)
		}
	}
}
