package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %v", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %v", aceSpades.Suit())
	}
	if aceSpades.String() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.String())
	}
	if aceSpades.ASCII() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.ASCII())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2♣" {
		t.Errorf("Expected '2♣', got %s", twoClubs.String())
	}
	if NewCard(Two, Clubs) != twoClubs {
		t.Error("cards with equal rank and suit should be equal")
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{"ace of spades", "As", NewCard(Ace, Spades), false},
		{"ace of spades glyph", "A♠", NewCard(Ace, Spades), false},
		{"two of hearts", "2h", NewCard(Two, Hearts), false},
		{"king of diamonds", "Kd", NewCard(King, Diamonds), false},
		{"ten of clubs", "Tc", NewCard(Ten, Clubs), false},
		{"lower case rank", "qs", NewCard(Queen, Spades), false},
		{"invalid rank", "Xs", Card{}, true},
		{"invalid suit", "Ax", Card{}, true},
		{"too long", "10s", Card{}, true},
		{"empty", "", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCard(%q) expected error", tt.input)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("ParseCard(%q) error %v should match ErrParse", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tt.input, got, tt.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"AsKd", "A♠ K♦", "As,Kd", " as kd "} {
		cards, err := ParseCards(input)
		if err != nil {
			t.Fatalf("ParseCards(%q): %v", input, err)
		}
		if len(cards) != 2 || cards[0] != NewCard(Ace, Spades) || cards[1] != NewCard(King, Diamonds) {
			t.Errorf("ParseCards(%q) = %v", input, cards)
		}
	}

	if _, err := ParseCards("AsK"); !errors.Is(err, ErrParse) {
		t.Errorf("odd-length input should fail with ErrParse, got %v", err)
	}
}

func TestCardIndexIsDense(t *testing.T) {
	t.Parallel()
	seen := make(map[int]bool)
	for suit := range Suit(NumSuits) {
		for rank := range Rank(NumRanks) {
			idx := NewCard(rank, suit).Index()
			if idx < 0 || idx >= DeckSize {
				t.Fatalf("index %d out of range", idx)
			}
			if seen[idx] {
				t.Fatalf("index %d repeated", idx)
			}
			seen[idx] = true
		}
	}
}
