package handid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := uuid.NewV7()
		if err != nil {
			t.Fatal(err)
		}
		s := Encode(id)
		if len(s) != Length {
			t.Fatalf("expected %d characters, got %d", Length, len(s))
		}
		if err := Validate(s); err != nil {
			t.Fatalf("encoded id %s failed validation: %v", s, err)
		}
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%s): %v", s, err)
		}
		if got != id {
			t.Fatalf("Parse(Encode(%s)) = %s", id, got)
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	if got := Encode(uuid.Nil); got != strings.Repeat("0", Length) {
		t.Errorf("Encode(Nil) = %s", got)
	}
	var full uuid.UUID
	for i := range full {
		full[i] = 0xff
	}
	if got := Encode(full); got != "7"+strings.Repeat("z", Length-1) {
		t.Errorf("Encode(full) = %s", got)
	}
	// TypeID reference vector.
	id := uuid.MustParse("01889c89-df6b-7f06-8000-000000000000")
	if got := Encode(id); got != "01h2e8kqvbfw38000000000000" {
		t.Errorf("Encode(%s) = %s", id, got)
	}
}

func TestEncodeTimeSorted(t *testing.T) {
	var ids []string
	for i := 0; i < 10; i++ {
		id, err := uuid.NewV7()
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, Encode(id))
		time.Sleep(time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		if strings.Compare(ids[i-1], ids[i]) >= 0 {
			t.Errorf("IDs not sorted: %s >= %s", ids[i-1], ids[i])
		}
	}
}

func TestShort(t *testing.T) {
	id := uuid.New()
	short := Short(id)
	if len(short) != ShortLength {
		t.Fatalf("expected %d characters, got %d", ShortLength, len(short))
	}
	if !strings.HasSuffix(Encode(id), short) {
		t.Errorf("Short(%s) = %s is not a suffix of %s", id, short, Encode(id))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid ID", "01h5n0et5q6mt3v7ms1234abcd", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"first char too high", "81h5n0et5q6mt3v7ms1234abcd", true},
		{"invalid character", "01h5n0et5q6mt3v7ms1234abci", true},
		{"uppercase not allowed", "01H5N0ET5Q6MT3V7MS1234ABCD", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
	if _, err := Parse("bogus"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Parse(bogus) = %v, want ErrInvalid", err)
	}
}

func TestAlphabet(t *testing.T) {
	if len(alphabet) != 32 {
		t.Errorf("alphabet should have 32 characters, got %d", len(alphabet))
	}
	seen := make(map[rune]bool)
	for _, char := range alphabet {
		if seen[char] {
			t.Errorf("duplicate character in alphabet: %c", char)
		}
		seen[char] = true
	}
	for _, char := range "ilou" {
		if strings.ContainsRune(alphabet, char) {
			t.Errorf("alphabet should not contain %c", char)
		}
	}
}
