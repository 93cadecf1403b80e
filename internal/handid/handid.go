// Package handid renders hand ids as 26-character Crockford base32 strings.
//
// The layout follows TypeID: the 128-bit UUID is prefixed with two zero bits
// and split into 5-bit groups, so the first character is always 0-7 and
// UUIDv7 ids sort by creation time.
package handid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded id.
const Length = 26

// ShortLength is the number of trailing characters shown by Short.
const ShortLength = 8

var ErrInvalid = errors.New("invalid hand id")

var decode [256]int8

func init() {
	for i := range decode {
		decode[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decode[alphabet[i]] = int8(i)
	}
}

// bit returns bit pos of the 130-bit value, counting the two zero pad bits.
func bit(id uuid.UUID, pos int) byte {
	pos -= 2
	if pos < 0 {
		return 0
	}
	return (id[pos/8] >> (7 - pos%8)) & 1
}

// Encode returns the base32 form of id.
func Encode(id uuid.UUID) string {
	out := make([]byte, Length)
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			v = v<<1 | bit(id, i*5+b)
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Short returns the trailing random characters of the encoded id, for display.
func Short(id uuid.UUID) string {
	return Encode(id)[Length-ShortLength:]
}

// Parse decodes an id produced by Encode.
func Parse(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if err := Validate(s); err != nil {
		return id, err
	}
	for i := 0; i < Length; i++ {
		v := decode[s[i]]
		for b := 0; b < 5; b++ {
			pos := i*5 + b - 2
			if pos < 0 {
				continue
			}
			if (v>>(4-b))&1 == 1 {
				id[pos/8] |= 1 << (7 - pos%8)
			}
		}
	}
	return id, nil
}

// Validate checks if a hand id is valid (26 characters, valid base32)
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("%w: must be exactly %d characters, got %d", ErrInvalid, Length, len(s))
	}
	// A first character above 7 would need more than 128 bits.
	if s[0] > '7' {
		return fmt.Errorf("%w: first character must be 0-7, got %c", ErrInvalid, s[0])
	}
	for i := 0; i < len(s); i++ {
		if decode[s[i]] < 0 {
			return fmt.Errorf("%w: invalid character %c at position %d", ErrInvalid, s[i], i)
		}
	}
	return nil
}
