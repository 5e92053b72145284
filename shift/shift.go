package shift

import (
	"fmt"

	"github.com/MeGrimlock/nigma/cipher"
)

// rot13Offset is ROT13's fixed, self-inverse shift distance.
const rot13Offset = "13"

// Caesar is a numeric-offset shift cipher over the 26-letter alphabet.
// The zero value is unusable; construct with NewCaesar.
type Caesar struct {
	cipher.Base
}

// compile-time contract check
var _ cipher.Cipher = (*Caesar)(nil)

// NewCaesar returns a Caesar cipher holding message and an integer key
// (as a string, e.g. "3"). The key is validated on first use.
func NewCaesar(message, key string) *Caesar {
	return &Caesar{Base: cipher.NewBase(message, key, false)}
}

// NewRot13 returns a Caesar instance fixed to offset 13. Encoding and
// decoding are the same operation.
func NewRot13(message string) *Caesar {
	return &Caesar{Base: cipher.NewBase(message, rot13Offset, false)}
}

// Encode shifts every letter of the message forward by key positions.
// Returns cipher.ErrEmptyMessage or cipher.ErrKeyValidation when the
// respective precondition fails.
func (c *Caesar) Encode() (string, error) {
	offset, err := c.offset()
	if err != nil {
		return "", err
	}

	return cipher.ShiftText(c.Message(), offset), nil
}

// Decode shifts every letter backward by key positions, inverting Encode.
func (c *Caesar) Decode() (string, error) {
	offset, err := c.offset()
	if err != nil {
		return "", err
	}

	return cipher.ShiftText(c.Message(), -offset), nil
}

// offset validates the message and parses the integer key.
func (c *Caesar) offset() (int, error) {
	if c.Message() == "" {
		return 0, fmt.Errorf("shift: %w", cipher.ErrEmptyMessage)
	}
	n, err := cipher.ParseShiftKey(c.Key())
	if err != nil {
		return 0, fmt.Errorf("shift: %w", err)
	}

	return n, nil
}
