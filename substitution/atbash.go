package substitution

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// Atbash is the keyless reciprocal mirror cipher: letters map to the
// mirrored alphabet position in both cases, digits mirror 0↔9.
type Atbash struct {
	cipher.Base
}

var _ cipher.Cipher = (*Atbash)(nil)

// NewAtbash returns an Atbash cipher for message. The mirror table is
// fixed, so construction cannot fail.
func NewAtbash(message string) *Atbash {
	a := &Atbash{Base: cipher.NewBase(message, "", false)}
	a.SetAlphabet(mirrorTable())

	return a
}

// Encode maps every symbol to its mirrored counterpart; symbols
// outside the letter/digit domain pass through unchanged.
func (a *Atbash) Encode() (string, error) {
	if a.Message() == "" {
		return "", fmt.Errorf("atbash: %w", cipher.ErrEmptyMessage)
	}

	var out strings.Builder
	out.Grow(len(a.Message()))
	for _, r := range a.Message() {
		if c, ok := a.Alphabet().Encode(r); ok {
			out.WriteRune(c)
			continue
		}
		out.WriteRune(r)
	}

	return out.String(), nil
}

// Decode is identical to Encode: the mirror mapping is its own inverse.
func (a *Atbash) Decode() (string, error) {
	return a.Encode()
}

// mirrorTable builds the reciprocal table: both letter cases mirrored
// within their case, digits mirrored within 0..9.
func mirrorTable() *alphabet.Table {
	forward := make(map[rune]rune, 2*26+10)
	for i, r := range alphabet.Upper {
		forward[r] = rune(alphabet.Upper[25-i])
		forward[r+'a'-'A'] = rune(alphabet.Upper[25-i]) + 'a' - 'A'
	}
	for i, r := range alphabet.Digits {
		forward[r] = rune(alphabet.Digits[9-i])
	}
	t, _ := alphabet.New(forward) // mirror pairs are bijective by construction

	return t
}
