package morse

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/cipher"
)

// Separator conventions for the variable-length code stream.
const (
	letterSeparator = " "
	wordSeparator   = "/"
)

// Morse encodes text as International Morse timing codes. It is an
// encoding, not a cipher: keyless and public by definition.
type Morse struct {
	cipher.Base
}

var _ cipher.Cipher = (*Morse)(nil)

// New returns a Morse encoder for message.
func New(message string) *Morse {
	return &Morse{Base: cipher.NewBase(message, "", false)}
}

// Encode folds the message to upper case and replaces every mapped
// symbol with its code, letters joined by one space, words by " / ".
// Unmapped symbols are dropped.
func (m *Morse) Encode() (string, error) {
	if strings.TrimSpace(m.Message()) == "" {
		return "", fmt.Errorf("morse: %w", cipher.ErrEmptyMessage)
	}

	words := make([]string, 0, 8)
	for _, word := range strings.Fields(strings.ToUpper(m.Message())) {
		tokens := make([]string, 0, len(word))
		for _, r := range word {
			if code, ok := codes[r]; ok {
				tokens = append(tokens, code)
			}
		}
		if len(tokens) > 0 {
			words = append(words, strings.Join(tokens, letterSeparator))
		}
	}
	if len(words) == 0 {
		return "", fmt.Errorf("morse: no encodable symbols: %w", cipher.ErrEmptyMessage)
	}

	return strings.Join(words, letterSeparator+wordSeparator+letterSeparator), nil
}

// Decode parses the code stream back into symbols. Unknown tokens are
// an error, not a silent skip.
func (m *Morse) Decode() (string, error) {
	if strings.TrimSpace(m.Message()) == "" {
		return "", fmt.Errorf("morse: %w", cipher.ErrEmptyMessage)
	}

	words := make([]string, 0, 8)
	for _, word := range strings.Split(m.Message(), wordSeparator) {
		var out strings.Builder
		for _, token := range strings.Fields(word) {
			r, ok := symbols[token]
			if !ok {
				return "", fmt.Errorf("morse: unknown code %q: %w", token, cipher.ErrUnsupportedSymbol)
			}
			out.WriteRune(r)
		}
		words = append(words, out.String())
	}

	return strings.Join(words, " "), nil
}
