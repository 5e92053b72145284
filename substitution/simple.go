package substitution

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// Simple is keyword substitution: the cipher alphabet starts with the
// keyword's deduplicated letters and continues with the rest in
// natural order. Digits and punctuation map to themselves.
type Simple struct {
	cipher.Base
}

var _ cipher.Cipher = (*Simple)(nil)

// NewSimple returns a keyword substitution cipher. The keyword is
// validated by Encode/Decode, not here.
func NewSimple(message, keyword string) *Simple {
	return &Simple{Base: cipher.NewBase(message, keyword, false)}
}

// Encode substitutes every letter through the keyed table, preserving
// case; unmapped symbols pass through unchanged.
func (s *Simple) Encode() (string, error) {
	tbl, err := s.table()
	if err != nil {
		return "", err
	}

	return substitute(s.Message(), tbl.Encode), nil
}

// Decode substitutes through the inverse table.
func (s *Simple) Decode() (string, error) {
	tbl, err := s.table()
	if err != nil {
		return "", err
	}

	return substitute(s.Message(), tbl.Decode), nil
}

// table validates message and keyword, then builds the keyed table
// covering both letter cases.
func (s *Simple) table() (*alphabet.Table, error) {
	if s.Message() == "" {
		return nil, fmt.Errorf("substitution: %w", cipher.ErrEmptyMessage)
	}
	if t := s.Alphabet(); t != nil {
		return t, nil
	}
	if err := cipher.ValidateKeyword(s.Key()); err != nil {
		return nil, fmt.Errorf("substitution: %w", err)
	}

	keyed, err := alphabet.Keyed(s.Key())
	if err != nil {
		return nil, fmt.Errorf("substitution: %w: %w", cipher.ErrKeyValidation, err)
	}

	return casedTable(alphabet.Upper, keyed)
}

// casedTable pairs plain[i]→cipherAlpha[i] in upper and lower case.
func casedTable(plain, cipherAlpha string) (*alphabet.Table, error) {
	lower := strings.ToLower
	both, err := alphabet.FromStrings(plain+lower(plain), cipherAlpha+lower(cipherAlpha))
	if err != nil {
		return nil, fmt.Errorf("substitution: %w", err)
	}

	return both, nil
}

// substitute maps every symbol through lookup, passing misses through.
func substitute(msg string, lookup func(rune) (rune, bool)) string {
	var out strings.Builder
	out.Grow(len(msg))
	for _, r := range msg {
		if c, ok := lookup(r); ok {
			out.WriteRune(c)
			continue
		}
		out.WriteRune(r)
	}

	return out.String()
}
