package twosquare

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// filler pads odd-length messages to a whole number of digraphs.
const filler = 'X'

// TwoSquare substitutes digraphs through two keyed 5×5 squares by the
// rectangle rule. The first letter of each pair indexes square A (the
// primary key), the second square B (the secondary key).
type TwoSquare struct {
	cipher.Base
	secondary string
}

var _ cipher.Cipher = (*TwoSquare)(nil)

// New returns a Two-Square cipher over a primary and secondary keyword.
// Keys are validated by Encode/Decode, not here.
func New(message, key, secondary string) *TwoSquare {
	return &TwoSquare{
		Base:      cipher.NewBase(message, key, false),
		secondary: secondary,
	}
}

// SecondaryKey returns the keyword deriving square B.
func (t *TwoSquare) SecondaryKey() string { return t.secondary }

// SetSecondaryKey replaces the keyword deriving square B.
func (t *TwoSquare) SetSecondaryKey(k string) { t.secondary = k }

// Encode substitutes every digraph by the rectangle rule.
func (t *TwoSquare) Encode() (string, error) {
	return t.transform(false)
}

// Decode applies the same self-inverse lookup and strips one trailing
// X filler introduced by odd-length padding.
func (t *TwoSquare) Decode() (string, error) {
	out, err := t.transform(true)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(out, string(filler)), nil
}

// transform runs the digraph rectangle substitution shared by both
// directions.
func (t *TwoSquare) transform(decoding bool) (string, error) {
	sqA, sqB, err := t.squares()
	if err != nil {
		return "", err
	}

	msg := []rune(normalize(t.Message()))
	if len(msg) == 0 {
		return "", fmt.Errorf("twosquare: %w", cipher.ErrEmptyMessage)
	}
	if len(msg)%2 != 0 {
		if decoding {
			return "", fmt.Errorf("twosquare: odd ciphertext length: %w", cipher.ErrUnsupportedSymbol)
		}
		msg = append(msg, filler)
	}

	out := make([]rune, 0, len(msg))
	for i := 0; i < len(msg); i += 2 {
		a, b := msg[i], msg[i+1]
		posA, _ := sqA.Position(a) // normalize() guarantees grid membership
		posB, _ := sqB.Position(b)

		if posA.Col == posB.Col {
			// Shared column: the rectangle degenerates, the pair is transparent.
			out = append(out, a, b)
			continue
		}

		ca, _ := sqA.At(posA.Row, posB.Col)
		cb, _ := sqB.At(posB.Row, posA.Col)
		out = append(out, ca, cb)
	}

	return string(out), nil
}

// squares validates both keywords and derives the two keyed squares.
func (t *TwoSquare) squares() (*alphabet.Square, *alphabet.Square, error) {
	for _, kw := range []string{t.Key(), t.secondary} {
		if err := cipher.ValidateKeyword(kw); err != nil {
			return nil, nil, fmt.Errorf("twosquare: %w", err)
		}
	}

	sqA, err := keyedSquare(t.Key())
	if err != nil {
		return nil, nil, err
	}
	sqB, err := keyedSquare(t.secondary)
	if err != nil {
		return nil, nil, err
	}

	return sqA, sqB, nil
}

// keyedSquare builds the 5×5 square for one keyword.
func keyedSquare(keyword string) (*alphabet.Square, error) {
	keyed, err := alphabet.Keyed25(keyword)
	if err != nil {
		return nil, fmt.Errorf("twosquare: %w: %w", cipher.ErrKeyValidation, err)
	}
	sq, err := alphabet.NewSquare(keyed)
	if err != nil {
		return nil, fmt.Errorf("twosquare: %w", err)
	}

	return sq, nil
}

// normalize upper-cases, folds J into I and drops everything outside
// the 25-letter grid.
func normalize(msg string) string {
	var out strings.Builder
	out.Grow(len(msg))
	for _, r := range strings.ToUpper(msg) {
		if r == 'J' {
			r = 'I'
		}
		if r >= 'A' && r <= 'Z' {
			out.WriteRune(r)
		}
	}

	return out.String()
}
