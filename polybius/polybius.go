package polybius

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// wordSeparator divides encoded words in the coordinate stream.
const wordSeparator = "/"

// Polybius maps letters to 1-indexed row/column digit pairs on a 5×5
// square, optionally permuted by a keyword.
type Polybius struct {
	cipher.Base
}

var _ cipher.Cipher = (*Polybius)(nil)

// New returns a Polybius cipher. An empty key leaves the square in
// natural ABCDE… order.
func New(message, key string) *Polybius {
	return &Polybius{Base: cipher.NewBase(message, key, false)}
}

// Encode replaces every letter with its "rc" coordinate pair, pairs
// joined by spaces and words by " / ". Non-letters are dropped.
func (p *Polybius) Encode() (string, error) {
	sq, err := p.square()
	if err != nil {
		return "", err
	}

	words := make([]string, 0, 8)
	for _, word := range strings.Fields(p.Message()) {
		codes := make([]string, 0, len(word))
		for _, r := range strings.ToUpper(word) {
			pos, ok := sq.Position(r)
			if !ok {
				continue
			}
			codes = append(codes, fmt.Sprintf("%d%d", pos.Row+1, pos.Col+1))
		}
		if len(codes) > 0 {
			words = append(words, strings.Join(codes, " "))
		}
	}
	if len(words) == 0 {
		return "", fmt.Errorf("polybius: no encodable letters: %w", cipher.ErrEmptyMessage)
	}

	return strings.Join(words, " "+wordSeparator+" "), nil
}

// Decode parses the coordinate stream back into letters. A token that
// is not a valid two-digit coordinate is an error.
func (p *Polybius) Decode() (string, error) {
	sq, err := p.square()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(p.Message()) == "" {
		return "", fmt.Errorf("polybius: %w", cipher.ErrEmptyMessage)
	}

	words := make([]string, 0, 8)
	for _, word := range strings.Split(p.Message(), wordSeparator) {
		var out strings.Builder
		for _, token := range strings.Fields(word) {
			r, ok := decodeToken(sq, token)
			if !ok {
				return "", fmt.Errorf("polybius: bad coordinate %q: %w", token, cipher.ErrUnsupportedSymbol)
			}
			out.WriteRune(r)
		}
		words = append(words, out.String())
	}

	return strings.Join(words, " "), nil
}

// square validates the optional keyword and builds the 5×5 grid.
func (p *Polybius) square() (*alphabet.Square, error) {
	if p.Key() != "" {
		if err := cipher.ValidateKeyword(p.Key()); err != nil {
			return nil, fmt.Errorf("polybius: %w", err)
		}
	}
	keyed, err := alphabet.Keyed25(p.Key())
	if err != nil {
		return nil, fmt.Errorf("polybius: %w: %w", cipher.ErrKeyValidation, err)
	}
	sq, err := alphabet.NewSquare(keyed)
	if err != nil {
		return nil, fmt.Errorf("polybius: %w", err)
	}

	return sq, nil
}

// decodeToken resolves one "rc" token against the square.
func decodeToken(sq *alphabet.Square, token string) (rune, bool) {
	if len(token) != 2 {
		return 0, false
	}
	row, col := int(token[0]-'1'), int(token[1]-'1')

	return sq.At(row, col)
}
