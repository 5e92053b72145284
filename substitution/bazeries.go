package substitution

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// Bazeries is keyword substitution over the 25-letter (I/J merged)
// alphabet whose keyed table is transposed through a 5×5 grid before
// use: the cipher alphabet is the keyed square read column-major.
type Bazeries struct {
	cipher.Base
}

var _ cipher.Cipher = (*Bazeries)(nil)

// NewBazeries returns a Bazeries cipher. The keyword is validated by
// Encode/Decode, not here.
func NewBazeries(message, keyword string) *Bazeries {
	return &Bazeries{Base: cipher.NewBase(message, keyword, false)}
}

// Encode upper-cases the message, folds J into I and substitutes every
// letter through the transposed keyed table; non-letters pass through.
func (b *Bazeries) Encode() (string, error) {
	tbl, err := b.table()
	if err != nil {
		return "", err
	}

	return substitute(b.normalized(), tbl.Encode), nil
}

// Decode substitutes through the inverse of the transposed table.
func (b *Bazeries) Decode() (string, error) {
	tbl, err := b.table()
	if err != nil {
		return "", err
	}

	return substitute(b.normalized(), tbl.Decode), nil
}

// normalized upper-cases the message and folds J into I, the 25-letter
// grid's canonical form.
func (b *Bazeries) normalized() string {
	return strings.ReplaceAll(strings.ToUpper(b.Message()), "J", "I")
}

// table builds the keyed 5×5 square, transposes it and pairs the plain
// 25-letter alphabet against the transposed read-off.
func (b *Bazeries) table() (*alphabet.Table, error) {
	if b.Message() == "" {
		return nil, fmt.Errorf("bazeries: %w", cipher.ErrEmptyMessage)
	}
	if err := cipher.ValidateKeyword(b.Key()); err != nil {
		return nil, fmt.Errorf("bazeries: %w", err)
	}

	keyed, err := alphabet.Keyed25(b.Key())
	if err != nil {
		return nil, fmt.Errorf("bazeries: %w: %w", cipher.ErrKeyValidation, err)
	}
	sq, err := alphabet.NewSquare(keyed)
	if err != nil {
		return nil, fmt.Errorf("bazeries: %w", err)
	}

	tbl, err := alphabet.FromStrings(alphabet.Upper25, sq.Transpose().String())
	if err != nil {
		return nil, fmt.Errorf("bazeries: %w", err)
	}

	return tbl, nil
}
