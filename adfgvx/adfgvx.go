package adfgvx

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/alphabet"
	"github.com/MeGrimlock/nigma/cipher"
)

// Coordinate code alphabets, row label first, column label second.
const (
	codeADFGVX = "ADFGVX"
	codeADFGX  = "ADFGX"
)

// ADFGVX fractionates each symbol into a two-letter grid coordinate
// under a primary keyword, then columnar-transposes the coordinate
// stream under a numeric permutation key.
type ADFGVX struct {
	cipher.Base
	transKey string
	code     string
}

var _ cipher.Cipher = (*ADFGVX)(nil)

// New returns the 6×6 ADFGVX cipher over letters and digits. The
// primary keyword may be empty (natural grid order); both keys are
// validated by Encode/Decode, never at construction.
func New(message, key, transpositionKey string) *ADFGVX {
	return &ADFGVX{
		Base:     cipher.NewBase(message, key, false),
		transKey: transpositionKey,
		code:     codeADFGVX,
	}
}

// NewADFGX returns the older 5×5 letters-only variant (I/J merged).
func NewADFGX(message, key, transpositionKey string) *ADFGVX {
	return &ADFGVX{
		Base:     cipher.NewBase(message, key, false),
		transKey: transpositionKey,
		code:     codeADFGX,
	}
}

// TranspositionKey returns the secondary (columnar) key.
func (c *ADFGVX) TranspositionKey() string { return c.transKey }

// SetTranspositionKey replaces the secondary key; it is re-validated
// on the next operation.
func (c *ADFGVX) SetTranspositionKey(k string) { c.transKey = k }

// Encode fractionates the message into coordinates and transposes the
// stream. Key validation failures surface here, not as silent no-ops.
func (c *ADFGVX) Encode() (string, error) {
	sq, cols, err := c.prepare()
	if err != nil {
		return "", err
	}

	stream := fractionate(c.Message(), sq, c.code)
	if len(stream) == 0 {
		return "", fmt.Errorf("adfgvx: no encodable symbols: %w", cipher.ErrEmptyMessage)
	}

	n := len(cols)
	out := make([]rune, 0, len(stream))
	for digit := 1; digit <= n; digit++ {
		col := indexOf(cols, digit)
		for i := col; i < len(stream); i += n {
			out = append(out, stream[i])
		}
	}

	return string(out), nil
}

// Decode undoes the transposition (column lengths follow from the key
// and ciphertext length), then pairs coordinates and reverses the
// grid lookup.
func (c *ADFGVX) Decode() (string, error) {
	sq, cols, err := c.prepare()
	if err != nil {
		return "", err
	}

	ct := []rune(strings.ToUpper(cipher.StripSpace(c.Message())))
	for _, r := range ct {
		if !strings.ContainsRune(c.code, r) {
			return "", fmt.Errorf("adfgvx: %q outside code alphabet %s: %w", r, c.code, cipher.ErrUnsupportedSymbol)
		}
	}
	if len(ct)%2 != 0 {
		return "", fmt.Errorf("adfgvx: odd coordinate stream: %w", cipher.ErrUnsupportedSymbol)
	}

	// Undo the columnar transposition: ascending key digits wrote the
	// columns out in order, so slice the ciphertext back into columns.
	n := len(cols)
	colData := make([][]rune, n)
	pos := 0
	for digit := 1; digit <= n; digit++ {
		col := indexOf(cols, digit)
		l := len(ct) / n
		if col < len(ct)%n {
			l++
		}
		colData[col] = ct[pos : pos+l]
		pos += l
	}

	stream := make([]rune, len(ct))
	for i := range stream {
		stream[i] = colData[i%n][i/n]
	}

	// Defractionate: each coordinate pair addresses one grid cell.
	var out strings.Builder
	out.Grow(len(stream) / 2)
	for i := 0; i < len(stream); i += 2 {
		row := strings.IndexRune(c.code, stream[i])
		col := strings.IndexRune(c.code, stream[i+1])
		r, ok := sq.At(row, col)
		if !ok {
			return "", fmt.Errorf("adfgvx: coordinate %c%c outside grid: %w", stream[i], stream[i+1], cipher.ErrUnsupportedSymbol)
		}
		out.WriteRune(r)
	}

	return out.String(), nil
}

// prepare validates both keys and builds the keyed grid. Empty message
// and empty or non-permutation transposition keys are hard errors.
func (c *ADFGVX) prepare() (*alphabet.Square, []int, error) {
	if strings.TrimSpace(c.Message()) == "" {
		return nil, nil, fmt.Errorf("adfgvx: %w", cipher.ErrEmptyMessage)
	}
	cols, err := cipher.ValidatePermutation(c.transKey)
	if err != nil {
		return nil, nil, fmt.Errorf("adfgvx: %w", err)
	}

	var keyed string
	if c.code == codeADFGVX {
		keyed, err = alphabet.Keyed36(c.Key())
	} else {
		keyed, err = alphabet.Keyed25(c.Key())
	}
	if err != nil {
		return nil, nil, fmt.Errorf("adfgvx: %w: %w", cipher.ErrKeyValidation, err)
	}

	sq, err := alphabet.NewSquare(keyed)
	if err != nil {
		return nil, nil, fmt.Errorf("adfgvx: %w", err)
	}

	return sq, cols, nil
}

// fractionate maps every grid symbol of msg to its coordinate pair;
// symbols outside the grid are dropped.
func fractionate(msg string, sq *alphabet.Square, code string) []rune {
	stream := make([]rune, 0, 2*len(msg))
	for _, r := range strings.ToUpper(msg) {
		pos, ok := sq.Position(r)
		if !ok {
			continue
		}
		stream = append(stream, rune(code[pos.Row]), rune(code[pos.Col]))
	}

	return stream
}

// indexOf locates digit inside the key-order column list.
func indexOf(cols []int, digit int) int {
	for c, d := range cols {
		if d == digit {
			return c
		}
	}

	return -1 // unreachable: cols is a validated permutation
}
