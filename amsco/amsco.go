package amsco

import (
	"fmt"
	"strings"

	"github.com/MeGrimlock/nigma/cipher"
)

// Amsco is an incomplete columnar transposition over alternating
// 1/2-character chunks under a numeric permutation key.
type Amsco struct {
	cipher.Base
}

var _ cipher.Cipher = (*Amsco)(nil)

// New returns an AMSCO cipher. The key is validated by Encode/Decode.
func New(message, key string) *Amsco {
	return &Amsco{Base: cipher.NewBase(message, key, false)}
}

// Encode cuts the normalized message into alternating 1/2 chunks,
// lays them row-major under the key and reads the columns off in
// ascending key-digit order.
func (a *Amsco) Encode() (string, error) {
	msg, cols, err := a.prepare()
	if err != nil {
		return "", err
	}

	chunks := cut(msg)
	n := len(cols)
	rows := (len(chunks) + n - 1) / n

	var out strings.Builder
	out.Grow(len(msg))
	for digit := 1; digit <= n; digit++ {
		c := indexOf(cols, digit)
		for r := 0; r < rows; r++ {
			if i := r*n + c; i < len(chunks) {
				out.WriteString(chunks[i])
			}
		}
	}

	return out.String(), nil
}

// Decode inverts Encode: it replays the alternating chunk rule against
// key and length to size every grid cell, refills the columns in
// ascending key-digit order and reads the grid row by row.
func (a *Amsco) Decode() (string, error) {
	msg, cols, err := a.prepare()
	if err != nil {
		return "", err
	}

	lens := chunkLengths(len([]rune(msg)))
	n := len(cols)
	rows := (len(lens) + n - 1) / n

	cellLen := func(r, c int) int {
		if i := r*n + c; i < len(lens) {
			return lens[i]
		}

		return 0
	}

	runes := []rune(msg)
	cells := make([][]string, rows)
	for r := range cells {
		cells[r] = make([]string, n)
	}

	pos := 0
	for digit := 1; digit <= n; digit++ {
		c := indexOf(cols, digit)
		for r := 0; r < rows; r++ {
			l := cellLen(r, c)
			cells[r][c] = string(runes[pos : pos+l])
			pos += l
		}
	}

	var out strings.Builder
	out.Grow(len(msg))
	for _, row := range cells {
		for _, cell := range row {
			out.WriteString(cell)
		}
	}

	return out.String(), nil
}

// prepare normalizes the message and validates the permutation key.
func (a *Amsco) prepare() (string, []int, error) {
	msg := strings.ToUpper(cipher.StripSpace(a.Message()))
	if msg == "" {
		return "", nil, fmt.Errorf("amsco: %w", cipher.ErrEmptyMessage)
	}
	cols, err := cipher.ValidatePermutation(a.Key())
	if err != nil {
		return "", nil, fmt.Errorf("amsco: %w", err)
	}

	return msg, cols, nil
}

// cut splits msg into chunks of alternating length 1,2,1,2,…; the last
// chunk is truncated to whatever remains.
func cut(msg string) []string {
	runes := []rune(msg)
	chunks := make([]string, 0, 2*len(runes)/3+1)
	for i, want := 0, 1; i < len(runes); want = 3 - want {
		end := i + want
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
		i = end
	}

	return chunks
}

// chunkLengths replays the alternating rule for a message of total
// characters, mirroring cut without materializing the text.
func chunkLengths(total int) []int {
	lens := make([]int, 0, 2*total/3+1)
	for want := 1; total > 0; want = 3 - want {
		l := want
		if l > total {
			l = total
		}
		lens = append(lens, l)
		total -= l
	}

	return lens
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
