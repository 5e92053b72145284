package alphabet

// Standard symbol domains shared by the cipher families.
const (
	// Upper is the standard 26-letter alphabet.
	Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// Upper25 is the 5×5 square alphabet with J merged into I.
	Upper25 = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
	// Alnum36 is the 6×6 square alphabet: letters then digits.
	Alnum36 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Digits are the decimal digits, used by reciprocal digit mappings.
	Digits = "0123456789"
)

// Table is an invertible plaintext→ciphertext symbol mapping.
//
// Both directions are materialized once at construction, so Encode and
// Decode are single map lookups. A Table is immutable after New.
type Table struct {
	forward map[rune]rune
	inverse map[rune]rune
}

// New builds a Table from an explicit forward mapping.
// Returns ErrNotBijective if two keys share a value.
//
// Complexity: O(n) time and space.
func New(forward map[rune]rune) (*Table, error) {
	t := &Table{
		forward: make(map[rune]rune, len(forward)),
		inverse: make(map[rune]rune, len(forward)),
	}
	for p, c := range forward {
		if _, dup := t.inverse[c]; dup {
			return nil, ErrNotBijective
		}
		t.forward[p] = c
		t.inverse[c] = p
	}

	return t, nil
}

// FromStrings builds a Table pairing plain[i] with cipher[i].
//
// Returns ErrLengthMismatch when the strings differ in rune count and
// ErrNotBijective when either side repeats a symbol.
//
// Complexity: O(n) time and space.
func FromStrings(plain, cipher string) (*Table, error) {
	pr, cr := []rune(plain), []rune(cipher)
	if len(pr) != len(cr) {
		return nil, ErrLengthMismatch
	}
	forward := make(map[rune]rune, len(pr))
	for i, p := range pr {
		if _, dup := forward[p]; dup {
			return nil, ErrNotBijective
		}
		forward[p] = cr[i]
	}

	return New(forward)
}

// Encode maps a plaintext symbol to its ciphertext symbol.
// The second result reports whether the symbol belongs to the domain.
func (t *Table) Encode(r rune) (rune, bool) {
	c, ok := t.forward[r]

	return c, ok
}

// Decode maps a ciphertext symbol back to its plaintext symbol.
func (t *Table) Decode(r rune) (rune, bool) {
	p, ok := t.inverse[r]

	return p, ok
}

// Len reports the number of mapped symbols.
func (t *Table) Len() int { return len(t.forward) }
