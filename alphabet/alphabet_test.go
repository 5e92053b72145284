package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeGrimlock/nigma/alphabet"
)

// TestFromStrings_Roundtrip verifies that a table built from two
// alphabets encodes forward and decodes back to the same symbol.
func TestFromStrings_Roundtrip(t *testing.T) {
	keyed, err := alphabet.Keyed("SECRET")
	require.NoError(t, err)

	tbl, err := alphabet.FromStrings(alphabet.Upper, keyed)
	require.NoError(t, err)
	assert.Equal(t, 26, tbl.Len(), "all 26 letters must be mapped")

	for _, p := range alphabet.Upper {
		c, ok := tbl.Encode(p)
		require.True(t, ok, "every plaintext letter must encode")
		back, ok := tbl.Decode(c)
		require.True(t, ok, "every ciphertext letter must decode")
		assert.Equal(t, p, back, "decode(encode(%c)) must round-trip", p)
	}
}

// TestFromStrings_LengthMismatch ensures unequal alphabets are rejected.
func TestFromStrings_LengthMismatch(t *testing.T) {
	_, err := alphabet.FromStrings("ABC", "AB")
	assert.ErrorIs(t, err, alphabet.ErrLengthMismatch)
}

// TestFromStrings_NotBijective ensures duplicate symbols on either
// side are rejected at construction, not at lookup time.
func TestFromStrings_NotBijective(t *testing.T) {
	_, err := alphabet.FromStrings("AAB", "XYZ")
	assert.ErrorIs(t, err, alphabet.ErrNotBijective, "duplicate plain symbol")

	_, err = alphabet.FromStrings("ABC", "XXY")
	assert.ErrorIs(t, err, alphabet.ErrNotBijective, "duplicate cipher symbol")
}

// TestKeyed_DedupAndFill checks the keyword dedup-then-fill rule.
func TestKeyed_DedupAndFill(t *testing.T) {
	got, err := alphabet.Keyed("SECRET")
	require.NoError(t, err)
	assert.Equal(t, "SECRTABDFGHIJKLMNOPQUVWXYZ", got)
	assert.Len(t, got, 26, "keyed alphabet must stay a permutation")
}

// TestKeyed_EmptyKeyword checks that no keyword yields the plain alphabet.
func TestKeyed_EmptyKeyword(t *testing.T) {
	got, err := alphabet.Keyed("")
	require.NoError(t, err)
	assert.Equal(t, alphabet.Upper, got)
}

// TestKeyed_BadSymbol ensures out-of-alphabet keyword symbols error.
func TestKeyed_BadSymbol(t *testing.T) {
	_, err := alphabet.Keyed("PASS WORD")
	assert.ErrorIs(t, err, alphabet.ErrBadKeyword, "space is outside A-Z")

	_, err = alphabet.Keyed("K3Y")
	assert.ErrorIs(t, err, alphabet.ErrBadKeyword, "digits are outside A-Z")
}

// TestKeyed25_MergesJ verifies the I/J merge in the 25-letter variant.
func TestKeyed25_MergesJ(t *testing.T) {
	got, err := alphabet.Keyed25("JAZZ")
	require.NoError(t, err)
	assert.Equal(t, "IAZBCDEFGHKLMNOPQRSTUVWXY", got)
	assert.NotContains(t, got, "J")
	assert.Len(t, got, 25)
}

// TestKeyed36_AllowsDigits verifies the 36-symbol ADFGVX alphabet.
func TestKeyed36_AllowsDigits(t *testing.T) {
	got, err := alphabet.Keyed36("R2D2")
	require.NoError(t, err)
	assert.Len(t, got, 36)
	assert.Equal(t, "R2D", got[:3], "keyword symbols lead, deduplicated")
}
