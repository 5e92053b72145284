package quagmire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeGrimlock/nigma/cipher"
	"github.com/MeGrimlock/nigma/quagmire"
)

// TestQuagmire1_Encode pins a hand-worked tableau: cipher alphabet
// keyed with KEYWORD, plain alphabet standard, indicator A.
func TestQuagmire1_Encode(t *testing.T) {
	q := quagmire.NewQuagmire1("HELLO", "KEYWORD", "AB")
	ct, err := q.Encode()
	require.NoError(t, err)
	assert.Equal(t, "JHPQT", ct)
}

// TestQuagmire2_Encode pins the mirrored arrangement: plain alphabet
// keyed, cipher alphabet standard.
func TestQuagmire2_Encode(t *testing.T) {
	q := quagmire.NewQuagmire2("HELLO", "KEYWORD", "AB")
	ct, err := q.Encode()
	require.NoError(t, err)
	assert.Equal(t, "FVIJX", ct)
}

// TestQuagmire3_Encode pins both alphabets keyed identically; under
// key letter A the tableau collapses to the identity row.
func TestQuagmire3_Encode(t *testing.T) {
	q := quagmire.NewQuagmire3("HELLO", "KEYWORD", "AB")
	ct, err := q.Encode()
	require.NoError(t, err)
	assert.Equal(t, "HYLMO", ct)
}

// TestQuagmire_VariantsDiffer ensures the four arrangements produce
// four different ciphertexts for the same inputs.
func TestQuagmire_VariantsDiffer(t *testing.T) {
	const msg, kw, key = "QUAGMIRE FAMILY", "SPRING", "FLOWER"

	q1, err := quagmire.NewQuagmire1(msg, kw, key).Encode()
	require.NoError(t, err)
	q2, err := quagmire.NewQuagmire2(msg, kw, key).Encode()
	require.NoError(t, err)
	q3, err := quagmire.NewQuagmire3(msg, kw, key).Encode()
	require.NoError(t, err)
	q4, err := quagmire.NewQuagmire4(msg, kw, "AUTUMN", key, 'C').Encode()
	require.NoError(t, err)

	assert.NotEqual(t, q1, q2)
	assert.NotEqual(t, q1, q3)
	assert.NotEqual(t, q2, q3)
	assert.NotEqual(t, q3, q4)
}

// TestQuagmire_RoundTrip verifies decode(encode(M)) == M for all four
// variants with mixed case and punctuation.
func TestQuagmire_RoundTrip(t *testing.T) {
	const msg = "Meet me at the Usual Place, 10pm!"

	ciphers := map[string]*quagmire.Quagmire{
		"Q1": quagmire.NewQuagmire1(msg, "SPRING", "FLOWER"),
		"Q2": quagmire.NewQuagmire2(msg, "SPRING", "FLOWER"),
		"Q3": quagmire.NewQuagmire3(msg, "SPRING", "FLOWER"),
		"Q4": quagmire.NewQuagmire4(msg, "SPRING", "AUTUMN", "FLOWER", 'C'),
	}
	for name, q := range ciphers {
		ct, err := q.Encode()
		require.NoError(t, err, name)

		q.SetMessage(ct)
		pt, err := q.Decode()
		require.NoError(t, err, name)
		assert.Equal(t, msg, pt, "%s must round-trip", name)

		q.SetMessage(msg)
	}
}

// TestQuagmire_NonLettersFreezeKey pins the key-advance rule: the
// punctuated message must encode identically to its letters-only form
// with the separators re-inserted.
func TestQuagmire_NonLettersFreezeKey(t *testing.T) {
	q := quagmire.NewQuagmire1("He, LLo!", "KEYWORD", "AB")
	ct, err := q.Encode()
	require.NoError(t, err)
	assert.Equal(t, "Jh, PQt!", ct, "key index must not advance on , or space")
}

// TestQuagmire_Errors covers the empty message / keyword / repeating
// key contract for all variants.
func TestQuagmire_Errors(t *testing.T) {
	_, err := quagmire.NewQuagmire1("", "KEYWORD", "AB").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyMessage)

	_, err = quagmire.NewQuagmire1("HELLO", "", "AB").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyKey, "empty keyword")

	_, err = quagmire.NewQuagmire3("HELLO", "KEYWORD", "").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyKey, "empty repeating key")

	_, err = quagmire.NewQuagmire2("HELLO", "K3Y", "AB").Encode()
	assert.ErrorIs(t, err, cipher.ErrKeyValidation, "non-letter keyword")

	_, err = quagmire.NewQuagmire4("HELLO", "SPRING", "", "FLOWER", 'C').Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyKey, "Quagmire 4 requires both keywords")

	_, err = quagmire.NewQuagmire4("HELLO", "SPRING", "AUTUMN", "FLOWER", '9').Encode()
	assert.ErrorIs(t, err, cipher.ErrKeyValidation, "indicator must be a letter")
}

// TestQuagmire_Deterministic ensures repeated encodes agree.
func TestQuagmire_Deterministic(t *testing.T) {
	q := quagmire.NewQuagmire3("REPEATABLE", "SPRING", "FLOWER")
	first, err := q.Encode()
	require.NoError(t, err)
	second, err := q.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
