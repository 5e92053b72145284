package amsco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeGrimlock/nigma/amsco"
	"github.com/MeGrimlock/nigma/cipher"
)

// TestAmsco_Encode pins the column read-off against a hand-filled grid
// where the chunk count divides evenly into the columns.
func TestAmsco_Encode(t *testing.T) {
	a := amsco.New("INCOMPLETE COLUMNAR", "4123")
	ct, err := a.Encode()
	require.NoError(t, err)
	assert.Equal(t, "NCETUMOENMPCOARILL", ct)
}

// TestAmsco_Encode_IncompleteRow pins the read-off when the last grid
// row is short and the final chunk is truncated to one character.
func TestAmsco_Encode_IncompleteRow(t *testing.T) {
	a := amsco.New("AMSCO CIPHER", "312")
	ct, err := a.Encode()
	require.NoError(t, err)
	assert.Equal(t, "MSIRCPHAOCE", ct)
}

// TestAmsco_RoundTrip verifies decode(encode(M)) == normalize(M)
// across message lengths that exercise every chunk/row remainder.
func TestAmsco_RoundTrip(t *testing.T) {
	for _, msg := range []string{
		"A",
		"AB",
		"ABC",
		"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG",
		"INCOMPLETE COLUMNAR",
		"SHORT",
	} {
		a := amsco.New(msg, "4123")
		ct, err := a.Encode()
		require.NoError(t, err, "msg %q", msg)

		a.SetMessage(ct)
		pt, err := a.Decode()
		require.NoError(t, err, "msg %q", msg)

		want := ""
		for _, r := range msg {
			if r != ' ' {
				want += string(r)
			}
		}
		assert.Equal(t, want, pt, "msg %q must round-trip", msg)
	}
}

// TestAmsco_KeyValidation pins the permutation contract: "4123" passes,
// "1245" (no 3) fails, and the failure surfaces from the operation.
func TestAmsco_KeyValidation(t *testing.T) {
	_, err := amsco.New("SOME TEXT", "1245").Encode()
	assert.ErrorIs(t, err, cipher.ErrKeyValidation)

	_, err = amsco.New("SOME TEXT", "1245").Decode()
	assert.ErrorIs(t, err, cipher.ErrKeyValidation)

	_, err = amsco.New("SOME TEXT", "4123").Encode()
	assert.NoError(t, err)
}

// TestAmsco_EmptyInputs covers empty message and empty key errors.
func TestAmsco_EmptyInputs(t *testing.T) {
	_, err := amsco.New("", "4123").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyMessage)

	_, err = amsco.New("   ", "4123").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyMessage, "whitespace-only strips to empty")

	_, err = amsco.New("HELLO", "").Encode()
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
}

// TestAmsco_Deterministic ensures repeated encodes agree.
func TestAmsco_Deterministic(t *testing.T) {
	a := amsco.New("REPEATABLE OUTPUT", "312")
	first, err := a.Encode()
	require.NoError(t, err)
	second, err := a.Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
