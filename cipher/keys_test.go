package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeGrimlock/nigma/cipher"
)

// TestParseShiftKey covers integer, empty and malformed shift keys.
func TestParseShiftKey(t *testing.T) {
	n, err := cipher.ParseShiftKey("13")
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	n, err = cipher.ParseShiftKey("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n, "negative offsets are legal; wrapping is the caller's job")

	_, err = cipher.ParseShiftKey("")
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)

	_, err = cipher.ParseShiftKey("abc")
	assert.ErrorIs(t, err, cipher.ErrKeyValidation)
}

// TestValidateKeyword rejects empty and non-letter keywords.
func TestValidateKeyword(t *testing.T) {
	assert.NoError(t, cipher.ValidateKeyword("SECRET"))
	assert.NoError(t, cipher.ValidateKeyword("secret"))

	assert.ErrorIs(t, cipher.ValidateKeyword(""), cipher.ErrEmptyKey)
	assert.ErrorIs(t, cipher.ValidateKeyword("K3Y"), cipher.ErrKeyValidation)
	assert.ErrorIs(t, cipher.ValidateKeyword("TWO WORDS"), cipher.ErrKeyValidation)
}

// TestValidatePermutation pins the 1..n bijection contract: "4123"
// succeeds, "1245" (missing 3) and repeats fail.
func TestValidatePermutation(t *testing.T) {
	cols, err := cipher.ValidatePermutation("4123")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 2, 3}, cols)

	_, err = cipher.ValidatePermutation("1245")
	assert.ErrorIs(t, err, cipher.ErrKeyValidation, "digit outside 1..n must fail")

	_, err = cipher.ValidatePermutation("1224")
	assert.ErrorIs(t, err, cipher.ErrKeyValidation, "repeated digit must fail")

	_, err = cipher.ValidatePermutation("12a4")
	assert.ErrorIs(t, err, cipher.ErrKeyValidation, "non-digit must fail")

	_, err = cipher.ValidatePermutation("")
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
}
