package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeGrimlock/nigma/cipher"
)

// TestShiftText_CaseAndPassthrough verifies case preservation and
// non-letter pass-through.
func TestShiftText_CaseAndPassthrough(t *testing.T) {
	assert.Equal(t, "Dwwdfn dw gdzq!", cipher.ShiftText("Attack at dawn!", 3))
	assert.Equal(t, "Attack at dawn!", cipher.ShiftText("Dwwdfn dw gdzq!", -3))
}

// TestShiftText_Wrapping verifies wrap-around and large/negative offsets.
func TestShiftText_Wrapping(t *testing.T) {
	assert.Equal(t, "ABC", cipher.ShiftText("XYZ", 3))
	assert.Equal(t, "XYZ", cipher.ShiftText("XYZ", 26))
	assert.Equal(t, "XYZ", cipher.ShiftText("XYZ", -26))
	assert.Equal(t, "ABC", cipher.ShiftText("XYZ", 29), "offsets reduce mod 26")
}

// TestBase_Accessors pins the advisory encoded flag semantics: plain
// state, no enforcement.
func TestBase_Accessors(t *testing.T) {
	b := cipher.NewBase("HELLO", "3", false)
	assert.Equal(t, "HELLO", b.Message())
	assert.Equal(t, "3", b.Key())
	assert.False(t, b.Encoded())

	b.SetMessage("WORLD")
	b.SetKey("4")
	b.SetEncoded(true)
	assert.Equal(t, "WORLD", b.Message())
	assert.Equal(t, "4", b.Key())
	assert.True(t, b.Encoded())
}
