package cipher

import "strings"

// alphabetSize is the modulus for all letter shifting.
const alphabetSize = 26

// ShiftRune shifts a single letter by offset positions, wrapping
// modulo 26 and preserving case. Non-letters are returned unchanged.
//
// Complexity: O(1).
func ShiftRune(r rune, offset int) rune {
	// Normalize the offset into [0, 26) so negative shifts wrap cleanly.
	off := ((offset % alphabetSize) + alphabetSize) % alphabetSize

	switch {
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+rune(off))%alphabetSize
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+rune(off))%alphabetSize
	default:
		return r
	}
}

// ShiftText applies ShiftRune to every symbol of s, producing a new
// string. Decoding a shift is ShiftText with the additive inverse.
//
// Complexity: O(len(s)).
func ShiftText(s string, offset int) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		out.WriteRune(ShiftRune(r, offset))
	}

	return out.String()
}

// StripSpace removes all Unicode whitespace from s.
func StripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
