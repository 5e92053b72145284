// Package shift implements the shift cipher family: Caesar with an
// arbitrary integer key, and the fixed-offset ROT13.
//
// 🚀 How it works
//
//	Every letter moves key positions forward in the alphabet, wrapping
//	after Z; decoding moves the same distance backward. Case is
//	preserved and non-letters pass through unchanged:
//
//	  Caesar(+3):  "Attack at dawn!" → "Dwwdfn dw gdzq!"
//	  ROT13:       "Why did the chicken…" → "Jul qvq gur puvpxra…"
//
// ⚙️ Usage:
//
//	c := shift.NewCaesar("Attack at dawn", "3")
//	ct, err := c.Encode()
//	pt, err := c.Decode() // inverse shift
//
// The key must parse as an integer; it is validated by Encode/Decode
// (errors.Is(err, cipher.ErrKeyValidation)), never coerced. Offsets of
// any sign or size are reduced modulo 26.
//
// ROT13 is its own inverse: Encode and Decode are the same operation.
//
// Complexity: O(len(message)) per operation.
package shift
