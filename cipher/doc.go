// Package cipher defines the contract every nigma cipher implements
// and the small set of primitives the families share.
//
// 🚀 What lives here?
//
//   - Cipher — the Encode/Decode interface all variants satisfy.
//   - Base — common instance state: the stored message, the raw key and
//     the advisory “encoded” flag, with plain accessors. The flag only
//     records whether the stored message is believed to be ciphertext;
//     it is never enforced — both Encode and Decode stay callable.
//   - Primitives — case-preserving letter shifting and whitespace
//     stripping, reused across families. Grid transposition lives with
//     the squares in package alphabet.
//   - Key validators — explicit parse-and-validate steps per key type:
//     integer keys (shift family), letters-only keywords (substitution
//     and polyalphabetic families) and 1..n permutation strings
//     (transposition families). Keys are validated by the operation
//     that first needs them, never silently coerced.
//
// ⚙️ Usage:
//
//	cols, err := cipher.ValidatePermutation("4123") // → [4 1 2 3]
//	if err != nil {
//	  // errors.Is(err, cipher.ErrKeyValidation)
//	}
//	ct := cipher.ShiftText("Attack at dawn!", 3) // "Dwwdfn dw gdzq!"
//
// Error taxonomy (wrapped by every family with its own prefix):
//
//	ErrEmptyMessage      — empty message at Encode/Decode time
//	ErrEmptyKey          — empty required key at Encode/Decode time
//	ErrKeyValidation     — malformed or non-permutation key
//	ErrUnsupportedSymbol — symbol outside the declared cipher domain
//
// All operations are pure: they read their inputs and return new
// strings, so any number of cipher instances may run concurrently.
package cipher
