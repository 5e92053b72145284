// Package substitution implements the monoalphabetic family: Atbash,
// keyword (“simple”) substitution, and Bazeries.
//
// 🚀 The three variants
//
//   - Atbash — keyless and reciprocal: symbol i maps to the symbol at
//     the mirrored position (A↔Z, B↔Y, …), and digits mirror too
//     (0↔9, 1↔8, …). Encoding twice restores the plaintext.
//   - Simple — a keyword's deduplicated letters head the cipher
//     alphabet, the remaining letters follow in natural order; the
//     standard alphabet maps position-by-position onto that
//     permutation. Digits and punctuation map to themselves.
//   - Bazeries — the Simple table over the 25-letter (I/J merged)
//     alphabet, pushed through a 5×5 grid transposition (rows↔columns)
//     before use. Still a bijection, but scrambled twice over.
//
// ⚙️ Usage:
//
//	a := substitution.NewAtbash("WIZARD")
//	ct, _ := a.Encode() // "DRAZIW"
//
//	s := substitution.NewSimple("FLEE AT ONCE", "ZEBRAS")
//	ct, _ = s.Encode()
//
//	b := substitution.NewBazeries("JAMES", "CODE")
//	ct, _ = b.Encode() // J folds into I before lookup
//
// Policies: Atbash and Simple preserve case and pass unmapped symbols
// through. Bazeries normalizes to upper case (the 25-letter grid has
// no case) and passes non-letters through.
//
// Complexity: table construction O(26), operations O(len(message)).
package substitution
