// Package amsco implements the AMSCO incomplete columnar transposition
// cipher.
//
// 🚀 How it works
//
//	The message (whitespace stripped, upper-cased) is cut into
//	alternating chunks of 1 and 2 characters and written row by row
//	under the columns of a numeric key; the last row may be short
//	(hence “incomplete”). Ciphertext is the columns read off in
//	ascending key-digit order.
//
//	  key:      4    1    2    3
//	  text:     I | NC | O  | MP
//	            L | ET | E  | CO
//	            L | UM | N  | AR
//
//	  "INCOMPLETE COLUMNAR" → "NCETUM OEN MPCOAR ILL" (shown spaced)
//
//	Decoding replays the same alternating 1/2 chunk rule against the
//	key and message length to size every cell, refills the columns in
//	key order, then reads the grid row-major.
//
// ⚙️ Usage:
//
//	a := amsco.New("INCOMPLETE COLUMNAR", "4123")
//	ct, err := a.Encode() // "NCETUMOENMPCOARILL"
//
// The key must be a permutation of 1..n: "4123" is valid, "1245" is
// not (errors.Is: cipher.ErrKeyValidation). The transient grid is
// local to the operation and discarded after read-off.
//
// Complexity: O(len(message)) time and space per operation.
package amsco
