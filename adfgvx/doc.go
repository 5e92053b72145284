// Package adfgvx implements the ADFGVX fractionation cipher and its
// 5×5 predecessor ADFGX.
//
// 🚀 How it works
//
//	Two stages, two keys:
//
//	 1. Fractionation — a primary keyword permutes a 6×6 grid over
//	    letters and digits (ADFGX: 5×5 over letters, I/J merged). Each
//	    message symbol becomes its two-letter grid coordinate, row then
//	    column, drawn from the code alphabet A D F G V X — six letters
//	    chosen in 1918 for their distinct Morse shapes.
//	 2. Transposition — the coordinate stream is written row-major
//	    under a numeric permutation key and the columns are read off
//	    in ascending key-digit order, single characters this time.
//
//	Decoding undoes the transposition first (column lengths follow
//	from the key and message length), then pairs the coordinates and
//	reverses the grid lookup.
//
// ⚙️ Usage:
//
//	c := adfgvx.New("ATTACK AT 1200", "PRIVACY", "3142")
//	ct, err := c.Encode()
//
//	g := adfgvx.NewADFGX("ATTACK", "PRIVACY", "3142") // letters only
//
// Error contract: an empty message, an empty transposition key or a
// non-permutation transposition key surfaces from Encode itself —
// this family never degrades to a no-op.
//
// Complexity: O(len(message)) per operation.
package adfgvx
