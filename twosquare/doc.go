// Package twosquare implements the Two-Square digraph cipher: two
// independently keyed 5×5 Polybius squares (I/J merged) substituting
// letter pairs by the rectangle rule.
//
// 🚀 How it works
//
//	The message is normalized (upper-cased, non-letters dropped, J→I)
//	and split into digraphs; an odd message is padded with the filler
//	X. For a pair (a, b), a is located in square A at (r1, c1) and b
//	in square B at (r2, c2); the ciphertext digraph is
//
//	  A[r1][c2] , B[r2][c1]
//
//	the opposite corners of the rectangle the two letters span. Pairs
//	whose letters share a column are transparent: they pass unchanged.
//
//	The rectangle rule is self-inverse, so Decode is the same lookup;
//	Decode additionally strips one trailing X filler, which means a
//	plaintext genuinely ending in X needs its own padding discipline.
//
// ⚙️ Usage:
//
//	ts := twosquare.New("HELLO WORLD", "EXAMPLE", "KEYWORD")
//	ct, err := ts.Encode() // "HEFFSKORBR"
//
// Empty message or either keyword empty is a hard error surfaced by
// the operation (errors.Is: cipher.ErrEmptyMessage / cipher.ErrEmptyKey).
//
// Complexity: O(len(message)) per operation after O(25) square builds.
package twosquare
