// Package polybius implements the Polybius square: each letter becomes
// its 1-indexed row/column coordinate pair in a 5×5 grid (I/J merged).
//
// 🚀 How it works
//
//	    1 2 3 4 5
//	  1 A B C D E
//	  2 F G H I K
//	  3 L M N O P
//	  4 Q R S T U
//	  5 V W X Y Z
//
//	"HELLO" → "23 15 31 31 34"
//
//	Coordinate pairs are joined with single spaces and words separated
//	by " / ". Non-letter symbols are dropped on encode; an unknown
//	coordinate token on decode is an error, not a silent skip.
//
// ⚙️ Usage:
//
//	p := polybius.New("HELLO WORLD", "")        // unkeyed grid
//	ct, _ := p.Encode()                         // "23 15 31 31 34 / 52 34 42 31 14"
//
//	k := polybius.New("HELLO", "SECRET")        // keyword-permuted grid
//	ct, _ = k.Encode()
//
// An empty keyword is legal here (the grid falls back to natural
// order); an empty message is not.
//
// Complexity: O(len(message)) per operation.
package polybius
