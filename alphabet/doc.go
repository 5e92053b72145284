// Package alphabet provides the symbol-table machinery every cipher in
// nigma is built on: bidirectional substitution tables, keyword-derived
// (“keyed”) alphabets, and Polybius squares.
//
// 🚀 What lives here?
//
//   - Table — an invertible plaintext→ciphertext symbol mapping with an
//     explicitly constructed inverse, built once at construction time
//     (never scanned per lookup).
//   - Keyed / Keyed25 / Keyed36 — keyword-permuted alphabets: the
//     keyword's letters, deduplicated left-to-right, followed by the
//     remaining symbols in natural order.
//   - Square — a 5×5 or 6×6 Polybius square with O(1) coordinate lookup
//     and a rows↔columns Transpose (used by Bazeries and the
//     fractionation ciphers). The free Transpose function is the shared
//     rectangular-grid primitive the Square method routes through.
//
// ⚙️ Usage:
//
//	keyed, _ := alphabet.Keyed("SECRET")            // "SECRTABDFGHIJKLMNOPQUVWXYZ"
//	tbl, _ := alphabet.FromStrings(alphabet.Upper, keyed)
//	ct, ok := tbl.Encode('H')                        // substitute one symbol
//
//	sq, _ := alphabet.NewSquare(alphabet.Upper25)    // 5×5, I/J merged
//	pos, ok := sq.Position('J')                      // J resolves to I's cell
//
// Invariants:
//
//   - A Table is a total bijection over its domain; a non-invertible
//     mapping is rejected at construction, never at lookup time.
//   - A Square's alphabet length must be a perfect square (25 or 36).
//   - Tables and Squares are immutable after construction; Transpose
//     returns a new Square.
//
// Complexity: construction O(n), lookups O(1).
package alphabet
