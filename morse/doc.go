// Package morse implements International Morse code as a
// non-cryptographic symbol↔timing-code encoding.
//
// 🚀 How it works
//
//	Each letter or digit maps to a dot/dash code of one to five
//	marks — the table is not length-preserving, so the stream needs
//	separators: one space between letters, " / " between words.
//
//	  "SOS" → "... --- ..."
//	  "HELLO WORLD" → ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
//
//	The code→symbol inverse is materialized once at package init, so
//	decoding is a plain map lookup per token.
//
// ⚙️ Usage:
//
//	m := morse.New("SOS")
//	ct, _ := m.Encode()
//
//	m.SetMessage("... --- ...")
//	pt, _ := m.Decode() // "SOS"
//
// Policies: encode folds to upper case and drops unmapped symbols;
// decode rejects unknown code tokens with cipher.ErrUnsupportedSymbol.
//
// Complexity: O(len(message)) per operation.
package morse
