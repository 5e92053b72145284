// Package nigma is your playground for classical, pre-modern ciphers —
// from simple shifts and keyword substitutions to fractionation,
// columnar transposition and the Quagmire polyalphabetics, plus a
// frequency-analysis engine for breaking them.
//
// 🚀 What is nigma?
//
//	An educational toolkit that brings together:
//		• Shift family: Caesar, ROT13
//		• Monoalphabetic: Atbash, keyword substitution, Bazeries
//		• Digraph squares: Two-Square
//		• Transposition: AMSCO incomplete columnar
//		• Fractionation: Polybius, ADFGX, ADFGVX
//		• Polyalphabetic: Quagmire I–IV
//		• Encodings: Morse
//		• Cryptanalysis: letter/n-gram frequencies & chi-squared scoring
//
// ✨ Why choose nigma?
//
//   - Beginner-friendly – every cipher exposes the same Encode/Decode contract
//   - Honest errors – keys are validated, never silently coerced
//   - Pure functions – no shared state, safe to run in parallel
//   - Pedagogically weak by design – do NOT use these ciphers for anything real
//
// Under the hood, everything is organized per cipher family:
//
//	alphabet/     — bidirectional symbol tables & Polybius squares
//	cipher/       — the shared Encode/Decode contract & primitives
//	shift/        — Caesar, ROT13
//	substitution/ — Atbash, keyword substitution, Bazeries
//	twosquare/    — Two-Square digraph cipher
//	amsco/        — AMSCO incomplete columnar transposition
//	polybius/     — Polybius coordinate square
//	adfgvx/       — ADFGVX / ADFGX fractionation
//	quagmire/     — Quagmire I–IV
//	morse/        — Morse encoding
//	freq/         — frequency analysis & chi-squared scoring
//
// Quick taste:
//
//	c := shift.NewCaesar("ATTACK AT DAWN", "3")
//	ct, _ := c.Encode() // "DWWDFN DW GDZQ"
//
// Dive into README.md and examples/ for guided walkthroughs of every
// family, and cmd/nigma for the command-line interface.
//
//	go get github.com/MeGrimlock/nigma
package nigma
