// Package quagmire implements the four Quagmire polyalphabetic
// ciphers (ACA numbering I–IV).
//
// 🚀 How they work
//
//	A keyword scrambles an alphabet the usual way: deduplicated
//	keyword letters first, the rest in order. A repeating key then
//	picks a fresh substitution offset for every letter position, and
//	an indicator letter anchors the alignment: the current key letter
//	in the cipher alphabet sits beneath the indicator in the plain
//	alphabet. The four variants differ only in which alphabets are
//	scrambled:
//
//	  Quagmire 1 — cipher alphabet keyed, plain alphabet standard
//	  Quagmire 2 — plain alphabet keyed, cipher alphabet standard
//	  Quagmire 3 — both keyed with the same keyword
//	  Quagmire 4 — both keyed independently, explicit indicator
//
//	For each plaintext letter p under key letter k:
//
//	  ct = CA[(posPA(p) + posCA(k) − posPA(indicator)) mod 26]
//
//	Non-letter symbols pass through unchanged and do not advance the
//	repeating key; case is preserved.
//
// ⚙️ Usage:
//
//	q := quagmire.NewQuagmire3("MEET AT NOON", "SPRING", "FLOWER")
//	ct, err := q.Encode()
//
//	q4 := quagmire.NewQuagmire4("MEET AT NOON", "SPRING", "AUTUMN", "FLOWER", 'C')
//
// The indicator defaults to A for Quagmire 1–3. Empty keywords or an
// empty repeating key error at operation time for all four variants.
//
// Complexity: O(len(message)) per operation.
package quagmire
