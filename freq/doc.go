// Package freq computes letter and n-gram frequency distributions and
// the chi-squared goodness-of-fit statistic used to rank candidate
// decryptions against reference language statistics.
//
// 🚀 What lives here?
//
//   - LetterFrequencies — per-letter percentages over the alphabetic
//     symbols of a text, case-folded. Sums to ≈100 for any non-empty
//     alphabetic input.
//   - NgramFrequencies — overlapping n-gram percentages over the
//     case-folded text with non-letters stripped (digraph and trigraph
//     statistics are the workhorses of classical cryptanalysis).
//   - ChiSquared — Σ (observed−expected)²/expected over the expected
//     distribution's keys; 0 means identical, lower is closer.
//   - English — an embedded reference letter distribution; other
//     languages load from YAML via LoadReference.
//   - ScoreEnglish — chi-squared of a text against English, the one
//     number a brute-force key search needs per candidate.
//
// ⚙️ Usage — breaking a Caesar shift:
//
//	best, bestScore := "", math.MaxFloat64
//	for k := 0; k < 26; k++ {
//	  c := shift.NewCaesar(ciphertext, strconv.Itoa(k))
//	  pt, _ := c.Decode()
//	  if s := freq.ScoreEnglish(pt); s < bestScore {
//	    best, bestScore = pt, s
//	  }
//	}
//
// All maps are keyed by upper-case strings ("E", "TH") so observed and
// expected tables pair directly for display or scoring. Every call
// builds a fresh map; nothing is shared or mutated across calls.
//
// Complexity: O(len(text)) per distribution, O(|expected|) per score.
package freq
