package alphabet

import "strings"

// Keyed returns the 26-letter alphabet permuted by a keyword: the
// keyword's letters deduplicated left-to-right, then the remaining
// letters in natural order. An empty keyword yields Upper unchanged.
//
// Returns ErrBadKeyword if the keyword contains a symbol outside A–Z
// (the keyword is case-folded first; spaces are not allowed).
//
// Complexity: O(len(keyword) + 26).
func Keyed(keyword string) (string, error) {
	return keyedOver(keyword, Upper, false)
}

// Keyed25 returns the 25-letter (I/J merged) keyed alphabet used by
// 5×5 Polybius squares. Any J in the keyword is folded into I.
func Keyed25(keyword string) (string, error) {
	return keyedOver(keyword, Upper25, true)
}

// Keyed36 returns the 36-symbol keyed alphabet over letters and digits
// used by 6×6 (ADFGVX) squares. Digits are allowed in the keyword.
func Keyed36(keyword string) (string, error) {
	return keyedOver(keyword, Alnum36, false)
}

// keyedOver implements the shared dedup-then-fill rule over an
// arbitrary base alphabet. mergeJ folds J into I before membership
// checks, matching the 25-letter square convention.
func keyedOver(keyword, base string, mergeJ bool) (string, error) {
	var out strings.Builder
	out.Grow(len(base))

	seen := make(map[rune]bool, len(base))
	for _, r := range strings.ToUpper(keyword) {
		if mergeJ && r == 'J' {
			r = 'I'
		}
		if !strings.ContainsRune(base, r) {
			return "", ErrBadKeyword
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out.WriteRune(r)
	}
	for _, r := range base {
		if !seen[r] {
			out.WriteRune(r)
		}
	}

	return out.String(), nil
}
