package cipher

import (
	"fmt"
	"strconv"
)

// ParseShiftKey parses an integer shift key.
// Returns the offset, or ErrKeyValidation when the key is empty or not
// an integer. The offset is returned as given; callers reduce mod 26.
//
// Complexity: O(len(key)).
func ParseShiftKey(key string) (int, error) {
	if key == "" {
		return 0, fmt.Errorf("shift key: %w", ErrEmptyKey)
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("shift key %q is not an integer: %w", key, ErrKeyValidation)
	}

	return n, nil
}

// ValidateKeyword checks that a keyword is non-empty and letters-only.
// Keywords select alphabet permutations, so digits, spaces and
// punctuation are construction-time mistakes, not symbols to coerce.
//
// Complexity: O(len(key)).
func ValidateKeyword(key string) error {
	if key == "" {
		return fmt.Errorf("keyword: %w", ErrEmptyKey)
	}
	for _, r := range key {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return fmt.Errorf("keyword %q contains non-letter %q: %w", key, r, ErrKeyValidation)
		}
	}

	return nil
}

// ValidatePermutation checks that a transposition key's digits form a
// bijection onto 1..n (n = len(key)) and returns them in key order.
// "4123" → [4 1 2 3]. Keys like "1245" (gap) or "122" (repeat) fail.
//
// Complexity: O(n) time and space.
func ValidatePermutation(key string) ([]int, error) {
	if key == "" {
		return nil, fmt.Errorf("transposition key: %w", ErrEmptyKey)
	}

	n := len([]rune(key))
	cols := make([]int, 0, n)
	seen := make([]bool, n+1)
	for _, r := range key {
		d := int(r - '0')
		if d < 1 || d > n {
			return nil, fmt.Errorf("transposition key %q: digit %q outside 1..%d: %w", key, r, n, ErrKeyValidation)
		}
		if seen[d] {
			return nil, fmt.Errorf("transposition key %q: digit %q repeats: %w", key, r, ErrKeyValidation)
		}
		seen[d] = true
		cols = append(cols, d)
	}

	return cols, nil
}
