package freq

import (
	"errors"
	"strings"
)

// ErrInvalidN indicates an n-gram width below 1.
var ErrInvalidN = errors.New("freq: n-gram width must be ≥ 1")

// percent scales a ratio to the percentage the charting layer expects.
const percent = 100.0

// LetterFrequencies returns the percentage of each letter among all
// alphabetic symbols of text, case-folded to upper case. Non-letters
// are ignored. An input without letters yields an empty map.
//
// Complexity: O(len(text)).
func LetterFrequencies(text string) map[string]float64 {
	counts := make(map[string]float64, 26)
	total := 0.0
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			counts[string(r)]++
			total++
		}
	}
	if total == 0 {
		return counts
	}
	for k := range counts {
		counts[k] = counts[k] / total * percent
	}

	return counts
}

// NgramFrequencies returns the percentage of each overlapping n-gram
// over the case-folded text with all non-letters removed. A text
// shorter than n yields an empty map; n < 1 is an error.
//
// Complexity: O(n·len(text)) time, O(#distinct n-grams) space.
func NgramFrequencies(text string, n int) (map[string]float64, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	letters := make([]rune, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
		}
	}

	counts := make(map[string]float64)
	windows := len(letters) - n + 1
	if windows < 1 {
		return counts, nil
	}
	for i := 0; i < windows; i++ {
		counts[string(letters[i:i+n])]++
	}
	for k := range counts {
		counts[k] = counts[k] / float64(windows) * percent
	}

	return counts, nil
}

// ChiSquared accumulates (observed−expected)²/expected over every key
// of expected, treating missing observed entries as zero. Identical
// distributions score 0; lower means a closer match. Expected entries
// of zero are skipped rather than dividing by zero.
//
// Complexity: O(len(expected)).
func ChiSquared(observed, expected map[string]float64) float64 {
	sum := 0.0
	for k, exp := range expected {
		if exp == 0 {
			continue
		}
		d := observed[k] - exp
		sum += d * d / exp
	}

	return sum
}

// ScoreEnglish is the chi-squared distance between text's letter
// distribution and the embedded English reference. A candidate
// decryption search ranks candidates by this single signal.
func ScoreEnglish(text string) float64 {
	return ChiSquared(LetterFrequencies(text), English)
}
