package freq_test

import (
	"fmt"
	"math"
	"strconv"

	"github.com/MeGrimlock/nigma/freq"
	"github.com/MeGrimlock/nigma/shift"
)

// ExampleScoreEnglish brute-forces a Caesar cipher: every candidate
// key is tried and the decryption whose letter distribution sits
// closest to English (lowest chi-squared) wins.
//
// Scenario:
//
//	An intercepted message is known to be Caesar-enciphered. 26 keys
//	is a trivial search space once each candidate can be scored.
//
// Complexity: O(26·len(message)).
func ExampleScoreEnglish() {
	secret, _ := shift.NewCaesar(
		"IT WAS A BRIGHT COLD DAY IN APRIL AND THE CLOCKS WERE STRIKING THIRTEEN", "7",
	).Encode()

	bestKey, bestText, bestScore := 0, "", math.MaxFloat64
	for k := 0; k < 26; k++ {
		candidate, _ := shift.NewCaesar(secret, strconv.Itoa(k)).Decode()
		if score := freq.ScoreEnglish(candidate); score < bestScore {
			bestKey, bestText, bestScore = k, candidate, score
		}
	}

	fmt.Println(bestKey)
	fmt.Println(bestText)
	// Output:
	// 7
	// IT WAS A BRIGHT COLD DAY IN APRIL AND THE CLOCKS WERE STRIKING THIRTEEN
}
