// internal/words/score.go
//
// Duplicate-aware guess scoring, used on the service side and by tooling.
// The client board intentionally uses a simpler per-letter judgment; see
// the session package.
package words

// Mark values returned by Score.
const (
	Miss    = 0 // letter not in answer (or all copies spent)
	Present = 1 // letter in answer, wrong position
	Hit     = 2 // letter in correct position
)

// Score compares guess against answer with the standard two-pass algorithm.
//
// Pass 1 marks exact matches and counts the remaining answer letters.
// Pass 2 marks a non-hit letter Present only while unmatched copies remain,
// so repeated guess letters never over-report.
//
// A guess of the wrong length scores all Miss.
func Score(guess, answer string) []int {
	n := len(answer)
	out := make([]int, n)
	if len(guess) != n {
		return out
	}

	freq := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			out[i] = Hit
		} else {
			freq[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Hit {
			continue
		}
		if c := guess[i]; freq[c] > 0 {
			out[i] = Present
			freq[c]--
		}
	}
	return out
}
