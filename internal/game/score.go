// internal/game/score.go
//
// Per-letter scoring of a guess against the answer.
// Two schemes: simple (each position on its own) and classic (repeated
// letters are only credited as often as they occur in the answer).

package game

import (
	"fmt"
	"strings"
)

// Score evaluates guess against answer. Both must be lowercase and of equal
// length; a mismatch is a caller bug and panics.
func Score(answer, guess string, s Scoring) Feedback {
	if len(answer) != len(guess) {
		panic(fmt.Sprintf("game: score length mismatch (answer %d, guess %d)", len(answer), len(guess)))
	}
	if s == ScoringClassic {
		return scoreClassic(answer, guess)
	}
	return scoreSimple(answer, guess)
}

// scoreSimple makes one left-to-right pass; each position is judged
// independently of the others.
func scoreSimple(answer, guess string) Feedback {
	res := make(Feedback, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case guess[i] == answer[i]:
			res[i] = MarkCorrect
		case strings.IndexByte(answer, guess[i]) >= 0:
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

// scoreClassic implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non‑correct) answer letters by letter index.
//
// Pass 2:
//   - For each non‑correct guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Absent.
func scoreClassic(answer, guess string) Feedback {
	n := len(guess)
	res := make(Feedback, n)

	// Letter frequency for the non‑correct positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkCorrect
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
