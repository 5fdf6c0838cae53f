// internal/game/score.go
//
// Scorers turn (secret, guess) into a Hint.
//
//   - Score is the solver's reference scorer: a letter that is not a hit is
//     Misplaced whenever the secret contains it anywhere, however many times
//     it appears in the guess.
//   - ScoreStandard is the classic two-pass Wordle algorithm, which limits
//     Misplaced marks to the number of unmatched copies in the secret.

package game

import "github.com/robalobadob/wordle-solver/internal/words"

// Scorer computes the hint for guess against secret.
type Scorer func(secret, guess words.Word) Hint

// Score implements the reference per-position rule:
// Correct on an exact match, Misplaced if the letter occurs anywhere in the
// secret, Absent otherwise.
func Score(secret, guess words.Word) Hint {
	var h Hint
	for i := range guess {
		switch {
		case guess[i] == secret[i]:
			h[i] = Correct
		case secret.Contains(guess[i]):
			h[i] = Misplaced
		default:
			h[i] = Absent
		}
	}
	return h
}

// ScoreStandard implements the standard Wordle two‑pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non‑hit) secret letters by letter index.
//
// Pass 2:
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark Misplaced and decrement the count; otherwise mark Absent.
func ScoreStandard(secret, guess words.Word) Hint {
	var h Hint
	var counts [26]int

	for i := range guess {
		if guess[i] == secret[i] {
			h[i] = Correct
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := range guess {
		if h[i] == Correct {
			continue
		}
		if j := idx(guess[i]); counts[j] > 0 {
			h[i] = Misplaced
			counts[j]--
		} else {
			h[i] = Absent
		}
	}
	return h
}

// idx maps a lowercase ASCII letter to 0..25.
// Words are validated to a–z on construction.
func idx(b byte) int { return int(b - 'a') }
