// internal/game/types.go
//
// Core type definitions for scoring.
// Defines:
//   - Mark: per-letter result of a guess (correct/misplaced/absent).
//   - Hint: the five marks for one guess.
//   - State: coarse status of an interactive session.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	Absent    Mark = iota // letter does not occur in the secret
	Misplaced             // letter occurs in the secret, at another position
	Correct               // letter is at this position in the secret
)

// String returns the JSON name of the mark.
func (m Mark) String() string {
	switch m {
	case Absent:
		return "absent"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// MarshalText encodes the mark as "absent", "misplaced" or "correct".
func (m Mark) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText is the inverse of MarshalText.
func (m *Mark) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*m = Absent
	case "misplaced":
		*m = Misplaced
	case "correct":
		*m = Correct
	default:
		return fmt.Errorf("unknown mark %q", b)
	}
	return nil
}

// Hint holds one Mark per letter of a guess.
type Hint [words.Length]Mark

// Solved reports whether every mark is Correct.
func (h Hint) Solved() bool {
	for _, m := range h {
		if m != Correct {
			return false
		}
	}
	return true
}

// String renders the hint as G (correct), Y (misplaced) and _ (absent).
func (h Hint) String() string {
	b := make([]byte, len(h))
	for i, m := range h {
		switch m {
		case Correct:
			b[i] = 'G'
		case Misplaced:
			b[i] = 'Y'
		default:
			b[i] = '_'
		}
	}
	return string(b)
}

// State is the coarse status of a Session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)
