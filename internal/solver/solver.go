// internal/solver/solver.go
//
// Solve drives the guess → score → filter loop against a Guesser.
//
// Each round:
//   1. Submit the current guess and read the hint.
//   2. Stop on an all-Correct hint.
//   3. Fold the hint into the constraint set.
//   4. Drop the guess and every inconsistent word from the candidate list
//      (in place, order preserved; the list only shrinks).
//   5. The next guess is the first remaining candidate.
//
// There is no backtracking. The round budget only guards against loops that
// never converge; running out of it is a normal result, not an error.

package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/robalobadob/wordle-solver/internal/constraint"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const (
	// MaxGuesses is the default round budget.
	MaxGuesses = 15000
	// DefaultOpening is the fixed first guess.
	DefaultOpening = "crane"
)

// ErrCandidatesExhausted means filtering left no word to guess next: the
// dictionary lacks the secret or the constraints rejected it.
var ErrCandidatesExhausted = errors.New("solver: no candidates left")

// Guesser scores a guess against a hidden word. *game.Game implements it.
type Guesser interface {
	Guess(guess words.Word) game.Hint
}

// Round is the record of one guess.
type Round struct {
	Number    int        `json:"round"`
	Guess     words.Word `json:"guess"`
	Hint      game.Hint  `json:"hint"`
	Remaining int        `json:"remaining"` // candidates left after filtering
}

// Result is the outcome of Solve.
type Result struct {
	Word     words.Word `json:"word"`
	Attempts int        `json:"attempts"`
	Solved   bool       `json:"solved"`
	Rounds   []Round    `json:"rounds"`
}

// Solve plays g until it is solved, candidates run out, or the round budget
// is spent. The dictionary is copied, never modified.
//
// On candidate exhaustion the partial Result is returned together with an
// error wrapping ErrCandidatesExhausted.
func Solve(g Guesser, dictionary []words.Word, opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	guess := cfg.opening
	candidates := slices.Clone(dictionary)
	constraints := constraint.New(cfg.constraintOpts...)
	var res Result

	cfg.reporter.Started(len(candidates))

	// Rounds start at 1.
	for round := 1; round < cfg.maxGuesses; round++ {
		hint := g.Guess(guess)
		if hint.Solved() {
			res.Rounds = append(res.Rounds, Round{Number: round, Guess: guess, Hint: hint, Remaining: len(candidates)})
			res.Word, res.Attempts, res.Solved = guess, round, true
			return res, nil
		}

		constraints.Observe(hint, guess)
		current := guess
		candidates = slices.DeleteFunc(candidates, func(w words.Word) bool {
			return w == current || !constraints.IsConsistent(w)
		})

		r := Round{Number: round, Guess: guess, Hint: hint, Remaining: len(candidates)}
		res.Rounds = append(res.Rounds, r)
		cfg.reporter.Filtered(r)

		if len(candidates) == 0 {
			res.Word, res.Attempts = guess, round
			return res, fmt.Errorf("%w after round %d (last guess %s)", ErrCandidatesExhausted, round, guess)
		}
		guess = candidates[0]
	}

	res.Word, res.Attempts = guess, cfg.maxGuesses
	return res, nil
}
