// internal/constraint/set.go
//
// Set accumulates what the hints of a solve session reveal about the secret:
//   - the letter at each position, once a Correct mark pins it;
//   - letters known to occur somewhere (Correct or Misplaced);
//   - letters known not to occur (Absent).
//
// Known quirks, kept on purpose:
//   - Required letters are tracked but only checked by IsConsistent when the
//     set was built with EnforceRequired.
//   - Exclusion wins over everything else. With a scorer that has duplicate
//     accounting (game.ScoreStandard) a letter can be Correct at one position
//     and Absent at another, and the set then rejects the secret itself.

package constraint

import (
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Set is the constraint state of one solve session. The zero value is an
// empty set with reference behavior.
type Set struct {
	known           [words.Length]byte // 0 while the position is unknown
	required        LetterSet
	excluded        LetterSet
	enforceRequired bool
}

// Option configures a Set.
type Option func(*Set)

// EnforceRequired makes IsConsistent also reject candidates that lack any
// letter known to be in the secret.
func EnforceRequired() Option {
	return func(s *Set) { s.enforceRequired = true }
}

// New returns an empty Set.
func New(opts ...Option) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe folds the hint for guess into the set and returns the set.
//
// Per position:
//
//	(known,   Correct)   no change
//	(unknown, Correct)   position becomes known; letter required
//	(any,     Misplaced) letter required
//	(any,     Absent)    letter excluded
func (s *Set) Observe(hint game.Hint, guess words.Word) *Set {
	for i, m := range hint {
		c := guess[i]
		switch m {
		case game.Correct:
			if s.known[i] == 0 {
				s.known[i] = c
				s.required = s.required.Add(c)
			}
		case game.Misplaced:
			s.required = s.required.Add(c)
		default:
			s.excluded = s.excluded.Add(c)
		}
	}
	return s
}

// IsConsistent reports whether w could still be the secret.
func (s *Set) IsConsistent(w words.Word) bool {
	for i, c := range w {
		if s.excluded.Has(c) {
			return false
		}
		if k := s.known[i]; k != 0 && k != c {
			return false
		}
	}
	if s.enforceRequired {
		for c := byte('a'); c <= 'z'; c++ {
			if s.required.Has(c) && !w.Contains(c) {
				return false
			}
		}
	}
	return true
}

// Known returns the letter pinned at position i, if any.
func (s *Set) Known(i int) (byte, bool) {
	k := s.known[i]
	return k, k != 0
}

// Required returns the letters known to occur in the secret.
func (s *Set) Required() LetterSet { return s.required }

// Excluded returns the letters known not to occur in the secret.
func (s *Set) Excluded() LetterSet { return s.excluded }
