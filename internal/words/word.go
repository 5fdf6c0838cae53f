// internal/words/word.go
//
// Word is the value type every other package works with: exactly five
// lowercase ASCII letters, stored inline so it can be compared with == and
// used as a map key.

package words

import (
	"errors"
	"fmt"
	"strings"
)

// Length is the number of letters in a word.
const Length = 5

// ErrInvalidWord is returned when input is not exactly Length letters a–z.
var ErrInvalidWord = errors.New("invalid word")

// Word is an immutable five-letter word (always lowercase).
type Word [Length]byte

// Parse trims and lowercases s, then validates it as a Word.
func Parse(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Length || !isAlpha(s) {
		return w, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustParse is Parse for constants and tests; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// String returns the word as a string.
func (w Word) String() string { return string(w[:]) }

// Contains reports whether letter b occurs anywhere in w.
func (w Word) Contains(b byte) bool {
	for _, c := range w {
		if c == b {
			return true
		}
	}
	return false
}

// MarshalText encodes the word as its letters.
func (w Word) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText parses a word, applying the same rules as Parse.
func (w *Word) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*w = p
	return nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
