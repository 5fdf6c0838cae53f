// internal/words/words.go
//
// Dictionary loading for the solver and the game.
//
// Responsibilities:
//   - Parse newline-delimited word lists (one word per line).
//   - Drop lines that are not valid Words without reporting them.
//   - Provide the embedded default dictionary, parsed once.
//
// Word lists:
//   - Order is preserved exactly as read; the solver's next guess is always the
//     first remaining candidate, so reordering a list changes solve paths.
//   - Duplicates are kept; they are harmless to filtering.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/robalobadob/wordle-solver/assets"
)

var (
	embeddedOnce sync.Once
	embedded     []Word
	embeddedErr  error
)

// Read parses r line by line, keeping only valid five-letter words.
func Read(r io.Reader) ([]Word, error) {
	var out []Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w, err := Parse(sc.Text())
		if err != nil {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// ReadFile loads one word per line from a file on disk.
func ReadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// Embedded returns the dictionary compiled into the binary.
// The returned slice is shared; callers that mutate must Clone it.
func Embedded() ([]Word, error) {
	embeddedOnce.Do(func() {
		f, err := assets.Dictionary()
		if err != nil {
			embeddedErr = err
			return
		}
		defer f.Close()
		embedded, embeddedErr = Read(f)
	})
	return embedded, embeddedErr
}

// Load returns the word list at path, or a private copy of the embedded
// dictionary when path is empty.
func Load(path string) ([]Word, error) {
	if path != "" {
		return ReadFile(path)
	}
	list, err := Embedded()
	if err != nil {
		return nil, err
	}
	return slices.Clone(list), nil
}

// ToSet converts a list of words into a lookup set.
func ToSet(list []Word) map[Word]struct{} {
	m := make(map[Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}
