// Package daily picks the secret word of the day. The choice is a pure
// function of the date, a salt and the dictionary, so every process with the
// same inputs agrees on it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey is the inverse of DateKey.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Secret returns the day's word and its index in dict.
func Secret(date time.Time, salt string, dict []words.Word) (words.Word, int, error) {
	if len(dict) == 0 {
		return words.Word{}, 0, game.ErrEmptyDictionary
	}
	i := WordIndex(date, salt, len(dict))
	return dict[i], i, nil
}
