package constraint

import "math/bits"

// LetterSet is a set of lowercase ASCII letters, one bit per letter.
type LetterSet uint32

// Add returns s with letter b added.
func (s LetterSet) Add(b byte) LetterSet { return s | bit(b) }

// Has reports whether b is in s.
func (s LetterSet) Has(b byte) bool { return s&bit(b) != 0 }

// Len returns the number of distinct letters in s.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// String lists the letters of s in alphabetical order.
func (s LetterSet) String() string {
	out := make([]byte, 0, s.Len())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return string(out)
}

func bit(b byte) LetterSet { return 1 << (b - 'a') }
