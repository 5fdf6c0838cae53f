// internal/game/engine.go
//
// Game holds a secret word and scores guesses against it. Session wraps a
// Game with the bookkeeping of an interactive round (6 rows, win/loss).
//
// Notes:
//   - Secrets are chosen by the caller (FromWord) or drawn uniformly from a
//     dictionary with crypto/rand (FromRandom).
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/robalobadob/wordle-solver/internal/words"
)

const defaultRows = 6

var (
	// ErrEmptyDictionary is returned when a random secret is requested from an
	// empty word list.
	ErrEmptyDictionary = errors.New("game: dictionary is empty")
	// ErrGameFinished is returned by ApplyGuess once a session is over.
	ErrGameFinished = errors.New("game finished")
	// ErrNotAllowed is returned for guesses outside the session's allowed list.
	ErrNotAllowed = errors.New("not in word list")
)

// Game is a single hidden word plus the scorer used to compare guesses.
type Game struct {
	secret words.Word
	score  Scorer
}

// Option configures a Game.
type Option func(*Game)

// WithScorer replaces the reference scorer.
func WithScorer(s Scorer) Option {
	return func(g *Game) {
		if s != nil {
			g.score = s
		}
	}
}

// FromWord constructs a game with an explicit secret.
func FromWord(secret words.Word, opts ...Option) *Game {
	g := &Game{secret: secret, score: Score}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromRandom picks a uniformly random secret from dictionary.
func FromRandom(dictionary []words.Word, opts ...Option) (*Game, error) {
	if len(dictionary) == 0 {
		return nil, ErrEmptyDictionary
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(dictionary))))
	if err != nil {
		return nil, fmt.Errorf("game: pick secret: %w", err)
	}
	return FromWord(dictionary[n.Int64()], opts...), nil
}

// Guess scores guess against the secret.
func (g *Game) Guess(guess words.Word) Hint {
	return g.score(g.secret, guess)
}

// Secret returns the hidden word.
func (g *Game) Secret() words.Word { return g.secret }

// Session is the state of one interactive game.
type Session struct {
	ID       string
	Game     *Game
	Rows     int          // maximum number of guesses
	Guesses  []words.Word // guesses made so far
	Finished bool
	Won      bool

	mu      sync.Mutex
	allowed map[words.Word]struct{}
}

// NewSession starts an interactive session around g. When allowed is
// non-nil, guesses must be members of it.
func NewSession(g *Game, allowed map[words.Word]struct{}) *Session {
	return &Session{
		ID:      randomID(),
		Game:    g,
		Rows:    defaultRows,
		Guesses: []words.Word{},
		allowed: allowed,
	}
}

// ApplyGuess validates and scores a guess, mutating the session.
//
// Validation rules:
//   - Session must not be finished.
//   - Guess must parse as a Word.
//   - Guess must be present in the allowed list, if one was given.
//
// State transitions:
//   - If all marks are Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches Rows → Finished = true (loss).
func (s *Session) ApplyGuess(in string) (Hint, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Finished {
		return Hint{}, s.state(), ErrGameFinished
	}
	guess, err := words.Parse(in)
	if err != nil {
		return Hint{}, s.state(), err
	}
	if s.allowed != nil {
		if _, ok := s.allowed[guess]; !ok {
			return Hint{}, s.state(), ErrNotAllowed
		}
	}

	hint := s.Game.Guess(guess)
	s.Guesses = append(s.Guesses, guess)

	if hint.Solved() {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= s.Rows {
		s.Finished = true
	}
	return hint, s.state(), nil
}

// State reports the session's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

// GuessCount returns the number of guesses recorded so far.
func (s *Session) GuessCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Guesses)
}

func (s *Session) state() State {
	if s.Finished {
		if s.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
