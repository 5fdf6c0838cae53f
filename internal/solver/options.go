package solver

import (
	"github.com/robalobadob/wordle-solver/internal/constraint"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Reporter observes a solve as it runs.
type Reporter interface {
	// Started is called once with the size of the initial candidate list.
	Started(candidates int)
	// Filtered is called after every filtering step.
	Filtered(r Round)
}

type nopReporter struct{}

func (nopReporter) Started(int)    {}
func (nopReporter) Filtered(Round) {}

type config struct {
	opening        words.Word
	maxGuesses     int
	constraintOpts []constraint.Option
	reporter       Reporter
}

// Option configures Solve.
type Option func(*config)

// WithOpening replaces the fixed first guess.
func WithOpening(w words.Word) Option {
	return func(c *config) { c.opening = w }
}

// WithMaxGuesses sets the round budget. Values below 1 are ignored.
func WithMaxGuesses(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxGuesses = n
		}
	}
}

// WithRequiredLetters makes filtering also drop candidates missing a letter
// that an earlier hint proved is in the secret.
func WithRequiredLetters() Option {
	return func(c *config) { c.constraintOpts = append(c.constraintOpts, constraint.EnforceRequired()) }
}

// WithReporter sets the progress observer.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if r != nil {
			c.reporter = r
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		opening:    words.MustParse(DefaultOpening),
		maxGuesses: MaxGuesses,
		reporter:   nopReporter{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
