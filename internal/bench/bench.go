// Package bench solves every word of a dictionary and summarizes how many
// rounds the solver needed.
//
// Each secret gets its own Game and Solve call; the only thing shared
// between goroutines is the read-only dictionary.
package bench

import (
	"context"
	"errors"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Options configures Run.
type Options struct {
	Workers  int             // concurrent solves; <= 0 means runtime.NumCPU()
	Scorer   game.Scorer     // nil means game.Score
	Solver   []solver.Option // forwarded to every Solve call
	Progress func()          // called once per finished secret; must be safe for concurrent use
}

// Outcome is the result for one secret.
type Outcome struct {
	Secret    words.Word
	Attempts  int
	Solved    bool
	Exhausted bool
}

// Stats summarizes a run.
type Stats struct {
	Total        int
	Solved       int
	Unsolved     int // budget spent without finding the secret
	Exhausted    int // candidate list ran dry
	Mean         float64
	Worst        int
	WorstWords   []words.Word
	Distribution map[int]int // attempts → number of solved secrets
	Outcomes     []Outcome   // in dictionary order
}

// Run solves every word of dict as the secret.
func Run(ctx context.Context, dict []words.Word, opts Options) (Stats, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var gameOpts []game.Option
	if opts.Scorer != nil {
		gameOpts = append(gameOpts, game.WithScorer(opts.Scorer))
	}

	outcomes := make([]Outcome, len(dict))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, secret := range dict {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := solver.Solve(game.FromWord(secret, gameOpts...), dict, opts.Solver...)
			if err != nil && !errors.Is(err, solver.ErrCandidatesExhausted) {
				return err
			}
			outcomes[i] = Outcome{
				Secret:    secret,
				Attempts:  res.Attempts,
				Solved:    res.Solved,
				Exhausted: err != nil,
			}
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	return summarize(outcomes), nil
}

func summarize(outcomes []Outcome) Stats {
	s := Stats{
		Total:        len(outcomes),
		Distribution: make(map[int]int),
		Outcomes:     outcomes,
	}
	sum := 0
	for _, o := range outcomes {
		switch {
		case o.Exhausted:
			s.Exhausted++
			continue
		case !o.Solved:
			s.Unsolved++
			continue
		}
		s.Solved++
		sum += o.Attempts
		s.Distribution[o.Attempts]++
		switch {
		case o.Attempts > s.Worst:
			s.Worst = o.Attempts
			s.WorstWords = []words.Word{o.Secret}
		case o.Attempts == s.Worst:
			s.WorstWords = append(s.WorstWords, o.Secret)
		}
	}
	if s.Solved > 0 {
		s.Mean = float64(sum) / float64(s.Solved)
	}
	slices.SortFunc(s.WorstWords, func(a, b words.Word) int {
		return slices.Compare(a[:], b[:])
	})
	return s
}
