package bench

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func list(ss ...string) []words.Word {
	out := make([]words.Word, len(ss))
	for i, s := range ss {
		out[i] = words.MustParse(s)
	}
	return out
}

func TestRun_Small(t *testing.T) {
	dict := list("crane", "slate", "plate", "slant")
	var done atomic.Int32

	stats, err := Run(context.Background(), dict, Options{
		Workers:  2,
		Progress: func() { done.Add(1) },
	})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 4, stats.Solved)
	assert.Equal(t, 0, stats.Exhausted)
	assert.Equal(t, int32(4), done.Load())

	// crane: 1, slate: 2, plate: 3 (slate is tried first), slant: 2.
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, stats.Distribution)
	assert.Equal(t, 3, stats.Worst)
	assert.Equal(t, list("plate"), stats.WorstWords)
	assert.InDelta(t, 2.0, stats.Mean, 1e-9)

	require.Len(t, stats.Outcomes, 4)
	assert.Equal(t, words.MustParse("slant"), stats.Outcomes[3].Secret)
}

func TestRun_EmbeddedAllSolved(t *testing.T) {
	dict, err := words.Embedded()
	require.NoError(t, err)

	stats, err := Run(context.Background(), dict, Options{})
	require.NoError(t, err)
	assert.Equal(t, len(dict), stats.Total)
	assert.Equal(t, len(dict), stats.Solved)
	assert.Zero(t, stats.Unsolved)
	assert.Zero(t, stats.Exhausted)
}

func TestRun_CountsExhaustion(t *testing.T) {
	dict := list("eerie", "crane")
	stats, err := Run(context.Background(), dict, Options{
		Scorer: game.ScoreStandard,
		Solver: []solver.Option{solver.WithOpening(words.MustParse("eerie"))},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Solved, "eerie is solved by the opening guess")
	assert.Equal(t, 1, stats.Exhausted, "crane is lost to the duplicate-letter exclusion")
}

func TestRun_Budget(t *testing.T) {
	dict := list("crane", "slate", "plate")
	stats, err := Run(context.Background(), dict, Options{
		Solver: []solver.Option{solver.WithMaxGuesses(2)},
	})
	require.NoError(t, err)
	// Only one round fits in a budget of 2; just crane is found.
	assert.Equal(t, 1, stats.Solved)
	assert.Equal(t, 2, stats.Unsolved)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, list("crane", "slate"), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
