package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, db.Migrate(context.Background(), d))
	return d
}

func TestRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, secret := range []string{"crane", "slate", "plate"} {
		_, err := s.Record(ctx, Run{
			Mode: ModeFixed, Secret: secret, Found: secret, Attempts: i + 1, Solved: true,
			Scoring: "reference", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "plate", runs[0].Secret, "newest first")
	assert.Equal(t, "slate", runs[1].Secret)
	assert.True(t, runs[0].Solved)
	assert.True(t, base.Add(2*time.Minute).Equal(runs[0].CreatedAt), "created_at round-trips")

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNewRun(t *testing.T) {
	secret := words.MustParse("slate")
	res, err := solver.Solve(game.FromWord(secret), []words.Word{words.MustParse("crane"), secret})
	require.NoError(t, err)

	r := NewRun(ModeRandom, "reference", secret, res, false)
	assert.Equal(t, "slate", r.Secret)
	assert.Equal(t, "slate", r.Found)
	assert.Equal(t, 2, r.Attempts)
	assert.True(t, r.Solved)
	assert.Equal(t, ModeRandom, r.Mode)
}

func TestForUser(t *testing.T) {
	ctx := context.Background()
	d := openTestDB(t)
	_, err := d.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1','alice','x','2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	s := NewStore(d)
	_, err = s.Record(ctx, Run{UserID: "u1", Mode: ModeDaily, Secret: "crane", Found: "crane", Attempts: 1, Solved: true, Scoring: "reference"})
	require.NoError(t, err)
	_, err = s.Record(ctx, Run{Mode: ModeRandom, Secret: "slate", Found: "slate", Attempts: 2, Solved: true, Scoring: "reference"})
	require.NoError(t, err)

	mine, err := s.ForUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "u1", mine[0].UserID)
	assert.Equal(t, ModeDaily, mine[0].Mode)

	none, err := s.ForUser(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	s := NewStore(openTestDB(t))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	for _, r := range []Run{
		{Mode: ModeFixed, Secret: "crane", Found: "crane", Attempts: 1, Solved: true, Scoring: "reference"},
		{Mode: ModeFixed, Secret: "plate", Found: "plate", Attempts: 3, Solved: true, Scoring: "reference"},
		{Mode: ModeFixed, Secret: "zzzzz", Found: "crane", Attempts: 1, Exhausted: true, Scoring: "reference"},
	} {
		_, err := s.Record(ctx, r)
		require.NoError(t, err)
	}

	sum, err = s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 2, sum.Solved)
	assert.InDelta(t, 2.0, sum.MeanAttempts, 1e-9)
	assert.Equal(t, 1, sum.Best)
	assert.Equal(t, 3, sum.Worst)
}
