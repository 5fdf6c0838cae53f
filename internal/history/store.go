// internal/history/store.go
//
// Persistence of solve runs in the solve_runs table.
//
// One row per finished Solve call, whatever the outcome. Timestamps are
// written as RFC3339 strings by this package, never by SQLite defaults.

package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Modes recorded with a run.
const (
	ModeFixed  = "fixed"
	ModeRandom = "random"
	ModeDaily  = "daily"
)

const defaultLimit = 20

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Run is one recorded solve.
type Run struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Mode      string    `json:"mode"`
	Secret    string    `json:"secret"`
	Found     string    `json:"found"`
	Attempts  int       `json:"attempts"`
	Solved    bool      `json:"solved"`
	Exhausted bool      `json:"exhausted"`
	Scoring   string    `json:"scoring"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewRun builds a Run from a solver result.
func NewRun(mode, scoring string, secret words.Word, res solver.Result, exhausted bool) Run {
	return Run{
		Mode:      mode,
		Secret:    secret.String(),
		Found:     res.Word.String(),
		Attempts:  res.Attempts,
		Solved:    res.Solved,
		Exhausted: exhausted,
		Scoring:   scoring,
	}
}

// Summary aggregates all recorded runs.
type Summary struct {
	Runs         int     `json:"runs"`
	Solved       int     `json:"solved"`
	MeanAttempts float64 `json:"meanAttempts"` // over solved runs
	Best         int     `json:"best"`
	Worst        int     `json:"worst"`
}

// Store reads and writes solve runs.
type Store struct{ db *sql.DB }

// NewStore wraps an opened, migrated database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Record inserts r and returns its row ID. A zero CreatedAt is set to now.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO solve_runs
            (user_id, mode, secret, found, attempts, solved, exhausted, scoring, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullable(r.UserID), r.Mode, r.Secret, r.Found, r.Attempts, r.Solved, r.Exhausted, r.Scoring,
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns the newest runs first. limit <= 0 means 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	return s.query(ctx, `
        SELECT id, COALESCE(user_id,''), mode, secret, found, attempts, solved, exhausted, scoring, created_at
        FROM solve_runs
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, orDefault(limit))
}

// ForUser returns a user's newest runs first. limit <= 0 means 20.
func (s *Store) ForUser(ctx context.Context, userID string, limit int) ([]Run, error) {
	return s.query(ctx, `
        SELECT id, COALESCE(user_id,''), mode, secret, found, attempts, solved, exhausted, scoring, created_at
        FROM solve_runs
        WHERE user_id=?
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, userID, orDefault(limit))
}

// Summary computes aggregate counts over all runs.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	var mean sql.NullFloat64
	var best, worst sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(solved), 0),
               AVG(CASE WHEN solved=1 THEN attempts END),
               MIN(CASE WHEN solved=1 THEN attempts END),
               MAX(CASE WHEN solved=1 THEN attempts END)
        FROM solve_runs`,
	).Scan(&out.Runs, &out.Solved, &mean, &best, &worst)
	if err != nil {
		return Summary{}, err
	}
	out.MeanAttempts = mean.Float64
	out.Best = int(best.Int64)
	out.Worst = int(worst.Int64)
	return out, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Run{}
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.UserID, &r.Mode, &r.Secret, &r.Found, &r.Attempts,
			&r.Solved, &r.Exhausted, &r.Scoring, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(timeLayout, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func orDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
