// internal/httpserver/routes_solve.go
//
// Solver and history endpoints:
//   - POST /solve              → run the solver against a given or random secret
//   - GET  /history            → recent runs (?limit=)
//   - GET  /history/summary    → aggregate counts
//   - GET  /history/mine       → the caller's runs (requires auth)
//
// Every solve is recorded in the history table; recording failures are
// logged and do not fail the request.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const (
	scoringReference = "reference"
	scoringStandard  = "standard"
)

type solveReq struct {
	Secret  string `json:"secret"`  // optional; random when empty
	Scoring string `json:"scoring"` // "reference" (default) | "standard"
	Strict  bool   `json:"strict"`  // also require letters known to be present
}

type solveRes struct {
	RunID    int64          `json:"runId,omitempty"`
	Mode     string         `json:"mode"`
	Secret   words.Word     `json:"secret"`
	Word     words.Word     `json:"word"`
	Attempts int            `json:"attempts"`
	Solved   bool           `json:"solved"`
	Rounds   []solver.Round `json:"rounds"`
	Date     string         `json:"date,omitempty"`
}

// handleSolve runs one solve and returns every round.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	scorer, ok := scorerFor(req.Scoring)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown_scoring")
		return
	}

	mode := history.ModeFixed
	var g *game.Game
	if req.Secret != "" {
		secret, err := words.Parse(req.Secret)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_secret")
			return
		}
		g = game.FromWord(secret, game.WithScorer(scorer))
	} else {
		var err error
		if g, err = game.FromRandom(s.dict, game.WithScorer(scorer)); err != nil {
			writeError(w, http.StatusServiceUnavailable, "no_words")
			return
		}
		mode = history.ModeRandom
	}

	res, ok := s.runSolve(w, r, g, mode, req)
	if ok {
		writeJSON(w, http.StatusOK, res)
	}
}

// runSolve solves g, records the run and reports metrics. On candidate
// exhaustion it writes a 422 response and returns false.
func (s *Server) runSolve(w http.ResponseWriter, r *http.Request, g *game.Game, mode string, req solveReq) (solveRes, bool) {
	opts := []solver.Option{
		solver.WithOpening(s.opening),
		solver.WithMaxGuesses(s.cfg.MaxGuesses),
	}
	if req.Strict {
		opts = append(opts, solver.WithRequiredLetters())
	}
	scoring := req.Scoring
	if scoring == "" {
		scoring = scoringReference
	}

	result, err := solver.Solve(g, s.dict, opts...)
	exhausted := errors.Is(err, solver.ErrCandidatesExhausted)
	if err != nil && !exhausted {
		log.Error().Err(err).Msg("solve")
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return solveRes{}, false
	}
	s.metrics.observe(result, exhausted)

	run := history.NewRun(mode, scoring, g.Secret(), result, exhausted)
	if me := currentUser(r); me != nil {
		run.UserID = me.ID
	}
	id, recErr := s.runs.Record(r.Context(), run)
	if recErr != nil {
		log.Warn().Err(recErr).Str("secret", run.Secret).Msg("record run")
	}

	log.Info().
		Str("mode", mode).
		Str("secret", run.Secret).
		Int("attempts", result.Attempts).
		Bool("solved", result.Solved).
		Bool("exhausted", exhausted).
		Msg("solve finished")

	if exhausted {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    "candidates_exhausted",
			"runId":    id,
			"attempts": result.Attempts,
			"rounds":   result.Rounds,
		})
		return solveRes{}, false
	}
	return solveRes{
		RunID:    id,
		Mode:     mode,
		Secret:   g.Secret(),
		Word:     result.Word,
		Attempts: result.Attempts,
		Solved:   result.Solved,
		Rounds:   result.Rounds,
	}, true
}

func scorerFor(name string) (game.Scorer, bool) {
	switch name {
	case "", scoringReference:
		return game.Score, true
	case scoringStandard:
		return game.ScoreStandard, true
	}
	return nil, false
}

// ------------------------------ HISTORY ------------------------------------

func (s *Server) mountHistory(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.listRuns(func(ctx context.Context, limit int) ([]history.Run, error) {
			return s.runs.Recent(ctx, limit)
		}))
		r.Get("/summary", func(w http.ResponseWriter, r *http.Request) {
			sum, err := s.runs.Summary(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "db_error")
				return
			}
			writeJSON(w, http.StatusOK, sum)
		})
		r.With(s.requireAuth).Get("/mine", func(w http.ResponseWriter, r *http.Request) {
			me := currentUser(r)
			s.listRuns(func(ctx context.Context, limit int) ([]history.Run, error) {
				return s.runs.ForUser(ctx, me.ID, limit)
			})(w, r)
		})
	})
}

func (s *Server) listRuns(fetch func(ctx context.Context, limit int) ([]history.Run, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		runs, err := fetch(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "db_error")
			return
		}
		writeJSON(w, http.StatusOK, runs)
	}
}
