// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Interactive play (optional auth): POST /game/new, POST /game/guess.
//   - Solver endpoints (optional auth): POST /solve, POST /daily/solve, POST /daily/new.
//   - History: GET /history, GET /history/summary, GET /history/mine (auth).
//   - Accounts: /auth/*.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes still run for guests.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/auth"
	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Deps are the collaborators a Server needs.
type Deps struct {
	Sessions   store.Store
	Dictionary []words.Word
	Runs       *history.Store
	Users      *auth.Users
	Tokens     *auth.Signer
	Config     config.Config
}

// Server bundles router, stores and the dictionary.
type Server struct {
	r        *chi.Mux
	sessions store.Store
	dict     []words.Word
	allowed  map[words.Word]struct{}
	runs     *history.Store
	users    *auth.Users
	tokens   *auth.Signer
	cfg      config.Config
	opening  words.Word
	metrics  *metrics
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		sessions: d.Sessions,
		dict:     d.Dictionary,
		allowed:  words.ToSet(d.Dictionary),
		runs:     d.Runs,
		users:    d.Users,
		tokens:   d.Tokens,
		cfg:      d.Config,
		metrics:  newMetrics(),
	}
	opening, err := words.Parse(d.Config.Opening)
	if err != nil {
		log.Warn().Err(err).Msg("invalid opening guess, using default")
		opening = words.MustParse(solver.DefaultOpening)
	}
	s.opening = opening

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)
	s.r.Use(s.withOptionalAuth)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "wordle-solver",
			"endpoints": []string{"/health", "/metrics", "POST /game/new", "POST /game/guess", "POST /solve", "POST /daily/solve", "/history", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": len(s.dict)})
	})
	s.r.Handle("/metrics", s.metrics.handler())

	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/solve", s.handleSolve)
	s.mountDaily(s.r)
	s.mountHistory(s.r)
	s.mountAuthRoutes(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a new in-memory session.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var g *game.Game
	if req.Answer != "" {
		secret, err := words.Parse(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_answer")
			return
		}
		g = game.FromWord(secret)
	} else {
		var err error
		if g, err = game.FromRandom(s.dict); err != nil {
			log.Error().Err(err).Msg("new game")
			writeError(w, http.StatusServiceUnavailable, "no_words")
			return
		}
	}
	if id, ok := s.startSession(w, r, g); ok {
		writeJSON(w, http.StatusOK, newGameRes{GameID: id})
	}
}

// startSession stores a new session for g. On failure it writes the error
// response and returns false.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, g *game.Game) (string, bool) {
	sess := game.NewSession(g, s.allowed)
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return "", false
	}
	return sess.ID, true
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks   game.Hint  `json:"marks"`
	Pattern string     `json:"pattern"`
	State   game.State `json:"state"`
	Guesses int        `json:"guesses"`
}

// handleGuess applies a guess to an in-memory session.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	hint, state, err := sess.ApplyGuess(req.Guess)
	switch {
	case errors.Is(err, words.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	case errors.Is(err, game.ErrNotAllowed):
		writeError(w, http.StatusBadRequest, "not_in_word_list")
		return
	case errors.Is(err, game.ErrGameFinished):
		writeError(w, http.StatusConflict, "game_finished")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.metrics.guesses.Inc()
	writeJSON(w, http.StatusOK, guessRes{Marks: hint, Pattern: hint.String(), State: state, Guesses: sess.GuessCount()})
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
