// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily word.
//   - POST /daily/new    → start an interactive session on today's word
//   - POST /daily/solve  → run the solver on today's word (?date=YYYY-MM-DD)
//
// The word is a deterministic function of date + DAILY_SALT (see package daily).

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/words"
)

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
}

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Post("/solve", s.handleDailySolve)
	})
}

// dailySecret resolves ?date= (default today) to the day's word.
func (s *Server) dailySecret(w http.ResponseWriter, r *http.Request) (string, words.Word, bool) {
	day := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		d, err := daily.ParseDateKey(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_date")
			return "", words.Word{}, false
		}
		day = d
	}
	secret, _, err := daily.Secret(day, s.cfg.DailySalt, s.dict)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "no_words")
		return "", words.Word{}, false
	}
	return daily.DateKey(day), secret, true
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	date, secret, ok := s.dailySecret(w, r)
	if !ok {
		return
	}
	if id, ok := s.startSession(w, r, game.FromWord(secret)); ok {
		writeJSON(w, http.StatusOK, dailyNewRes{GameID: id, Date: date})
	}
}

func (s *Server) handleDailySolve(w http.ResponseWriter, r *http.Request) {
	date, secret, ok := s.dailySecret(w, r)
	if !ok {
		return
	}
	res, ok := s.runSolve(w, r, game.FromWord(secret), history.ModeDaily, solveReq{})
	if ok {
		res.Date = date
		writeJSON(w, http.StatusOK, res)
	}
}
