package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/auth"
	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func testConfig() config.Config {
	return config.Config{
		ClientOrigin: "http://localhost:5173",
		JWTSecret:    "test_secret",
		JWTDays:      1,
		CookieName:   "wordle_token",
		DailySalt:    "test_salt",
		MaxGuesses:   15000,
		Opening:      "crane",
	}
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, db.Migrate(context.Background(), d))

	dict, err := words.Embedded()
	require.NoError(t, err)
	return New(Deps{
		Sessions:   store.NewMemoryStore(),
		Dictionary: dict,
		Runs:       history.NewStore(d),
		Users:      auth.NewUsers(d),
		Tokens:     auth.NewSigner(cfg.JWTSecret, 24*time.Hour),
		Config:     cfg,
	})
}

func do(t *testing.T, s *Server, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Greater(t, body["words"], float64(0))
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := do(t, s, http.MethodPost, "/game/new", `{"answer":"crane"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	id, _ := decode(t, rec)["gameId"].(string)
	require.NotEmpty(t, id)

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"zzzzz"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not_in_word_list", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_guess", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"slate"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "__G_G", body["pattern"])
	assert.Equal(t, "playing", body["state"])
	assert.Equal(t, float64(1), body["guesses"])

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"CRANE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, "GGGGG", body["pattern"])
	assert.Equal(t, "won", body["state"])
	assert.Equal(t, []any{"correct", "correct", "correct", "correct", "correct"}, body["marks"])

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"crane"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"nope","guess":"crane"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewGame_Random(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodPost, "/game/new", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["gameId"])

	rec = do(t, s, http.MethodPost, "/game/new", `{"answer":"xy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolve_RecordsHistory(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := do(t, s, http.MethodPost, "/solve", `{"secret":"crane"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "crane", body["word"])
	assert.Equal(t, "crane", body["secret"])
	assert.Equal(t, float64(1), body["attempts"])
	assert.Equal(t, true, body["solved"])
	assert.Equal(t, "fixed", body["mode"])
	assert.Greater(t, body["runId"], float64(0))

	rec = do(t, s, http.MethodPost, "/solve", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "random", decode(t, rec)["mode"])

	rec = do(t, s, http.MethodGet, "/history?limit=10", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []history.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 2)
	assert.Equal(t, history.ModeRandom, runs[0].Mode)
	assert.Equal(t, "crane", runs[1].Secret)

	rec = do(t, s, http.MethodGet, "/history/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var sum history.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 2, sum.Runs)
	assert.Equal(t, 2, sum.Solved)
	assert.Equal(t, 1, sum.Best)
}

func TestSolve_BadRequests(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := do(t, s, http.MethodPost, "/solve", `{"scoring":"fancy"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown_scoring", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/solve", `{"secret":"toolong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_secret", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/solve", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolve_Exhausted(t *testing.T) {
	cfg := testConfig()
	cfg.Opening = "eerie"
	s := newTestServer(t, cfg)

	// two-pass scoring marks the first e absent while pinning the last one
	rec := do(t, s, http.MethodPost, "/solve", `{"secret":"crane","scoring":"standard"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "candidates_exhausted", body["error"])
	assert.Equal(t, float64(1), body["attempts"])

	rec = do(t, s, http.MethodGet, "/history", "")
	var runs []history.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Exhausted)
	assert.False(t, runs[0].Solved)
}

func TestDaily(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := do(t, s, http.MethodPost, "/daily/solve?date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decode(t, rec)
	assert.Equal(t, "2024-03-01", first["date"])
	assert.Equal(t, "daily", first["mode"])
	assert.Equal(t, true, first["solved"])

	rec = do(t, s, http.MethodPost, "/daily/solve?date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first["secret"], decode(t, rec)["secret"])

	rec = do(t, s, http.MethodPost, "/daily/solve?date=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/daily/new?date=2024-03-01", "")
	require.Equal(t, http.StatusOK, rec.Code)
	id, _ := decode(t, rec)["gameId"].(string)
	require.NotEmpty(t, id)

	secret, _ := first["secret"].(string)
	rec = do(t, s, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"`+secret+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "won", decode(t, rec)["state"])
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := do(t, s, http.MethodGet, "/history/mine", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/signup", `{"username":"alice","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "wordle_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	rec = do(t, s, http.MethodPost, "/auth/signup", `{"username":"ALICE","password":"password1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodGet, "/auth/me", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode(t, rec)["username"])

	rec = do(t, s, http.MethodPost, "/solve", `{"secret":"slate"}`, cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	do(t, s, http.MethodPost, "/solve", `{"secret":"crane"}`)

	rec = do(t, s, http.MethodGet, "/history/mine", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []history.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "slate", runs[0].Secret)
	assert.NotEmpty(t, runs[0].UserID)

	rec = do(t, s, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/auth/login", `{"username":"Alice","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Result().Cookies()[0].Value

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	bearer := httptest.NewRecorder()
	s.Router().ServeHTTP(bearer, req)
	assert.Equal(t, http.StatusOK, bearer.Code)

	rec = do(t, s, http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Result().Cookies()
	require.NotEmpty(t, out)
	assert.Empty(t, out[0].Value)
	assert.Less(t, out[0].MaxAge, 0)
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, testConfig())
	do(t, s, http.MethodPost, "/solve", `{"secret":"crane"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wordle_solves_total{outcome="solved"} 1`)
	assert.Contains(t, rec.Body.String(), "wordle_solve_attempts_count 1")
	assert.NotContains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodOptions, "/solve", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestNotFound(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := do(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decode(t, rec)["error"])
}
