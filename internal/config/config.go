// internal/config/config.go
//
// Environment-driven configuration. main loads `.env` (godotenv) before
// calling Load, so values may come from either source.
//
// Environment variables:
//   LOG_LEVEL=info            zerolog level (trace|debug|info|warn|error)
//   LOG_FORMAT=console        console (human readable) or json
//   WORDS_FILE=               word list path; empty uses the embedded list
//   DB_PATH=./data/solver.db  SQLite file for history and users
//   PORT=5175                 HTTP port for `serve`
//   CLIENT_ORIGIN=http://localhost:5173
//   JWT_SECRET=dev_secret_change_me
//   JWT_EXPIRES_DAYS=14
//   COOKIE_NAME=wordle_token
//   NODE_ENV=                 "production" enables Secure cookies
//   DAILY_SALT=local_dev_salt
//   MAX_GUESSES=15000
//   OPENING_GUESS=crane

package config

import (
	"os"
	"strconv"
)

// Config holds every setting the commands read.
type Config struct {
	LogLevel     string
	LogFormat    string
	WordsFile    string
	DBPath       string
	Port         string
	ClientOrigin string
	JWTSecret    string
	JWTDays      int
	CookieName   string
	Production   bool
	DailySalt    string
	MaxGuesses   int
	Opening      string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		DBPath:       getEnv("DB_PATH", "./data/solver.db"),
		Port:         getEnv("PORT", "5175"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTDays:      getInt("JWT_EXPIRES_DAYS", 14),
		CookieName:   getEnv("COOKIE_NAME", "wordle_token"),
		Production:   os.Getenv("NODE_ENV") == "production",
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		MaxGuesses:   getInt("MAX_GUESSES", 15000),
		Opening:      getEnv("OPENING_GUESS", "crane"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getInt parses k as a positive integer, falling back to def.
func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
