package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/auth"
	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/store"
)

func runServe(cmd *cobra.Command, _ []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	d, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := db.Migrate(cmd.Context(), d); err != nil {
		return err
	}

	srv := httpserver.New(httpserver.Deps{
		Sessions:   store.NewMemoryStore(),
		Dictionary: dict,
		Runs:       history.NewStore(d),
		Users:      auth.NewUsers(d),
		Tokens:     auth.NewSigner(cfg.JWTSecret, time.Duration(cfg.JWTDays)*24*time.Hour),
		Config:     cfg,
	})

	port := cfg.Port
	if portFlag != "" {
		port = portFlag
	}
	log.Info().Str("port", port).Str("db", cfg.DBPath).Int("words", len(dict)).Msg("starting wordle-solver")
	return srv.Start(":" + port)
}
