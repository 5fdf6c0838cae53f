package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/db"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/history"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// logReporter prints solver progress through zerolog.
type logReporter struct {
	log zerolog.Logger
}

func (r logReporter) Started(n int) {
	r.log.Info().Int("candidates", n).Msgf("list starting at %d", n)
}

func (r logReporter) Filtered(rd solver.Round) {
	r.log.Info().
		Int("round", rd.Number).
		Str("guess", rd.Guess.String()).
		Str("hint", rd.Hint.String()).
		Msgf("list reduced to %d", rd.Remaining)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	gameOpts := scorerOpts()
	mode := history.ModeRandom
	var g *game.Game
	switch {
	case secretFlag != "":
		secret, err := words.Parse(secretFlag)
		if err != nil {
			return err
		}
		g, mode = game.FromWord(secret, gameOpts...), history.ModeFixed
	case dailyFlag:
		secret, _, err := daily.Secret(time.Now().UTC(), cfg.DailySalt, dict)
		if err != nil {
			return err
		}
		g, mode = game.FromWord(secret, gameOpts...), history.ModeDaily
	default:
		if g, err = game.FromRandom(dict, gameOpts...); err != nil {
			return err
		}
	}

	opts := append(solverOpts(), solver.WithReporter(logReporter{log: log.Logger}))
	res, err := solver.Solve(g, dict, opts...)
	exhausted := errors.Is(err, solver.ErrCandidatesExhausted)
	if err != nil && !exhausted {
		return err
	}

	if recordFlag {
		if err := recordRun(cmd.Context(), history.NewRun(mode, scoringName(), g.Secret(), res, exhausted)); err != nil {
			log.Warn().Err(err).Msg("record run")
		}
	}
	if exhausted {
		return fmt.Errorf("secret %s: %w", g.Secret(), err)
	}
	if !res.Solved {
		fmt.Fprintf(cmd.OutOrStdout(), "Gave up after %d tries, last guess %s\n", res.Attempts, res.Word)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Found %s in %d tries!\n", res.Word, res.Attempts)
	return nil
}

func recordRun(ctx context.Context, run history.Run) error {
	d, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := db.Migrate(ctx, d); err != nil {
		return err
	}
	_, err = history.NewStore(d).Record(ctx, run)
	return err
}

// --- shared flag helpers ---

func loadDictionary() ([]words.Word, error) {
	path := dictFlag
	if path == "" {
		path = cfg.WordsFile
	}
	dict, err := words.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	log.Debug().Str("path", path).Int("words", len(dict)).Msg("dictionary loaded")
	return dict, nil
}

func scorerOpts() []game.Option {
	if standardFlag {
		return []game.Option{game.WithScorer(game.ScoreStandard)}
	}
	return nil
}

func scoringName() string {
	if standardFlag {
		return "standard"
	}
	return "reference"
}

func solverOpts() []solver.Option {
	opts := []solver.Option{solver.WithMaxGuesses(cfg.MaxGuesses)}
	if w, err := words.Parse(cfg.Opening); err == nil {
		opts = append(opts, solver.WithOpening(w))
	} else {
		log.Warn().Err(err).Msg("invalid opening guess, using default")
	}
	if strictFlag {
		opts = append(opts, solver.WithRequiredLetters())
	}
	return opts
}
