package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/bench"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func runBench(cmd *cobra.Command, _ []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(dict),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	opts := bench.Options{
		Workers:  workersFlag,
		Solver:   solverOpts(),
		Progress: func() { _ = bar.Add(1) },
	}
	if standardFlag {
		opts.Scorer = game.ScoreStandard
	}

	stats, err := bench.Run(cmd.Context(), dict, opts)
	_ = bar.Finish()
	if err != nil {
		return err
	}
	log.Info().Int("words", stats.Total).Str("scoring", scoringName()).Msg("bench finished")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "words:     %d\n", stats.Total)
	fmt.Fprintf(out, "solved:    %d\n", stats.Solved)
	fmt.Fprintf(out, "unsolved:  %d\n", stats.Unsolved)
	fmt.Fprintf(out, "exhausted: %d\n", stats.Exhausted)
	fmt.Fprintf(out, "mean:      %.3f\n", stats.Mean)
	fmt.Fprintf(out, "worst:     %d %v\n", stats.Worst, joinWords(stats.WorstWords))

	keys := make([]int, 0, len(stats.Distribution))
	for k := range stats.Distribution {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%4d tries: %d\n", k, stats.Distribution[k])
	}
	return nil
}

func joinWords(ws []words.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}
