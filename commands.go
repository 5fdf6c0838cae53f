package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	secretFlag   string
	dailyFlag    bool
	dictFlag     string
	standardFlag bool
	strictFlag   bool
	recordFlag   bool
	workersFlag  int
	portFlag     string

	rootCmd = &cobra.Command{
		Use:   "wordle-solver",
		Short: "Solve Wordle puzzles by constraint filtering",
		Long: `wordle-solver guesses a five-letter secret by filtering a dictionary
with the hints of every previous guess. Without a subcommand it solves a
random word from the dictionary.`,
		SilenceUsage: true,
		RunE:         runSolve,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve one secret (random unless --secret or --daily)",
		Args:  cobra.NoArgs,
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Solve every dictionary word and report the attempt distribution",
		Args:  cobra.NoArgs,
		RunE:  runBench, // Defined in cmd_bench.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe, // Defined in cmd_serve.go
	}
)

func init() {
	for _, c := range []*cobra.Command{rootCmd, solveCmd, benchCmd} {
		c.Flags().StringVar(&dictFlag, "dict", "", "word list file (default: embedded list, or WORDS_FILE)")
		c.Flags().BoolVar(&standardFlag, "standard", false, "score duplicate letters like the real game")
		c.Flags().BoolVar(&strictFlag, "strict", false, "drop candidates missing a letter known to be present")
	}
	for _, c := range []*cobra.Command{rootCmd, solveCmd} {
		c.Flags().StringVar(&secretFlag, "secret", "", "fixed secret word")
		c.Flags().BoolVar(&dailyFlag, "daily", false, "use today's daily word")
		c.Flags().BoolVar(&recordFlag, "record", false, "store the run in the history database")
	}
	benchCmd.Flags().IntVar(&workersFlag, "workers", 0, "concurrent solves (default: number of CPUs)")
	serveCmd.Flags().StringVar(&portFlag, "port", "", "HTTP port (default: PORT)")

	rootCmd.AddCommand(solveCmd, benchCmd, serveCmd)
}
