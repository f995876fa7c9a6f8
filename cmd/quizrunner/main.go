// quizrunner is an endless terminal runner where a multiple-choice question
// stands between a crash and the end of the run.
//
// Usage:
//
//	quizrunner play           - Play in this terminal
//	quizrunner serve          - Start SSH server for remote play
//	quizrunner themes         - List theme sources and preset palettes
//	quizrunner questions      - List or validate the question bank
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Runner config YAML
//	--questions <path>    - Question bank YAML
//	--themes <source>     - Theme source: preset, procedural, remote
//	--theme <name>        - Starting preset theme
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Write debug logs to a file
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagQuestions  string
	flagThemes     string
	flagTheme      string
	flagDifficulty string
	flagLog        string
)

// logger is configured in the root pre-run; it discards unless --log is set.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quizrunner",
	Short: "Quiz Runner - jump hazards, answer questions, keep running",
	Long: `Quiz Runner is an endless side-scrolling runner for the terminal.
Crash once and a multiple-choice question decides whether you keep going.
Pop quizzes also appear mid-run; a right answer grants invincibility.

Available commands:
  play       - Play in this terminal
  serve      - Start SSH server for remote play
  themes     - List theme sources and preset palettes
  questions  - List or validate the question bank

Examples:
  quizrunner play
  quizrunner play --difficulty hard --themes procedural
  quizrunner play --theme "Snow Season"
  quizrunner serve --ssh :2222
  quizrunner questions --validate --questions ./my-questions.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagQuestions, "questions", "", "Path to custom question bank YAML")
	rootCmd.PersistentFlags().StringVar(&flagThemes, "themes", "preset", "Theme source: preset, procedural, remote")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Starting preset theme by name (see 'quizrunner themes')")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(questionsCmd)
}

// setup loads .env and opens the log file.
func setup(_ *cobra.Command, _ []string) error {
	// .env is optional; it only carries remote theme settings
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}

	if flagLog == "" {
		return nil
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "quizrunner",
		Level:           log.DebugLevel,
	})
	return nil
}
