package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiz-runner/internal/config"
	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/platform/tui"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/registry"
	"github.com/vovakirdan/quiz-runner/internal/storage"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// Environment variables read for the remote theme source.
const (
	envThemeURL   = "QUIZRUNNER_THEME_URL"
	envThemeToken = "QUIZRUNNER_THEME_TOKEN"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal.

Controls:
  Space/Up/W   - Start, jump, restart
  1-4 / A-D    - Answer a question
  T            - Next preset theme (between runs)
  H            - Run history (between runs)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, wider gaps, longer invincibility
  normal - Config defaults
  hard   - Faster start, tighter gaps, flyers sooner
  fixed  - No speed progression

Theme sources:
  preset      - Rotate through the built-in palettes
  procedural  - Generate palettes from a random hue
  remote      - Fetch palettes from QUIZRUNNER_THEME_URL

Examples:
  quizrunner play
  quizrunner play --difficulty easy
  quizrunner play --themes procedural --seed 42
  quizrunner play --config ./my-runner.yaml --questions ./my-questions.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// loadRunner reads the runner config and applies --difficulty. A broken
// custom config falls back to defaults with a warning.
func loadRunner() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using default runner config\n", err)
		logger.Warn("runner config fallback", "error", err)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard, fixed)", flagDifficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// loadBank reads the question bank, falling back to the built-in one.
func loadBank() *quiz.Bank {
	bank, err := quiz.LoadBank(flagQuestions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using built-in questions\n", err)
		logger.Warn("question bank fallback", "error", err)
		return quiz.DefaultBank()
	}
	return bank
}

// themeOptions collects the registry options from flags and the environment.
func themeOptions() registry.Options {
	return registry.Options{
		Seed:  flagSeed,
		URL:   os.Getenv(envThemeURL),
		Token: os.Getenv(envThemeToken),
	}
}

// gameOptions builds everything a session needs except the theme source,
// store, player, and screen size.
func gameOptions() (tui.Options, error) {
	runner, err := loadRunner()
	if err != nil {
		return tui.Options{}, err
	}
	start, err := startingTheme()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{
		Runner:  runner,
		Bank:    loadBank(),
		Theme:   start,
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Logger:  logger,
	}, nil
}

// startingTheme resolves --theme. Empty means the default theme.
func startingTheme() (theme.Theme, error) {
	if flagTheme == "" {
		return theme.Theme{}, nil
	}
	t, ok := theme.Find(flagTheme)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q\nRun 'quizrunner themes' to see presets", flagTheme)
	}
	return t, nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

func runPlay(_ *cobra.Command, _ []string) error {
	opts, err := gameOptions()
	if err != nil {
		return err
	}

	src, err := registry.Create(flagThemes, themeOptions())
	if err != nil {
		return fmt.Errorf("%w\nRun 'quizrunner themes' to see available sources", err)
	}
	opts.Themes = src

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	opts.Runtime.ScreenW = width
	opts.Runtime.ScreenH = height
	opts.Player = playerName()

	// Open the session run log
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	opts.Store = store

	logger.Info("starting run", "player", opts.Player, "themes", flagThemes, "difficulty", flagDifficulty)

	// Run the game
	runErr := tui.Run(opts)

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
