package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-runner/internal/config"
	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/engine"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/registry"
	"github.com/vovakirdan/quiz-runner/internal/storage"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// defaultThemeTimeout bounds a single async theme request.
const defaultThemeTimeout = 3 * time.Second

// Options configures one player's game.
type Options struct {
	Runner       config.RunnerConfig
	Bank         *quiz.Bank
	Themes       registry.Source
	Theme        theme.Theme // Starting theme; zero means the default
	Store        *storage.Store // Optional session run log
	Player       string
	Runtime      core.RuntimeConfig
	ThemeTimeout time.Duration
	Logger       *log.Logger
}

// runStats accumulates what the run log records about the current run.
type runStats struct {
	started time.Time
	revived bool
	correct int
	wrong   int
}

// Model is the Bubble Tea model for one player's runner session.
type Model struct {
	engine     *engine.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	themes     registry.Source
	timeout    time.Duration
	logger     *log.Logger
	player     string

	run         runStats
	lastRunID   string
	history     HistoryModel
	showHistory bool
	quitting    bool
}

// NewModel creates a model with a fresh engine in START.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := opts.ThemeTimeout
	if timeout <= 0 {
		timeout = defaultThemeTimeout
	}

	eopts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithSources(engine.NewSources(cfg.Seed)),
	}
	switch {
	case opts.Themes.IsAsync():
		eopts = append(eopts, engine.WithAsyncThemes())
	case opts.Themes.Rotation != nil:
		eopts = append(eopts, engine.WithRotation(opts.Themes.Rotation))
	}
	if opts.Theme.Name != "" {
		eopts = append(eopts, engine.WithTheme(opts.Theme))
	}
	if opts.Store != nil {
		if best, err := opts.Store.SessionBest(opts.Player); err == nil {
			eopts = append(eopts, engine.WithHighScore(best))
		} else {
			logger.Warn("could not read session best", "error", err)
		}
	}

	return Model{
		engine:     engine.New(opts.Runner, opts.Bank, eopts...),
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-hudHeight, 0)),
		store:      opts.Store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		themes:     opts.Themes,
		timeout:    timeout,
		logger:     logger,
		player:     opts.Player,
	}
}

// Engine exposes the simulation, mainly for tests.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Init starts the frame tick and the invincibility cadence.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		timerCmd(m.engine.TimerCadence()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case TimerMsg:
		m.engine.TickTimer()
		return m, timerCmd(m.engine.TimerCadence())

	case RevealMsg:
		if msg.Epoch != m.engine.Epoch() {
			return m, nil
		}
		cmd := m.handleResult(m.engine.ResolveQuiz())
		return m, cmd

	case ThemeMsg:
		cmd := m.handleResult(m.engine.DeliverTheme(msg.Epoch, msg.Theme, msg.Err))
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		switch {
		case m.history.IsQuitting():
			m.quitting = true
			return m, tea.Quit
		case m.history.IsGoingBack():
			m.showHistory = false
		}
		return m, cmd
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionHistory {
		// Only between runs; a live run keeps ticking
		if mode := m.engine.Mode(); mode == engine.ModeStart || mode == engine.ModeGameOver {
			m.history = NewHistoryModel(m.store, m.player, m.lastRunID, m.config.ScreenW, m.config.ScreenH)
			m.showHistory = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. World coordinates are
// scaled at render time, so the run is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-hudHeight, 0))

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick applies the buffered input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.engine.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	cmd := m.handleResult(result)
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// handleResult turns engine events into side effects.
func (m *Model) handleResult(res engine.StepResult) tea.Cmd {
	var cmds []tea.Cmd

	for _, ev := range res.Events {
		switch ev.Kind {
		case engine.EventRunStarted:
			m.run = runStats{started: time.Now()}

		case engine.EventRevived:
			m.run.revived = true

		case engine.EventQuizAnswered:
			if ev.Outcome == quiz.OutcomeCorrect {
				m.run.correct++
			} else {
				m.run.wrong++
			}
			cmds = append(cmds, revealCmd(m.engine.RevealDelay(), ev.Epoch))

		case engine.EventThemeRequested:
			if m.themes.Generator != nil {
				cmds = append(cmds, themeCmd(m.themes.Generator, ev.Epoch, ev.Score, m.timeout))
			}

		case engine.EventThemeChanged:
			m.logger.Debug("theme applied", "theme", ev.Theme.Name, "score", ev.Score)

		case engine.EventGameOver:
			m.saveRun(ev)
		}
	}

	return tea.Batch(cmds...)
}

// saveRun records the finished run. Failures are logged; the game goes on.
func (m *Model) saveRun(ev engine.Event) {
	m.logger.Info("run ended", "player", m.player, "score", ev.Score, "best", ev.HighScore, "new_best", ev.NewBest)
	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Player:   m.player,
		Score:    ev.Score,
		Revived:  m.run.revived,
		Correct:  m.run.correct,
		Wrong:    m.run.wrong,
		Theme:    m.engine.Theme().Name,
		Duration: time.Since(m.run.started),
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	snap := m.engine.Snapshot()
	return renderFrame(m.screen, snap, m.config.ScreenW, m.config.ScreenH)
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
