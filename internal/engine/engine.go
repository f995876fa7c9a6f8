// Package engine implements the quiz runner simulation: an endless runner
// whose collisions and score milestones open multiple-choice quizzes.
//
// The engine is a plain state machine. It does no I/O, owns no timers, and is
// not safe for concurrent use; a driver calls Tick at the frame rate,
// TickTimer at the invincibility cadence, and feeds asynchronous results back
// through ResolveQuiz and DeliverTheme.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-runner/internal/config"
	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// Engine is one player's simulation.
type Engine struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	rng    Sources

	state     RunState
	character Character
	spawner   *Spawner
	particles *ParticleField
	progress  *Progression
	picker    *quiz.Picker

	rotation      theme.Rotation // nil when themes are generated asynchronously
	presets       *theme.PresetRotation
	theme         theme.Theme
	themeInFlight bool

	epoch     uint64
	highScore int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithSources replaces the random sources.
func WithSources(s Sources) Option {
	return func(e *Engine) {
		e.rng = s
	}
}

// WithRotation applies theme changes synchronously from r.
func WithRotation(r theme.Rotation) Option {
	return func(e *Engine) {
		e.rotation = r
	}
}

// WithAsyncThemes makes theme changes emit EventThemeRequested instead of
// rotating. The driver answers with DeliverTheme.
func WithAsyncThemes() Option {
	return func(e *Engine) {
		e.rotation = nil
	}
}

// WithTheme sets the starting theme.
func WithTheme(t theme.Theme) Option {
	return func(e *Engine) {
		e.theme = t
	}
}

// WithHighScore seeds the session high score.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		e.highScore = score
	}
}

// New creates an engine in START. The config is assumed valid; bank must hold
// at least one question.
func New(cfg config.RunnerConfig, bank *quiz.Bank, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		logger:   log.New(io.Discard),
		rng:      NewSources(time.Now().UnixNano()),
		state:    StartState{},
		rotation: theme.NewPresetRotation(nil),
		presets:  theme.NewPresetRotation(nil),
		theme:    theme.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.spawner = NewSpawner(&e.cfg, e.rng.Spawn)
	e.particles = NewParticleField(&e.cfg, e.rng.Particles)
	e.progress = NewProgression(&e.cfg)
	e.picker = quiz.NewPicker(bank, e.rng.Shuffle)
	e.character = Character{Y: e.groundTop()}
	return e
}

// Config returns the tuning the engine runs with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// Mode returns the current run mode.
func (e *Engine) Mode() Mode {
	return e.state.Mode()
}

// State returns the current tagged run state. Callers must not mutate it.
func (e *Engine) State() RunState {
	return e.state
}

// HighScore returns the best displayed score of the session.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Epoch returns the current run number. It increases on every reset.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// reset restores every per-run value and starts a new epoch. The theme and
// high score carry over.
func (e *Engine) reset() {
	e.epoch++
	e.character = Character{Y: e.groundTop()}
	e.spawner.Reset()
	e.particles.Reset()
	e.progress.Reset()
	e.picker.Reset()
	e.themeInFlight = false
	e.state = &PlayingState{Revive: true}
}

// Activate is the single action button: start or restart a run, or jump.
// It is ignored while a quiz is open.
func (e *Engine) Activate() StepResult {
	var res StepResult

	switch e.state.(type) {
	case StartState, GameOverState:
		e.reset()
		e.logger.Debug("run started", "epoch", e.epoch)
		res.emit(Event{Kind: EventRunStarted, Epoch: e.epoch})
	case *PlayingState:
		if e.character.Jump(e.cfg.Physics.JumpImpulse) {
			res.emit(Event{Kind: EventJumped, Epoch: e.epoch, Score: e.progress.Score()})
		}
	}

	return e.result(res)
}

// CycleTheme switches to the next preset theme. Players pick themes between
// runs only, so it is ignored while PLAYING or QUIZ.
func (e *Engine) CycleTheme() StepResult {
	var res StepResult

	switch e.state.(type) {
	case StartState, GameOverState:
		e.setTheme(&res, e.presets.Next(e.theme))
	}

	return e.result(res)
}

// SelectOption answers the open quiz. Out-of-range indexes, repeated answers,
// and calls outside QUIZ are ignored.
func (e *Engine) SelectOption(idx int) StepResult {
	var res StepResult

	qs, ok := e.state.(*QuizState)
	if !ok || !qs.Session.Answer(idx) {
		return e.result(res)
	}

	e.logger.Debug("quiz answered", "outcome", qs.Session.Outcome, "source", qs.Source)
	res.emit(Event{
		Kind:    EventQuizAnswered,
		Epoch:   e.epoch,
		Score:   e.progress.Score(),
		Source:  qs.Source,
		Outcome: qs.Session.Outcome,
	})
	return e.result(res)
}

// RevealDelay is how long the driver should show a graded answer before
// calling ResolveQuiz.
func (e *Engine) RevealDelay() time.Duration {
	return time.Duration(e.cfg.Quiz.RevealDelayMS) * time.Millisecond
}

// ResolveQuiz closes a graded quiz. A correct answer returns to PLAYING with
// full invincibility. A wrong answer ends the run if the quiz was opened by a
// collision and otherwise returns to PLAYING unchanged. Calls while no graded
// quiz is open are ignored.
func (e *Engine) ResolveQuiz() StepResult {
	var res StepResult

	qs, ok := e.state.(*QuizState)
	if !ok || !qs.Session.Answered() {
		return e.result(res)
	}

	res.emit(Event{
		Kind:    EventQuizResolved,
		Epoch:   e.epoch,
		Score:   e.progress.Score(),
		Source:  qs.Source,
		Outcome: qs.Session.Outcome,
	})

	switch {
	case qs.Session.Outcome == quiz.OutcomeCorrect:
		e.state = &PlayingState{Revive: qs.Revive, InvincibleMS: e.cfg.Invincibility.DurationMS}
	case qs.Source == QuizCollision:
		e.gameOver(&res, 0)
	default:
		e.state = &PlayingState{Revive: qs.Revive, InvincibleMS: qs.InvincibleMS}
	}

	return e.result(res)
}

// Tick advances the run by one frame: physics, spawner, particles,
// collision, progression, then the proactive quiz roll. A hit ends the
// frame before progression. Outside PLAYING it does nothing.
func (e *Engine) Tick() StepResult {
	var res StepResult

	ps, ok := e.state.(*PlayingState)
	if !ok {
		return e.result(res)
	}

	e.character.step(e.cfg.Physics.Gravity, e.groundTop())
	e.spawner.Update(e.progress.Speed(), e.progress.Score())
	e.particles.Update(e.character, e.progress.Speed())

	if ps.InvincibleMS == 0 {
		if o, hit := e.spawner.FirstHit(e.Hitbox()); hit {
			e.collide(&res, ps, o)
			return e.result(res)
		}
	}

	if e.progress.Advance() {
		e.changeTheme(&res)
	}

	if e.progress.QuizDue(e.rng.Quiz) {
		e.openQuiz(&res, QuizProactive, ps.Revive, ps.InvincibleMS)
	}

	return e.result(res)
}

// Step applies one frame of input and then ticks, mirroring a frame-driven
// game loop.
func (e *Engine) Step(in core.InputFrame) StepResult {
	var res StepResult
	if in.Has(core.ActionTheme) {
		res.merge(e.CycleTheme())
	}
	if in.Has(core.ActionActivate) {
		res.merge(e.Activate())
	}
	if idx, ok := in.Option(); ok {
		res.merge(e.SelectOption(idx))
	}
	res.merge(e.Tick())
	return res
}

// TickTimer counts invincibility down by one cadence step, clamped at zero.
// It only runs while PLAYING; a quiz pauses the countdown. It reports whether
// the character is still invincible afterwards.
func (e *Engine) TickTimer() bool {
	ps, ok := e.state.(*PlayingState)
	if !ok || ps.InvincibleMS == 0 {
		return false
	}
	ps.InvincibleMS = max(0, ps.InvincibleMS-e.cfg.Invincibility.CadenceMS)
	return ps.InvincibleMS > 0
}

// TimerCadence is how often the driver should call TickTimer.
func (e *Engine) TimerCadence() time.Duration {
	return time.Duration(e.cfg.Invincibility.CadenceMS) * time.Millisecond
}

// DeliverTheme completes an asynchronous theme request. A result for an
// earlier epoch is discarded. A failed request installs the default theme.
func (e *Engine) DeliverTheme(epoch uint64, t theme.Theme, err error) StepResult {
	var res StepResult

	if epoch != e.epoch {
		e.logger.Debug("stale theme discarded", "epoch", epoch, "current", e.epoch)
		return e.result(res)
	}
	e.themeInFlight = false

	if err != nil {
		e.logger.Warn("theme generation failed, using default", "error", err)
		t = theme.Default()
	}
	e.setTheme(&res, t)
	return e.result(res)
}

// Theme returns the current theme.
func (e *Engine) Theme() theme.Theme {
	return e.theme
}

// ThemePending reports whether an asynchronous theme request is outstanding.
func (e *Engine) ThemePending() bool {
	return e.themeInFlight
}

// Hitbox returns the character's collision rectangle.
func (e *Engine) Hitbox() core.Rect {
	h := e.cfg.Player.Hitbox
	return e.spriteRect().Inset(h.Left, h.Top, h.Right, h.Bottom)
}

func (e *Engine) spriteRect() core.Rect {
	return core.NewRect(e.cfg.Player.X, e.character.Y, e.cfg.Player.Width, e.cfg.Player.Height)
}

func (e *Engine) groundTop() float64 {
	return e.cfg.World.GroundY - e.cfg.Player.Height
}

// collide spends the revive token on a quiz, or ends the run.
func (e *Engine) collide(res *StepResult, ps *PlayingState, o Obstacle) {
	if !ps.Revive {
		e.gameOver(res, o.ID)
		return
	}

	e.logger.Debug("revive spent", "obstacle", o.ID, "score", e.progress.Score())
	res.emit(Event{Kind: EventRevived, Epoch: e.epoch, Score: e.progress.Score(), Obstacle: o.ID})
	e.openQuiz(res, QuizCollision, false, ps.InvincibleMS)
}

func (e *Engine) openQuiz(res *StepResult, src QuizSource, revive bool, invincibleMS int) {
	e.state = &QuizState{
		Session:      e.picker.Start(),
		Source:       src,
		Revive:       revive,
		InvincibleMS: invincibleMS,
	}
	e.logger.Debug("quiz started", "source", src, "score", e.progress.Score())
	res.emit(Event{Kind: EventQuizStarted, Epoch: e.epoch, Score: e.progress.Score(), Source: src})
}

func (e *Engine) gameOver(res *StepResult, obstacle uint64) {
	score := e.progress.Score()
	newBest := score > e.highScore
	if newBest {
		e.highScore = score
	}
	e.state = GameOverState{}

	e.logger.Debug("game over", "score", score, "high", e.highScore)
	res.emit(Event{
		Kind:      EventGameOver,
		Epoch:     e.epoch,
		Score:     score,
		HighScore: e.highScore,
		NewBest:   newBest,
		Obstacle:  obstacle,
	})
}

// changeTheme rotates synchronously, or asks the driver for a generated
// theme unless a request is already outstanding.
func (e *Engine) changeTheme(res *StepResult) {
	if e.rotation != nil {
		e.setTheme(res, e.rotation.Next(e.theme))
		return
	}
	if e.themeInFlight {
		e.logger.Debug("theme request skipped, one in flight", "score", e.progress.Score())
		return
	}
	e.themeInFlight = true
	res.emit(Event{Kind: EventThemeRequested, Epoch: e.epoch, Score: e.progress.Score(), Theme: e.theme})
}

func (e *Engine) setTheme(res *StepResult, t theme.Theme) {
	e.theme = t
	e.logger.Debug("theme changed", "theme", t.Name)
	res.emit(Event{Kind: EventThemeChanged, Epoch: e.epoch, Score: e.progress.Score(), Theme: t})
}

func (e *Engine) result(res StepResult) StepResult {
	res.Mode = e.state.Mode()
	res.Score = e.progress.Score()
	return res
}

func (r *StepResult) emit(ev Event) {
	r.Events = append(r.Events, ev)
}
