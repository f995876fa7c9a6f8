package engine

import (
	"github.com/vovakirdan/quiz-runner/internal/core"
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// QuizView is the renderable part of an open quiz.
type QuizView struct {
	Text     string
	Options  []string
	Selected int // -1 until answered
	Correct  int // Only meaningful once Outcome is set
	Outcome  quiz.Outcome
	Source   QuizSource
}

// Snapshot is a value copy of everything a renderer needs. It shares no
// memory with the engine.
type Snapshot struct {
	Mode  Mode
	Epoch uint64

	Character Character
	Sprite    core.Rect
	Hitbox    core.Rect
	Obstacles []Obstacle
	Particles []Particle

	WorldWidth  float64
	WorldHeight float64
	GroundY     float64

	Score     int
	RawScore  int
	HighScore int
	Speed     float64

	Theme        theme.Theme
	ThemePending bool

	Revive       bool
	InvincibleMS int
	Quiz         *QuizView // nil outside QUIZ
}

// Invincible reports whether collisions are currently ignored.
func (s Snapshot) Invincible() bool {
	return s.InvincibleMS > 0
}

// Snapshot returns the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:         e.state.Mode(),
		Epoch:        e.epoch,
		Character:    e.character,
		Sprite:       e.spriteRect(),
		Hitbox:       e.Hitbox(),
		Obstacles:    append([]Obstacle(nil), e.spawner.Obstacles()...),
		Particles:    append([]Particle(nil), e.particles.Particles()...),
		WorldWidth:   e.cfg.World.Width,
		WorldHeight:  e.cfg.World.Height,
		GroundY:      e.cfg.World.GroundY,
		Score:        e.progress.Score(),
		RawScore:     e.progress.RawScore(),
		HighScore:    e.highScore,
		Speed:        e.progress.Speed(),
		Theme:        e.theme,
		ThemePending: e.themeInFlight,
	}

	switch st := e.state.(type) {
	case *PlayingState:
		snap.Revive = st.Revive
		snap.InvincibleMS = st.InvincibleMS
	case *QuizState:
		snap.Revive = st.Revive
		snap.InvincibleMS = st.InvincibleMS
		snap.Quiz = &QuizView{
			Text:     st.Session.Text,
			Options:  append([]string(nil), st.Session.Options...),
			Selected: st.Session.Selected,
			Correct:  st.Session.Correct,
			Outcome:  st.Session.Outcome,
			Source:   st.Source,
		}
	}

	return snap
}
