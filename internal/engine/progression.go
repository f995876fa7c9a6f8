package engine

import "github.com/vovakirdan/quiz-runner/internal/config"

// Progression tracks score, scroll speed, and the theme and quiz cadences.
type Progression struct {
	cfg       *config.RunnerConfig
	raw       int     // Ticks survived
	speed     float64 // Current scroll speed
	nextTheme int     // Displayed score that triggers the next theme change
	lastQuiz  int     // Displayed score at the last proactive quiz
}

// NewProgression creates a progression at its starting values.
func NewProgression(cfg *config.RunnerConfig) *Progression {
	p := &Progression{cfg: cfg}
	p.Reset()
	return p
}

// Reset returns every counter to its starting value.
func (p *Progression) Reset() {
	p.raw = 0
	p.speed = p.cfg.Speed.Initial
	p.nextTheme = p.cfg.Progression.ThemeInterval
	p.lastQuiz = 0
}

// Advance adds one tick of survival and one speed increment. It reports
// whether the displayed score reached the next theme threshold; the
// threshold then moves up by one interval.
func (p *Progression) Advance() bool {
	p.raw++
	p.speed += p.cfg.Speed.Increment

	if p.Score() >= p.nextTheme {
		p.nextTheme += p.cfg.Progression.ThemeInterval
		return true
	}
	return false
}

// QuizDue rolls for a proactive quiz once the displayed score is more than
// one interval past the last one. A successful roll records the score.
func (p *Progression) QuizDue(rng Rand) bool {
	score := p.Score()
	if score <= p.lastQuiz+p.cfg.Quiz.ChanceInterval {
		return false
	}
	if rng.Float64() >= p.cfg.Quiz.Chance {
		return false
	}
	p.lastQuiz = score
	return true
}

// Score returns the displayed score.
func (p *Progression) Score() int {
	return p.raw / p.cfg.Progression.ScoreDivisor
}

// RawScore returns the ticks survived.
func (p *Progression) RawScore() int {
	return p.raw
}

// Speed returns the current scroll speed.
func (p *Progression) Speed() float64 {
	return p.speed
}

// NextTheme returns the displayed score of the next theme change.
func (p *Progression) NextTheme() int {
	return p.nextTheme
}
