package engine

import "github.com/vovakirdan/quiz-runner/internal/quiz"

// Mode is the top-level run mode.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeQuiz
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "START"
	case ModePlaying:
		return "PLAYING"
	case ModeQuiz:
		return "QUIZ"
	case ModeGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// QuizSource records why a quiz was opened. It alone decides what a wrong
// answer costs: collision quizzes end the run, proactive ones do not.
type QuizSource int

const (
	QuizProactive QuizSource = iota // Rolled from score progress
	QuizCollision                   // Opened by spending the revive token
)

// String returns a human-readable name for the source.
func (s QuizSource) String() string {
	switch s {
	case QuizProactive:
		return "proactive"
	case QuizCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// RunState is the tagged run state. Each variant carries only the fields
// valid in that mode.
type RunState interface {
	Mode() Mode
	runState()
}

// StartState is the state before the first run.
type StartState struct{}

// PlayingState is an active run.
type PlayingState struct {
	Revive       bool // Revive token still available
	InvincibleMS int  // Remaining invincibility, 0 when vulnerable
}

// QuizState pauses the run while a question is on screen.
type QuizState struct {
	Session      *quiz.Session
	Source       QuizSource
	Revive       bool // Revive token to restore on return to PLAYING
	InvincibleMS int  // Invincibility paused while the quiz is open
}

// GameOverState is a finished run.
type GameOverState struct{}

func (StartState) Mode() Mode { return ModeStart }
func (*PlayingState) Mode() Mode { return ModePlaying }
func (*QuizState) Mode() Mode { return ModeQuiz }
func (GameOverState) Mode() Mode { return ModeGameOver }
func (StartState) runState() {}
func (*PlayingState) runState() {}
func (*QuizState) runState() {}
func (GameOverState) runState() {}
