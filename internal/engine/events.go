package engine

import (
	"github.com/vovakirdan/quiz-runner/internal/quiz"
	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventRunStarted EventKind = iota
	EventJumped
	EventRevived
	EventQuizStarted
	EventQuizAnswered
	EventQuizResolved
	EventThemeChanged
	EventThemeRequested
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventJumped:
		return "jumped"
	case EventRevived:
		return "revived"
	case EventQuizStarted:
		return "quiz_started"
	case EventQuizAnswered:
		return "quiz_answered"
	case EventQuizResolved:
		return "quiz_resolved"
	case EventThemeChanged:
		return "theme_changed"
	case EventThemeRequested:
		return "theme_requested"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the engine for the driver to act on.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Epoch     uint64       // Run the event belongs to
	Score     int          // Displayed score when it happened
	HighScore int          // EventGameOver
	NewBest   bool         // EventGameOver
	Theme     theme.Theme  // EventThemeChanged: new theme; EventThemeRequested: current theme
	Source    QuizSource   // Quiz events
	Outcome   quiz.Outcome // EventQuizAnswered, EventQuizResolved
	Obstacle  uint64       // EventRevived, EventGameOver: obstacle that was hit, 0 for quiz endings
}

// StepResult is returned by every engine operation.
type StepResult struct {
	Mode   Mode
	Score  int
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	_, ok := r.Find(kind)
	return ok
}

// Find returns the first event of the given kind.
func (r StepResult) Find(kind EventKind) (Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func (r *StepResult) merge(other StepResult) {
	r.Mode = other.Mode
	r.Score = other.Score
	r.Events = append(r.Events, other.Events...)
}
