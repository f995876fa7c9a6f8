// Package tui provides the Bubble Tea driver for the quiz runner.
// It owns every clock the engine does not: the frame tick, the
// invincibility cadence, the answer reveal delay, and async theme requests.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// TimerMsg is sent on the invincibility cadence.
type TimerMsg time.Time

// RevealMsg closes a graded quiz after the reveal delay.
type RevealMsg struct {
	Epoch uint64
}

// ThemeMsg carries the result of an async theme request back to the engine.
type ThemeMsg struct {
	Epoch uint64
	Theme theme.Theme
	Err   error
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// timerCmd schedules the next invincibility countdown step.
func timerCmd(cadence time.Duration) tea.Cmd {
	return tea.Tick(cadence, func(t time.Time) tea.Msg {
		return TimerMsg(t)
	})
}

// revealCmd schedules quiz resolution for the given run.
func revealCmd(delay time.Duration, epoch uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RevealMsg{Epoch: epoch}
	})
}

// themeCmd runs the generator off the update loop. Failures come back as a
// ThemeMsg with Err set; the engine substitutes the default theme.
func themeCmd(gen theme.Generator, epoch uint64, score int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		t, err := theme.Resolve(context.Background(), gen, score, timeout)
		return ThemeMsg{Epoch: epoch, Theme: t, Err: err}
	}
}
