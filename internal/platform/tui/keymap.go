package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quiz-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to runner actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w", "enter":
		return core.ActionActivate, false
	case "1", "a":
		return core.ActionOption1, false
	case "2", "b":
		return core.ActionOption2, false
	case "3", "c":
		return core.ActionOption3, false
	case "4", "d":
		return core.ActionOption4, false
	case "h":
		return core.ActionHistory, false
	case "t":
		return core.ActionTheme, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
