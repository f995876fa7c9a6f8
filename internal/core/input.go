package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W - jump, or start/restart a run
	ActionOption1         // 1, A - first quiz option
	ActionOption2         // 2, B - second quiz option
	ActionOption3         // 3, C - third quiz option
	ActionOption4         // 4, D - fourth quiz option
	ActionHistory         // H - toggle the session run history
	ActionTheme           // T - next preset theme, between runs
	ActionQuit            // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionOption1:
		return "Option1"
	case ActionOption2:
		return "Option2"
	case ActionOption3:
		return "Option3"
	case ActionOption4:
		return "Option4"
	case ActionHistory:
		return "History"
	case ActionTheme:
		return "Theme"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// OptionIndex returns the zero-based quiz option index for an option action.
func (a Action) OptionIndex() (int, bool) {
	switch a {
	case ActionOption1:
		return 0, true
	case ActionOption2:
		return 1, true
	case ActionOption3:
		return 2, true
	case ActionOption4:
		return 3, true
	default:
		return -1, false
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Option returns the first quiz option selected this frame, if any.
func (f InputFrame) Option() (int, bool) {
	for _, a := range []Action{ActionOption1, ActionOption2, ActionOption3, ActionOption4} {
		if f.Has(a) {
			return a.OptionIndex()
		}
	}
	return -1, false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
