package core

// Action represents a semantic input event, abstracted from physical
// key presses and mouse buttons.
type Action int

const (
	ActionNone         Action = iota
	ActionClick               // Left mouse button, Space, Enter - primary click
	ActionPause               // Esc, P - pause/resume
	ActionPointerLeft         // Left arrow, H - nudge the virtual pointer left
	ActionPointerRight        // Right arrow, L - nudge the virtual pointer right
	ActionHelp                // ? - toggle full help
	ActionQuit                // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClick:
		return "Click"
	case ActionPause:
		return "Pause"
	case ActionPointerLeft:
		return "PointerLeft"
	case ActionPointerRight:
		return "PointerRight"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for a single frame. Edge events
// (Click, Pause) are set once per press and cleared after the frame
// consumes them; the pointer position is level state and persists.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the last known pointer position in logical units.
	Pointer Vec2

	// ClickAt is where the primary click landed, valid when Click is set.
	ClickAt Vec2
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

// Clear resets all actions for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
