package core

// Action is a semantic input: the platform layer maps physical keys to
// actions, and the simulation only ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // steer up
	ActionDown           // steer down
	ActionLeft           // steer left
	ActionRight          // steer right
	ActionConfirm        // confirm a menu selection
	ActionBack           // back out to the menu
	ActionRestart        // restart after the round ends
	ActionQuit           // leave the game or session
	ActionPause          // toggle pause
)

// String returns the action's name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions observed between two simulation ticks.
// The simulation receives it as an immutable per-tick snapshot; a map lets
// multiple actions coexist in one frame without ordering concerns.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as seen this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was seen this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
