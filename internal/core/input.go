package core

// Action is a semantic input, independent of the key or button behind it.
type Action uint8

const (
	ActionNone  Action = iota
	ActionJump         // Primary action: flap, start, retry
	ActionPause        // Toggle pause
	ActionQuit         // Leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered since the previous tick.
// Repeated presses within one tick collapse into one. The zero value is an
// empty frame and frames copy by value.
type InputFrame struct {
	bits uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and out-of-range values are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a > ActionQuit {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone || a > ActionQuit {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
