package core

// KeyCode identifies a physical key, named after the DOM KeyboardEvent.code
// values ("ArrowLeft", "KeyA", "Space", ...).
type KeyCode string

// Physical keys understood by InputState.
const (
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyA          KeyCode = "KeyA"
	KeyArrowRight KeyCode = "ArrowRight"
	KeyD          KeyCode = "KeyD"
	KeyArrowUp    KeyCode = "ArrowUp"
	KeyW          KeyCode = "KeyW"
	KeySpace      KeyCode = "Space"
)

// Action represents a logical input, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // ArrowLeft, A
	ActionRight        // ArrowRight, D
	ActionJump         // ArrowUp, W, Space
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// ActionFor maps a physical key to its logical action.
// Unmapped keys return ActionNone.
func ActionFor(code KeyCode) Action {
	switch code {
	case KeyArrowLeft, KeyA:
		return ActionLeft
	case KeyArrowRight, KeyD:
		return ActionRight
	case KeyArrowUp, KeyW, KeySpace:
		return ActionJump
	default:
		return ActionNone
	}
}

// Facing is the horizontal direction the actor was last steered in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "left" or "right".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// MarshalText lets snapshots serialize the facing by name.
func (f Facing) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// InputState holds the three held logical flags.
// Each flag is set by a key-down and stays set until the matching key-up.
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Facing Facing
}

// KeyDown sets the flag mapped to code. handled reports whether the key is
// mapped at all; preventDefault is true for jump keys, whose default host
// action (page scroll) must be suppressed.
func (s *InputState) KeyDown(code KeyCode) (handled, preventDefault bool) {
	switch ActionFor(code) {
	case ActionLeft:
		s.Left = true
		s.Facing = FacingLeft
	case ActionRight:
		s.Right = true
		s.Facing = FacingRight
	case ActionJump:
		s.Jump = true
		return true, true
	default:
		return false, false
	}
	return true, false
}

// KeyUp clears the flag mapped to code. Unmapped keys are ignored.
func (s *InputState) KeyUp(code KeyCode) {
	switch ActionFor(code) {
	case ActionLeft:
		s.Left = false
	case ActionRight:
		s.Right = false
	case ActionJump:
		s.Jump = false
	}
}
