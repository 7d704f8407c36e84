package shell

import "github.com/lixenwraith/labsim/core"

// IntentType discriminates user actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit      // q, Esc, Ctrl+C
	IntentToggleRun // space
	IntentStep      // n, single tick while paused or running
	IntentReset     // r, clear and reseed the current level
	IntentMode      // p, c
	IntentLevel     // 1-9
	IntentResize    // terminal resize
)

// String returns the intent name used in logs
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleRun:
		return "toggle_run"
	case IntentStep:
		return "step"
	case IntentReset:
		return "reset"
	case IntentMode:
		return "mode"
	case IntentLevel:
		return "level"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Intent is a resolved key press
// Mode is set for IntentMode, Level (zero-based) for IntentLevel
type Intent struct {
	Type  IntentType
	Mode  core.SimMode
	Level int
}
