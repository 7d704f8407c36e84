package core

// SimMode selects which simulation the shell is presenting
type SimMode uint8

const (
	ModePhysics SimMode = iota
	ModeCircuit
)

// String returns the lowercase mode name
func (m SimMode) String() string {
	switch m {
	case ModePhysics:
		return "physics"
	case ModeCircuit:
		return "circuit"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name to SimMode, returns false for unknown names
func ParseMode(s string) (SimMode, bool) {
	switch s {
	case "physics":
		return ModePhysics, true
	case "circuit":
		return ModeCircuit, true
	default:
		return 0, false
	}
}
