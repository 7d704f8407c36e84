package shell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/labsim/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings; digits are resolved separately
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			' ': {Type: IntentToggleRun},
			'n': {Type: IntentStep},
			'r': {Type: IntentReset},
			'p': {Type: IntentMode, Mode: core.ModePhysics},
			'c': {Type: IntentMode, Mode: core.ModeCircuit},
		},
	}
}

// Resolve converts a key event to an intent, IntentNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if r >= '1' && r <= '9' {
		return Intent{Type: IntentLevel, Level: int(r - '1')}
	}
	return kt.Runes[r]
}
