package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/constants"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	t := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEnter:  {Type: IntentConfirm},
			tcell.KeyEscape: {Type: IntentHome},
			tcell.KeyLeft:   {Type: IntentCursor, DX: -1},
			tcell.KeyRight:  {Type: IntentCursor, DX: 1},
			tcell.KeyUp:     {Type: IntentCursor, DY: -1},
			tcell.KeyDown:   {Type: IntentCursor, DY: 1},
		},
		Runes: map[rune]Intent{
			' ': {Type: IntentTogglePause},
			'p': {Type: IntentTogglePause},
			'q': {Type: IntentHome},
			'm': {Type: IntentToggleMute},
			'l': {Type: IntentOpenMap},
			'r': {Type: IntentRetry},
		},
	}
	for i := 0; i < constants.OptionCount; i++ {
		t.Runes[rune('1'+i)] = Intent{Type: IntentOption, Index: i}
	}
	return t
}

// Lookup decodes a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if in, ok := t.Runes[ev.Rune()]; ok {
			return in
		}
		return Intent{}
	}
	if in, ok := t.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}
