package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/terminal"
)

// KeyTable maps backend keys to game keys
// Runes are matched case-insensitively and stored lower case
type KeyTable struct {
	// Special keys of the ANSI backend (arrows, Enter, Ctrl+C)
	SpecialKeys map[terminal.Key]Key

	// Special keys of the tcell backend
	TcellKeys map[tcell.Key]Key

	// Printable bindings shared by both backends
	Runes map[rune]Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]Key{
			terminal.KeyUp:    KeyUp,
			terminal.KeyDown:  KeyDown,
			terminal.KeyLeft:  KeyLeft,
			terminal.KeyRight: KeyRight,
			terminal.KeyEnter: KeyConfirm,
			terminal.KeyCtrlC: KeyQuit,
		},
		TcellKeys: map[tcell.Key]Key{
			tcell.KeyUp:    KeyUp,
			tcell.KeyDown:  KeyDown,
			tcell.KeyLeft:  KeyLeft,
			tcell.KeyRight: KeyRight,
			tcell.KeyEnter: KeyConfirm,
			tcell.KeyCtrlC: KeyQuit,
		},
		Runes: map[rune]Key{
			'w': KeyUp,
			's': KeyDown,
			'a': KeyLeft,
			'd': KeyRight,
			'q': KeyQuit,
			'r': KeyRestart,
			' ': KeyConfirm,
		},
	}
}

// FromTerminal maps an ANSI backend event, non-key events map to KeyNone
func (t *KeyTable) FromTerminal(ev terminal.Event) Key {
	if ev.Type != terminal.EventKey {
		return KeyNone
	}
	if ev.Key == terminal.KeyRune {
		return t.rune(ev.Rune)
	}
	return t.SpecialKeys[ev.Key]
}

// FromTcell maps a tcell key event
func (t *KeyTable) FromTcell(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return t.rune(ev.Rune())
	}
	return t.TcellKeys[ev.Key()]
}

func (t *KeyTable) rune(r rune) Key {
	return t.Runes[unicode.ToLower(r)]
}
