package input

import (
	"github.com/lixenwraith/vi-snake/terminal"
)

// TerminalSource reads keys from the ANSI terminal
// The terminal's reader goroutine buffers events; PollKey drains them without blocking
type TerminalSource struct {
	term    terminal.Terminal
	table   *KeyTable
	resized bool
}

// NewTerminalSource wraps an initialized terminal
func NewTerminalSource(term terminal.Terminal, table *KeyTable) *TerminalSource {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &TerminalSource{term: term, table: table}
}

// PollKey returns the first bound key among pending events
// Unbound keys are consumed; resizes are latched for Resized
func (s *TerminalSource) PollKey() Key {
	for {
		ev, ok := s.term.TryEvent()
		if !ok {
			return KeyNone
		}

		switch ev.Type {
		case terminal.EventKey:
			if k := s.table.FromTerminal(ev); k != KeyNone {
				return k
			}
		case terminal.EventResize:
			s.resized = true
		case terminal.EventError, terminal.EventClosed:
			// Input is gone, nothing can steer or quit anymore
			return KeyQuit
		}
	}
}

// Resized reports and clears a pending resize
func (s *TerminalSource) Resized() bool {
	r := s.resized
	s.resized = false
	return r
}
