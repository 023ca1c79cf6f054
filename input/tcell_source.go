package input

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
)

// tcellKeyBuffer bounds keys queued between ticks
const tcellKeyBuffer = 64

// TcellSource reads keys from a tcell screen
// One goroutine blocks in PollEvent and feeds a buffered channel
type TcellSource struct {
	screen  tcell.Screen
	table   *KeyTable
	keys    chan Key
	resized atomic.Bool
	done    chan struct{}
}

// NewTcellSource starts the reader goroutine, it exits when the screen is finalized
func NewTcellSource(screen tcell.Screen, table *KeyTable) *TcellSource {
	if table == nil {
		table = DefaultKeyTable()
	}
	s := &TcellSource{
		screen: screen,
		table:  table,
		keys:   make(chan Key, tcellKeyBuffer),
		done:   make(chan struct{}),
	}
	go s.readLoop()
	return s
}

func (s *TcellSource) readLoop() {
	defer close(s.done)

	defer func() {
		if p := recover(); p != nil {
			s.screen.Fini()
			fmt.Fprintf(os.Stderr, "INPUT READER CRASHED: %v\nStack Trace:\n%s\n", p, debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			k := s.table.FromTcell(ev)
			if k == KeyNone {
				continue
			}
			select {
			case s.keys <- k:
			default:
			}
		case *tcell.EventResize:
			s.resized.Store(true)
		}
	}
}

// PollKey returns the next queued key or KeyNone
func (s *TcellSource) PollKey() Key {
	select {
	case k := <-s.keys:
		return k
	default:
		return KeyNone
	}
}

// Resized reports and clears a pending resize
func (s *TcellSource) Resized() bool {
	return s.resized.Swap(false)
}

// Done is closed when the reader goroutine exits
func (s *TcellSource) Done() <-chan struct{} {
	return s.done
}
