package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/terminal"
)

// queueTerminal serves posted events through TryEvent
type queueTerminal struct {
	events []terminal.Event
}

func (q *queueTerminal) Init() error { return nil }
func (q *queueTerminal) Fini() {}
func (q *queueTerminal) Size() (int, int) { return 80, 24 }
func (q *queueTerminal) ColorMode() terminal.ColorMode { return terminal.ColorModeNone }
func (q *queueTerminal) Flush(cells []terminal.Cell, w, h int) {}
func (q *queueTerminal) Clear(terminal.RGB) {}
func (q *queueTerminal) SetCursorVisible(bool) {}
func (q *queueTerminal) Sync() {}
func (q *queueTerminal) PollEvent() terminal.Event { ev, _ := q.TryEvent(); return ev }
func (q *queueTerminal) PostEvent(ev terminal.Event) { q.events = append(q.events, ev) }

func (q *queueTerminal) TryEvent() (terminal.Event, bool) {
	if len(q.events) == 0 {
		return terminal.Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

func runeEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func TestTerminalSourceEmpty(t *testing.T) {
	src := NewTerminalSource(&queueTerminal{}, nil)
	if k := src.PollKey(); k != KeyNone {
		t.Errorf("Expected KeyNone with no input, got %v", k)
	}
}

func TestTerminalSourceSkipsUnbound(t *testing.T) {
	q := &queueTerminal{}
	q.PostEvent(runeEvent('x'))
	q.PostEvent(runeEvent('z'))
	q.PostEvent(runeEvent('a'))
	q.PostEvent(runeEvent('d'))
	src := NewTerminalSource(q, nil)

	if k := src.PollKey(); k != KeyLeft {
		t.Errorf("Expected first bound key Left, got %v", k)
	}
	if k := src.PollKey(); k != KeyRight {
		t.Errorf("Expected queued key Right on next poll, got %v", k)
	}
	if k := src.PollKey(); k != KeyNone {
		t.Errorf("Expected queue drained, got %v", k)
	}
}

func TestTerminalSourceResize(t *testing.T) {
	q := &queueTerminal{}
	q.PostEvent(terminal.Event{Type: terminal.EventResize, Width: 100, Height: 40})
	src := NewTerminalSource(q, nil)

	if src.Resized() {
		t.Error("Expected no resize before polling")
	}
	src.PollKey()
	if !src.Resized() {
		t.Error("Expected resize after polling")
	}
	if src.Resized() {
		t.Error("Expected resize flag cleared")
	}
}

func TestTerminalSourceClosedQuits(t *testing.T) {
	q := &queueTerminal{}
	q.PostEvent(terminal.Event{Type: terminal.EventClosed})
	src := NewTerminalSource(q, nil)

	if k := src.PollKey(); k != KeyQuit {
		t.Errorf("Expected Quit when input closes, got %v", k)
	}
}

func TestTcellSource(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	src := NewTcellSource(sim, nil)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'S', tcell.ModNone)

	var got Key
	deadline := time.Now().Add(2 * time.Second)
	for got == KeyNone && time.Now().Before(deadline) {
		got = src.PollKey()
		time.Sleep(5 * time.Millisecond)
	}
	if got != KeyDown {
		t.Errorf("Expected Down, got %v", got)
	}

	sim.Fini()
	select {
	case <-src.Done():
	case <-time.After(2 * time.Second):
		t.Error("Expected reader goroutine to exit after Fini")
	}
}
