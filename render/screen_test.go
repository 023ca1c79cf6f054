package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/terminal"
)

// recordingScreen keeps the last cell written per position and counts writes
type recordingScreen struct {
	cells  map[[2]int]Cell
	writes [][2]int
	shows  int
	clears int
	syncs  int
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{cells: make(map[[2]int]Cell)}
}

func (s *recordingScreen) SetCell(x, y int, c Cell) {
	s.cells[[2]int{x, y}] = c
	s.writes = append(s.writes, [2]int{x, y})
}

func (s *recordingScreen) Clear() {
	s.clears++
	s.cells = make(map[[2]int]Cell)
}

func (s *recordingScreen) Show() { s.shows++ }
func (s *recordingScreen) Sync() { s.syncs++ }
func (s *recordingScreen) Size() (int, int) { return 80, 24 }

func (s *recordingScreen) resetWrites() { s.writes = nil }

func (s *recordingScreen) runeAt(x, y int) rune { return s.cells[[2]int{x, y}].Rune }

func (s *recordingScreen) text(y, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		r := s.runeAt(x, y)
		if r == 0 {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// fakeTerminal captures flushed frames for BufferScreen
type fakeTerminal struct {
	width, height int
	flushes       [][]Cell
	clears        int
	syncs         int
}

func (f *fakeTerminal) Init() error { return nil }
func (f *fakeTerminal) Fini() {}
func (f *fakeTerminal) Size() (int, int) { return f.width, f.height }
func (f *fakeTerminal) ColorMode() terminal.ColorMode { return terminal.ColorMode256 }
func (f *fakeTerminal) Clear(terminal.RGB) { f.clears++ }
func (f *fakeTerminal) SetCursorVisible(bool) {}
func (f *fakeTerminal) Sync() { f.syncs++ }
func (f *fakeTerminal) PollEvent() terminal.Event { return terminal.Event{} }
func (f *fakeTerminal) TryEvent() (terminal.Event, bool) { return terminal.Event{}, false }
func (f *fakeTerminal) PostEvent(terminal.Event) {}
func (f *fakeTerminal) Flush(cells []Cell, width, height int) {
	frame := make([]Cell, len(cells))
	copy(frame, cells)
	f.flushes = append(f.flushes, frame)
}

func TestBufferScreenFlushesBuffer(t *testing.T) {
	ft := &fakeTerminal{width: 3, height: 2}
	s := NewBufferScreen(ft)

	s.SetCell(1, 1, Cell{Rune: 'x'})
	s.SetCell(5, 5, Cell{Rune: 'y'})
	s.Show()

	if len(ft.flushes) != 1 {
		t.Fatalf("Expected 1 flush, got %d", len(ft.flushes))
	}
	frame := ft.flushes[0]
	if len(frame) != 6 {
		t.Fatalf("Expected 6 cells, got %d", len(frame))
	}
	if frame[1*3+1].Rune != 'x' {
		t.Errorf("Expected x at (1,1), got %q", frame[4].Rune)
	}
	if frame[0].Rune != ' ' {
		t.Errorf("Expected blank cell, got %q", frame[0].Rune)
	}
}

func TestBufferScreenFollowsResize(t *testing.T) {
	ft := &fakeTerminal{width: 3, height: 2}
	s := NewBufferScreen(ft)
	s.SetCell(0, 0, Cell{Rune: 'x'})

	ft.width, ft.height = 4, 3
	s.Sync()
	s.Show()

	if ft.syncs != 1 {
		t.Errorf("Expected terminal Sync, got %d", ft.syncs)
	}
	frame := ft.flushes[len(ft.flushes)-1]
	if len(frame) != 12 {
		t.Fatalf("Expected 12 cells after resize, got %d", len(frame))
	}
	if frame[0].Rune != ' ' {
		t.Errorf("Expected resized buffer to start blank, got %q", frame[0].Rune)
	}
}

func TestTcellScreenSkipsContinuation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(10, 3)

	s := NewTcellScreen(sim, true)
	s.SetCell(0, 0, Cell{Rune: 'a', Fg: RgbHead, Attrs: terminal.AttrBold})
	s.SetCell(1, 0, Cell{Rune: 'b'})
	s.SetCell(1, 0, Cell{Rune: 0})
	s.Show()

	r, _, style, _ := sim.GetContent(0, 0)
	if r != 'a' {
		t.Errorf("Expected a at (0,0), got %q", r)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(int32(RgbHead.R), int32(RgbHead.G), int32(RgbHead.B)) {
		t.Errorf("Expected head color, got %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold attribute")
	}

	if r, _, _, _ := sim.GetContent(1, 0); r != 'b' {
		t.Errorf("Expected continuation write to be skipped, got %q", r)
	}
}

func TestTcellScreenColorOff(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	defer sim.Fini()

	s := NewTcellScreen(sim, false)
	s.SetCell(0, 0, Cell{Rune: 'a', Fg: RgbFood, Bg: RgbFrame})

	_, _, style, _ := sim.GetContent(0, 0)
	if style != tcell.StyleDefault {
		t.Errorf("Expected default style with color off, got %v", style)
	}
}
