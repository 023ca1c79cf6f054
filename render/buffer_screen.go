package render

import "github.com/lixenwraith/vi-snake/terminal"

// BufferScreen stages cells in a CellBuffer and flushes it through the ANSI terminal
// The terminal keeps a front buffer, so Show writes only dirty cells
type BufferScreen struct {
	term terminal.Terminal
	buf  *CellBuffer
}

// NewBufferScreen wraps an initialized terminal
func NewBufferScreen(term terminal.Terminal) *BufferScreen {
	w, h := term.Size()
	return &BufferScreen{
		term: term,
		buf:  NewCellBuffer(w, h, RGBBlack),
	}
}

func (s *BufferScreen) SetCell(x, y int, c Cell) {
	s.buf.Set(x, y, c)
}

func (s *BufferScreen) Clear() {
	s.fit()
	s.buf.Clear()
	s.term.Clear(RGBBlack)
}

func (s *BufferScreen) Show() {
	s.fit()
	w, h := s.buf.Bounds()
	s.term.Flush(s.buf.Cells(), w, h)
}

func (s *BufferScreen) Sync() {
	s.fit()
	s.buf.Clear()
	s.term.Sync()
}

func (s *BufferScreen) Size() (int, int) {
	return s.term.Size()
}

// fit follows the terminal size; a resized buffer starts blank
func (s *BufferScreen) fit() {
	w, h := s.term.Size()
	if bw, bh := s.buf.Bounds(); bw != w || bh != h {
		s.buf.Resize(w, h)
	}
}
