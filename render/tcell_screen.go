package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/terminal"
)

// TcellScreen adapts a tcell.Screen, which diffs against its own front buffer on Show
type TcellScreen struct {
	screen tcell.Screen
	color  bool
}

// NewTcellScreen wraps an initialized tcell screen
// With color off only attributes are applied and the terminal's default colors are kept
func NewTcellScreen(screen tcell.Screen, color bool) *TcellScreen {
	return &TcellScreen{screen: screen, color: color}
}

func (s *TcellScreen) SetCell(x, y int, c Cell) {
	// Right half of a wide rune, tcell tracks the width itself
	if c.Rune == 0 {
		return
	}
	s.screen.SetContent(x, y, c.Rune, nil, s.style(c))
}

func (s *TcellScreen) style(c Cell) tcell.Style {
	st := tcell.StyleDefault
	if s.color {
		st = st.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
	}
	if c.Attrs&terminal.AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&terminal.AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&terminal.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *TcellScreen) Clear() {
	s.screen.Clear()
}

func (s *TcellScreen) Show() {
	s.screen.Show()
}

func (s *TcellScreen) Sync() {
	s.screen.Sync()
}

func (s *TcellScreen) Size() (int, int) {
	return s.screen.Size()
}
