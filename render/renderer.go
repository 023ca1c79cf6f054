package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Options selects the look of the board
type Options struct {
	Glyphs GlyphSet
	Color  bool
}

// DefaultOptions is the colored ASCII look
func DefaultOptions() Options {
	return Options{Glyphs: GlyphsASCII, Color: true}
}

// Renderer draws boards into a Screen
// Begin paints everything once; Apply paints only the cells a tick changed
type Renderer struct {
	screen  Screen
	glyphs  GlyphSet
	palette Palette
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen Screen, opts Options) *Renderer {
	if opts.Glyphs.Width < 1 {
		opts.Glyphs = GlyphsASCII
	}
	return &Renderer{
		screen:  screen,
		glyphs:  opts.Glyphs,
		palette: NewPalette(opts.Color),
	}
}

// Begin clears the screen and draws the frame, interior, status and controls lines
func (r *Renderer) Begin(b *game.Board) {
	r.screen.Clear()

	frame := b.Snapshot()
	for row := 0; row < frame.Rows; row++ {
		for col := 0; col < frame.Cols; col++ {
			p := game.Position{Row: row, Col: col}
			r.drawCell(p, frame.At(p), frame.Rows, frame.Cols)
		}
	}

	r.drawStatus(b)
	r.drawText(0, b.Rows()+constants.ControlsRowOffset, constants.ControlsText, r.palette.Text, terminal.AttrNone)
	r.screen.Show()
}

// Redraw repaints the current board after the screen lost its contents
func (r *Renderer) Redraw(b *game.Board) {
	r.screen.Sync()
	r.Begin(b)
}

// Apply draws exactly the changed cells plus the status line
func (r *Renderer) Apply(changes []game.CellChange, b *game.Board) {
	rows, cols := b.Rows(), b.Cols()
	for _, ch := range changes {
		r.drawCell(ch.Position, ch.Symbol, rows, cols)
	}
	r.drawStatus(b)
	r.screen.Show()
}

// DrawMenu shows the start screen
func (r *Renderer) DrawMenu() {
	r.screen.Clear()
	r.drawLines(0, constants.MenuText, r.palette.Text)
	r.screen.Show()
}

// DrawGameOver shows the final statistics and the restart/quit options
func (r *Renderer) DrawGameOver(score, highScore, length int) {
	r.screen.Clear()
	y := r.drawLines(0, constants.GameOverHeader, r.palette.GameOver)
	y = r.drawLines(y, []string{
		fmt.Sprintf("  Final Score: %d", score),
		fmt.Sprintf("  High Score:  %d", highScore),
		fmt.Sprintf("  Snake Length: %d", length),
	}, r.palette.Text)
	r.drawLines(y, constants.GameOverOptions, r.palette.Text)
	r.screen.Show()
}

// DrawGoodbye clears the screen and shows the farewell line
func (r *Renderer) DrawGoodbye() {
	r.screen.Clear()
	r.drawText(constants.TextIndent, 1, constants.GoodbyeText, r.palette.Head, terminal.AttrNone)
	r.screen.Show()
}

// StatusLine formats the line drawn under the board
func StatusLine(score, highScore, length int) string {
	return fmt.Sprintf("Score: %d  |  High Score: %d  |  Length: %d", score, highScore, length)
}

func (r *Renderer) drawStatus(b *game.Board) {
	line := StatusLine(b.Score(), b.HighScore(), b.SnakeLen()) + strings.Repeat(" ", constants.StatusPadding)
	r.drawText(0, b.Rows()+constants.StatusRowOffset, line, r.palette.Text, terminal.AttrNone)
}

// drawLines draws text rows from y, returns the next free row
func (r *Renderer) drawLines(y int, lines []string, fg RGB) int {
	for _, line := range lines {
		r.drawText(constants.TextIndent, y, line, fg, terminal.AttrNone)
		y++
	}
	return y
}

func (r *Renderer) drawText(x, y int, s string, fg RGB, attr terminal.Attr) {
	for _, ch := range s {
		x += r.put(x, y, ch, fg, attr)
	}
}

// put writes one rune and returns the columns it took
// A wide rune is followed by a continuation cell
func (r *Renderer) put(x, y int, ch rune, fg RGB, attr terminal.Attr) int {
	r.screen.SetCell(x, y, Cell{Rune: ch, Fg: fg, Bg: r.palette.Bg, Attrs: attr})
	if runewidth.RuneWidth(ch) == 2 {
		r.screen.SetCell(x+1, y, Cell{Fg: fg, Bg: r.palette.Bg, Attrs: attr})
		return 2
	}
	return 1
}

// drawCell paints one board cell across glyphs.Width columns
func (r *Renderer) drawCell(p game.Position, sym game.Symbol, rows, cols int) {
	ch, fg, attr := r.glyph(p, sym, rows, cols)
	x := p.Col * r.glyphs.Width
	n := r.put(x, p.Row, ch, fg, attr)
	for ; n < r.glyphs.Width; n++ {
		r.screen.SetCell(x+n, p.Row, Cell{Rune: ' ', Bg: r.palette.Bg})
	}
}

func (r *Renderer) glyph(p game.Position, sym game.Symbol, rows, cols int) (rune, RGB, terminal.Attr) {
	g := r.glyphs
	switch sym {
	case game.SymHead:
		return g.Head, r.palette.Head, r.palette.HeadAttr
	case game.SymBody:
		return g.Body, r.palette.Body, terminal.AttrNone
	case game.SymFood:
		return g.Food, r.palette.Food, terminal.AttrNone
	case game.SymWall:
		topOrBottom := p.Row == 0 || p.Row == rows-1
		leftOrRight := p.Col == 0 || p.Col == cols-1
		switch {
		case topOrBottom && leftOrRight:
			return g.Corner, r.palette.Frame, terminal.AttrNone
		case topOrBottom:
			return g.Horizontal, r.palette.Frame, terminal.AttrNone
		default:
			return g.Vertical, r.palette.Frame, terminal.AttrNone
		}
	}
	return g.Empty, r.palette.Text, terminal.AttrNone
}
