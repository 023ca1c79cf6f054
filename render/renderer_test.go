package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

func testBoard() *game.Board {
	cfg := game.Config{Rows: 8, Cols: 8, InitialLength: 3, Reward: 10, WallMode: game.WallBounded}
	snake := game.NewSnake(game.Position{Row: 3, Col: 3}, 3, game.DirRight)
	return game.NewBoardWith(cfg, snake, game.Position{Row: 3, Col: 5}, 0, rand.New(rand.NewSource(1)))
}

func TestBeginDrawsWholeBoard(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())
	b := testBoard()

	r.Begin(b)

	if s.clears != 1 || s.shows != 1 {
		t.Errorf("Expected 1 clear and 1 show, got %d and %d", s.clears, s.shows)
	}

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '+'}, {7, 0, '+'}, {0, 7, '+'}, {7, 7, '+'},
		{3, 0, '='}, {3, 7, '='},
		{0, 3, '|'}, {7, 3, '|'},
		{3, 3, '#'}, {2, 3, 'o'}, {1, 3, 'o'},
		{5, 3, 'O'}, {4, 4, ' '},
	}
	for _, c := range checks {
		if got := s.runeAt(c.x, c.y); got != c.want {
			t.Errorf("At (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}

	status := s.text(8+constants.StatusRowOffset, 0, 80)
	if !strings.HasPrefix(status, "Score: 0  |  High Score: 0  |  Length: 3") {
		t.Errorf("Unexpected status line %q", status)
	}
	controls := s.text(8+constants.ControlsRowOffset, 0, 80)
	if controls != constants.ControlsText {
		t.Errorf("Expected controls line %q, got %q", constants.ControlsText, controls)
	}
}

func TestApplyWritesOnlyChanges(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())
	b := testBoard()
	r.Begin(b)
	s.resetWrites()

	b.Update()
	changes := b.Diff()
	r.Apply(changes, b)

	statusY := b.Rows() + constants.StatusRowOffset
	boardWrites := 0
	for _, w := range s.writes {
		if w[1] == statusY {
			continue
		}
		boardWrites++
		if w[0] == 0 || w[0] == 7 || w[1] == 0 || w[1] == 7 {
			t.Errorf("Frame cell (%d,%d) redrawn", w[0], w[1])
		}
	}
	if boardWrites != len(changes) {
		t.Errorf("Expected %d board writes, got %d", len(changes), boardWrites)
	}
	if len(changes) != 3 {
		t.Errorf("Expected 3 changed cells for a plain move, got %d", len(changes))
	}
	if got := s.runeAt(4, 3); got != '#' {
		t.Errorf("Expected head at new position, got %q", got)
	}
	if got := s.runeAt(1, 3); got != ' ' {
		t.Errorf("Expected vacated tail cleared, got %q", got)
	}
}

func TestApplyNoChangesOnlyStatus(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())
	b := testBoard()
	r.Begin(b)
	s.resetWrites()

	r.Apply(nil, b)

	statusY := b.Rows() + constants.StatusRowOffset
	for _, w := range s.writes {
		if w[1] != statusY {
			t.Errorf("Unexpected write at (%d,%d)", w[0], w[1])
		}
	}
}

func TestEmojiGlyphsTakeTwoColumns(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, Options{Glyphs: GlyphsEmoji, Color: true})
	b := testBoard()

	r.Begin(b)

	if got := s.runeAt(6, 3); got != GlyphsEmoji.Head {
		t.Errorf("Expected head glyph at x=6, got %q", got)
	}
	cont, ok := s.cells[[2]int{7, 3}]
	if !ok || cont.Rune != 0 {
		t.Errorf("Expected continuation cell at x=7, got %+v (written=%v)", cont, ok)
	}
	if s.runeAt(2, 1) != ' ' || s.runeAt(3, 1) != ' ' {
		t.Error("Expected empty cell to blank both columns")
	}
	if got := s.runeAt(14, 0); got != GlyphsEmoji.Corner {
		t.Errorf("Expected corner at x=14, got %q", got)
	}
}

func TestColorOptions(t *testing.T) {
	s := newRecordingScreen()
	NewRenderer(s, DefaultOptions()).Begin(testBoard())
	head := s.cells[[2]int{3, 3}]
	if head.Fg != RgbHead || head.Attrs&terminal.AttrBold == 0 {
		t.Errorf("Expected bold green head, got %+v", head)
	}

	s = newRecordingScreen()
	NewRenderer(s, Options{Glyphs: GlyphsASCII, Color: false}).Begin(testBoard())
	head = s.cells[[2]int{3, 3}]
	if head.Fg != (RGB{}) || head.Bg != (RGB{}) {
		t.Errorf("Expected no colors with color off, got %+v", head)
	}
	if head.Attrs&terminal.AttrBold == 0 {
		t.Error("Expected head to stay bold with color off")
	}
}

func TestDrawGameOver(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())

	r.DrawGameOver(30, 50, 6)

	var all []string
	for y := 0; y < 24; y++ {
		all = append(all, s.text(y, 0, 80))
	}
	screen := strings.Join(all, "\n")
	for _, want := range []string{"GAME OVER!", "Final Score: 30", "High Score:  50", "Snake Length: 6", "R : Restart Game", "Q : Quit to Exit"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Expected game over screen to contain %q", want)
		}
	}
}

func TestDrawMenuAndGoodbye(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())

	r.DrawMenu()
	last := len(constants.MenuText) - 1
	if got := s.text(last, 0, 80); got != constants.MenuText[last] {
		t.Errorf("Expected %q, got %q", constants.MenuText[last], got)
	}

	r.DrawGoodbye()
	if got := s.text(1, 0, 80); got != constants.GoodbyeText {
		t.Errorf("Expected goodbye text, got %q", got)
	}
}

func TestRedrawSyncs(t *testing.T) {
	s := newRecordingScreen()
	r := NewRenderer(s, DefaultOptions())

	r.Redraw(testBoard())

	if s.syncs != 1 || s.clears != 1 {
		t.Errorf("Expected sync then clear, got syncs=%d clears=%d", s.syncs, s.clears)
	}
}

func TestParseGlyphSet(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "ascii", false},
		{"ascii", "ascii", false},
		{"EMOJI", "emoji", false},
		{"klingon", "", true},
	}
	for _, tt := range tests {
		g, err := ParseGlyphSet(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGlyphSet(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if g.Name != tt.want {
			t.Errorf("ParseGlyphSet(%q): expected %q, got %q", tt.in, tt.want, g.Name)
		}
	}
}

func TestGlyphsFitCellWidth(t *testing.T) {
	for _, g := range []GlyphSet{GlyphsASCII, GlyphsEmoji} {
		for _, r := range []rune{g.Head, g.Body, g.Food, g.Empty, g.Corner, g.Horizontal, g.Vertical} {
			if w := runewidth.RuneWidth(r); w > g.Width || w == 0 {
				t.Errorf("%s: glyph %q has width %d, cell width %d", g.Name, r, w, g.Width)
			}
		}
	}
}
