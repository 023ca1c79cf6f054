package constants

import (
	"testing"
	"unicode/utf8"
)

// TestLayoutOrder verifies the status and controls lines do not overlap
func TestLayoutOrder(t *testing.T) {
	if StatusRowOffset < 1 {
		t.Errorf("Expected status line below the board, got offset %d", StatusRowOffset)
	}
	if ControlsRowOffset <= StatusRowOffset {
		t.Errorf("Expected controls (%d) below status (%d)", ControlsRowOffset, StatusRowOffset)
	}
}

// TestTextFitsTerminal verifies screen text fits an 80 column terminal with indent
func TestTextFitsTerminal(t *testing.T) {
	const width = 80

	blocks := map[string][]string{
		"menu":             MenuText,
		"game over header": GameOverHeader,
		"game over opts":   GameOverOptions,
		"controls":         {ControlsText},
		"goodbye":          {GoodbyeText},
	}

	for name, lines := range blocks {
		for i, line := range lines {
			if n := utf8.RuneCountInString(line) + TextIndent; n > width {
				t.Errorf("%s line %d is %d columns, expected at most %d", name, i, n, width)
			}
		}
	}
}

// TestBoardFitsDefaultTerminal verifies the default board and its text rows fit 80x24
func TestBoardFitsDefaultTerminal(t *testing.T) {
	if BoardCols > 80 {
		t.Errorf("Expected board width <= 80, got %d", BoardCols)
	}
	if rows := BoardRows + ControlsRowOffset + 1; rows > 24 {
		t.Errorf("Expected board and text rows <= 24, got %d", rows)
	}
}
