package render

import (
	"fmt"
	"strings"
)

// GlyphSet maps board symbols to runes
// Width is the number of screen columns one board cell occupies
type GlyphSet struct {
	Name  string
	Width int

	Head  rune
	Body  rune
	Food  rune
	Empty rune

	Corner     rune
	Horizontal rune
	Vertical   rune
}

// GlyphsASCII is the classic single-column set
var GlyphsASCII = GlyphSet{
	Name:       "ascii",
	Width:      1,
	Head:       '#',
	Body:       'o',
	Food:       'O',
	Empty:      ' ',
	Corner:     '+',
	Horizontal: '=',
	Vertical:   '|',
}

// GlyphsEmoji draws every cell two columns wide
var GlyphsEmoji = GlyphSet{
	Name:       "emoji",
	Width:      2,
	Head:       '🐍',
	Body:       '🟩',
	Food:       '🍎',
	Empty:      ' ',
	Corner:     '🧱',
	Horizontal: '🧱',
	Vertical:   '🧱',
}

// ParseGlyphSet returns the named set
func ParseGlyphSet(name string) (GlyphSet, error) {
	switch strings.ToLower(name) {
	case "", "ascii":
		return GlyphsASCII, nil
	case "emoji":
		return GlyphsEmoji, nil
	}
	return GlyphSet{}, fmt.Errorf("unknown glyph set %q (want ascii or emoji)", name)
}
