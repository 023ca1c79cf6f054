package render

import "github.com/lixenwraith/vi-snake/terminal"

// Board colors
var (
	RgbFrame = RGB{R: 0, G: 205, B: 205}   // Cyan
	RgbHead  = RGB{R: 0, G: 220, B: 0}     // Green
	RgbBody  = RGB{R: 230, G: 220, B: 0}   // Yellow
	RgbFood  = RGB{R: 235, G: 50, B: 50}   // Red
	RgbText  = RGB{R: 255, G: 255, B: 255} // White

	RgbGameOver = RGB{R: 235, G: 50, B: 50}
)

// Palette resolves the color and attributes of each drawn element
type Palette struct {
	Frame    RGB
	Head     RGB
	Body     RGB
	Food     RGB
	Text     RGB
	GameOver RGB
	Bg       RGB

	HeadAttr terminal.Attr
}

// NewPalette returns the colored palette, or a zero palette that leaves terminal defaults
func NewPalette(color bool) Palette {
	if !color {
		return Palette{HeadAttr: terminal.AttrBold}
	}
	return Palette{
		Frame:    RgbFrame,
		Head:     RgbHead,
		Body:     RgbBody,
		Food:     RgbFood,
		Text:     RgbText,
		GameOver: RgbGameOver,
		Bg:       RGBBlack,
		HeadAttr: terminal.AttrBold,
	}
}
