package render

import (
	"github.com/lixenwraith/vi-snake/terminal"
)

// Cell is an alias to terminal.Cell so buffers export to the terminal without copying
type Cell = terminal.Cell
type Attr = terminal.Attr

// RGB is an alias to terminal.RGB
type RGB = terminal.RGB

// RGBBlack is the screen background
var RGBBlack = RGB{R: 0, G: 0, B: 0}
