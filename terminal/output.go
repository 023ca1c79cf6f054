package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// outputBuffer keeps the cells last written to the terminal (front buffer)
// and writes only the cells of a new frame that differ from it
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 32768),
		colorMode: colorMode,
	}
}

// resize reallocates the front buffer and marks every cell unknown
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height
	o.forceFullRedraw()
}

// flush writes the cells that differ from the front buffer and returns how many were written
// A rune two columns wide also covers the next cell, which is skipped
func (o *outputBuffer) flush(cells []Cell, width, height int) int {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}
	if len(cells) < width*height {
		return 0
	}

	w := o.writer
	written := 0

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			c := cells[idx]
			if c == o.front[idx] {
				x++
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			o.writeStyle(w, c.Fg, c.Bg, c.Attrs)

			r := c.Rune
			if r == 0 {
				r = ' '
			}
			cw := 1
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
				if runewidth.RuneWidth(r) == 2 && x+1 < width {
					cw = 2
				}
			}

			o.front[idx] = c
			if cw == 2 {
				o.front[idx+1] = cells[idx+1]
			}
			o.cursorX += cw
			x += cw
			written++
		}
	}

	if written > 0 {
		w.Write(csiSGR0)
		o.lastValid = false
	}
	w.Flush()
	return written
}

// writeStyle emits one combined SGR sequence when the style differs from the last one written
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg RGB, attr Attr) {
	if o.colorMode == ColorModeNone {
		fg, bg = RGB{}, RGB{}
	}
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	for _, a := range [...]struct {
		bit  Attr
		code byte
	}{
		{AttrBold, '1'},
		{AttrDim, '2'},
		{AttrItalic, '3'},
		{AttrUnderline, '4'},
		{AttrBlink, '5'},
		{AttrReverse, '7'},
	} {
		if attr&a.bit != 0 {
			w.WriteByte(';')
			w.WriteByte(a.code)
		}
	}

	switch o.colorMode {
	case ColorModeTrueColor:
		w.WriteString(";38;2;")
		writeRGB(w, fg)
		w.WriteString(";48;2;")
		writeRGB(w, bg)
	case ColorMode256:
		w.WriteString(";38;5;")
		writeInt(w, int(RGBTo256(fg)))
		w.WriteString(";48;5;")
		writeInt(w, int(RGBTo256(bg)))
	}
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
}

// writeBg emits a standalone background sequence, used before a screen clear
func (o *outputBuffer) writeBg(w *bufio.Writer, bg RGB) {
	switch o.colorMode {
	case ColorModeTrueColor:
		w.Write(csiBgRGB)
		writeRGB(w, bg)
		w.WriteByte('m')
	case ColorMode256:
		w.Write(csiBg256)
		writeInt(w, int(RGBTo256(bg)))
		w.WriteByte('m')
	}
}

// writeFg emits a standalone foreground sequence
func (o *outputBuffer) writeFg(w *bufio.Writer, fg RGB) {
	switch o.colorMode {
	case ColorModeTrueColor:
		w.Write(csiFgRGB)
		writeRGB(w, fg)
		w.WriteByte('m')
	case ColorMode256:
		w.Write(csiFg256)
		writeInt(w, int(RGBTo256(fg)))
		w.WriteByte('m')
	}
}

// forceFullRedraw invalidates the front buffer so the next flush writes everything
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: -1}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear erases the screen with bg and records blank cells as the front buffer
func (o *outputBuffer) clear(bg RGB) {
	w := o.writer
	w.Write(csiSGR0)
	o.writeBg(w, bg)
	w.Write(csiClear)
	w.Write(csiSGR0)
	w.Flush()

	o.lastValid = false
	o.cursorValid = false

	blank := Cell{Rune: ' ', Bg: bg}
	if o.colorMode == ColorModeNone {
		blank.Bg = RGB{}
	}
	for i := range o.front {
		o.front[i] = blank
	}
}

func (o *outputBuffer) invalidateCursor() {
	o.cursorValid = false
}
