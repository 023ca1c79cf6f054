package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
	ColorModeNone                       // attributes only, terminal default colors
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorModeNone:
		return "none"
	default:
		return "256"
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeLevel maps 0-255 to the nearest cube index 0-5
func cubeLevel(v uint8) int {
	best := 0
	for j := 1; j < 6; j++ {
		if abs(int(v)-cubeValues[j]) < abs(int(v)-cubeValues[best]) {
			best = j
		}
	}
	return best
}

// RGBTo256 converts RGB to the nearest 256-color palette index
// Near-gray colors are matched against the 24-step grayscale ramp as well
func RGBTo256(c RGB) uint8 {
	r, g, b := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	cubeIdx := uint8(16 + 36*r + 6*g + b)
	cubeDist := abs(int(c.R)-cubeValues[r]) + abs(int(c.G)-cubeValues[g]) + abs(int(c.B)-cubeValues[b])

	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	if max(abs(int(c.R)-gray), abs(int(c.G)-gray), abs(int(c.B)-gray)) >= 10 || gray < 4 || gray > 243 {
		return cubeIdx
	}

	step := min((gray-8+5)/10, 23)
	if step < 0 {
		step = 0
	}
	level := 8 + step*10
	grayDist := abs(int(c.R)-level) + abs(int(c.G)-level) + abs(int(c.B)-level)
	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return cubeIdx
}

// DetectColorMode determines terminal color capability from environment
// NO_COLOR (https://no-color.org) disables color output entirely
func DetectColorMode() ColorMode {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return ColorModeNone
	}

	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode maps a flag value to a mode, "auto" and unknown values detect
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "none", "off", "mono":
		return ColorModeNone
	default:
		return DetectColorMode()
	}
}
