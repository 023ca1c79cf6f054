// Package terminal provides direct ANSI terminal control for the snake board.
//
// Features:
//   - Raw mode entry and guaranteed restore (golang.org/x/term)
//   - Double-buffered output with cell-level diffing, only dirty runs are written
//   - True color, 256-color and colorless SGR output
//   - Raw stdin parsing into key events (arrows, letters, control keys)
//   - SIGWINCH resize notification
//
// This package bypasses terminfo entirely and targets xterm-compatible terminals
// on unix systems. Other platforms use the tcell backends in render and input.
package terminal
