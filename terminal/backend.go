package terminal

import "errors"

var (
	// ErrNotTerminal is returned by Init when stdin is not a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrUnsupported is returned by Init on platforms without a raw ANSI backend
	ErrUnsupported = errors.New("raw ANSI terminal backend not supported on this platform")
)

// Backend abstracts the platform side of the terminal: raw mode, byte I/O and size
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// A nil slice with nil error means timeout or stop, callers re-check stopCh
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
