package input

// Key is a game-level key, independent of the backend that produced it
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyRestart // Game-over screen only
	KeyConfirm // Start menu only
)

var keyNames = [...]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyQuit:    "quit",
	KeyRestart: "restart",
	KeyConfirm: "confirm",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// IsDirection reports whether k steers the snake
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// Source delivers keys to the game loop
// PollKey never blocks; it returns KeyNone when nothing is pending
type Source interface {
	PollKey() Key
}

// ResizeWatcher is implemented by sources that observe terminal resizes
// Resized reports and clears a pending resize
type ResizeWatcher interface {
	Resized() bool
}
