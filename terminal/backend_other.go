//go:build !unix

package terminal

// stubBackend refuses Init so callers fall back to the tcell backend
type stubBackend struct{}

func newBackend() Backend { return stubBackend{} }

func (stubBackend) Init() error { return ErrUnsupported }

func (stubBackend) Fini() {}

func (stubBackend) Size() (int, int) { return 80, 24 }

func (stubBackend) Write(p []byte) (int, error) { return len(p), nil }

func (stubBackend) Read(<-chan struct{}) ([]byte, error) { return nil, nil }

func (stubBackend) SetResizeHandler(func(width, height int)) {}

func resetTerminalMode() {}
