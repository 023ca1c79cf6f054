package engine

import (
	"context"
	"time"
)

// Clock paces the game loop
// Sleep returns early with the context error when ctx is cancelled
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock uses the system monotonic clock
type RealClock struct{}

// NewRealClock creates a system clock
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time with monotonic clock reading
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d or until ctx is done
func (c *RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
