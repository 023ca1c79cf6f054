package game

import "github.com/lixenwraith/vi-snake/constants"

// WallMode selects what happens when the head reaches the frame
type WallMode uint8

const (
	// WallBounded ends the game on the frame
	WallBounded WallMode = iota
	// WallWrap re-enters the head on the opposite interior edge
	WallWrap
)

func (m WallMode) String() string {
	if m == WallWrap {
		return "wrap"
	}
	return "bounded"
}

// Config sizes the grid and tunes scoring
// Rows and Cols include the one-cell frame on every side
type Config struct {
	Rows          int
	Cols          int
	InitialLength int
	Reward        int
	WallMode      WallMode
}

// DefaultConfig returns the compiled-in board settings
func DefaultConfig() Config {
	return Config{
		Rows:          constants.BoardRows,
		Cols:          constants.BoardCols,
		InitialLength: constants.InitialSnakeLength,
		Reward:        constants.FoodReward,
		WallMode:      WallBounded,
	}
}

// normalize clamps values that would leave no interior
func (c Config) normalize() Config {
	if c.Rows < 3 {
		c.Rows = 3
	}
	if c.Cols < 3 {
		c.Cols = 3
	}
	if c.InitialLength < 1 {
		c.InitialLength = 1
	}
	if c.Reward <= 0 {
		c.Reward = constants.FoodReward
	}
	return c
}
