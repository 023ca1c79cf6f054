package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed simulation step and the snake speed
	TickInterval = 100 * time.Millisecond

	// MenuPollInterval is how often menu and game-over screens poll for keys
	MenuPollInterval = 50 * time.Millisecond
)

// Board Constants
const (
	// BoardRows is the grid height including the top and bottom frame rows
	BoardRows = 20

	// BoardCols is the grid width including the left and right frame columns
	BoardCols = 40

	// InitialSnakeLength is the segment count at game start
	InitialSnakeLength = 3

	// FoodReward is the score added per food eaten
	FoodReward = 10
)
