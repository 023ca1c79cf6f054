package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
)

// Config holds session pacing and the board every game starts with
type Config struct {
	Board            game.Config
	TickInterval     time.Duration
	MenuPollInterval time.Duration

	// SkipMenu starts the first game without waiting for Confirm
	SkipMenu bool
}

// DefaultConfig returns the compiled-in session settings
func DefaultConfig() Config {
	return Config{
		Board:            game.DefaultConfig(),
		TickInterval:     constants.TickInterval,
		MenuPollInterval: constants.MenuPollInterval,
	}
}

func (c Config) normalize() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = constants.TickInterval
	}
	if c.MenuPollInterval <= 0 {
		c.MenuPollInterval = constants.MenuPollInterval
	}
	return c
}
