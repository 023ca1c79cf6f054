package main

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

// ui bundles the screen and key source of one backend with its teardown
type ui struct {
	backend string
	screen  render.Screen
	source  input.Source
	close   func()
}

// openUI initializes the named backend
// The ANSI backend falls back to tcell on platforms without raw terminal support
func openUI(name string, mode terminal.ColorMode, color bool, logger zerolog.Logger) (*ui, error) {
	switch name {
	case "tcell":
		return openTcell(color)
	case "ansi":
		u, err := openANSI(mode)
		if errors.Is(err, terminal.ErrUnsupported) {
			logger.Warn().Err(err).Msg("ansi backend unavailable, using tcell")
			return openTcell(color)
		}
		return u, err
	default:
		return nil, fmt.Errorf("unknown backend %q (want ansi or tcell)", name)
	}
}

func openANSI(mode terminal.ColorMode) (*ui, error) {
	term := terminal.New(mode)
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("ansi terminal: %w", err)
	}
	return &ui{
		backend: "ansi",
		screen:  render.NewBufferScreen(term),
		source:  input.NewTerminalSource(term, nil),
		close:   term.Fini,
	}, nil
}

func openTcell(color bool) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	screen.HideCursor()
	return &ui{
		backend: "tcell",
		screen:  render.NewTcellScreen(screen, color),
		source:  input.NewTcellSource(screen, nil),
		close:   screen.Fini,
	}, nil
}
