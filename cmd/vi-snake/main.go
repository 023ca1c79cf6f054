package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	backendFlag   = flag.String("backend", defaultBackend, "Screen backend: ansi, tcell")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256, none")
	glyphsFlag    = flag.String("glyphs", "ascii", "Glyph set: ascii, emoji")
	wrapFlag      = flag.Bool("wrap", false, "Wrap through the edges instead of crashing into walls")
	muteFlag      = flag.Bool("mute", false, "Disable sound effects")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/vi-snake.log")
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	var active *ui

	// Panic Recovery: the terminal must leave raw mode even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if active != nil {
				active.close()
			}
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Logger = logger

	glyphs, err := render.ParseGlyphSet(*glyphsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	colorMode := terminal.ParseColorMode(*colorModeFlag)
	opts := render.Options{
		Glyphs: glyphs,
		Color:  colorMode != terminal.ColorModeNone,
	}

	active, err = openUI(*backendFlag, colorMode, opts.Color, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	log.Info().
		Str("backend", active.backend).
		Str("color", colorMode.String()).
		Str("glyphs", glyphs.Name).
		Bool("wrap", *wrapFlag).
		Msg("starting")

	// Audio failure is not fatal, the game runs silent
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !*muteFlag
	player, err := audio.Open(audioCfg)
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable")
	}

	cfg := engine.DefaultConfig()
	if *wrapFlag {
		cfg.Board.WallMode = game.WallWrap
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := engine.NewSession(cfg, active.source, render.NewRenderer(active.screen, opts), player, engine.NewRealClock())
	session.SetLogger(logger)
	if err := session.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session ended with error")
	}

	player.Close()
	active.close()
	active = nil

	log.Info().
		Int("high_score", session.HighScore()).
		Int("games", session.Games()).
		Msg("exit")
	fmt.Println(constants.GoodbyeText)
	return 0
}
