package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// BoardFactory builds the board for each new game
type BoardFactory func(cfg game.Config, highScore int, rng *rand.Rand) *game.Board

// Session runs the start menu, then games until the player quits
// It owns every Board it creates and is driven from a single goroutine
type Session struct {
	cfg      Config
	src      input.Source
	renderer *render.Renderer
	player   audio.Player
	clock    Clock
	logger   zerolog.Logger
	rng      *rand.Rand
	newBoard BoardFactory

	board     *game.Board
	highScore int
	games     int
}

// NewSession wires a session; nil player and clock fall back to Silent and RealClock
func NewSession(cfg Config, src input.Source, renderer *render.Renderer, player audio.Player, clock Clock) *Session {
	if player == nil {
		player = audio.Silent{}
	}
	if clock == nil {
		clock = NewRealClock()
	}
	return &Session{
		cfg:      cfg.normalize(),
		src:      src,
		renderer: renderer,
		player:   player,
		clock:    clock,
		logger:   zerolog.Nop(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		newBoard: game.NewBoard,
	}
}

// SetLogger replaces the default no-op logger
func (s *Session) SetLogger(l zerolog.Logger) {
	s.logger = l
}

// SetRand replaces the food placement source, used for reproducible games
func (s *Session) SetRand(rng *rand.Rand) {
	if rng != nil {
		s.rng = rng
	}
}

// SetBoardFactory replaces game.NewBoard
func (s *Session) SetBoardFactory(f BoardFactory) {
	if f != nil {
		s.newBoard = f
	}
}

// HighScore returns the best score seen by this session
func (s *Session) HighScore() int { return s.highScore }

// Games returns the number of games started
func (s *Session) Games() int { return s.games }

// Board returns the current or last board, nil before the first game
func (s *Session) Board() *game.Board { return s.board }

// Run blocks until the player quits or ctx is cancelled
// Cancellation is observed at tick and poll boundaries and is not an error
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info().
		Int("rows", s.cfg.Board.Rows).
		Int("cols", s.cfg.Board.Cols).
		Stringer("walls", s.cfg.Board.WallMode).
		Dur("tick", s.cfg.TickInterval).
		Msg("session started")

	if !s.cfg.SkipMenu && !s.menu(ctx) {
		s.quit(ctx)
		return nil
	}

	for {
		if quit := s.play(ctx); quit {
			s.quit(ctx)
			return nil
		}
		if !s.gameOver(ctx) {
			s.quit(ctx)
			return nil
		}
		s.logger.Info().Int("high_score", s.highScore).Msg("restart")
	}
}

// menu waits for Confirm, false means quit
func (s *Session) menu(ctx context.Context) bool {
	s.renderer.DrawMenu()
	for {
		if s.resized() {
			s.renderer.DrawMenu()
		}
		switch s.src.PollKey() {
		case input.KeyConfirm:
			return true
		case input.KeyQuit:
			return false
		}
		if err := s.clock.Sleep(ctx, s.cfg.MenuPollInterval); err != nil {
			return false
		}
	}
}

// play runs one game and reports whether the player asked to quit
func (s *Session) play(ctx context.Context) bool {
	board := s.newBoard(s.cfg.Board, s.highScore, s.rng)
	s.board = board
	s.games++

	s.renderer.Begin(board)
	s.player.PlayStart()
	s.logger.Info().Int("game", s.games).Int("high_score", s.highScore).Msg("game started")

	running := true
	for running && !board.GameOver() {
		if s.resized() {
			s.renderer.Redraw(board)
		}

		// Quit still lets this tick update and render
		if !s.steer(board) {
			running = false
		}

		ev := board.Update()
		s.renderer.Apply(board.Diff(), board)
		s.handleEvent(ev, board)

		if err := s.clock.Sleep(ctx, s.cfg.TickInterval); err != nil {
			s.logger.Info().Err(err).Msg("session cancelled")
			running = false
		}
	}

	s.highScore = max(s.highScore, board.HighScore(), board.Score())
	return !running
}

// steer applies one polled key, false means quit
func (s *Session) steer(board *game.Board) bool {
	k := s.src.PollKey()
	if k == input.KeyQuit {
		return false
	}
	if d, ok := direction(k); ok {
		board.SetDirection(d)
	}
	return true
}

func (s *Session) handleEvent(ev game.Event, board *game.Board) {
	switch ev {
	case game.EventAte:
		s.player.PlayEat()
		s.logger.Debug().
			Int("score", board.Score()).
			Int("length", board.SnakeLen()).
			Bool("food_placed", board.Food().Placed).
			Msg("food eaten")
	case game.EventCrashed:
		s.player.PlayCrash()
		snake := board.Snake()
		head := snake.Head()
		s.logger.Info().
			Int("score", board.Score()).
			Int("high_score", board.HighScore()).
			Int("length", board.SnakeLen()).
			Int("row", head.Row).
			Int("col", head.Col).
			Msg("crashed")
	}
}

// gameOver shows the final statistics, true means restart
func (s *Session) gameOver(ctx context.Context) bool {
	b := s.board
	draw := func() { s.renderer.DrawGameOver(b.Score(), s.highScore, b.SnakeLen()) }
	draw()

	for {
		if s.resized() {
			draw()
		}
		switch s.src.PollKey() {
		case input.KeyRestart:
			return true
		case input.KeyQuit:
			return false
		}
		if err := s.clock.Sleep(ctx, s.cfg.MenuPollInterval); err != nil {
			return false
		}
	}
}

func (s *Session) quit(ctx context.Context) {
	s.logger.Info().Int("games", s.games).Int("high_score", s.highScore).Msg("quit")
	if ctx.Err() == nil {
		s.renderer.DrawGoodbye()
	}
}

func (s *Session) resized() bool {
	if rw, ok := s.src.(input.ResizeWatcher); ok {
		return rw.Resized()
	}
	return false
}

func direction(k input.Key) (game.Direction, bool) {
	switch k {
	case input.KeyUp:
		return game.DirUp, true
	case input.KeyDown:
		return game.DirDown, true
	case input.KeyLeft:
		return game.DirLeft, true
	case input.KeyRight:
		return game.DirRight, true
	}
	return 0, false
}
