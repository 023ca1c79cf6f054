package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// scriptedSource returns keys in order, then KeyNone forever
type scriptedSource struct {
	keys    []input.Key
	polls   int
	resizes map[int]bool // poll index -> resize pending before that poll
}

func (s *scriptedSource) PollKey() input.Key {
	s.polls++
	if len(s.keys) == 0 {
		return input.KeyNone
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

func (s *scriptedSource) Resized() bool {
	return s.resizes[s.polls]
}

// nullScreen counts renderer output
type nullScreen struct {
	shows  int
	clears int
	syncs  int
}

func (n *nullScreen) SetCell(x, y int, c render.Cell) {}
func (n *nullScreen) Clear() { n.clears++ }
func (n *nullScreen) Show() { n.shows++ }
func (n *nullScreen) Sync() { n.syncs++ }
func (n *nullScreen) Size() (int, int) { return 80, 24 }

// countingPlayer records effect calls
type countingPlayer struct {
	eat, crash, start, closed int
}

func (p *countingPlayer) PlayEat() { p.eat++ }
func (p *countingPlayer) PlayCrash() { p.crash++ }
func (p *countingPlayer) PlayStart() { p.start++ }
func (p *countingPlayer) Close() { p.closed++ }

type harness struct {
	session *Session
	src     *scriptedSource
	screen  *nullScreen
	player  *countingPlayer
	clock   *MockClock
	logs    *bytes.Buffer
}

func newHarness(cfg Config, keys ...input.Key) *harness {
	h := &harness{
		src:    &scriptedSource{keys: keys, resizes: map[int]bool{}},
		screen: &nullScreen{},
		player: &countingPlayer{},
		clock:  NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		logs:   &bytes.Buffer{},
	}
	r := render.NewRenderer(h.screen, render.DefaultOptions())
	h.session = NewSession(cfg, h.src, r, h.player, h.clock)
	h.session.SetRand(rand.New(rand.NewSource(42)))
	h.session.SetLogger(zerolog.New(h.logs).Level(zerolog.DebugLevel))
	return h
}

// logEvents returns the messages of every logged line
func (h *harness) logEvents(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(h.logs.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("Invalid log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

// shortConfig is a 5x5 grid: the snake starts at (2,2) heading right and hits the wall on tick 2
func shortConfig() Config {
	cfg := DefaultConfig()
	cfg.Board = game.Config{Rows: 5, Cols: 5, InitialLength: 3, Reward: 10, WallMode: game.WallBounded}
	return cfg
}

// foodAhead places food directly in front of the snake so every game scores exactly once
func foodAhead(cfg game.Config, highScore int, rng *rand.Rand) *game.Board {
	snake := game.NewSnake(game.Position{Row: 2, Col: 2}, 2, game.DirRight)
	return game.NewBoardWith(cfg, snake, game.Position{Row: 2, Col: 3}, highScore, rng)
}

func TestQuitFromMenu(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyNone, input.KeyQuit)

	if err := h.session.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}
	if h.session.Games() != 0 {
		t.Errorf("Expected no games, got %d", h.session.Games())
	}
	if h.player.start != 0 {
		t.Errorf("Expected no start sound, got %d", h.player.start)
	}
	sleeps := h.clock.Sleeps()
	if len(sleeps) != 1 || sleeps[0] != DefaultConfig().MenuPollInterval {
		t.Errorf("Expected one menu poll sleep, got %v", sleeps)
	}
}

func TestQuitMidGameCompletesTick(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyConfirm, input.KeyQuit)

	if err := h.session.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}

	b := h.session.Board()
	if b == nil {
		t.Fatal("Expected a board")
	}
	if b.GameOver() {
		t.Error("Expected quit without game over")
	}
	start := game.Position{Row: b.Rows() / 2, Col: b.Cols() / 2}
	snake := b.Snake()
	if snake.Head() != start.Add(game.DirRight.Offset()) {
		t.Errorf("Expected the quitting tick to move the snake, head at %v", snake.Head())
	}
	if sleeps := h.clock.Sleeps(); len(sleeps) != 1 || sleeps[0] != DefaultConfig().TickInterval {
		t.Errorf("Expected one tick sleep, got %v", sleeps)
	}
}

func TestDirectionKeysSteer(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyConfirm, input.KeyUp, input.KeyLeft, input.KeyQuit)

	h.session.Run(context.Background())

	b := h.session.Board()
	start := game.Position{Row: b.Rows() / 2, Col: b.Cols() / 2}
	want := game.Position{Row: start.Row - 1, Col: start.Col - 1}
	want = want.Add(game.DirLeft.Offset())
	snake := b.Snake()
	if snake.Head() != want {
		t.Errorf("Expected head at %v after up, left, left, got %v", want, snake.Head())
	}
}

func TestReverseKeyIgnored(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyConfirm, input.KeyLeft, input.KeyQuit)

	h.session.Run(context.Background())

	b := h.session.Board()
	snake := b.Snake()
	if snake.Direction() != game.DirRight {
		t.Errorf("Expected reversal rejected, direction %v", snake.Direction())
	}
}

func TestCrashRestartKeepsHighScore(t *testing.T) {
	cfg := shortConfig()
	h := newHarness(cfg,
		input.KeyConfirm,
		input.KeyNone, input.KeyNone, // game 1: eat, crash
		input.KeyRestart,
		input.KeyNone, input.KeyNone, // game 2: eat, crash
		input.KeyNone, input.KeyQuit,
	)

	var highs []int
	h.session.SetBoardFactory(func(c game.Config, high int, rng *rand.Rand) *game.Board {
		highs = append(highs, high)
		return foodAhead(c, high, rng)
	})

	if err := h.session.Run(context.Background()); err != nil {
		t.Fatalf("Expected nil error, got %v", err)
	}

	if h.session.Games() != 2 {
		t.Fatalf("Expected 2 games, got %d", h.session.Games())
	}
	if len(highs) != 2 || highs[0] != 0 || highs[1] != 10 {
		t.Errorf("Expected boards created with high scores [0 10], got %v", highs)
	}
	if h.session.HighScore() != 10 {
		t.Errorf("Expected high score 10, got %d", h.session.HighScore())
	}
	if h.player.eat != 2 || h.player.crash != 2 || h.player.start != 2 {
		t.Errorf("Expected 2 eat, crash and start sounds, got %+v", *h.player)
	}
	if !h.session.Board().GameOver() {
		t.Error("Expected last board in game over")
	}

	crashes := 0
	for _, ev := range h.logEvents(t) {
		if ev["message"] == "crashed" {
			crashes++
			if ev["score"] != float64(10) {
				t.Errorf("Expected crash logged with score 10, got %v", ev["score"])
			}
		}
	}
	if crashes != 2 {
		t.Errorf("Expected 2 crash log lines, got %d", crashes)
	}
}

func TestSkipMenu(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipMenu = true
	h := newHarness(cfg, input.KeyQuit)

	h.session.Run(context.Background())

	if h.session.Games() != 1 {
		t.Errorf("Expected the game to start without the menu, got %d games", h.session.Games())
	}
}

func TestCancelledContextStops(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyConfirm)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error on cancellation, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after cancellation")
	}
	if h.session.Games() > 1 {
		t.Errorf("Expected at most one game, got %d", h.session.Games())
	}
}

func TestResizeRedraws(t *testing.T) {
	h := newHarness(DefaultConfig(), input.KeyConfirm, input.KeyNone, input.KeyQuit)
	// Resize becomes visible before the second in-game poll
	h.src.resizes[2] = true

	h.session.Run(context.Background())

	if h.screen.syncs != 1 {
		t.Errorf("Expected one full redraw, got %d", h.screen.syncs)
	}
}
