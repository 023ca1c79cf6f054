package game

import "math/rand"

// Event reports what a tick did
type Event uint8

const (
	EventNone Event = iota
	EventAte
	EventCrashed
)

// Board owns the snake and food and applies ticks
// Once GameOver is set no further tick changes state; build a new Board to play again
type Board struct {
	cfg   Config
	snake Snake
	food  Food
	rng   *rand.Rand

	score     int
	highScore int
	gameOver  bool

	prev Frame
}

// NewBoard creates a board with the snake centred and heading right
func NewBoard(cfg Config, highScore int, rng *rand.Rand) *Board {
	cfg = cfg.normalize()
	start := Position{Row: cfg.Rows / 2, Col: cfg.Cols / 2}
	length := min(cfg.InitialLength, start.Col)
	snake := NewSnake(start, length, DirRight)

	b := newBoard(cfg, snake, highScore, rng)
	b.spawnFood()
	b.prev = b.Snapshot()
	return b
}

// NewBoardWith creates a board from an explicit snake and food placement
func NewBoardWith(cfg Config, snake Snake, food Position, highScore int, rng *rand.Rand) *Board {
	b := newBoard(cfg.normalize(), snake, highScore, rng)
	b.food = Food{Position: food, Placed: true}
	b.prev = b.Snapshot()
	return b
}

func newBoard(cfg Config, snake Snake, highScore int, rng *rand.Rand) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Board{
		cfg:       cfg,
		snake:     snake,
		rng:       rng,
		highScore: max(highScore, 0),
	}
}

// SetDirection steers the snake, reversal requests are ignored
func (b *Board) SetDirection(d Direction) bool {
	if b.gameOver {
		return false
	}
	return b.snake.SetDirection(d)
}

// Update applies one tick: move, collision check, then food check
// A move that lands on food grows the snake in the same tick: the growing flag is
// raised just before the move so that move keeps its tail
func (b *Board) Update() Event {
	if b.gameOver {
		return EventNone
	}

	next := b.snake.Head().Add(b.snake.Direction().Offset())
	if b.cfg.WallMode == WallWrap {
		next = b.wrap(next)
	}

	eating := b.food.Placed && next == b.food.Position
	if eating {
		b.snake.Grow()
	}
	b.snake.MoveTo(next)

	if b.hitsWall(b.snake.Head()) || b.snake.CheckSelfCollision() {
		b.gameOver = true
		if b.score > b.highScore {
			b.highScore = b.score
		}
		return EventCrashed
	}

	if eating {
		b.score += b.cfg.Reward
		b.spawnFood()
		return EventAte
	}

	// Board was full at the last eat, retry now that the tail moved
	if !b.food.Placed {
		b.spawnFood()
	}
	return EventNone
}

// hitsWall reports a head on or beyond the frame
func (b *Board) hitsWall(p Position) bool {
	return p.Row <= 0 || p.Row >= b.cfg.Rows-1 || p.Col <= 0 || p.Col >= b.cfg.Cols-1
}

// wrap maps a frame cell to the opposite interior edge
func (b *Board) wrap(p Position) Position {
	switch {
	case p.Row <= 0:
		p.Row = b.cfg.Rows - 2
	case p.Row >= b.cfg.Rows-1:
		p.Row = 1
	}
	switch {
	case p.Col <= 0:
		p.Col = b.cfg.Cols - 2
	case p.Col >= b.cfg.Cols-1:
		p.Col = 1
	}
	return p
}

func (b *Board) spawnFood() {
	b.food.Spawn(b.cfg.Rows, b.cfg.Cols, b.snake.Occupies, b.rng)
}

func (b *Board) Rows() int { return b.cfg.Rows }

func (b *Board) Cols() int { return b.cfg.Cols }

func (b *Board) Config() Config { return b.cfg }

func (b *Board) Score() int { return b.score }

func (b *Board) HighScore() int { return b.highScore }

func (b *Board) GameOver() bool { return b.gameOver }

func (b *Board) Food() Food { return b.food }

// Snake returns a copy of the snake; mutating it does not affect the board
func (b *Board) Snake() Snake {
	s := NewSnakeFromBody(b.snake.body, b.snake.direction)
	s.growing = b.snake.growing
	return s
}

func (b *Board) SnakeLen() int { return b.snake.Len() }
