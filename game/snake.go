package game

// Snake is an ordered body with the head at index 0
// Mutators take a pointer, read-only accessors work on copies
type Snake struct {
	body      []Position
	direction Direction
	growing   bool
}

// NewSnake lays out a straight snake of the given length with its head at start,
// the tail trailing away from dir
func NewSnake(start Position, length int, dir Direction) Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Offset()
	body := make([]Position, length)
	p := start
	for i := range body {
		body[i] = p
		p = p.Add(back)
	}
	return Snake{body: body, direction: dir}
}

// NewSnakeFromBody builds a snake from an explicit body, head first
// An empty body yields a single segment at the zero position
func NewSnakeFromBody(body []Position, dir Direction) Snake {
	if len(body) == 0 {
		body = []Position{{}}
	}
	b := make([]Position, len(body))
	copy(b, body)
	return Snake{body: b, direction: dir}
}

// Move advances the head one step in the current direction
// No bounds checking, the board owns that
func (s *Snake) Move() {
	s.MoveTo(s.Head().Add(s.direction.Offset()))
}

// MoveTo pushes head to the front and drops the tail unless growing
func (s *Snake) MoveTo(head Position) {
	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// SetDirection changes heading unless d is the direct reverse
// Returns false when the change was rejected
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// CheckSelfCollision reports whether the head overlaps any other segment
func (s Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Grow makes the next move keep the tail
func (s *Snake) Grow() {
	s.growing = true
}

func (s Snake) Head() Position { return s.body[0] }

func (s Snake) Len() int { return len(s.body) }

func (s Snake) Direction() Direction { return s.direction }

func (s Snake) Growing() bool { return s.growing }

// Body returns a copy of the segments, head first
func (s Snake) Body() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment sits on p
func (s Snake) Occupies(p Position) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}
