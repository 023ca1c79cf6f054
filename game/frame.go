package game

// Symbol is the content kind of one grid cell
type Symbol uint8

const (
	SymEmpty Symbol = iota
	SymWall
	SymHead
	SymBody
	SymFood
)

// Frame is a row-major snapshot of every grid cell, frame included
type Frame struct {
	Rows  int
	Cols  int
	Cells []Symbol
}

// At returns the symbol at p, SymWall outside the grid
func (f Frame) At(p Position) Symbol {
	if p.Row < 0 || p.Row >= f.Rows || p.Col < 0 || p.Col >= f.Cols {
		return SymWall
	}
	return f.Cells[p.Row*f.Cols+p.Col]
}

// IsFrame reports whether p lies on the boundary
func (f Frame) IsFrame(p Position) bool {
	return p.Row == 0 || p.Row == f.Rows-1 || p.Col == 0 || p.Col == f.Cols-1
}

// CellChange is one interior cell whose symbol differs from the previous frame
type CellChange struct {
	Position Position
	Symbol   Symbol
}

// Snapshot computes the current full grid
// Food is drawn before the snake so a head on food shows as head
func (b *Board) Snapshot() Frame {
	rows, cols := b.cfg.Rows, b.cfg.Cols
	f := Frame{Rows: rows, Cols: cols, Cells: make([]Symbol, rows*cols)}

	for c := 0; c < cols; c++ {
		f.Cells[c] = SymWall
		f.Cells[(rows-1)*cols+c] = SymWall
	}
	for r := 0; r < rows; r++ {
		f.Cells[r*cols] = SymWall
		f.Cells[r*cols+cols-1] = SymWall
	}

	if b.food.Placed {
		f.set(b.food.Position, SymFood)
	}
	for i, p := range b.snake.body {
		if i == 0 {
			f.set(p, SymHead)
		} else {
			f.set(p, SymBody)
		}
	}
	return f
}

// set writes interior cells only; a crashed head on the frame stays a wall
func (f Frame) set(p Position, s Symbol) {
	if p.Row <= 0 || p.Row >= f.Rows-1 || p.Col <= 0 || p.Col >= f.Cols-1 {
		return
	}
	f.Cells[p.Row*f.Cols+p.Col] = s
}

// Diff snapshots the board and returns the interior cells that changed
// since the previous call (or since construction). Frame cells are never reported
func (b *Board) Diff() []CellChange {
	next := b.Snapshot()
	changes := DiffFrames(b.prev, next)
	b.prev = next
	return changes
}

// Previous returns the snapshot the next Diff compares against
func (b *Board) Previous() Frame {
	return b.prev
}

// DiffFrames compares interior cells of two equally sized frames
// A size mismatch reports every interior cell of next
func DiffFrames(prev, next Frame) []CellChange {
	var changes []CellChange
	sameSize := prev.Rows == next.Rows && prev.Cols == next.Cols && len(prev.Cells) == len(next.Cells)

	for r := 1; r < next.Rows-1; r++ {
		rowStart := r * next.Cols
		for c := 1; c < next.Cols-1; c++ {
			idx := rowStart + c
			s := next.Cells[idx]
			if sameSize && prev.Cells[idx] == s {
				continue
			}
			changes = append(changes, CellChange{Position: Position{Row: r, Col: c}, Symbol: s})
		}
	}
	return changes
}
