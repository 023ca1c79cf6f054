package game

import "math/rand"

// Food is the single food item on the board
// Placed is false when no free interior cell was left at the last spawn
type Food struct {
	Position Position
	Placed   bool
}

// Spawn moves the food to a uniformly chosen free interior cell
// Interior excludes the frame: rows 1..rows-2, cols 1..cols-2
func (f *Food) Spawn(rows, cols int, occupied func(Position) bool, rng *rand.Rand) bool {
	available := make([]Position, 0, max(0, (rows-2)*(cols-2)))
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			p := Position{Row: r, Col: c}
			if occupied != nil && occupied(p) {
				continue
			}
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		f.Placed = false
		return false
	}

	f.Position = available[rng.Intn(len(available))]
	f.Placed = true
	return true
}
