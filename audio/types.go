package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundCrash                  // Wall or self collision
	SoundStart                  // New game begins
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	case SoundStart:
		return "start"
	}
	return "unknown"
}
