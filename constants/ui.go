package constants

// UI Layout Constants
const (
	// StatusRowOffset is the status line row counted from the board's row count
	// The row directly under the bottom frame stays blank
	StatusRowOffset = 1

	// ControlsRowOffset places the controls hint under the status line
	ControlsRowOffset = 2

	// StatusPadding blanks leftovers of a longer previous status line
	StatusPadding = 3

	// TextIndent is the left margin of menu and game-over text
	TextIndent = 2
)

// UI Text
const (
	ControlsText = "Controls: W/A/S/D or Arrow Keys  |  Q: Quit"
	GoodbyeText  = "Thanks for playing! Goodbye!"
)

// MenuText is the start screen, one entry per row
var MenuText = []string{
	"+=======================================+",
	"|              VI-SNAKE                 |",
	"+=======================================+",
	"",
	"  Controls:",
	"    W or UP    : Move Up",
	"    A or LEFT  : Move Left",
	"    S or DOWN  : Move Down",
	"    D or RIGHT : Move Right",
	"    Q          : Quit Game",
	"",
	"  Objective:",
	"    * Eat food to grow and score points",
	"    * Avoid hitting walls and yourself",
	"    * Try to beat your high score!",
	"",
	"-----------------------------------------",
	"",
	"  Press ENTER to start...",
}

// GameOverHeader is drawn above the final statistics
var GameOverHeader = []string{
	"+=======================================+",
	"|            GAME OVER!                 |",
	"+=======================================+",
	"",
}

// GameOverOptions is drawn below the final statistics
var GameOverOptions = []string{
	"",
	"-----------------------------------------",
	"",
	"  Options:",
	"    R : Restart Game",
	"    Q : Quit to Exit",
}
