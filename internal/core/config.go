package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // Whether the game has ended
	Winner   int  // 1 or 2 once won, 0 while playing or after a tie
	Moves    int  // Accepted moves so far
	Busy     bool // A drop animation is running and input is ignored
	// Players holds the display names of player 1 and player 2.
	Players [2]string
}

// Tied reports whether the game ended without a winner.
func (s GameState) Tied() bool {
	return s.GameOver && s.Winner == 0
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Message is a one-shot notice for the status bar (e.g. a rejected move).
	Message string
}
