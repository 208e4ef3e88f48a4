package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic gameplay
	Player  string // Player name, used for saved sessions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Player:  "local",
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score this session
	GameOver  bool // Whether the round has ended
	// StageCleared is set while a won stage waits for the next one to start.
	// Its score is final.
	StageCleared bool
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Message string // Short status line for the last command, empty if none
}
