package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host scheduler
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool   // Whether the game has ended
	Ticks    uint64 // Frames advanced since the last reset
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// Dropped reports whether the timer released a drop during this tick.
	Dropped bool
}
