package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	FrameRate int // Frames delivered by the platform per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Bonuses collected
	Lives  int  // Remaining lives; below zero means the session is lost
	Won    bool // Goal reached
	Lost   bool // Out of lives or fatal drop
	Paused bool
	Tick   uint64 // Simulation ticks executed
}

// Over reports whether the session has ended either way.
func (s GameState) Over() bool {
	return s.Won || s.Lost
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State GameState
	// Ticked is true when the frame advanced the simulation by one quantum.
	Ticked bool
}
