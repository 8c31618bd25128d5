package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; equal seeds replay identically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // Set together with GameOver when the field was cleared
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// RunStats summarizes a finished run for persistence alongside the score.
type RunStats struct {
	Shots     int // Bubbles fired, lasers included
	Popped    int // Bubbles removed by matches, bombs and lasers
	Dropped   int // Bubbles that fell after losing the ceiling
	BestCombo int
	Waves     int // Fields cleared; only endless mode goes past one
	Penalties int // Times the field was pushed down for missing
	Ticks     int
	Won       bool
}
