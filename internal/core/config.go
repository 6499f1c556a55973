package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// TerminalDwell is how long the final frame stays up after game over
	// before the runner returns control to the caller.
	TerminalDwell time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      60,
		Seed:          0, // 0 means use current time in platform layer
		TerminalDwell: 2 * time.Second,
	}
}

// TickInterval returns the nominal duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind names something notable that happened during a tick.
type EventKind string

const (
	EventGoal     EventKind = "goal"
	EventLifeLost EventKind = "life_lost"
	EventGameOver EventKind = "game_over"
)

// Event is a single notable occurrence reported by a game step.
type Event struct {
	Kind      EventKind
	Cause     string  // Detail such as "collision", "drowned", "timeout"
	Tick      uint64  // Simulation tick at which it happened
	Score     int     // Score after the event
	Lives     int     // Lives after the event
	RoundTime float64 // Seconds spent in the round before the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
