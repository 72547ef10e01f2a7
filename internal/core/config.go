package core

import "fmt"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Reason tells why a game stopped running.
type Reason int

const (
	ReasonNone Reason = iota // Still running
	ReasonQuit               // Player asked to quit
	ReasonHit                // A meteor reached the cursor
)

// String returns a lowercase name suitable for storage and logs.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "running"
	case ReasonQuit:
		return "quit"
	case ReasonHit:
		return "hit"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Ticks survived
	GameOver bool   // Whether the game has ended
	Reason   Reason // Why the game ended, ReasonNone while running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
