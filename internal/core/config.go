package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode is the coarse session mode reported to the platform.
type Mode int

const (
	ModeIdle   Mode = iota // Start prompt, waiting for the primary action
	ModeActive             // A run is in progress (flying or crashed)
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeActive:
		return "active"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode     Mode
	Passed   int    // Obstacles passed in the current run
	Crashed  bool   // Whether the current run has ended in a collision
	Cause    string // What the player hit; empty while flying
	Paused   bool
	Restarts int // Number of runs started after the first one
}

// RunSummary describes a finished run. It is emitted once per crash.
type RunSummary struct {
	Passed   int
	Cause    string
	Duration time.Duration // Wall-clock time from run start to crash
	Seed     int64
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	RunEnded *RunSummary // Non-nil on the tick a run ended
}
