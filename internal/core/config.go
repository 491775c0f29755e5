package core

import "time"

// DefaultTickInterval is the time between two board moves.
const DefaultTickInterval = 120 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed time between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Best score among players
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something that happened to a player during a tick.
type EventKind int

const (
	EventAte EventKind = iota + 1
	EventDied
)

// Event is a per-player notification the platform can turn into a sound cue
// or a status message.
type Event struct {
	Player PlayerID
	Kind   EventKind
	Detail string // e.g. the cause of death
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
