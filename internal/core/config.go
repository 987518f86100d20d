// Package core provides the engine primitives shared by the game logic and the
// platform layer. It has no Bubble Tea dependency so sessions stay pure and
// testable: the platform feeds ticks and input frames, the game steps.
package core

// RuntimeConfig contains configuration passed to a session at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic rounds
}

// DefaultTickRate is used when a config leaves TickRate unset.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Ticks converts a duration in milliseconds to a tick count at this rate.
// Any positive duration is at least one tick.
func (c RuntimeConfig) Ticks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	n := ms * rate / 1000
	if n < 1 && ms > 0 {
		n = 1
	}
	return n
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	TimeLeft int  // Seconds remaining on the countdown
	Combo    int  // Consecutive correct answers
	GameOver bool // Whether the session has ended
	Paused   bool // Whether a result is being shown
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
