package core

import "time"

// Fallbacks for a RuntimeConfig field left at zero.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the host tells a game about the session it runs
// in. It says nothing about the world; that comes from the game's own
// configuration file.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation ticks per second
	Seed     int64 // Seed for anything random (0 lets the platform pick)
	Debug    bool  // Start with boundaries and name tags drawn
}

// DefaultConfig returns an 80x24, 60 tick/s configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalized replaces non-positive sizes and rates with the defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// Interval is the wall-clock time between two ticks.
func (c RuntimeConfig) Interval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int    // Paddle returns so far
	Lives    int    // Lives left
	Status   string // Game-defined phase name, e.g. "serve"
	GameOver bool
	Paused   bool
	Debug    bool // Boundary overlay on
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
