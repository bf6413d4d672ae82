package breakout

import (
	"math"
)

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	State      string
	Score      int
	Lives      int
	ServeDelay int

	PaddleX float64

	BallX           float64
	BallY           float64
	Angle           float64
	HorizontalDelta float64
	VerticalDelta   float64
	Vertical        int
	Horizontal      int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Score:      g.Score(),
		Lives:      g.lives,
		ServeDelay: g.serveDelay,

		PaddleX: g.paddle.X,

		BallX:           g.ball.X,
		BallY:           g.ball.Y,
		Angle:           g.ball.Angle,
		HorizontalDelta: g.ball.HorizontalDelta,
		VerticalDelta:   g.ball.VerticalDelta,
		Vertical:        int(g.ball.Vertical),
		Horizontal:      int(g.ball.Horizontal),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so any drift shows up.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Vertical)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Horizontal) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.PaddleX,
		snap.BallX, snap.BallY,
		snap.Angle, snap.HorizontalDelta, snap.VerticalDelta,
	} {
		h = h*31 + math.Float64bits(f)
	}

	return h
}
