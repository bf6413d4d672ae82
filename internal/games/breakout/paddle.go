package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// Paddle is the player's entity. It only moves horizontally and stays
// inside the playfield.
type Paddle struct {
	*engine.Entity

	speed  float64
	worldW float64
	steer  float64 // Pending displacement, applied on the next tick
}

// NewPaddle creates a paddle centered at the bottom of the world.
func NewPaddle(cfg config.BreakoutConfig) *Paddle {
	p := &Paddle{
		Entity: engine.NewEntity("Paddle", cfg.Paddle.Width, cfg.Paddle.Height),
		speed:  cfg.Paddle.Speed,
		worldW: cfg.World.Width,
	}
	p.Reset(cfg)
	p.AddBoundary(cfg.Paddle.Width, cfg.Paddle.Height)
	return p
}

// Reset centers the paddle and drops pending steering.
func (p *Paddle) Reset(cfg config.BreakoutConfig) {
	p.X = (cfg.World.Width - p.Width) / 2
	p.Y = cfg.PaddleY()
	p.steer = 0
	p.RefreshBoundaries()
}

// Boundary returns the paddle's only boundary.
func (p *Paddle) Boundary() *engine.Boundary {
	return p.Boundaries()[0]
}

// Steer queues one step left (dir < 0) or right (dir > 0).
func (p *Paddle) Steer(dir int) {
	switch {
	case dir < 0:
		p.steer -= p.speed
	case dir > 0:
		p.steer += p.speed
	}
}

// SteerToward queues a move of at most one step toward x.
func (p *Paddle) SteerToward(x float64) {
	diff := x - p.X
	p.steer = core.ClampF(diff, -p.speed, p.speed)
}

// Tick refreshes the boundary, then applies queued steering.
func (p *Paddle) Tick() {
	p.Entity.Tick()

	if p.steer != 0 {
		p.X = core.ClampF(p.X+p.steer, 0, p.worldW-p.Width)
		p.steer = 0
	}
}

// Render draws the paddle as a solid bar.
func (p *Paddle) Render(s engine.Surface) {
	box := s.Project(p.Bounds())
	box.H = 1
	s.Screen.DrawRect(box, PaddleChar, core.ColorBrightCyan)
	p.DrawDebug(s)
}
