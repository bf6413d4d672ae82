package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
)

// VerticalDirection is the sign of the ball's vertical motion.
type VerticalDirection int

const (
	DirDown VerticalDirection = iota
	DirUp
)

func (d VerticalDirection) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// HorizontalDirection is the sign of the ball's horizontal motion.
// The ball starts with none and only gets one from the paddle.
type HorizontalDirection int

const (
	DirNone HorizontalDirection = iota
	DirLeft
	DirRight
)

func (d HorizontalDirection) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Edge is a bit set of playfield edges.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Ball is the bouncing entity. It reflects off the playfield edges and
// takes a new angle every time it starts overlapping the paddle.
type Ball struct {
	*engine.Entity

	Angle           float64 // Degrees, 90 is straight up or down
	HorizontalDelta float64 // Signed by angle, applied along Horizontal
	VerticalDelta   float64
	Vertical        VerticalDirection
	Horizontal      HorizontalDirection

	cfg    config.BallConfig
	world  config.WorldConfig
	params DeflectionParams
	log    *log.Logger

	startX, startY float64

	paddle    *engine.PairCollision
	edges     Edge
	last      Deflection
	deflected int
	onDeflect func(Deflection)
}

// NewBall creates a ball at its serve position, watching the given paddle
// boundary.
func NewBall(cfg config.BreakoutConfig, paddle *engine.Boundary, logger *log.Logger) *Ball {
	d := cfg.Ball.Diameter
	b := &Ball{
		Entity: engine.NewEntity("Ball", d, d),
		cfg:    cfg.Ball,
		world:  cfg.World,
		params: ParamsFromConfig(cfg.Ball),
		log:    orDiscard(logger),
	}
	b.startX, b.startY = cfg.BallStart()

	self := b.AddBoundary(d, d)
	b.paddle = b.AddCollision(self, paddle, b.onPaddle)

	b.Reset()
	return b
}

// Reset puts the ball back at its serve position heading straight down at
// the unscaled apparent velocity.
func (b *Ball) Reset() {
	b.X, b.Y = b.startX, b.startY
	b.Angle = 90
	b.HorizontalDelta = 0
	b.VerticalDelta = b.cfg.ApparentVelocity
	b.Vertical = DirDown
	b.Horizontal = DirNone
	b.edges = 0

	b.RefreshBoundaries()
	b.paddle.Disarm()
}

// Tick refreshes the boundary, checks the paddle, then moves.
func (b *Ball) Tick() {
	b.Entity.Tick()
	b.move()
}

// OnDeflect registers a function called after every successful deflection.
func (b *Ball) OnDeflect(fn func(Deflection)) {
	b.onDeflect = fn
}

// Edges returns the edges the ball bounced off during the last tick.
func (b *Ball) Edges() Edge {
	return b.edges
}

// LastDeflection returns the most recent deflection and how many there have been.
func (b *Ball) LastDeflection() (Deflection, int) {
	return b.last, b.deflected
}

// PaddleCollision returns the ball/paddle pair.
func (b *Ball) PaddleCollision() *engine.PairCollision {
	return b.paddle
}

func (b *Ball) onPaddle(ev engine.Event) {
	b.Vertical = DirUp
	if b.Horizontal == DirNone {
		b.reflectHorizontal()
	}

	_, paddle := ev.Collision.Boundaries()
	width, _ := paddle.Size()
	b.SetAngle(ImpactAngle(b.CenterX(), paddle.Rect().Left, width, b.params.Refraction))
}

// SetAngle recomputes the deltas for a new angle. Out of range angles are
// logged and leave the deltas as they were.
func (b *Ball) SetAngle(angle float64) {
	b.Angle = angle

	d, ok := Deflect(angle, b.params)
	if !ok {
		b.log.Warn("deflection angle out of range", "angle", angle, "ball", b.String())
		return
	}

	b.HorizontalDelta, b.VerticalDelta = d.Scaled()
	b.last = d
	b.deflected++

	b.log.Debug("deflection",
		"angle", angle,
		"h", b.HorizontalDelta,
		"v", b.VerticalDelta,
		"moe", d.MOE,
		"corrected", d.Corrected,
	)

	if b.onDeflect != nil {
		b.onDeflect(d)
	}
}

func (b *Ball) reflectHorizontal() {
	if b.Horizontal == DirLeft {
		b.Horizontal = DirRight
	} else {
		b.Horizontal = DirLeft
	}
}

func (b *Ball) reflectVertical() {
	if b.Vertical == DirDown {
		b.Vertical = DirUp
	} else {
		b.Vertical = DirDown
	}
}

// stepX returns the horizontal displacement for the current direction.
func (b *Ball) stepX() float64 {
	switch b.Horizontal {
	case DirRight:
		return b.HorizontalDelta
	case DirLeft:
		return -b.HorizontalDelta
	default:
		return 0
	}
}

// stepY returns the vertical displacement for the current direction.
func (b *Ball) stepY() float64 {
	if b.Vertical == DirUp {
		return -b.VerticalDelta
	}
	return b.VerticalDelta
}

// move reflects off any edge the next step would reach, then integrates.
func (b *Ball) move() {
	b.edges = 0
	d := b.cfg.Diameter

	if y := b.Y + b.stepY(); y <= 0 {
		b.edges |= EdgeTop
		b.reflectVertical()
	} else if y+d >= b.world.Height {
		b.edges |= EdgeBottom
		b.reflectVertical()
	}

	if b.Horizontal != DirNone {
		if x := b.X + b.stepX(); x <= 0 {
			b.edges |= EdgeLeft
			b.reflectHorizontal()
		} else if x+d >= b.world.Width {
			b.edges |= EdgeRight
			b.reflectHorizontal()
		}
	}

	b.Y += b.stepY()
	b.X += b.stepX()
}

// Render draws the ball as a single glyph at its center cell.
func (b *Ball) Render(s engine.Surface) {
	box := s.Project(b.Bounds())
	cx, cy := box.Center()

	// Outline first so the glyph stays visible inside it
	b.DrawDebug(s)
	s.Screen.SetColor(cx, cy, BallChar, core.ColorBrightWhite)
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
