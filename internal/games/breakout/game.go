// Package breakout implements the paddle-and-ball game on top of the
// engine package: a paddle, a ball that deflects off it by impact angle,
// lives, and an autopilot demo mode.
package breakout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/engine"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
)

// GameState constants
const (
	StateServe    = "serve"    // Ball parked, waiting for the serve delay
	StatePlaying  = "playing"  // Ball in play
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
)

// Minimum terminal size the playfield can be projected onto.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// TraceEvent describes one paddle deflection, for inspection tools.
type TraceEvent struct {
	Tick        int
	Ball        string // Name tag
	BallCenterX float64
	PaddleLeft  float64
	PaddleWidth float64
	Deflection
}

// Game implements registry.Game.
type Game struct {
	demo  bool
	opts  registry.Options
	fixed *config.BreakoutConfig
	log   *log.Logger
	trace func(TraceEvent)

	// Game objects
	paddle *Paddle
	ball   *Ball
	pilot  *Autopilot

	// Game state
	state      string
	lives      int
	tickCount  int
	serveDelay int
	debug      bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
}

// New creates a player-controlled game.
func New(opts registry.Options) *Game {
	return &Game{opts: opts, log: orDiscard(opts.Logger)}
}

// NewDemo creates a game whose paddle is driven by the autopilot.
func NewDemo(opts registry.Options) *Game {
	g := New(opts)
	g.demo = true
	return g
}

// WithConfig makes Reset use cfg instead of loading from disk.
func (g *Game) WithConfig(cfg config.BreakoutConfig) *Game {
	g.fixed = &cfg
	return g
}

// OnTrace registers a function called for every paddle deflection.
// It survives Reset.
func (g *Game) OnTrace(fn func(TraceEvent)) {
	g.trace = fn
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.demo {
		return "breakout_demo"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.demo {
		return "Breakout (Demo)"
	}
	return "Breakout"
}

// Config returns the configuration in use since the last Reset.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Paddle returns the paddle entity.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the ball entity.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.debug = runtime.Debug || g.cfg.Debug

	g.paddle = NewPaddle(g.cfg)
	g.ball = NewBall(g.cfg, g.paddle.Boundary(), g.log)
	g.ball.OnDeflect(g.onDeflect)

	g.pilot = nil
	if g.demo {
		g.pilot = NewAutopilot(runtime.Seed)
	}

	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.serve()

	g.log.Info("game reset", "game", g.ID(), "paddle", g.paddle.String(), "ball", g.ball.String())
}

// loadConfig resolves the configuration, falling back to the defaults
// when the file is unusable.
func (g *Game) loadConfig() config.BreakoutConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, err := config.Resolve(g.opts.ConfigPath, g.opts.Difficulty)
	if err != nil {
		g.log.Error("config rejected, using defaults", "err", err)
		return config.DefaultBreakoutConfig()
	}
	return cfg
}

func (g *Game) serve() {
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

func (g *Game) onDeflect(d Deflection) {
	if g.trace == nil {
		return
	}
	boundary := g.paddle.Boundary()
	width, _ := boundary.Size()
	g.trace(TraceEvent{
		Tick:        g.tickCount,
		Ball:        g.ball.String(),
		BallCenterX: g.ball.CenterX(),
		PaddleLeft:  boundary.Rect().Left,
		PaddleWidth: width,
		Deflection:  d,
	})
}

// Score returns the number of paddle returns.
func (g *Game) Score() int {
	if g.ball == nil {
		return 0
	}
	return g.ball.PaddleCollision().Episodes()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	// Handle restart
	if g.state == StateGameOver && (in.Has(core.ActionRestart) || g.demo) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.steer(in)

	// The ball waits out the serve delay; the paddle can already move
	if g.state == StateServe {
		if in.Has(core.ActionLaunch) {
			g.serveDelay = 0
		}
		if g.serveDelay > 0 {
			g.serveDelay--
		}
		g.paddle.Tick()
		if g.serveDelay == 0 {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	// Paddle first so the ball sees its refreshed boundary
	g.paddle.Tick()
	g.ball.Tick()

	if g.ball.Edges()&EdgeBottom != 0 && g.cfg.Gameplay.LoseOnFloor {
		g.handleMiss()
	}

	return core.StepResult{State: g.State()}
}

// steer queues paddle movement from input or the autopilot.
func (g *Game) steer(in core.InputFrame) {
	if g.pilot != nil {
		g.pilot.Steer(g.paddle, g.ball)
		return
	}

	// A/Left = move left, D/Right = move right
	if in.Has(core.ActionLeft) {
		g.paddle.Steer(-1)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Steer(1)
	}
}

// handleMiss handles the ball reaching the floor.
func (g *Game) handleMiss() {
	g.lives--
	g.log.Info("ball lost", "lives", g.lives, "score", g.Score(), "tick", g.tickCount)

	if g.lives <= 0 {
		g.state = StateGameOver
		return
	}

	g.ball.Reset()
	g.serve()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	// Playfield frame, world projected inside it
	frame := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(frame, core.ColorGray)
	area := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	s := engine.NewSurface(dst, area, g.cfg.World.Width, g.cfg.World.Height, g.debug)

	g.paddle.Render(s)
	g.ball.Render(s)

	if g.debug {
		g.renderDebug(dst)
	}

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives and mode.
func (g *Game) renderHUD(dst *core.Screen) {
	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score()))

	// Lives in center
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	// Mode on right
	mode := g.Title()
	if g.debug {
		mode += " [debug]"
	}
	dst.DrawText(dst.Width()-len([]rune(mode))-1, 0, mode)
}

// renderDebug prints the ball's motion state on the bottom border.
func (g *Game) renderDebug(dst *core.Screen) {
	b := g.ball
	info := fmt.Sprintf(" angle %.1f  h %.3f  v %.3f  %s/%s ",
		b.Angle, b.HorizontalDelta, b.VerticalDelta, b.Vertical, b.Horizontal)
	dst.DrawTextColor(1, dst.Height()-1, info, core.ColorYellow)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.demo {
			return
		}
		dst.DrawTextCentered(dst.Height()-1, " Get ready... SPACE to serve now ")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Lives:    g.lives,
		Status:   g.state,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Debug:    g.debug,
	}
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register("breakout_demo", func(opts registry.Options) registry.Game {
		return NewDemo(opts)
	})
}
