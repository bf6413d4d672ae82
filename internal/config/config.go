// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the breakout engine.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (joined with the offending fields) when a loaded
// configuration cannot be used.
var ErrInvalid = errors.New("invalid config")

// BreakoutConfig contains all configuration for the breakout engine.
// Distances are in world units, speeds in world units per tick.
type BreakoutConfig struct {
	World    WorldConfig    `yaml:"world"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Debug    bool           `yaml:"debug"`
}

// WorldConfig defines the playfield used by edge reflection.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball and its deflection model.
type BallConfig struct {
	Diameter         float64 `yaml:"diameter"`
	StartOffsetX     float64 `yaml:"start_offset_x"` // Left of the centered position
	StartY           float64 `yaml:"start_y"`
	ApparentVelocity float64 `yaml:"apparent_velocity"` // Target |h|+|v| before scaling
	SpeedScale       float64 `yaml:"speed_scale"`       // Applied after correction
	BucketScale      float64 `yaml:"bucket_scale"`      // Multiplier in the sloped buckets
	Refraction       float64 `yaml:"refraction"`        // Degrees added to the impact angle
	MOETolerance     float64 `yaml:"moe_tolerance"`     // Relative error before correcting
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between paddle bottom and floor
	Speed        float64 `yaml:"speed"`         // Per steering input
}

// GameplayConfig defines lives and serve timing.
type GameplayConfig struct {
	Lives       int  `yaml:"lives"`
	LoseOnFloor bool `yaml:"lose_on_floor"`
	ServeDelay  int  `yaml:"serve_delay"` // Ticks the ball waits after a reset
}

// PaddleY returns the top of the paddle in world coordinates.
func (c BreakoutConfig) PaddleY() float64 {
	return c.World.Height - c.Paddle.BottomOffset - c.Paddle.Height
}

// BallStart returns the top-left corner the ball is served from.
func (c BreakoutConfig) BallStart() (x, y float64) {
	return c.World.Width/2 - c.Ball.Diameter/2 - c.Ball.StartOffsetX, c.Ball.StartY
}

// Validate reports every field that would break the simulation.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)

	check(c.Ball.Diameter > 0, "ball.diameter must be positive, got %v", c.Ball.Diameter)
	check(c.Ball.ApparentVelocity > 0, "ball.apparent_velocity must be positive, got %v", c.Ball.ApparentVelocity)
	check(c.Ball.SpeedScale > 0, "ball.speed_scale must be positive, got %v", c.Ball.SpeedScale)
	check(c.Ball.BucketScale > 0, "ball.bucket_scale must be positive, got %v", c.Ball.BucketScale)
	check(c.Ball.Refraction >= 0 && c.Ball.Refraction < 90, "ball.refraction must be in [0, 90), got %v", c.Ball.Refraction)
	check(c.Ball.MOETolerance > 0 && c.Ball.MOETolerance < 1, "ball.moe_tolerance must be in (0, 1), got %v", c.Ball.MOETolerance)

	check(c.Paddle.Width > 0, "paddle.width must be positive, got %v", c.Paddle.Width)
	check(c.Paddle.Width <= c.World.Width, "paddle.width %v exceeds world.width %v", c.Paddle.Width, c.World.Width)
	check(c.Paddle.Height > 0, "paddle.height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.BottomOffset >= 0, "paddle.bottom_offset must not be negative, got %v", c.Paddle.BottomOffset)
	check(c.Paddle.Speed > 0, "paddle.speed must be positive, got %v", c.Paddle.Speed)
	check(c.PaddleY() > 0, "paddle does not fit in world.height %v", c.World.Height)

	x, y := c.BallStart()
	check(x > 0 && x+c.Ball.Diameter < c.World.Width, "ball start x %v is outside the world", x)
	check(y > 0 && y+c.Ball.Diameter < c.World.Height, "ball start y %v is outside the world", y)

	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.ServeDelay >= 0, "gameplay.serve_delay must not be negative, got %d", c.Gameplay.ServeDelay)

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalid}, errs...)...)
}
