package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded default configuration.
// It matches defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  640,
			Height: 480,
		},
		Ball: BallConfig{
			Diameter:         14,
			StartOffsetX:     12,
			StartY:           280,
			ApparentVelocity: 2.325,
			SpeedScale:       1.5,
			BucketScale:      2.325,
			Refraction:       22.5,
			MOETolerance:     0.1,
		},
		Paddle: PaddleConfig{
			Width:        96,
			Height:       12,
			BottomOffset: 40,
			Speed:        24,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			LoseOnFloor: true,
			ServeDelay:  60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
