package config

import (
	"fmt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Use the file values as they are
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The ball speed stays constant during play; presets only pick the starting
// values. Bucket scale follows the apparent velocity so the deflection
// buckets keep summing to it.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 128
		cfg.Ball.ApparentVelocity = 2.0
		cfg.Ball.BucketScale = 2.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 64
		cfg.Ball.ApparentVelocity = 3.0
		cfg.Ball.BucketScale = 3.0
	}
}
