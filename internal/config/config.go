// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for a Tetris session.
// It is read once when a game is created and never changed mid-session.
type TetrisConfig struct {
	Grid    TetrisGrid    `yaml:"grid"`
	Gravity TetrisGravity `yaml:"gravity"`
}

// TetrisGrid defines the well dimensions.
type TetrisGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TetrisGravity defines the fall speed.
type TetrisGravity struct {
	FallInterval time.Duration `yaml:"fall_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. An empty name is allowed
// and means "keep the configured fall interval".
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// FallIntervalForPreset returns the fall interval for a difficulty preset.
// The second result is false for presets that keep the configured value.
func FallIntervalForPreset(preset DifficultyPreset) (time.Duration, bool) {
	switch preset {
	case DifficultyEasy:
		return 800 * time.Millisecond, true
	case DifficultyNormal:
		return 500 * time.Millisecond, true
	case DifficultyHard:
		return 250 * time.Millisecond, true
	default:
		return 0, false
	}
}
