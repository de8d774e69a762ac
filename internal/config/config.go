// Package config provides YAML-based configuration loading and difficulty
// presets for the snake platform.
package config

import (
	"time"

	"github.com/dmelnik/tui-snake/internal/game"
)

// SnakeConfig contains all tunables for the snake game.
type SnakeConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// ScoringConfig defines the point rules.
type ScoringConfig struct {
	FoodReward int `yaml:"food_reward"`
	LevelBonus int `yaml:"level_bonus"`
	FoodTarget int `yaml:"food_target"` // 0 uses each level's own target
}

// SpeedConfig defines how level movement intervals are scaled.
type SpeedConfig struct {
	IntervalScale float64 `yaml:"interval_scale"` // multiplier on level intervals
	MinIntervalMS int     `yaml:"min_interval_ms"`
}

// LevelsConfig selects the level set.
type LevelsConfig struct {
	Pack  string `yaml:"pack"`  // path to a custom level pack, empty for built-in
	Start int    `yaml:"start"` // first level of a new game
}

// Rules converts the scoring section into game rules.
func (c SnakeConfig) Rules() game.Rules {
	r := game.DefaultRules()
	if c.Scoring.FoodReward > 0 {
		r.FoodReward = c.Scoring.FoodReward
	}
	if c.Scoring.LevelBonus > 0 {
		r.LevelBonus = c.Scoring.LevelBonus
	}
	if c.Scoring.FoodTarget > 0 {
		r.FoodTarget = c.Scoring.FoodTarget
	}
	return r
}

// ScaleInterval applies the speed section to a level's movement interval.
func (c SnakeConfig) ScaleInterval(base time.Duration) time.Duration {
	scale := c.Speed.IntervalScale
	if scale <= 0 {
		scale = 1.0
	}
	d := time.Duration(float64(base) * scale)
	if min := time.Duration(c.Speed.MinIntervalMS) * time.Millisecond; min > 0 && d < min {
		d = min
	}
	return d
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// scaleForPreset returns the interval multiplier for a difficulty preset.
// Larger is slower; fixed keeps the level's own pacing.
func scaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.3
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed.IntervalScale = scaleForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.LevelBonus = 30
	case DifficultyHard:
		cfg.Scoring.LevelBonus = 80
	}
}

// ValidPreset reports whether a preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
