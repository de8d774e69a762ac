package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Scoring: ScoringConfig{
			FoodReward: 10,
			LevelBonus: 50,
			FoodTarget: 0,
		},
		Speed: SpeedConfig{
			IntervalScale: 1.0,
			MinIntervalMS: 40,
		},
		Levels: LevelsConfig{
			Pack:  "",
			Start: 1,
		},
	}
}
