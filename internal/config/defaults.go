package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic 10x20 configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Figures: FiguresConfig{
			Size: 5,
		},
		Gravity: GravityConfig{
			IntervalTicks: 30,
		},
		Scoring: ScoringConfig{
			LinePoints: []int{0, 100, 300, 700, 1500},
			LevelStep:  600,
			MaxLevel:   10,
		},
		Pacing: Pacing{
			BaseFrameMs: 20,
			SpeedStepUs: 1500,
			MinFrameMs:  2,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyFixed,
		},
	}
}
