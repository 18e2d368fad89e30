// Package config provides YAML-based configuration loading and difficulty
// presets for the falling-block game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TetrisConfig contains all configuration for a session and its front end.
type TetrisConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Figures    FiguresConfig    `yaml:"figures"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Pacing     Pacing           `yaml:"pacing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FiguresConfig defines the figure catalog.
// An empty Shapes list selects the built-in tetrominoes, which are Size x Size.
type FiguresConfig struct {
	Size   int        `yaml:"size"`
	Shapes [][]string `yaml:"shapes,omitempty"` // '#' is a block
}

// GravityConfig defines how often the active piece falls.
type GravityConfig struct {
	IntervalTicks int `yaml:"interval_ticks"` // Ticks between gravity steps
}

// ScoringConfig defines points and leveling.
type ScoringConfig struct {
	LinePoints []int `yaml:"line_points"` // Indexed by rows cleared in one plant
	LevelStep  int   `yaml:"level_step"`  // Score per level
	MaxLevel   int   `yaml:"max_level"`
}

// Pacing maps the current speed to the real-time delay between ticks.
type Pacing struct {
	BaseFrameMs int `yaml:"base_frame_ms"` // Delay at speed 0
	SpeedStepUs int `yaml:"speed_step_us"` // Delay removed per speed point
	MinFrameMs  int `yaml:"min_frame_ms"`  // Floor
}

// FrameInterval returns the delay between ticks at the given speed.
func (p Pacing) FrameInterval(speed int) time.Duration {
	d := time.Duration(p.BaseFrameMs)*time.Millisecond - time.Duration(speed*p.SpeedStepUs)*time.Microsecond
	return max(d, time.Duration(p.MinFrameMs)*time.Millisecond)
}

// DifficultyConfig selects a difficulty preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep gravity.interval_ticks as configured
)

// ParsePreset validates a preset name. An empty name means DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// GravityForPreset returns the gravity interval for a preset,
// or 0 for DifficultyFixed.
func GravityForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 40
	case DifficultyNormal:
		return 30
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}

// Validate checks that the configuration can build a session.
func (c TetrisConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Figures.Size <= 0 {
		return fmt.Errorf("%w: figure size %d", ErrInvalidConfig, c.Figures.Size)
	}
	if c.Field.Width < c.Figures.Size || c.Field.Height < c.Figures.Size {
		return fmt.Errorf("%w: field %dx%d is smaller than figure size %d",
			ErrInvalidConfig, c.Field.Width, c.Field.Height, c.Figures.Size)
	}
	for i, shape := range c.Figures.Shapes {
		if len(shape) != c.Figures.Size {
			return fmt.Errorf("%w: shape %d has %d rows, want %d", ErrInvalidConfig, i, len(shape), c.Figures.Size)
		}
	}
	if c.Gravity.IntervalTicks <= 0 {
		return fmt.Errorf("%w: gravity interval %d", ErrInvalidConfig, c.Gravity.IntervalTicks)
	}
	if len(c.Scoring.LinePoints) < 2 {
		return fmt.Errorf("%w: line_points needs at least 2 entries", ErrInvalidConfig)
	}
	if c.Scoring.LevelStep <= 0 {
		return fmt.Errorf("%w: level step %d", ErrInvalidConfig, c.Scoring.LevelStep)
	}
	if c.Scoring.MaxLevel < 1 {
		return fmt.Errorf("%w: max level %d", ErrInvalidConfig, c.Scoring.MaxLevel)
	}
	if c.Pacing.BaseFrameMs <= 0 || c.Pacing.MinFrameMs <= 0 || c.Pacing.SpeedStepUs < 0 {
		return fmt.Errorf("%w: pacing %+v", ErrInvalidConfig, c.Pacing)
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}
