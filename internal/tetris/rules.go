package tetris

import "fmt"

// Rules are the tunable parameters of a session.
type Rules struct {
	Width           int   // Field columns
	Height          int   // Field rows
	GravityInterval int   // Ticks between gravity steps
	LinePoints      []int // Points by rows cleared in one plant; the last entry covers any larger count
	LevelStep       int   // Score needed per level
	MaxLevel        int   // Level cap
}

// DefaultRules returns the classic 10x20 ruleset.
func DefaultRules() Rules {
	return Rules{
		Width:           10,
		Height:          20,
		GravityInterval: 30,
		LinePoints:      []int{0, 100, 300, 700, 1500},
		LevelStep:       600,
		MaxLevel:        10,
	}
}

func (r Rules) validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, r.Width, r.Height)
	}
	if r.GravityInterval <= 0 {
		return fmt.Errorf("%w: gravity interval %d", ErrInvalidRules, r.GravityInterval)
	}
	if len(r.LinePoints) < 2 {
		return fmt.Errorf("%w: line points table needs at least 2 entries", ErrInvalidRules)
	}
	if r.LevelStep <= 0 {
		return fmt.Errorf("%w: level step %d", ErrInvalidRules, r.LevelStep)
	}
	if r.MaxLevel < 1 {
		return fmt.Errorf("%w: max level %d", ErrInvalidRules, r.MaxLevel)
	}
	return nil
}

// Points returns the score awarded for clearing rows in a single plant.
func (r Rules) Points(rows int) int {
	if rows <= 0 {
		return 0
	}
	if rows >= len(r.LinePoints) {
		return r.LinePoints[len(r.LinePoints)-1]
	}
	return r.LinePoints[rows]
}

// LevelFor returns the level reached at the given score, capped at MaxLevel.
func (r Rules) LevelFor(score int) int {
	return min(r.MaxLevel, score/r.LevelStep+1)
}
