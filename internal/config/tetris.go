package config

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/brickgame/internal/tetris"
)

// Rules converts the configuration into engine rules.
func (c TetrisConfig) Rules() tetris.Rules {
	return tetris.Rules{
		Width:           c.Field.Width,
		Height:          c.Field.Height,
		GravityInterval: c.Gravity.IntervalTicks,
		LinePoints:      slices.Clone(c.Scoring.LinePoints),
		LevelStep:       c.Scoring.LevelStep,
		MaxLevel:        c.Scoring.MaxLevel,
	}
}

// Catalog builds the figure catalog: the configured shapes, or the built-in
// set when none are configured.
func (c TetrisConfig) Catalog() (*tetris.Catalog, error) {
	if len(c.Figures.Shapes) == 0 {
		cat := tetris.DefaultCatalog()
		if cat.Size() != c.Figures.Size {
			return nil, fmt.Errorf("%w: built-in figures are %dx%d, configured size is %d",
				tetris.ErrInvalidFigureSize, cat.Size(), cat.Size(), c.Figures.Size)
		}
		return cat, nil
	}
	return tetris.NewCatalog(c.Figures.Shapes...)
}
