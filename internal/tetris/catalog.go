package tetris

import "fmt"

// FigureSize is the side of every built-in figure mask. It is larger than
// any tetromino so rotation stays inside the mask.
const FigureSize = 5

// Source is the random number source used to choose the next figure.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Built-in figures in catalog order. '#' is a block, anything else is empty.
var defaultFigures = [][]string{
	{ // I
		".....",
		".....",
		".####",
		".....",
		".....",
	},
	{ // O
		".....",
		".##..",
		".##..",
		".....",
		".....",
	},
	{ // T
		".....",
		"..#..",
		".###.",
		".....",
		".....",
	},
	{ // S
		".....",
		"..##.",
		".##..",
		".....",
		".....",
	},
	{ // Z
		".....",
		".##..",
		"..##.",
		".....",
		".....",
	},
	{ // J
		".....",
		".#...",
		".###.",
		".....",
		".....",
	},
	{ // L
		".....",
		"...#.",
		".###.",
		".....",
		".....",
	},
}

// FigureNames are the conventional names of the built-in figures, by index.
var FigureNames = []string{"I", "O", "T", "S", "Z", "J", "L"}

// Catalog holds the immutable figure templates.
type Catalog struct {
	size  int
	masks [][]int // one size*size row-major mask per figure
}

// NewCatalog builds a catalog from textual masks. Every mask must be square
// and all masks must share the same size. Blocks of figure i get the value i+1.
func NewCatalog(figures ...[]string) (*Catalog, error) {
	if len(figures) == 0 {
		return nil, ErrNoFigures
	}

	size := len(figures[0])
	if size == 0 {
		return nil, fmt.Errorf("%w: figure 0 is empty", ErrInvalidFigureSize)
	}

	c := &Catalog{size: size, masks: make([][]int, len(figures))}
	for i, rows := range figures {
		if len(rows) != size {
			return nil, fmt.Errorf("%w: figure %d has %d rows, want %d", ErrInvalidFigureSize, i, len(rows), size)
		}
		mask := make([]int, size*size)
		for r, row := range rows {
			if len(row) != size {
				return nil, fmt.Errorf("%w: figure %d row %d has %d columns, want %d", ErrInvalidFigureSize, i, r, len(row), size)
			}
			for col, ch := range row {
				if ch == '#' {
					mask[r*size+col] = i + 1
				}
			}
		}
		c.masks[i] = mask
	}
	return c, nil
}

// DefaultCatalog returns the seven standard tetrominoes in 5x5 masks.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultFigures...)
	if err != nil {
		panic("tetris: invalid built-in figures: " + err.Error())
	}
	return c
}

// Count returns the number of figures.
func (c *Catalog) Count() int {
	return len(c.masks)
}

// Size returns the side length shared by all masks.
func (c *Catalog) Size() int {
	return c.size
}

// mask returns the raw mask of figure i. Callers must not modify it.
func (c *Catalog) mask(i int) []int {
	return c.masks[i]
}

// Mask returns a copy of figure i as rows.
func (c *Catalog) Mask(i int) [][]int {
	m := c.masks[i]
	rows := make([][]int, c.size)
	for r := range rows {
		rows[r] = make([]int, c.size)
		copy(rows[r], m[r*c.size:(r+1)*c.size])
	}
	return rows
}

// PickRandom returns a uniformly chosen figure index in [0, Count()).
func (c *Catalog) PickRandom(src Source) int {
	return src.Intn(len(c.masks))
}
