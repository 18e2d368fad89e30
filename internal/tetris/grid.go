package tetris

import "fmt"

// Grid is the playfield of settled blocks.
// Cells are stored row-major; 0 means empty, any other value is the id of the
// figure that left the block there.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// inBounds reports whether (x, y) lies inside the grid.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.cells[y*g.width+x]
}

// Set stores a value at (x, y). Out-of-bounds coordinates are ignored.
func (g *Grid) Set(x, y, v int) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = v
}

// IsOccupied reports whether (x, y) is blocked.
// Anything outside the grid counts as occupied so collision checks
// never index out of range.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return g.At(x, y) != 0
}

// Plant copies the piece's blocks into the grid at the piece's position.
// Blocks that fall outside the grid are skipped.
func (g *Grid) Plant(p Piece) {
	p.each(func(x, y, v int) {
		g.Set(x, y, v)
	})
}

// rowFull reports whether every cell of row y is nonzero.
func (g *Grid) rowFull(y int) bool {
	row := g.cells[y*g.width : (y+1)*g.width]
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// dropRow removes row y, shifting everything above it down by one and
// zeroing the top row.
func (g *Grid) dropRow(y int) {
	// Rows 0..y-1 move to 1..y in one overlapping copy.
	copy(g.cells[g.width:(y+1)*g.width], g.cells[:y*g.width])
	clear(g.cells[:g.width])
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows are scanned bottom to top; a row index is re-checked after each
// removal because the row shifted into it may be full as well.
func (g *Grid) ClearFullRows() int {
	count := 0
	for y := g.height - 1; y >= 0; y-- {
		for g.rowFull(y) {
			g.dropRow(y)
			count++
		}
	}
	return count
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}
