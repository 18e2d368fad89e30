package tetris

// Piece is a square block mask placed on the grid.
// X and Y are the grid coordinates of the mask's top-left corner.
//
// Pieces are values: moving or rotating a piece produces a new one and the
// original is left untouched, so a rejected candidate can simply be dropped.
type Piece struct {
	x, y  int
	size  int
	cells []int // size*size, row-major; never written after construction
}

// Spawn builds a piece from catalog entry index, centered horizontally on a
// grid of the given width and placed at the top.
func Spawn(c *Catalog, index, gridWidth int) Piece {
	size := c.Size()
	cells := make([]int, size*size)
	copy(cells, c.mask(index))
	return Piece{
		x:     gridWidth/2 - size/2,
		y:     0,
		size:  size,
		cells: cells,
	}
}

// X returns the column of the mask's left edge.
func (p Piece) X() int {
	return p.x
}

// Y returns the row of the mask's top edge.
func (p Piece) Y() int {
	return p.y
}

// Size returns the side length of the mask.
func (p Piece) Size() int {
	return p.size
}

// At returns the mask value at the given mask row and column.
func (p Piece) At(row, col int) int {
	if row < 0 || row >= p.size || col < 0 || col >= p.size {
		return 0
	}
	return p.cells[row*p.size+col]
}

// Mask returns a copy of the mask as rows.
func (p Piece) Mask() [][]int {
	rows := make([][]int, p.size)
	for i := range rows {
		rows[i] = make([]int, p.size)
		copy(rows[i], p.cells[i*p.size:(i+1)*p.size])
	}
	return rows
}

// Translated returns the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.x += dx
	p.y += dy
	return p
}

// Rotated returns a quarter-turned copy of the piece at the same position.
// The turn is taken inside the fixed mask, new[i][j] = old[j][size-1-i],
// not around the shape's own bounding box.
func (p Piece) Rotated() Piece {
	n := p.size
	cells := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cells[i*n+j] = p.cells[j*n+(n-1-i)]
		}
	}
	return Piece{x: p.x, y: p.y, size: n, cells: cells}
}

// each calls fn with the absolute grid coordinates and value of every
// nonzero block in the mask.
func (p Piece) each(fn func(x, y, v int)) {
	for i := 0; i < p.size; i++ {
		for j := 0; j < p.size; j++ {
			if v := p.cells[i*p.size+j]; v != 0 {
				fn(p.x+j, p.y+i, v)
			}
		}
	}
}

// Fits reports whether every block of the piece lies inside the grid on an
// empty cell. A single violating block fails the whole placement.
func (p Piece) Fits(g *Grid) bool {
	for i := 0; i < p.size; i++ {
		for j := 0; j < p.size; j++ {
			if p.cells[i*p.size+j] != 0 && g.IsOccupied(p.x+j, p.y+i) {
				return false
			}
		}
	}
	return true
}
