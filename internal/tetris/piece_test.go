package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnCentered(t *testing.T) {
	c := DefaultCatalog()

	for i := 0; i < c.Count(); i++ {
		p := Spawn(c, i, 10)
		assert.Equal(t, 3, p.X(), "figure %s", FigureNames[i])
		assert.Equal(t, 0, p.Y(), "figure %s", FigureNames[i])
		assert.Equal(t, c.Mask(i), p.Mask(), "figure %s", FigureNames[i])
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	c := DefaultCatalog()

	for i := 0; i < c.Count(); i++ {
		p := Spawn(c, i, 10)
		r := p.Rotated().Rotated().Rotated().Rotated()
		assert.Equal(t, p.Mask(), r.Mask(), "figure %s", FigureNames[i])
		assert.Equal(t, p.X(), r.X())
		assert.Equal(t, p.Y(), r.Y())
	}
}

func TestRotatedFormula(t *testing.T) {
	c := DefaultCatalog()
	p := Spawn(c, 0, 10) // I, horizontal on mask row 2
	r := p.Rotated()

	n := p.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, p.At(j, n-1-i), r.At(i, j), "cell (%d,%d)", i, j)
		}
	}

	// Horizontal I on row 2 becomes vertical on column 2.
	for i := 0; i < 4; i++ {
		assert.NotZero(t, r.At(i, 2))
	}
}

func TestRotatedLeavesOriginalUntouched(t *testing.T) {
	c := DefaultCatalog()
	p := Spawn(c, 2, 10)
	before := p.Mask()

	_ = p.Rotated()
	_ = p.Translated(2, 3)

	assert.Equal(t, before, p.Mask())
	assert.Equal(t, 3, p.X())
	assert.Equal(t, 0, p.Y())
}

func TestFits(t *testing.T) {
	c := DefaultCatalog()
	g, err := NewGrid(10, 20)
	require.NoError(t, err)

	p := Spawn(c, 2, 10) // T: (1,2) (2,1) (2,2) (2,3) in mask coordinates
	assert.True(t, p.Fits(g))

	// Empty mask columns may hang off the grid.
	assert.True(t, p.Translated(-4, 0).Fits(g))
	assert.False(t, p.Translated(-5, 0).Fits(g))

	// One blocked cell fails the whole placement.
	g.Set(5, 1, 1)
	assert.False(t, p.Fits(g))
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog()
	assert.ErrorIs(t, err, ErrNoFigures)

	_, err = NewCatalog([]string{"##", "#"})
	assert.ErrorIs(t, err, ErrInvalidFigureSize)

	_, err = NewCatalog([]string{"##", "##"}, []string{"###", "...", "..."})
	assert.ErrorIs(t, err, ErrInvalidFigureSize)

	_, err = NewCatalog([]string{})
	assert.ErrorIs(t, err, ErrInvalidFigureSize)

	c, err := NewCatalog([]string{"#."})
	assert.ErrorIs(t, err, ErrInvalidFigureSize)
	assert.Nil(t, c)
}

func TestCatalogIDs(t *testing.T) {
	c, err := NewCatalog([]string{"#"}, []string{"#"})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1}}, c.Mask(0))
	assert.Equal(t, [][]int{{2}}, c.Mask(1))
	assert.Equal(t, 1, c.Size())
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 7, c.Count())
	assert.Equal(t, FigureSize, c.Size())
	assert.Len(t, FigureNames, c.Count())

	for i := 0; i < c.Count(); i++ {
		blocks := 0
		for _, row := range c.Mask(i) {
			for _, v := range row {
				if v != 0 {
					assert.Equal(t, i+1, v)
					blocks++
				}
			}
		}
		assert.Equal(t, 4, blocks, "figure %s", FigureNames[i])
	}
}
