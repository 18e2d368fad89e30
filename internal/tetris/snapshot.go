package tetris

// Snapshot is a self-contained copy of what a renderer needs for one frame.
// Field is the settled grid with the active piece drawn over it; Next is the
// on-deck figure's mask. Nonzero cells are figure ids (index+1).
type Snapshot struct {
	Field     [][]int
	Next      [][]int
	NextIndex int
	Score     int
	HighScore int
	Level     int
	Speed     int
	Paused    bool
	Phase     Phase
}

// Snapshot returns the current frame. It does not advance the session and
// shares no memory with it.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	field := s.grid.Rows()
	s.active.each(func(x, y, v int) {
		if y >= 0 && y < len(field) && x >= 0 && x < len(field[y]) {
			field[y][x] = v
		}
	})

	return Snapshot{
		Field:     field,
		Next:      e.catalog.Mask(s.onDeck),
		NextIndex: s.onDeck,
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		Speed:     s.speed,
		Paused:    s.paused,
		Phase:     s.phase,
	}
}

// Occupied reports whether the field cell at (x, y) holds a block.
func (s Snapshot) Occupied(x, y int) bool {
	if y < 0 || y >= len(s.Field) || x < 0 || x >= len(s.Field[y]) {
		return false
	}
	return s.Field[y][x] != 0
}
