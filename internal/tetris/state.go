package tetris

// State is everything a session owns. Only the Engine writes to it;
// the accessors are for renderers and tests.
type State struct {
	grid   *Grid
	active Piece
	onDeck int // catalog index of the next figure

	score     int
	highScore int
	level     int
	speed     int

	ticksUntilGravity int
	gravityInterval   int

	paused bool
	phase  Phase
}

// Grid returns the settled-block grid. Callers must not modify it.
func (s *State) Grid() *Grid {
	return s.grid
}

// Active returns the falling piece.
func (s *State) Active() Piece {
	return s.active
}

// OnDeck returns the catalog index of the figure that spawns next.
func (s *State) OnDeck() int {
	return s.onDeck
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// HighScore returns the best score known to this session.
func (s *State) HighScore() int {
	return s.highScore
}

// Level returns the current level.
func (s *State) Level() int {
	return s.level
}

// Speed returns the current speed. It always equals Level.
func (s *State) Speed() int {
	return s.speed
}

// TicksUntilGravity returns the gravity countdown.
func (s *State) TicksUntilGravity() int {
	return s.ticksUntilGravity
}

// Paused reports whether the session is paused.
func (s *State) Paused() bool {
	return s.paused
}

// Phase returns the current machine phase.
func (s *State) Phase() Phase {
	return s.phase
}
