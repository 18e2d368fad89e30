package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Engine advances a session one tick at a time.
// It is not safe for concurrent use; callers deliver ticks sequentially.
type Engine struct {
	rules   Rules
	catalog *Catalog
	src     Source
	store   HighScoreStore
	logger  *log.Logger
	state   *State
}

// Option customizes an Engine.
type Option func(*Engine)

// WithCatalog replaces the built-in figures.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithSource sets the random source for figure selection.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.src = rand.New(rand.NewSource(seed))
	}
}

// WithStore sets the high-score store.
func WithStore(store HighScoreStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New builds a session: an empty grid, the first piece spawned at the top,
// a random on-deck figure and the stored high score. The session starts
// paused in PhaseInit and waits for ActionStart or ActionTogglePause.
func New(rules Rules, opts ...Option) (*Engine, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}

	e := &Engine{rules: rules}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = DefaultCatalog()
	}
	if e.catalog.Count() == 0 {
		return nil, ErrNoFigures
	}
	if size := e.catalog.Size(); rules.Width < size || rules.Height < size {
		return nil, fmt.Errorf("%w: %dx%d field cannot hold %dx%d figures",
			ErrInvalidDimensions, rules.Width, rules.Height, size, size)
	}
	if e.src == nil {
		e.src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.store == nil {
		e.store = nopStore{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	grid, err := NewGrid(rules.Width, rules.Height)
	if err != nil {
		return nil, err
	}

	e.state = &State{
		grid:              grid,
		onDeck:            e.catalog.PickRandom(e.src),
		highScore:         max(0, e.store.Load()),
		level:             1,
		speed:             1,
		ticksUntilGravity: rules.GravityInterval,
		gravityInterval:   rules.GravityInterval,
		paused:            true,
		phase:             PhaseInit,
	}
	e.spawnNext()

	e.logger.Debug("session created",
		"width", rules.Width,
		"height", rules.Height,
		"figures", e.catalog.Count(),
		"high_score", e.state.highScore,
	)
	return e, nil
}

// State returns the session state for read-only inspection.
func (e *Engine) State() *State {
	return e.state
}

// Catalog returns the figure catalog in use.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Rules returns the rules the session was built with.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Apply runs one tick: a gravity step when the countdown has expired,
// then the given action, then the countdown is decremented.
// It returns the snapshot for this tick, or false once the game is over;
// after that every call is a no-op.
func (e *Engine) Apply(a Action) (Snapshot, bool) {
	s := e.state

	if s.ticksUntilGravity <= 0 && s.phase != PhasePaused && s.phase != PhaseInit && s.phase != PhaseGameOver {
		e.gravityStep()
	}
	if s.phase == PhaseGameOver {
		return Snapshot{}, false
	}

	switch a {
	case ActionMoveLeft:
		e.shift(-1, 0)
	case ActionMoveRight:
		e.shift(1, 0)
	case ActionMoveDown:
		e.shift(0, 1)
	case ActionRotate:
		e.rotate()
	case ActionTogglePause:
		s.paused = !s.paused
		if s.paused {
			s.phase = PhasePaused
		} else {
			s.phase = PhaseMoving
		}
	case ActionTerminate:
		e.setGameOver("terminated")
	case ActionStart:
		s.paused = false
		s.phase = PhaseMoving
	}

	s.ticksUntilGravity--

	if s.phase == PhaseGameOver {
		return Snapshot{}, false
	}
	return e.Snapshot(), true
}

// shift translates the active piece unless that would collide.
func (e *Engine) shift(dx, dy int) {
	s := e.state
	if s.paused {
		return
	}
	if candidate := s.active.Translated(dx, dy); candidate.Fits(s.grid) {
		s.active = candidate
	}
}

// rotate replaces the active piece with its rotation unless that would collide.
func (e *Engine) rotate() {
	s := e.state
	if s.paused {
		return
	}
	if candidate := s.active.Rotated(); candidate.Fits(s.grid) {
		s.active = candidate
	}
}

// gravityStep moves the active piece down one row. If it cannot move, the
// piece is planted, full rows are cleared and scored, and the on-deck figure
// spawns. A spawn that collides immediately ends the game.
func (e *Engine) gravityStep() {
	s := e.state
	s.ticksUntilGravity = s.gravityInterval

	if down := s.active.Translated(0, 1); down.Fits(s.grid) {
		s.active = down
		s.phase = PhaseMoving
		return
	}

	s.phase = PhaseCollided
	s.grid.Plant(s.active)
	rows := s.grid.ClearFullRows()
	e.addScore(rows)

	e.spawnNext()
	s.phase = PhaseDropped

	if !s.active.Fits(s.grid) {
		e.setGameOver("spawn blocked")
	}
}

// spawnNext makes the on-deck figure active and picks a new on-deck figure.
func (e *Engine) spawnNext() {
	s := e.state
	figure := s.onDeck
	s.active = Spawn(e.catalog, figure, s.grid.Width())
	s.onDeck = e.catalog.PickRandom(e.src)
	e.logger.Debug("spawn", "figure", figure, "next", s.onDeck)
}

// addScore applies the points for rows cleared by one plant, then updates
// the high score and the level.
func (e *Engine) addScore(rows int) {
	s := e.state
	s.score += e.rules.Points(rows)
	if rows > 0 {
		e.logger.Debug("rows cleared", "rows", rows, "score", s.score)
	}

	if s.score > s.highScore {
		s.highScore = s.score
		e.store.Save(s.highScore)
		e.logger.Debug("new high score", "score", s.highScore)
	}

	if level := e.rules.LevelFor(s.score); level > s.level {
		s.level = level
		s.speed = level
		e.logger.Debug("level up", "level", level)
	}
}

func (e *Engine) setGameOver(reason string) {
	e.state.phase = PhaseGameOver
	e.logger.Debug("game over", "reason", reason, "score", e.state.score)
}
