// Package tetris implements the falling-block simulation engine.
// It owns the playfield, the active and on-deck figures, scoring and the
// game-phase machine, and advances them one tick at a time. It has no
// terminal, timing or storage dependencies; those are supplied by callers.
package tetris

import "errors"

// Configuration errors returned by the constructors.
var (
	ErrInvalidDimensions = errors.New("tetris: invalid field dimensions")
	ErrNoFigures         = errors.New("tetris: no figures")
	ErrInvalidFigureSize = errors.New("tetris: invalid figure size")
	ErrInvalidRules      = errors.New("tetris: invalid rules")
)

// Action is a user intent delivered to the engine once per tick.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionRotate
	ActionStart
	ActionTogglePause
	ActionTerminate
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveDown:
		return "MoveDown"
	case ActionRotate:
		return "Rotate"
	case ActionStart:
		return "Start"
	case ActionTogglePause:
		return "TogglePause"
	case ActionTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// Phase is the state of the game machine.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseDropped
	PhaseMoving
	PhaseCollided
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseDropped:
		return "dropped"
	case PhaseMoving:
		return "moving"
	case PhaseCollided:
		return "collided"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the best score between sessions.
// Load is called once when a session is built and returns 0 when nothing
// usable is stored. Save must not block; failures are the store's problem.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

type nopStore struct{}

func (nopStore) Load() int  { return 0 }
func (nopStore) Save(_ int) {}
