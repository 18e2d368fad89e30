package tui

import (
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

const (
	inputQueueLimit = 8 // Key presses waiting for a tick
	helpHeight      = 4 // Lines reserved below the board for the help view
)

// ScoreRecorder stores the final score of a finished game.
// *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Options configures a game session front end.
type Options struct {
	NewEngine func() (*tetris.Engine, error) // Called at start and on every restart
	Scores    ScoreRecorder                  // May be nil
	GameID    string
	Pacing    config.Pacing
	Screen    core.RuntimeConfig
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	opts   Options
	engine *tetris.Engine
	snap   tetris.Snapshot
	queue  *core.InputQueue[tetris.Action]
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	gameOver   bool
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
	err        error
}

// NewModel builds the first session.
func NewModel(opts Options) (Model, error) {
	if opts.NewEngine == nil {
		return Model{}, errors.New("tui: no engine factory")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine, err := opts.NewEngine()
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Screen.ScreenW

	return Model{
		opts:   opts,
		engine: engine,
		snap:   engine.Snapshot(),
		queue:  core.NewInputQueue[tetris.Action](inputQueueLimit),
		screen: core.NewScreen(opts.Screen.ScreenW, opts.Screen.ScreenH-helpHeight),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Pacing.FrameInterval(m.snap.Speed))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues gameplay keys for the next tick and handles
// session-level keys immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case m.gameOver && key.Matches(msg, m.keys.End):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m.restart()
	}

	if m.gameOver {
		return m, nil
	}
	if a := m.keys.Action(msg); a != tetris.ActionNone {
		if !m.queue.Push(a) {
			m.logger.Debug("input dropped", "action", a)
		}
	}
	return m, nil
}

// handleTick feeds one queued action (or none) to the engine.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameOver {
		return m, nil
	}

	a, _ := m.queue.Pop()
	snap, ok := m.engine.Apply(a)
	if !ok {
		m.finish()
		return m, nil
	}
	m.snap = snap

	return m, tickCmd(m.opts.Pacing.FrameInterval(snap.Speed))
}

// finish records the final score once and switches to the game-over screen.
func (m *Model) finish() {
	m.gameOver = true
	m.keys.SetGameOver(true)
	m.queue.Clear()

	state := m.engine.State()
	m.snap.Phase = state.Phase()
	m.snap.Score = state.Score()
	m.snap.HighScore = state.HighScore()

	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.logger.Info("game over", "score", state.Score(), "level", state.Level())

	if m.opts.Scores == nil || state.Score() <= 0 {
		return
	}
	if _, err := m.opts.Scores.SaveScore(m.opts.GameID, state.Score()); err != nil {
		m.logger.Warn("score not recorded", "err", err)
	}
}

// restart replaces the finished session with a fresh one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	engine, err := m.opts.NewEngine()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.engine = engine
	m.snap = engine.Snapshot()
	m.gameOver = false
	m.scoreSaved = false
	m.keys.SetGameOver(false)
	m.queue.Clear()

	return m, tickCmd(m.opts.Pacing.FrameInterval(m.snap.Speed))
}

// Snapshot returns the last frame shown.
func (m Model) Snapshot() tetris.Snapshot {
	return m.snap
}

// GameOver reports whether the current session has ended.
func (m Model) GameOver() bool {
	return m.gameOver
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	layout := newLayout(m.engine.Rules(), m.engine.Catalog().Size())
	helpView := m.help.View(m.keys)

	m.screen.Clear()
	if !layout.fits(m.screen.Width(), m.screen.Height()) {
		full := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
		renderOverlay(m.screen, full, "Window too small", "Resize to continue")
		return RenderScreen(m.screen)
	}

	layout.center(m.screen.Width(), m.screen.Height())
	renderGame(m.screen, layout, m.snap)

	switch {
	case m.gameOver:
		renderOverlay(m.screen, layout.field, "Game Over", "Press R to restart")
	case m.snap.Phase == tetris.PhaseInit:
		renderOverlay(m.screen, layout.field, "Ready", "Press ENTER to start")
	case m.snap.Paused:
		renderOverlay(m.screen, layout.field, "Paused", "Press P to continue")
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
