package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

type fakeRecorder struct {
	saved []int
}

func (f *fakeRecorder) SaveScore(_ string, score int) (int64, error) {
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), nil
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// scoringOptions builds sessions on a 1x2 field with a single-block figure,
// so every plant clears a row and the game never ends on its own.
func scoringOptions(t *testing.T, rec ScoreRecorder) Options {
	t.Helper()
	cat, err := tetris.NewCatalog([]string{"#"})
	require.NoError(t, err)

	rules := tetris.DefaultRules()
	rules.Width = 1
	rules.Height = 2
	rules.GravityInterval = 1

	return Options{
		NewEngine: func() (*tetris.Engine, error) {
			return tetris.New(rules, tetris.WithCatalog(cat), tetris.WithSeed(1))
		},
		Scores: rec,
		GameID: "tetris",
		Pacing: config.DefaultTetrisConfig().Pacing,
		Screen: core.RuntimeConfig{ScreenW: 80, ScreenH: 30},
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected tetris.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, tetris.ActionMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, tetris.ActionMoveRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, tetris.ActionMoveDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, tetris.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, tetris.ActionRotate},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, tetris.ActionStart},
		{"p", runeKey('p'), tetris.ActionTogglePause},
		{"q", runeKey('q'), tetris.ActionTerminate},
		{"unmapped", runeKey('z'), tetris.ActionNone},
		{"restart is not an engine action", runeKey('r'), tetris.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keys.Action(tc.msg))
		})
	}
}

func TestKeyMapGameOverDisablesPlayKeys(t *testing.T) {
	keys := DefaultKeyMap()
	keys.SetGameOver(true)

	assert.Equal(t, tetris.ActionNone, keys.Action(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.True(t, keys.Restart.Enabled())

	keys.SetGameOver(false)
	assert.Equal(t, tetris.ActionMoveLeft, keys.Action(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.False(t, keys.Restart.Enabled())
}

func TestModelStartsInInit(t *testing.T) {
	m, err := NewModel(scoringOptions(t, nil))
	require.NoError(t, err)

	assert.Equal(t, tetris.PhaseInit, m.Snapshot().Phase)
	assert.True(t, m.Snapshot().Paused)
	assert.NotNil(t, m.Init())
}

func TestModelRequiresFactory(t *testing.T) {
	_, err := NewModel(Options{})
	assert.Error(t, err)
}

func TestModelOneActionPerTick(t *testing.T) {
	m, err := NewModel(scoringOptions(t, nil))
	require.NoError(t, err)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, runeKey('p'))
	assert.Equal(t, tetris.PhaseInit, m.Snapshot().Phase, "keys wait for a tick")

	m, cmd := step(t, m, TickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, tetris.PhaseMoving, m.Snapshot().Phase)
	assert.False(t, m.Snapshot().Paused)

	m, _ = step(t, m, TickMsg{})
	assert.True(t, m.Snapshot().Paused)
}

func TestModelRecordsScoreOnceAndRestarts(t *testing.T) {
	rec := &fakeRecorder{}
	m, err := NewModel(scoringOptions(t, rec))
	require.NoError(t, err)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 4; i++ {
		m, _ = step(t, m, TickMsg{})
	}
	require.Positive(t, m.Snapshot().Score)

	m, _ = step(t, m, runeKey('q'))
	m, cmd := step(t, m, TickMsg{})
	assert.Nil(t, cmd, "ticking stops at game over")
	assert.True(t, m.GameOver())
	require.Len(t, rec.saved, 1)
	assert.Equal(t, m.Snapshot().Score, rec.saved[0])

	for i := 0; i < 3; i++ {
		m, _ = step(t, m, TickMsg{})
	}
	assert.Len(t, rec.saved, 1)

	m, cmd = step(t, m, runeKey('r'))
	assert.NotNil(t, cmd)
	assert.False(t, m.GameOver())
	assert.Equal(t, 0, m.Snapshot().Score)
	assert.Equal(t, tetris.PhaseInit, m.Snapshot().Phase)
}

func TestModelQuitKeys(t *testing.T) {
	m, err := NewModel(scoringOptions(t, nil))
	require.NoError(t, err)

	// q during play ends the game rather than the program.
	m, cmd := step(t, m, runeKey('q'))
	assert.Nil(t, cmd)
	m, _ = step(t, m, TickMsg{})
	require.True(t, m.GameOver())

	// q on the game-over screen quits.
	m, cmd = step(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m2, err := NewModel(scoringOptions(t, nil))
	require.NoError(t, err)
	_, cmd = step(t, m2, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestModelView(t *testing.T) {
	opts := scoringOptions(t, nil)
	opts.NewEngine = func() (*tetris.Engine, error) {
		return tetris.New(tetris.DefaultRules(), tetris.WithSeed(3))
	}
	m, err := NewModel(opts)
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "NEXT")
	assert.Contains(t, view, "SCORE")
	assert.Contains(t, view, "Press ENTER to start")

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	view = m.View()
	assert.Contains(t, view, "Window too small")
	assert.False(t, strings.Contains(view, "NEXT"))
}

func TestLayoutFitsClassicField(t *testing.T) {
	l := newLayout(tetris.DefaultRules(), tetris.FigureSize)

	assert.Equal(t, 22, l.field.W)
	assert.Equal(t, 22, l.field.H)
	assert.True(t, l.fits(80, 24))
	assert.False(t, l.fits(30, 24))
	assert.False(t, l.fits(80, 20))
}

func TestRenderGameDrawsActivePiece(t *testing.T) {
	e, err := tetris.New(tetris.DefaultRules(), tetris.WithSource(constSource(1)))
	require.NoError(t, err)

	l := newLayout(e.Rules(), e.Catalog().Size())
	screen := core.NewScreen(l.width, l.height)
	renderGame(screen, l, e.Snapshot())

	// O piece: field cells (4,1) and (5,2), two characters per cell.
	for _, xy := range [][2]int{{4, 1}, {5, 2}} {
		sx := l.field.X + 1 + xy[0]*cellWidth
		sy := l.field.Y + 1 + xy[1]
		assert.Equal(t, '█', screen.Get(sx, sy))
		assert.Equal(t, core.FigureColor(2), screen.GetCell(sx, sy).Color)
	}
	assert.Equal(t, '·', screen.Get(l.field.X+2, l.field.Y+1))
}

type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }
