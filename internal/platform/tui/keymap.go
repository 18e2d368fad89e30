package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/tetris"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Down    key.Binding
	Rotate  key.Binding
	Start   key.Binding
	Pause   key.Binding
	End     key.Binding
	Restart key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Rotate, k.Pause, k.End, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.Rotate},
		{k.Start, k.Pause, k.End},
		{k.Restart, k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "rotate"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		End: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "end game"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// SetGameOver switches the bindings between play and the game-over screen.
func (k *KeyMap) SetGameOver(over bool) {
	k.Restart.SetEnabled(over)
	k.Left.SetEnabled(!over)
	k.Right.SetEnabled(!over)
	k.Down.SetEnabled(!over)
	k.Rotate.SetEnabled(!over)
	k.Start.SetEnabled(!over)
	k.Pause.SetEnabled(!over)
	if over {
		k.End.SetHelp("q", "quit")
	} else {
		k.End.SetHelp("q", "end game")
	}
}

// Action translates a key message to an engine action.
// Unmapped keys yield ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) tetris.Action {
	switch {
	case key.Matches(msg, k.Left):
		return tetris.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return tetris.ActionMoveRight
	case key.Matches(msg, k.Down):
		return tetris.ActionMoveDown
	case key.Matches(msg, k.Rotate):
		return tetris.ActionRotate
	case key.Matches(msg, k.Start):
		return tetris.ActionStart
	case key.Matches(msg, k.Pause):
		return tetris.ActionTogglePause
	case key.Matches(msg, k.End):
		return tetris.ActionTerminate
	}
	return tetris.ActionNone
}
