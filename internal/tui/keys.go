package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/robotfindskitten/internal/game"
)

// keyMap covers arrow/keypad, Nethack and Emacs movement styles.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpLeft    key.Binding
	UpRight   key.Binding
	DownLeft  key.Binding
	DownRight key.Binding

	// Move only feeds the help line.
	Move      key.Binding
	Redraw    key.Binding
	Manual    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "8", "ctrl+p")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "2", "ctrl+n")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "4", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "6", "ctrl+f")),
		UpLeft:    key.NewBinding(key.WithKeys("y", "7", "home")),
		UpRight:   key.NewBinding(key.WithKeys("u", "9", "pgup")),
		DownLeft:  key.NewBinding(key.WithKeys("b", "1", "end")),
		DownRight: key.NewBinding(key.WithKeys("n", "3", "pgdown")),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↓↑→/hjklyubn", "move"),
		),
		Redraw: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
		Manual: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "manual"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Manual, k.Redraw, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// direction maps a key press to a move, if it is one.
func (k keyMap) direction(msg tea.KeyMsg) (game.Direction, bool) {
	pairs := []struct {
		binding key.Binding
		dir     game.Direction
	}{
		{k.Up, game.Up},
		{k.Down, game.Down},
		{k.Left, game.Left},
		{k.Right, game.Right},
		{k.UpLeft, game.UpLeft},
		{k.UpRight, game.UpRight},
		{k.DownLeft, game.DownLeft},
		{k.DownRight, game.DownRight},
	}
	for _, p := range pairs {
		if key.Matches(msg, p.binding) {
			return p.dir, true
		}
	}
	return game.None, false
}

// manualKeyMap is shown under the manual viewport.
type manualKeyMap struct {
	Scroll key.Binding
	Back   key.Binding
}

func defaultManualKeyMap() manualKeyMap {
	return manualKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q", "?"),
			key.WithHelp("esc", "back"),
		),
	}
}

func (k manualKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Back}
}

func (k manualKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
