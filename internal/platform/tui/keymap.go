package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	P2Left  key.Binding
	P2Right key.Binding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding

	versus bool
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.versus {
		return []key.Binding{k.Up, k.P2Up, k.Pause, k.Restart, k.Quit}
	}
	return []key.Binding{k.Up, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.P2Up, k.P2Down, k.P2Left, k.P2Right},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the bindings for a game with the given number of
// keyboard seats. With two seats player 1 steers with the arrows and player 2
// with WASD; otherwise both sets steer player 1.
func DefaultKeyMap(players int) KeyMap {
	versus := players > 1
	arrowsHelp, wasdHelp := "arrows/wasd", "wasd"
	if versus {
		arrowsHelp = "arrows"
	}

	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp(arrowsHelp, "steer")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "down")),
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("left", "left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("right", "right")),
		P2Up:    key.NewBinding(key.WithKeys("w"), key.WithHelp(wasdHelp, "steer P2")),
		P2Down:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
		P2Left:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
		P2Right: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		versus: versus,
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for a game with the given number of seats.
func NewKeyMapper(players int) *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap(players)}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action and the player it belongs to.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	k := km.keys
	p2 := core.Player1
	if k.versus {
		p2 = core.Player2
	}

	switch {
	case key.Matches(msg, k.Quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.Player1, core.ActionUp
	case key.Matches(msg, k.Down):
		return core.Player1, core.ActionDown
	case key.Matches(msg, k.Left):
		return core.Player1, core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.Player1, core.ActionRight
	case key.Matches(msg, k.P2Up):
		return p2, core.ActionUp
	case key.Matches(msg, k.P2Down):
		return p2, core.ActionDown
	case key.Matches(msg, k.P2Left):
		return p2, core.ActionLeft
	case key.Matches(msg, k.P2Right):
		return p2, core.ActionRight
	case key.Matches(msg, k.Pause):
		return core.Player1, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.Player1, core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.Player1, core.ActionBack
	}
	return core.Player1, core.ActionNone
}

// MapKeyToMultiFrame records the action of a key message in the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	}
	frame.Set(player, action)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
