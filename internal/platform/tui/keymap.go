package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// The mouse is the primary input; keys cover terminals without mouse reporting.
type KeyMap struct {
	Click      key.Binding
	Pause      key.Binding
	Left       key.Binding
	Right      key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Click},
		{k.Pause, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "click"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Screenshot is not a game action and maps to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Click):
		return core.ActionClick
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Left):
		return core.ActionPointerLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionPointerRight
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
