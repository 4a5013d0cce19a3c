package monitor

import "github.com/charmbracelet/bubbles/key"

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitEsc = "esc"
	KeyQuitAlt = "ctrl+c"
)

// KeyMap holds the dashboard's key bindings. Quitting is the only action.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(KeyQuit, KeyQuitEsc, KeyQuitAlt),
			key.WithHelp("q/esc", "quit"),
		),
	}
}
