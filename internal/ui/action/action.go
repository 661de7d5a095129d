// Package action defines how list panels report user intent to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a panel asks the app to do.
// ActionType returns an identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the panel that produced it.
type Msg struct {
	Source string // "folderlist", "tracklist"
	Action Action
}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}

var _ tea.Msg = Msg{}
