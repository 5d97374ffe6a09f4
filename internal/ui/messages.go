package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/view"
)

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type selectedPlayerMsg struct {
	player state.Player
}

func selectPlayer(player state.Player) tea.Cmd {
	return func() tea.Msg {
		return selectedPlayerMsg{player: player}
	}
}

// viewModelMsg is broadcast whenever the snapshot or the preferences change
// and carries the freshly rebuilt table projection.
type viewModelMsg struct {
	model view.ViewModel
	prefs view.Preferences
}

type setPageMsg struct {
	page page
}

func setPage(target page) tea.Cmd {
	return func() tea.Msg {
		return setPageMsg{page: target}
	}
}

type contentSizeMsg struct {
	width  int
	height int
}
