package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/tf"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
)

type statusBarModel struct {
	width       int
	snapshot    state.Snapshot
	statusMsg   string
	statusError bool
	matchesOnly bool
	version     string
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case state.Snapshot:
		m.snapshot = msg
	case viewModelMsg:
		m.matchesOnly = msg.prefs.MatchesOnly
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case contentSizeMsg:
		m.width = msg.width
	}

	return m, nil
}

func (m statusBarModel) View() string {
	var args []string

	if m.snapshot.GameRunning {
		args = append(args,
			styles.StatusRedTeam.Render(fmt.Sprintf("%3d", m.snapshot.Players.TeamCount(tf.RED))),
			styles.StatusBluTeam.Render(fmt.Sprintf("%3d", m.snapshot.Players.TeamCount(tf.BLU))))
	} else {
		args = append(args, styles.StatusError.Render("game not running"))
	}

	if m.matchesOnly {
		args = append(args, styles.StatusMessage.Render("matches only"))
	}

	args = append(args,
		styles.StatusVersion.Render(m.version),
		m.status(),
		styles.StatusMap.Render(m.snapshot.Server.CurrentMap))

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	return styles.StatusHostname.Render(m.snapshot.Server.Name)
}
