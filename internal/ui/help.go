package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
)

func newHelpModel(buildVersion string, buildDate string, buildCommit string) helpModel {
	return helpModel{
		configPath:   config.Path(config.DefaultConfigName),
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type helpModel struct {
	helpView     help.Model
	configPath   string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(_ tea.Msg) (helpModel, tea.Cmd) {
	return m, nil
}

func (m helpModel) View() string {
	bindings := m.helpView.FullHelpView([][]key.Binding{
		{
			defaultKeyMap.up,
			defaultKeyMap.down,
			defaultKeyMap.accept,
			defaultKeyMap.back,
		},
		{
			defaultKeyMap.mark,
			defaultKeyMap.unmark,
			defaultKeyMap.whitelist,
			defaultKeyMap.notes,
			defaultKeyMap.vote,
		},
		{
			defaultKeyMap.filter,
			defaultKeyMap.toggleCol,
			defaultKeyMap.reverseSort,
		},
		{
			defaultKeyMap.launch,
			defaultKeyMap.quitGame,
			defaultKeyMap.config,
			defaultKeyMap.help,
			defaultKeyMap.quit,
		},
	})

	info := lipgloss.JoinVertical(lipgloss.Top,
		styles.DetailLabel.Render("bd-tui "+m.buildVersion),
		styles.DetailValue.Render("Commit: "+m.buildCommit),
		styles.DetailValue.Render("Built:  "+m.buildDate),
		styles.DetailValue.Render("Config: "+m.configPath))

	return lipgloss.JoinVertical(lipgloss.Top, info, "", bindings)
}
