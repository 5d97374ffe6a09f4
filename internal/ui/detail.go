package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/bd-tui/internal/config"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// detailPanelModel renders the reputation and annotation details of the
// currently selected player.
type detailPanelModel struct {
	player     state.Player
	links      []config.UserLink
	lastUpdate time.Time
	width      int
}

func newDetailPanelModel(links []config.UserLink) detailPanelModel {
	return detailPanelModel{links: links}
}

func (m detailPanelModel) Init() tea.Cmd {
	return nil
}

func (m detailPanelModel) Update(msg tea.Msg) (detailPanelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case selectedPlayerMsg:
		m.player = msg.player

		return m, nil
	case state.Snapshot:
		m.lastUpdate = msg.Server.LastUpdate

		return m, nil
	case contentSizeMsg:
		m.width = msg.width

		return m, nil
	}

	return m, nil
}

func (m detailPanelModel) View() string {
	if !m.player.SteamID.Valid() {
		return styles.DetailValue.Render("No player selected")
	}

	var lines []string
	addLine := func(label string, value string) {
		lines = append(lines, styles.DetailLabel.Render(label+": ")+styles.DetailValue.Render(value))
	}

	addLine("Name", m.player.Name)
	addLine("SteamID", m.player.SteamID.String())
	addLine("Profile", m.player.Visibility.String())

	if m.player.VacBans > 0 || m.player.GameBans > 0 || m.player.CommunityBanned {
		lines = append(lines, styles.DetailWarn.Render(fmt.Sprintf(
			"VAC bans: %d  Game bans: %d  Community banned: %t",
			m.player.VacBans, m.player.GameBans, m.player.CommunityBanned)))
	}

	if m.player.Whitelisted {
		lines = append(lines, styles.DetailValue.Render("Whitelisted"))
	}

	for _, match := range m.player.Matches {
		lines = append(lines, styles.DetailWarn.Render(fmt.Sprintf(
			"Matched %s (%s): %s", match.Origin, match.MatcherType, strings.Join(match.Attributes, ", "))))
	}

	for _, ban := range m.player.Sourcebans {
		lines = append(lines, styles.DetailWarn.Render(fmt.Sprintf(
			"Sourceban %s: %s (%s)", ban.SiteName, ban.Reason, humanize.Time(ban.CreatedOn))))
	}

	if m.player.Notes != "" {
		lines = append(lines, styles.DetailLabel.Render("Notes:"))
		lines = append(lines, styles.DetailValue.Render(wordwrap.String(m.player.Notes, max(20, m.width-4))))
	}

	for _, link := range m.links {
		addLine(link.Name, link.Generate(m.player.SteamID))
	}

	if !m.lastUpdate.IsZero() {
		addLine("Updated", humanize.Time(m.lastUpdate))
	}

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}
