package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/bd-tui/internal/ui/styles"
	"github.com/leighmacdonald/bd-tui/internal/view"
	"github.com/leighmacdonald/steamid/v4/steamid"
	zone "github.com/lrstanley/bubblezone"
)

// direction defines the cardinal directions the users can use in the UI.
type direction int

const (
	up direction = iota
	down
)

// sortRequestedMsg asks the root model to change the sort column. Clicking
// the already active column flips the direction instead.
type sortRequestedMsg struct {
	column view.ColumnID
}

func newPlayerTableModel(selfSID steamid.SteamID) *tablePlayerModel {
	zoneID := zone.NewPrefix()

	return &tablePlayerModel{
		id:          zoneID,
		data:        newTablePlayerData(zoneID, view.ViewModel{}),
		table:       table.New().BorderColumn(false).BorderRow(false).BorderHeader(false),
		selfSteamID: selfSID,
	}
}

type tablePlayerModel struct {
	id              string
	table           *table.Table
	data            *tablePlayerData
	selectedSteamID steamid.SteamID
	height          int
	width           int
	selfSteamID     steamid.SteamID
}

func (m *tablePlayerModel) Init() tea.Cmd {
	return nil
}

func (m *tablePlayerModel) Update(msg tea.Msg) (*tablePlayerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case viewModelMsg:
		return m.updateModel(msg.model)
	case contentSizeMsg:
		m.width = msg.width
		m.height = msg.height
		m.table.Width(msg.width)

		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, row := range m.data.model.Rows {
			if zone.Get(m.id + row.SteamID.String()).InBounds(msg) {
				m.selectedSteamID = row.SteamID

				return m, selectPlayer(row.Player)
			}
		}

		for _, column := range m.data.model.Columns {
			if zone.Get(m.id + string(column)).InBounds(msg) {
				return m, func() tea.Msg { return sortRequestedMsg{column: column} }
			}
		}

		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeyMap.up):
			return m, m.moveSelection(up)
		case key.Matches(msg, defaultKeyMap.down):
			return m, m.moveSelection(down)
		}
	case selectedPlayerMsg:
		m.selectedSteamID = msg.player.SteamID

		return m, nil
	}

	return m, nil
}

func (m *tablePlayerModel) updateModel(model view.ViewModel) (*tablePlayerModel, tea.Cmd) {
	m.data = newTablePlayerData(m.id, model)
	m.table.Data(m.data)

	return m, m.selectClosestPlayer()
}

func (m *tablePlayerModel) moveSelection(dir direction) tea.Cmd {
	rows := m.data.model.Rows
	if len(rows) == 0 {
		return nil
	}

	currentRow := m.currentRowIndex()
	switch dir {
	case up:
		if currentRow <= 0 {
			currentRow = len(rows) - 1
		} else {
			currentRow--
		}
	case down:
		if currentRow < 0 || currentRow >= len(rows)-1 {
			currentRow = 0
		} else {
			currentRow++
		}
	}

	m.selectedSteamID = rows[currentRow].SteamID

	return selectPlayer(rows[currentRow].Player)
}

func (m *tablePlayerModel) currentPlayer() (view.Row, bool) {
	for _, row := range m.data.model.Rows {
		if row.SteamID == m.selectedSteamID {
			return row, true
		}
	}

	return view.Row{}, false
}

func (m *tablePlayerModel) currentRowIndex() int {
	for rowIdx, row := range m.data.model.Rows {
		if row.SteamID == m.selectedSteamID {
			return rowIdx
		}
	}

	return -1
}

// selectClosestPlayer keeps a sane selection when the filter or a fresh
// snapshot dropped the previously selected row.
func (m *tablePlayerModel) selectClosestPlayer() tea.Cmd {
	if _, ok := m.currentPlayer(); ok {
		return nil
	}

	rows := m.data.model.Rows
	if len(rows) == 0 {
		var none steamid.SteamID
		m.selectedSteamID = none

		return nil
	}

	m.selectedSteamID = rows[0].SteamID

	return selectPlayer(rows[0].Player)
}

func (m *tablePlayerModel) View() string {
	selectedRowIdx := m.currentRowIndex()

	return m.table.
		Headers(m.data.Headers()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			if row < 0 || row > len(m.data.model.Rows)-1 {
				return styles.PlayerTableRow
			}

			current := m.data.model.Rows[row]
			if row == selectedRowIdx {
				return styles.SelectedCellStyle
			}
			if current.SteamID.Equal(m.selfSteamID) && m.data.model.Columns[col] == view.ColName {
				return styles.PlayerTableRowSelf
			}

			return styles.RowStyle(current.Category)
		}).
		String()
}
