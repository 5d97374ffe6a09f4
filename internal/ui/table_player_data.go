package ui

import (
	"github.com/leighmacdonald/bd-tui/internal/view"
	zone "github.com/lrstanley/bubblezone"
)

func newTablePlayerData(parentZoneID string, model view.ViewModel) *tablePlayerData {
	return &tablePlayerData{zoneID: parentZoneID, model: model}
}

// tablePlayerData implements the lipgloss table.Data interface over a built
// view-model. All ordering and filtering already happened in view.Build;
// this only hands cells to the renderer.
type tablePlayerData struct {
	zoneID string
	model  view.ViewModel
}

func (m *tablePlayerData) Headers() []string {
	headers := make([]string, 0, len(m.model.Columns))
	for _, column := range m.model.Columns {
		headers = append(headers, zone.Mark(m.zoneID+string(column), column.Title()))
	}

	return headers
}

func (m *tablePlayerData) At(row int, col int) string {
	if row > len(m.model.Rows)-1 {
		return "oobplr"
	}
	current := m.model.Rows[row]
	if col > len(current.Cells)-1 {
		return "oobcol"
	}

	if m.model.Columns[col] == view.ColName {
		// Name cells double as the click target for row selection.
		return zone.Mark(m.zoneID+current.SteamID.String(), current.Cells[col])
	}

	return current.Cells[col]
}

func (m *tablePlayerData) Rows() int {
	return len(m.model.Rows)
}

func (m *tablePlayerData) Columns() int {
	return len(m.model.Columns)
}
