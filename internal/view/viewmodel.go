// Package view derives the player table view-model. Building is a pure
// projection over a snapshot and the users display preferences; it never
// reaches into ambient state and is safe to recompute on every input change.
package view

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/steamid/v4/steamid"
	"golang.org/x/exp/slices"
)

// SortDirection controls the comparison order of the sort column.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Preferences holds the locally persisted display settings. These are
// independent of the backend settings document; they never leave the client.
type Preferences struct {
	SortColumn    ColumnID
	SortDirection SortDirection
	// EnabledColumns defines both the columns shown and the order they are
	// rendered.
	EnabledColumns []ColumnID
	MatchesOnly    bool
}

// DefaultPreferences returns the display defaults used when nothing valid
// was persisted.
func DefaultPreferences() Preferences {
	return Preferences{
		SortColumn:     ColKills,
		SortDirection:  Descending,
		EnabledColumns: DefaultColumns(),
		MatchesOnly:    false,
	}
}

// Row is one rendered table row. The identity and category are always
// carried, cells only cover the enabled columns.
type Row struct {
	SteamID  steamid.SteamID
	Category Category
	Player   state.Player
	Cells    []string
}

type ViewModel struct {
	Columns []ColumnID
	Rows    []Row
}

// Build filters, sorts and projects the snapshot players into a view-model.
//
// The sort is stable, ties keep their snapshot order so rows dont jump
// around between polls. Descending negates the comparison rather than
// reversing the sorted slice, which would also reverse the tie order. An
// unrecognized sort column (stale persisted preferences from an older
// version) falls back to kills descending instead of failing.
func Build(snapshot state.Snapshot, prefs Preferences) ViewModel {
	sortColumn := prefs.SortColumn
	direction := prefs.SortDirection
	if !sortColumn.Valid() {
		sortColumn = ColKills
		direction = Descending
	}

	columns := prefs.EnabledColumns
	if len(columns) == 0 {
		columns = DefaultColumns()
	}

	players := make(state.Players, 0, len(snapshot.Players))
	for _, player := range snapshot.Players {
		if prefs.MatchesOnly && len(player.Matches) == 0 {
			continue
		}
		players = append(players, player)
	}

	slices.SortStableFunc(players, func(a, b state.Player) int { //nolint:varnamelen
		compared := compareColumn(sortColumn, a, b)
		if direction == Descending {
			return -compared
		}

		return compared
	})

	model := ViewModel{Columns: columns, Rows: make([]Row, 0, len(players))}
	for _, player := range players {
		row := Row{
			SteamID:  player.SteamID,
			Category: Classify(player),
			Player:   player,
			Cells:    make([]string, 0, len(columns)),
		}
		for _, column := range columns {
			row.Cells = append(row.Cells, cell(column, player))
		}
		model.Rows = append(model.Rows, row)
	}

	return model
}

func compareColumn(column ColumnID, a state.Player, b state.Player) int { //nolint:varnamelen
	switch column {
	case ColUserID:
		return cmp.Compare(a.UserID, b.UserID)
	case ColName:
		// Case-sensitive on purpose, locale folding would make the order
		// environment dependent.
		return strings.Compare(a.Name, b.Name)
	case ColScore:
		return cmp.Compare(a.Score, b.Score)
	case ColKills:
		return cmp.Compare(a.Kills, b.Kills)
	case ColDeaths:
		return cmp.Compare(a.Deaths, b.Deaths)
	case ColKPM:
		return cmp.Compare(a.KPM, b.KPM)
	case ColConnected:
		return cmp.Compare(a.ConnectedSeconds, b.ConnectedSeconds)
	case ColMapTime:
		return cmp.Compare(a.MapTimeSeconds, b.MapTimeSeconds)
	case ColPing:
		return cmp.Compare(a.Ping, b.Ping)
	case ColHealth:
		return cmp.Compare(health(a), health(b))
	case ColAlive:
		return cmp.Compare(boolValue(a.Alive), boolValue(b.Alive))
	default:
		return 0
	}
}

func cell(column ColumnID, player state.Player) string {
	switch column {
	case ColUserID:
		return fmt.Sprintf("%d", player.UserID)
	case ColName:
		name := player.Name
		if name == "" {
			name = player.SteamID.String()
		}

		return name
	case ColScore:
		return fmt.Sprintf("%d", player.Score)
	case ColKills:
		return fmt.Sprintf("%d", player.Kills)
	case ColDeaths:
		return fmt.Sprintf("%d", player.Deaths)
	case ColKPM:
		return fmt.Sprintf("%.2f", player.KPM)
	case ColConnected:
		return formatSeconds(player.ConnectedSeconds)
	case ColMapTime:
		return formatSeconds(player.MapTimeSeconds)
	case ColPing:
		return fmt.Sprintf("%d", player.Ping)
	case ColHealth:
		return fmt.Sprintf("%d", health(player))
	case ColAlive:
		if player.Alive {
			return "yes"
		}

		return "no"
	default:
		return "?"
	}
}

// health is the sortable/displayable health value, dead players read as 0.
func health(player state.Player) int {
	if !player.Alive {
		return 0
	}

	return player.Health
}

func boolValue(value bool) int {
	if value {
		return 1
	}

	return 0
}

func formatSeconds(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}

	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
