package view_test

import (
	"testing"

	"github.com/leighmacdonald/bd-tui/internal/bdapi"
	"github.com/leighmacdonald/bd-tui/internal/state"
	"github.com/leighmacdonald/bd-tui/internal/view"
	"github.com/leighmacdonald/steamid/v4/steamid"
	"github.com/stretchr/testify/require"
)

func testPlayer(accountID int64, name string, kills int) state.Player {
	return state.Player{
		SteamID:   steamid.New(76561197960265728 + accountID),
		Name:      name,
		Kills:     kills,
		Connected: true,
		Alive:     true,
	}
}

func cheaterMatch() []bdapi.Match {
	return []bdapi.Match{{Origin: "test list", MatcherType: "steam_id", Attributes: []string{"cheater"}}}
}

func TestBuildSortsDescending(t *testing.T) {
	playerA := testPlayer(1, "A", 10)
	playerB := testPlayer(2, "B", 20)
	playerB.Matches = cheaterMatch()

	snapshot := state.Snapshot{Players: state.Players{playerA, playerB}}
	prefs := view.Preferences{
		SortColumn:     view.ColKills,
		SortDirection:  view.Descending,
		EnabledColumns: view.DefaultColumns(),
	}

	model := view.Build(snapshot, prefs)
	require.Len(t, model.Rows, 2)
	require.Equal(t, playerB.SteamID, model.Rows[0].SteamID)
	require.Equal(t, playerA.SteamID, model.Rows[1].SteamID)
	require.Equal(t, view.CategoryMatchCheater, model.Rows[0].Category)
}

func TestBuildMatchesOnly(t *testing.T) {
	playerA := testPlayer(1, "A", 10)
	playerB := testPlayer(2, "B", 20)
	playerB.Matches = cheaterMatch()

	snapshot := state.Snapshot{Players: state.Players{playerA, playerB}}
	prefs := view.DefaultPreferences()
	prefs.MatchesOnly = true

	model := view.Build(snapshot, prefs)
	require.Len(t, model.Rows, 1)
	require.Equal(t, playerB.SteamID, model.Rows[0].SteamID)
}

func TestBuildLength(t *testing.T) {
	var players state.Players
	var withMatches int
	for idx := range 10 {
		player := testPlayer(int64(idx+1), "player", idx)
		if idx%3 == 0 {
			player.Matches = cheaterMatch()
			withMatches++
		}
		players = append(players, player)
	}
	snapshot := state.Snapshot{Players: players}

	unfiltered := view.Build(snapshot, view.DefaultPreferences())
	require.Len(t, unfiltered.Rows, len(players))

	prefs := view.DefaultPreferences()
	prefs.MatchesOnly = true
	filtered := view.Build(snapshot, prefs)
	require.Len(t, filtered.Rows, withMatches)

	// Filtered output must be a subset of the unfiltered one, exactly the
	// players carrying matches.
	for _, row := range filtered.Rows {
		require.NotEmpty(t, row.Player.Matches)
	}
}

func TestBuildStableSort(t *testing.T) {
	playerA := testPlayer(1, "first", 5)
	playerB := testPlayer(2, "second", 5)
	playerC := testPlayer(3, "third", 5)
	snapshot := state.Snapshot{Players: state.Players{playerA, playerB, playerC}}

	for _, direction := range []view.SortDirection{view.Ascending, view.Descending} {
		prefs := view.Preferences{
			SortColumn:     view.ColKills,
			SortDirection:  direction,
			EnabledColumns: view.DefaultColumns(),
		}

		model := view.Build(snapshot, prefs)
		require.Equal(t, playerA.SteamID, model.Rows[0].SteamID, string(direction))
		require.Equal(t, playerB.SteamID, model.Rows[1].SteamID, string(direction))
		require.Equal(t, playerC.SteamID, model.Rows[2].SteamID, string(direction))
	}
}

func TestBuildUnknownSortColumn(t *testing.T) {
	playerA := testPlayer(1, "A", 10)
	playerB := testPlayer(2, "B", 20)
	snapshot := state.Snapshot{Players: state.Players{playerA, playerB}}

	prefs := view.DefaultPreferences()
	prefs.SortColumn = view.ColumnID("bogus_column")

	// Falls back to kills descending instead of failing.
	model := view.Build(snapshot, prefs)
	require.Equal(t, playerB.SteamID, model.Rows[0].SteamID)
	require.Equal(t, playerA.SteamID, model.Rows[1].SteamID)
}

func TestBuildIdempotent(t *testing.T) {
	playerA := testPlayer(1, "A", 10)
	playerB := testPlayer(2, "B", 20)
	playerB.Matches = cheaterMatch()
	snapshot := state.Snapshot{Players: state.Players{playerA, playerB}}
	prefs := view.DefaultPreferences()

	require.Equal(t, view.Build(snapshot, prefs), view.Build(snapshot, prefs))
}

func TestBuildProjection(t *testing.T) {
	player := testPlayer(1, "A", 3)
	player.Health = 100
	player.Alive = false
	player.KPM = 1.5

	prefs := view.Preferences{
		SortColumn:     view.ColKills,
		SortDirection:  view.Descending,
		EnabledColumns: []view.ColumnID{view.ColName, view.ColHealth, view.ColKPM},
	}

	model := view.Build(state.Snapshot{Players: state.Players{player}}, prefs)
	require.Equal(t, []view.ColumnID{view.ColName, view.ColHealth, view.ColKPM}, model.Columns)
	require.Len(t, model.Rows, 1)
	// Dead players read 0 health regardless of the raw value.
	require.Equal(t, []string{"A", "0", "1.50"}, model.Rows[0].Cells)
}

func TestBuildEmptyColumns(t *testing.T) {
	player := testPlayer(1, "A", 3)
	prefs := view.DefaultPreferences()
	prefs.EnabledColumns = nil

	model := view.Build(state.Snapshot{Players: state.Players{player}}, prefs)
	require.Equal(t, view.DefaultColumns(), model.Columns)
}

func TestBuildNameSortCaseSensitive(t *testing.T) {
	playerA := testPlayer(1, "apple", 0)
	playerB := testPlayer(2, "Banana", 0)
	snapshot := state.Snapshot{Players: state.Players{playerA, playerB}}

	prefs := view.Preferences{
		SortColumn:     view.ColName,
		SortDirection:  view.Ascending,
		EnabledColumns: view.DefaultColumns(),
	}

	// Byte order, uppercase before lowercase. No locale folding.
	model := view.Build(snapshot, prefs)
	require.Equal(t, playerB.SteamID, model.Rows[0].SteamID)
}
