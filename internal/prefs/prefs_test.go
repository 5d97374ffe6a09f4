package prefs_test

import (
	"database/sql"
	"testing"

	"github.com/leighmacdonald/bd-tui/internal/prefs"
	"github.com/leighmacdonald/bd-tui/internal/store"
	"github.com/leighmacdonald/bd-tui/internal/view"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	database, errDB := store.Open(t.Context(), "")
	require.NoError(t, errDB)
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func TestLoadDefaults(t *testing.T) {
	prefStore := prefs.New(testDB(t))

	require.Equal(t, view.DefaultPreferences(), prefStore.Load(t.Context()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	prefStore := prefs.New(testDB(t))

	saved := view.Preferences{
		SortColumn:     view.ColPing,
		SortDirection:  view.Ascending,
		EnabledColumns: []view.ColumnID{view.ColName, view.ColPing},
		MatchesOnly:    true,
	}
	require.NoError(t, prefStore.Save(t.Context(), saved))
	require.Equal(t, saved, prefStore.Load(t.Context()))

	// Saving again overwrites rather than duplicating rows.
	saved.MatchesOnly = false
	require.NoError(t, prefStore.Save(t.Context(), saved))
	require.Equal(t, saved, prefStore.Load(t.Context()))
}

func TestLoadFallsBackPerKey(t *testing.T) {
	database := testDB(t)
	prefStore := prefs.New(database)

	saved := view.Preferences{
		SortColumn:     view.ColDeaths,
		SortDirection:  view.Ascending,
		EnabledColumns: []view.ColumnID{view.ColName},
		MatchesOnly:    true,
	}
	require.NoError(t, prefStore.Save(t.Context(), saved))

	// Corrupt only the column list. The other three keys must survive.
	_, errExec := database.ExecContext(t.Context(),
		`UPDATE view_prefs SET value = 'not json' WHERE key = 'enabledColumns'`)
	require.NoError(t, errExec)

	loaded := prefStore.Load(t.Context())
	require.Equal(t, view.DefaultColumns(), loaded.EnabledColumns)
	require.Equal(t, view.ColDeaths, loaded.SortColumn)
	require.Equal(t, view.Ascending, loaded.SortDirection)
	require.True(t, loaded.MatchesOnly)
}

func TestLoadUnknownSortColumn(t *testing.T) {
	database := testDB(t)
	prefStore := prefs.New(database)

	_, errExec := database.ExecContext(t.Context(),
		`INSERT INTO view_prefs (key, value) VALUES ('sortBy', 'bogus_column'), ('sortOrder', 'sideways')`)
	require.NoError(t, errExec)

	loaded := prefStore.Load(t.Context())
	require.Equal(t, view.ColKills, loaded.SortColumn)
	require.Equal(t, view.Descending, loaded.SortDirection)
}

func TestLoadDropsUnknownColumnIDs(t *testing.T) {
	database := testDB(t)
	prefStore := prefs.New(database)

	_, errExec := database.ExecContext(t.Context(),
		`INSERT INTO view_prefs (key, value) VALUES ('enabledColumns', '["name","bogus","ping"]')`)
	require.NoError(t, errExec)

	loaded := prefStore.Load(t.Context())
	require.Equal(t, []view.ColumnID{view.ColName, view.ColPing}, loaded.EnabledColumns)
}

func TestLoadAllUnknownColumnsFallsBack(t *testing.T) {
	database := testDB(t)
	prefStore := prefs.New(database)

	_, errExec := database.ExecContext(t.Context(),
		`INSERT INTO view_prefs (key, value) VALUES ('enabledColumns', '["bogus","nope"]')`)
	require.NoError(t, errExec)

	require.Equal(t, view.DefaultColumns(), prefStore.Load(t.Context()).EnabledColumns)
}
