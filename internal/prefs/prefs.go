// Package prefs persists the view preferences in the local sqlite store,
// one row per preference key. Each key loads independently: a malformed or
// missing value falls back to that fields default without disturbing the
// other keys, so stale state from an older version can never take the whole
// preference set down.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/leighmacdonald/bd-tui/internal/view"
)

const (
	keySortBy         = "sortBy"
	keySortOrder      = "sortOrder"
	keyEnabledColumns = "enabledColumns"
	keyMatchesOnly    = "matchesOnly"
)

var ErrSavePrefs = errors.New("failed to save view preferences")

func New(db *sql.DB) Store {
	return Store{db: db}
}

type Store struct {
	db *sql.DB
}

// Load reads the persisted preferences, falling back per field.
func (s Store) Load(ctx context.Context) view.Preferences {
	prefs := view.DefaultPreferences()

	if value, ok := s.get(ctx, keySortBy); ok {
		if column := view.ColumnID(value); column.Valid() {
			prefs.SortColumn = column
		} else {
			slog.Warn("Ignoring unknown persisted sort column", slog.String("value", value))
		}
	}

	if value, ok := s.get(ctx, keySortOrder); ok {
		switch view.SortDirection(value) {
		case view.Ascending, view.Descending:
			prefs.SortDirection = view.SortDirection(value)
		default:
			slog.Warn("Ignoring unknown persisted sort order", slog.String("value", value))
		}
	}

	if value, ok := s.get(ctx, keyEnabledColumns); ok {
		if columns, errColumns := parseColumns(value); errColumns != nil {
			slog.Warn("Ignoring malformed persisted columns", slog.String("error", errColumns.Error()))
		} else {
			prefs.EnabledColumns = columns
		}
	}

	if value, ok := s.get(ctx, keyMatchesOnly); ok {
		prefs.MatchesOnly = strings.EqualFold(value, "true")
	}

	return prefs
}

// Save persists all four preference keys.
func (s Store) Save(ctx context.Context, prefs view.Preferences) error {
	columns, errColumns := json.Marshal(prefs.EnabledColumns)
	if errColumns != nil {
		return errors.Join(errColumns, ErrSavePrefs)
	}

	matchesOnly := "false"
	if prefs.MatchesOnly {
		matchesOnly = "true"
	}

	pairs := map[string]string{
		keySortBy:         string(prefs.SortColumn),
		keySortOrder:      string(prefs.SortDirection),
		keyEnabledColumns: string(columns),
		keyMatchesOnly:    matchesOnly,
	}

	for key, value := range pairs {
		if err := s.set(ctx, key, value); err != nil {
			return err
		}
	}

	return nil
}

func (s Store) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM view_prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("Failed to load preference", slog.String("key", key), slog.String("error", err.Error()))
		}

		return "", false
	}

	return value, true
}

func (s Store) set(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO view_prefs (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return errors.Join(err, ErrSavePrefs)
	}

	return nil
}

// parseColumns decodes the persisted column list, dropping unknown ids. An
// empty result counts as malformed since the table cant render zero columns.
func parseColumns(value string) ([]view.ColumnID, error) {
	var raw []string
	if err := json.Unmarshal([]byte(value), &raw); err != nil {
		return nil, err
	}

	var columns []view.ColumnID
	for _, entry := range raw {
		if column := view.ColumnID(entry); column.Valid() {
			columns = append(columns, column)
		}
	}

	if len(columns) == 0 {
		return nil, errors.New("no valid columns")
	}

	return columns, nil
}
