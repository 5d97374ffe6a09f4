// Package store opens and migrates the local sqlite database holding
// client-side state such as the view preferences.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/httpfs"
	_ "modernc.org/sqlite"
)

var (
	//go:embed migrations
	migrations embed.FS

	ErrDBConnect = errors.New("db connect error")
	ErrMigrate   = errors.New("failed to migrate db schema")
)

// Open opens the sqlite database at path, creating it when missing. An empty
// path opens an in-memory database, which the tests rely on.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	memory := path == ""
	if memory {
		path = ":memory:"
	}

	connection, err := sql.Open("sqlite", path+"?cache=private")
	if err != nil {
		return nil, errors.Join(err, ErrDBConnect)
	}

	if memory {
		// Every new pool connection would otherwise get its own empty
		// in-memory database.
		connection.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA journal_mode=WAL",
	}
	for _, pragma := range pragmas {
		if _, errPragma := connection.ExecContext(ctx, pragma); errPragma != nil {
			return nil, errors.Join(errPragma, ErrDBConnect)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if errPing := connection.PingContext(pingCtx); errPing != nil {
		connection.Close()

		return nil, errors.Join(errPing, ErrDBConnect)
	}

	if errMigrate := Migrate(connection); errMigrate != nil {
		return nil, errors.Join(errMigrate, ErrDBConnect)
	}

	return connection, nil
}

// Migrate brings the schema fully up to date.
func Migrate(conn *sql.DB) error {
	driver, errDriver := sqlite.WithInstance(conn, &sqlite.Config{})
	if errDriver != nil {
		return errors.Join(errDriver, ErrMigrate)
	}

	source, errHTTPFS := httpfs.New(http.FS(migrations), "migrations")
	if errHTTPFS != nil {
		return errors.Join(errHTTPFS, ErrMigrate)
	}

	migrator, errInstance := migrate.NewWithInstance("httpfs", source, "sqlite", driver)
	if errInstance != nil {
		return errors.Join(errInstance, ErrMigrate)
	}

	if errUp := migrator.Up(); errUp != nil && !errors.Is(errUp, migrate.ErrNoChange) {
		return errors.Join(errUp, ErrMigrate)
	}

	return nil
}
