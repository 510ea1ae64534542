package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var schemas = map[string]string{
	DriverPostgres: `
CREATE TABLE IF NOT EXISTS users (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name TEXT NOT NULL CHECK (name <> '')
)`,
	DriverSQLite: `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL CHECK (name <> '')
)`,
}

// Migrate creates the users table when it does not exist yet.
func Migrate(ctx context.Context, conn *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate users table: %w", err)
	}

	slog.Info("Database schema is up to date.", "driver", driver)
	return nil
}
