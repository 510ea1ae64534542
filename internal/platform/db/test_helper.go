package db

import (
	"database/sql"
	"testing"

	"github.com/ferdiebergado/userhub/internal/config"
	timex "github.com/ferdiebergado/userhub/internal/pkg/time"
)

// SetupSQLite opens a private in-memory SQLite database with the users table migrated.
func SetupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.DB{
		Name:         "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  timex.Duration{Duration: defaultPingTimeout},
	}

	conn, err := Open(t.Context(), DriverSQLite, cfg)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("failed to close sqlite database: %v", err)
		}
	})

	if err := Migrate(t.Context(), conn, DriverSQLite); err != nil {
		t.Fatalf("failed to migrate sqlite database: %v", err)
	}

	return conn
}
