package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ferdiebergado/userhub/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = config.DriverPostgres
	DriverSQLite   = config.DriverSQLite
)

const defaultPingTimeout = 5 * time.Second

var ErrUnsupportedDriver = errors.New("db: unsupported driver")

// Open creates and validates a database connection for the configured driver.
func Open(signalCtx context.Context, driver string, cfg *config.DB) (*sql.DB, error) {
	slog.Info("Connecting to the database...", "driver", driver)

	dsn, err := DSN(driver, cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingTimeout := cfg.PingTimeout.Duration
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	pingCtx, cancel := context.WithTimeout(signalCtx, pingTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "driver", driver, "db", cfg.Name)

	return conn, nil
}

// DSN builds the data source name for driver.
func DSN(driver string, cfg *config.DB) (string, error) {
	switch driver {
	case DriverPostgres:
		const dsnFmt = "postgres://%s:%s@%s:%d/%s?sslmode=%s"
		return fmt.Sprintf(dsnFmt, cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode), nil
	case DriverSQLite:
		return cfg.Name, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Rebind rewrites '?' placeholders into the positional form the driver expects.
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
