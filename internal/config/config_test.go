package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/userhub/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"app": {"env": "development", "log_level": "debug"},
		"server": {"port": 8888, "read_timeout": "3s", "max_body_bytes": 2048},
		"store": {"driver": "sqlite"},
		"db": {"name": "users.db", "max_open_conns": 1}
	}`)

	t.Setenv("PORT", "9090")
	t.Setenv("DB_PASS", "s3cret")
	t.Setenv("SHUTDOWN_TIMEOUT", "42s")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v, want: nil", path, err)
	}

	tests := []struct {
		name      string
		got, want any
	}{
		{"port from env", cfg.Server.Port, 9090},
		{"read timeout from file", cfg.Server.ReadTimeout.Duration, 3 * time.Second},
		{"shutdown timeout from env", cfg.Server.ShutdownTimeout.Duration, 42 * time.Second},
		{"write timeout default", cfg.Server.WriteTimeout.Duration, 10 * time.Second},
		{"max body bytes from file", cfg.Server.MaxBodyBytes, int64(2048)},
		{"store driver from file", cfg.Store.Driver, "sqlite"},
		{"db name from file", cfg.DB.Name, "users.db"},
		{"db pass from env", cfg.DB.Pass, "s3cret"},
		{"log level from file", cfg.App.LogLevel, "debug"},
		{"redis key prefix default", cfg.Redis.KeyPrefix, "userhub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want: %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{"unknown driver", `{"store": {"driver": "oracle"}}`, nil, config.ErrInvalid},
		{"port out of range", `{"server": {"port": 70000}}`, nil, config.ErrInvalid},
		{"redis without address", `{"store": {"driver": "redis"}}`, nil, config.ErrInvalid},
		{"driver overridden by env", `{}`, map[string]string{"STORE_DRIVER": "mongo"}, config.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := writeConfig(t, tt.content)
			_, err := config.Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("config.Load(%q) = %v, want: %v", path, err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("config.Load(missing) = nil, want: error")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `{"server": `)
	if _, err := config.Load(path); err == nil {
		t.Errorf("config.Load(%q) = nil, want: error", path)
	}
}

func TestLoad_StoreDrivers(t *testing.T) {
	drivers := []string{config.DriverPostgres, config.DriverSQLite, config.DriverRedis, config.DriverMemory}
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			t.Setenv("STORE_DRIVER", driver)
			t.Setenv("REDIS_ADDR", "localhost:6379")

			cfg, err := config.Load(writeConfig(t, `{}`))
			if err != nil {
				t.Fatalf("config.Load() = %v, want: nil", err)
			}

			if cfg.Store.Driver != driver {
				t.Errorf("cfg.Store.Driver = %q, want: %q", cfg.Store.Driver, driver)
			}
		})
	}
}
