package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	timex "github.com/ferdiebergado/userhub/internal/pkg/time"
	"github.com/kelseyhightower/envconfig"
)

const maskChar = "*"

var ErrInvalid = errors.New("config: invalid configuration")

// Store drivers. DriverPostgres and DriverSQLite double as database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type App struct {
	Env      string `json:"env,omitempty" envconfig:"ENV"`
	LogLevel string `json:"log_level,omitempty" envconfig:"LOG_LEVEL"`
}

type Server struct {
	Port            int            `json:"port,omitempty" envconfig:"PORT"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty" envconfig:"ALLOWED_ORIGIN"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty" envconfig:"READ_TIMEOUT"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty" envconfig:"SHUTDOWN_TIMEOUT"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty" envconfig:"MAX_BODY_BYTES"`
	RateLimit       int            `json:"rate_limit,omitempty" envconfig:"RATE_LIMIT"`
	RateWindow      timex.Duration `json:"rate_window,omitempty" envconfig:"RATE_WINDOW"`
}

type Store struct {
	// Driver selects the user repository: pgx, sqlite, redis or memory.
	Driver string `json:"driver,omitempty" envconfig:"STORE_DRIVER"`
}

type DB struct {
	Host            string         `json:"host,omitempty" envconfig:"DB_HOST"`
	Port            int            `json:"port,omitempty" envconfig:"DB_PORT"`
	User            string         `json:"user,omitempty" envconfig:"DB_USER"`
	Pass            string         `json:"-" envconfig:"DB_PASS"`
	Name            string         `json:"name,omitempty" envconfig:"DB_NAME"`
	SSLMode         string         `json:"sslmode,omitempty" envconfig:"DB_SSLMODE"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty" envconfig:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty" envconfig:"DB_MAX_IDLE_CONNS"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty" envconfig:"DB_CONN_MAX_IDLE_TIME"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty" envconfig:"DB_CONN_MAX_LIFETIME"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty" envconfig:"DB_PING_TIMEOUT"`
}

func (d *DB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", d.Host),
		slog.Int("port", d.Port),
		slog.String("user", d.User),
		slog.String("pass", maskChar),
		slog.String("name", d.Name),
		slog.Int("max_open_conns", d.MaxOpenConns),
		slog.Int("max_idle_conns", d.MaxIdleConns),
	)
}

type Redis struct {
	Addr      string `json:"addr,omitempty" envconfig:"REDIS_ADDR"`
	Password  string `json:"-" envconfig:"REDIS_PASSWORD"`
	DB        int    `json:"db,omitempty" envconfig:"REDIS_DB"`
	KeyPrefix string `json:"key_prefix,omitempty" envconfig:"REDIS_KEY_PREFIX"`
}

func (r *Redis) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", r.Addr),
		slog.String("password", maskChar),
		slog.Int("db", r.DB),
		slog.String("key_prefix", r.KeyPrefix),
	)
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	Store  *Store  `json:"store,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	Redis  *Redis  `json:"redis,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Any("store", c.Store),
		slog.Any("db", c.DB),
		slog.Any("redis", c.Redis),
	)
}

// IsProduction reports whether the app runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c != nil && c.App != nil && c.App.Env == "production"
}

// Load reads cfgFile, applies environment overrides and fills in defaults.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("override config with env: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.App == nil {
		cfg.App = &App{}
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	srv := cfg.Server
	if srv.Port == 0 {
		srv.Port = 8080
	}
	setDuration(&srv.ReadTimeout, 10*time.Second)
	setDuration(&srv.WriteTimeout, 10*time.Second)
	setDuration(&srv.IdleTimeout, time.Minute)
	setDuration(&srv.ShutdownTimeout, 10*time.Second)
	setDuration(&srv.RateWindow, time.Minute)
	if srv.MaxBodyBytes == 0 {
		srv.MaxBodyBytes = 1 << 20
	}
	if srv.RateLimit == 0 {
		srv.RateLimit = 100
	}

	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverMemory
	}

	if cfg.DB == nil {
		cfg.DB = &DB{}
	}
	setDuration(&cfg.DB.PingTimeout, 5*time.Second)

	if cfg.Redis == nil {
		cfg.Redis = &Redis{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "userhub"
	}
}

func setDuration(d *timex.Duration, fallback time.Duration) {
	if d.Duration == 0 {
		d.Duration = fallback
	}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown store driver %q", ErrInvalid, c.Store.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Server.Port)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalid)
	}

	if c.Store.Driver == DriverRedis && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis store requires redis.addr", ErrInvalid)
	}

	return nil
}
