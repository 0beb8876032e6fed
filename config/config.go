package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store backends understood by bootstrap.OpenStore.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Realtime RealtimeConfig
	Seed     SeedConfig
	App      AppConfig
}

type ServerConfig struct {
	Port        string   `envconfig:"PORT" default:"3000"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"memory"`
	IDSeed  int64  `envconfig:"STORE_ID_SEED" default:"1"`
}

type DatabaseConfig struct {
	DSN      string `envconfig:"DB_DSN"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RealtimeConfig struct {
	SendBuffer int     `envconfig:"REALTIME_SEND_BUFFER" default:"64"`
	ChatRate   float64 `envconfig:"REALTIME_CHAT_RATE" default:"5"`
	ChatBurst  int     `envconfig:"REALTIME_CHAT_BURST" default:"10"`
}

type SeedConfig struct {
	File     string `envconfig:"SEED_FILE"`
	Schedule string `envconfig:"SEED_SCHEDULE"`
}

type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// Load reads envFiles (missing files are fine) and then the process
// environment into a validated Config.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	switch c.Store.Backend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if c.Database.DSN == "" {
			return errors.New("DB_DSN is required when STORE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	if c.Store.IDSeed < 1 {
		return fmt.Errorf("STORE_ID_SEED must be >= 1, got %d", c.Store.IDSeed)
	}
	if c.Realtime.SendBuffer < 1 {
		return fmt.Errorf("REALTIME_SEND_BUFFER must be >= 1, got %d", c.Realtime.SendBuffer)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
