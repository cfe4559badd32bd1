// Package config loads the application configuration from environment
// variables, with a .env file as a convenience for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// --- Server ---
	Port        string `envconfig:"PORT" default:"8080"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`

	// --- Database ---
	// sqlite3 is the zero-setup default; set DB_DRIVER=pgx for Postgres.
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite3"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"habit_garden.sqlite3"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"habitgarden"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"habit_garden"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// --- Redis (optional; the stats cache is skipped without it) ---
	RedisEnabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// --- Stats ---
	StatsWindowDays int           `envconfig:"STATS_WINDOW_DAYS" default:"60"`
	StatsCacheTTL   time.Duration `envconfig:"STATS_CACHE_TTL" default:"24h"`

	// --- Rate limiting (active only when Redis is enabled) ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"100"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Bootstrap ---
	Seed bool `envconfig:"SEED" default:"true"`
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite3" {
		return c.SQLitePath + "?_foreign_keys=on"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3", "pgx", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use sqlite3, pgx, or postgres)", c.DBDriver)
	}
	if c.StatsWindowDays <= 0 {
		return fmt.Errorf("STATS_WINDOW_DAYS must be > 0")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("invalid RATE_LIMIT_REQUESTS/RATE_LIMIT_WINDOW")
	}
	return nil
}

// Load reads the environment into a Config. A missing .env file is not an
// error; real deployments set the environment directly.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment as-is")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
