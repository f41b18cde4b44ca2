// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes the database
// connection settings, pool sizing, and logging options consumed by the
// reservation data layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/CosmicAlpaca/Train-Ticket-Reservation-System/internal/sysutil"
)

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string // DB_HOST
	Port     string // DB_PORT
	User     string // DB_USER
	Password string // DB_PASSWORD
	Name     string // DB_NAME

	MaxOpenConns    int           // DB_MAX_OPEN_CONNS
	MaxIdleConns    int           // DB_MAX_IDLE_CONNS
	ConnMaxLifetime time.Duration // DB_CONN_MAX_LIFETIME
	ConnMaxIdleTime time.Duration // DB_CONN_MAX_IDLE_TIME
}

// DSN renders the go-sql-driver/mysql data source name. parseTime is left
// off: journey dates travel as ISO strings end to end.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// Config holds all configuration values for the application.
type Config struct {
	// Logging
	LogLevel  string // debug|info|warn|error|fatal|panic
	LogPretty bool   // pretty console logs in dev

	// Database
	DB DatabaseConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from the environment (a local .env file is
// honored when present), applies defaults, normalizes values, and validates
// the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty: getbool("LOG_PRETTY", false),

		DB: DatabaseConfig{
			Host:     getenv("DB_HOST", "127.0.0.1"),
			Port:     getenv("DB_PORT", "3306"),
			User:     getenv("DB_USER", "reservation"),
			Password: getenv("DB_PASSWORD", ""),
			Name:     getenv("DB_NAME", "railway"),

			MaxOpenConns:    getint("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getint("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getdur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getdur("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.DB.Host) == "" {
		return cfg, errors.New("DB_HOST must not be empty")
	}
	if strings.TrimSpace(cfg.DB.Port) == "" {
		return cfg, errors.New("DB_PORT must not be empty")
	}
	if strings.TrimSpace(cfg.DB.User) == "" {
		return cfg, errors.New("DB_USER must not be empty")
	}
	if strings.TrimSpace(cfg.DB.Name) == "" {
		return cfg, errors.New("DB_NAME must not be empty")
	}
	if cfg.DB.MaxOpenConns <= 0 {
		return cfg, errors.New("DB_MAX_OPEN_CONNS must be > 0")
	}
	if cfg.DB.MaxIdleConns < 0 {
		return cfg, errors.New("DB_MAX_IDLE_CONNS must be >= 0")
	}
	if cfg.DB.ConnMaxLifetime <= 0 || cfg.DB.ConnMaxIdleTime <= 0 {
		return cfg, errors.New("connection lifetimes must be positive durations")
	}

	return cfg, nil
}

// ---- helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return sysutil.IsTruthy(v)
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
