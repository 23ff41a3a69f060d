// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// DBMaxConns caps the pgx pool size. Zero keeps the pgx default.
	DBMaxConns int32

	// MigrateOnStart applies pending migrations before serving. Defaults to true.
	MigrateOnStart bool

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// RedisURL enables the person cache when set, e.g. "redis://localhost:6379/0".
	RedisURL string

	// CacheTTL is how long a cached person lives. Defaults to 10m.
	CacheTTL time.Duration

	// MaxBodyBytes limits request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var missing []string
	var errs []error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "0"), 10, 32)
	if err != nil || maxConns < 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS: must be a non-negative integer, got %q", os.Getenv("DB_MAX_CONNS")))
	}
	cfg.DBMaxConns = int32(maxConns)

	cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("MIGRATE_ON_START: must be a boolean, got %q", os.Getenv("MIGRATE_ON_START")))
	}

	cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil || cfg.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL: must be a non-negative duration, got %q", os.Getenv("CACHE_TTL")))
	}

	cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || cfg.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES: must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES")))
	}

	if len(missing) > 0 {
		errs = append([]error{fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))}, errs...)
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
