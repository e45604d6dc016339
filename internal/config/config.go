package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage backend identifiers
const (
	BackendBolt     = "bolt"
	BackendPostgres = "postgres"
)

// Config holds all runtime configuration, loaded from environment variables
type Config struct {
	// HTTP Server
	Port     string
	APIToken string

	// Storage
	StorageBackend string
	BoltDBPath     string
	DBConnStr      string

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, applying defaults
func Load() *Config {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		APIToken: getEnv("API_TOKEN", "dev-token"),

		StorageBackend: getEnv("STORAGE_BACKEND", BackendBolt),
		BoltDBPath:     getEnv("BOLT_DB_PATH", "./data/fintrack.db"),
		DBConnStr:      getEnv("DB_CONN_STR", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBConnStr == "" {
		cfg.DBConnStr = buildConnStr()
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StorageBackend {
	case BackendBolt:
		if c.BoltDBPath == "" {
			errs = append(errs, "bolt backend requires BOLT_DB_PATH")
		}
	case BackendPostgres:
		if c.DBConnStr == "" {
			errs = append(errs, "postgres backend requires DB_CONN_STR")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid storage backend '%s': must be one of [%s %s]",
			c.StorageBackend, BackendBolt, BackendPostgres))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// buildConnStr assembles a Postgres connection string from discrete env vars
// (Docker friendly, mirrors the individual DB_* variables)
func buildConnStr() string {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "postgres")
	dbname := getEnv("DB_NAME", "fintrack")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
