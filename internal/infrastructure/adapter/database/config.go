package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents database configuration. The store is a single SQLite
// file; ":memory:" keeps everything in process for tests.
type Config struct {
	Path            string        `mapstructure:"db_path"`
	BusyTimeout     time.Duration `mapstructure:"db_busy_timeout"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	QueryTimeout    time.Duration `mapstructure:"db_query_timeout"`
	LogLevel        string        `mapstructure:"db_log_level"`
	SlowThreshold   time.Duration `mapstructure:"db_slow_threshold"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Path:            configEnvOrDefault("FINTRACK_DB_PATH", "finance_tracker.db"),
		BusyTimeout:     time.Duration(configEnvAsInt("FINTRACK_DB_BUSY_TIMEOUT_MS", 5000)) * time.Millisecond,
		MaxOpenConns:    configEnvAsInt("FINTRACK_DB_MAX_OPEN_CONNS", 1),
		MaxIdleConns:    configEnvAsInt("FINTRACK_DB_MAX_IDLE_CONNS", 1),
		ConnMaxLifetime: time.Duration(configEnvAsInt("FINTRACK_DB_CONN_MAX_LIFETIME_MINUTES", 60)) * time.Minute,
		QueryTimeout:    time.Duration(configEnvAsInt("FINTRACK_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		LogLevel:        configEnvOrDefault("FINTRACK_DB_LOG_LEVEL", "warn"),
		SlowThreshold:   time.Duration(configEnvAsInt("FINTRACK_DB_SLOW_THRESHOLD_MS", 200)) * time.Millisecond,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Path == "" {
		return errors.New("database path is required")
	}
	if c.BusyTimeout < 0 {
		return errors.New("busy timeout must be non-negative")
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// InMemory reports whether the store lives only in process memory
func (c *Config) InMemory() bool {
	return c.Path == ":memory:"
}

// DSN returns the database connection string. Pragmas ride along as query
// parameters so every pooled connection applies them.
func (c *Config) DSN() string {
	if c.InMemory() {
		return fmt.Sprintf("file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", c.BusyTimeout.Milliseconds())
	}
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		c.Path, c.BusyTimeout.Milliseconds(),
	)
}

// WithPath returns a copy of the config with an updated database path
func (c *Config) WithPath(path string) *Config {
	newConfig := *c
	newConfig.Path = path
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// configEnvOrDefault reads an environment variable, falling back to the default
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt does the same for integer values
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
