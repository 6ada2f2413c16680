package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig assembles the runtime configuration: defaults first, then an
// optional YAML file for the current environment, then FINTRACK_* overrides.
func LoadConfig() (*Config, error) {
	// .env is optional, a warning is all a missing file earns
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	// Read the config file; a missing file falls back to defaults plus
	// environment overrides
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables win over file values
	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found on the search path.
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults seeds every knob so a bare checkout runs without a config file.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	// Database defaults sized for a single SQLite file
	v.SetDefault("database.path", "finance_tracker.db")
	v.SetDefault("database.busyTimeoutMs", 5000)
	v.SetDefault("database.maxOpenConns", 1)
	v.SetDefault("database.maxIdleConns", 1)
	v.SetDefault("database.connMaxLifetime", "1h")
	v.SetDefault("database.queryTimeout", "10s")
	v.SetDefault("database.logLevel", "warn")

	// Session defaults
	v.SetDefault("session.ttl", "720h")
	v.SetDefault("session.cookieName", "fintrack_session")
	v.SetDefault("session.cookieSecure", false)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.outputPath", "stdout")
	v.SetDefault("logger.callerInfo", true)
}

// getEnvironment reads APP_ENV, defaulting to development.
func getEnvironment() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies short-form aliases for the most commonly tuned
// values. Viper's AutomaticEnv already maps the full dotted key names.
func processEnvOverrides(v *viper.Viper) {
	// Database settings
	if dbPath := os.Getenv("FINTRACK_DB_PATH"); dbPath != "" {
		v.Set("database.path", dbPath)
	}
	if busyTimeout := getEnvInt("FINTRACK_DB_BUSY_TIMEOUT_MS", 0); busyTimeout > 0 {
		v.Set("database.busyTimeoutMs", busyTimeout)
	}
	if maxOpenConns := getEnvInt("FINTRACK_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("FINTRACK_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := os.Getenv("FINTRACK_DB_QUERY_TIMEOUT"); queryTimeout != "" {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if dbLogLevel := os.Getenv("FINTRACK_DB_LOG_LEVEL"); dbLogLevel != "" {
		v.Set("database.logLevel", dbLogLevel)
	}

	// Server settings
	if serverHost := os.Getenv("FINTRACK_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := getEnvInt("FINTRACK_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}

	// Session settings
	if ttl := os.Getenv("FINTRACK_SESSION_TTL"); ttl != "" {
		v.Set("session.ttl", ttl)
	}
	if cookieName := os.Getenv("FINTRACK_SESSION_COOKIE_NAME"); cookieName != "" {
		v.Set("session.cookieName", cookieName)
	}
	if cookieSecure := os.Getenv("FINTRACK_SESSION_COOKIE_SECURE"); cookieSecure != "" {
		v.Set("session.cookieSecure", cookieSecure == "true" || cookieSecure == "1")
	}

	// Logger settings
	if logLevel := os.Getenv("FINTRACK_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}
	if logFormat := os.Getenv("FINTRACK_LOGGER_FORMAT"); logFormat != "" {
		v.Set("logger.format", logFormat)
	}
}

// getEnvInt parses an integer environment variable, returning defaultVal
// when unset or malformed.
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
